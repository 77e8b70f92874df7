package yamlio

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesresolve"
	"gopkg.in/yaml.v3"
)

// Load decodes a YAML document from r and resolves it into a graph.
func Load(r io.Reader) (*demesgraph.Graph, error) {
	var doc tree
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, demeserr.Wrap(demeserr.KindYAML, err, "failed to decode yaml document")
	}
	return resolveTree(doc)
}

// Loads decodes a YAML document from a string and resolves it into a graph.
func Loads(s string) (*demesgraph.Graph, error) {
	var doc tree
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, demeserr.Wrap(demeserr.KindYAML, err, "failed to decode yaml document")
	}
	return resolveTree(doc)
}

// LoadJSON decodes a JSON document from r, applies the null start_time
// rewrite, and resolves it into a graph.
func LoadJSON(r io.Reader) (*demesgraph.Graph, error) {
	var doc tree
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, demeserr.Wrap(demeserr.KindJSON, err, "failed to decode json document")
	}
	return resolveTree(fixNullStartTimes(doc))
}

// LoadsJSON decodes a JSON document from a string, applies the null
// start_time rewrite, and resolves it into a graph.
func LoadsJSON(s string) (*demesgraph.Graph, error) {
	var doc tree
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&doc); err != nil {
		return nil, demeserr.Wrap(demeserr.KindJSON, err, "failed to decode json document")
	}
	return resolveTree(fixNullStartTimes(doc))
}

func resolveTree(doc tree) (*demesgraph.Graph, error) {
	u, err := graphFromTree(doc)
	if err != nil {
		return nil, err
	}
	return demesresolve.Resolve(u)
}

// fixNullStartTimes rewrites every deme's null start_time to the string
// "Infinity": JSON has no literal for infinity, so a
// demes document with an open-ended deme's start_time omitted is
// encoded there as an explicit null.
func fixNullStartTimes(doc tree) tree {
	demes, ok := doc["demes"]
	if !ok {
		return doc
	}
	list, ok := asSlice(demes)
	if !ok {
		return doc
	}
	for _, raw := range list {
		dt, ok := asTree(raw)
		if !ok {
			continue
		}
		if v, present := dt["start_time"]; present && v == nil {
			dt["start_time"] = "Infinity"
		}
	}
	return doc
}

// AsYAMLString renders a resolved graph back into a YAML document.
func AsYAMLString(g *demesgraph.Graph) (string, error) {
	out, err := yaml.Marshal(graphToTree(g))
	if err != nil {
		return "", demeserr.Wrap(demeserr.KindYAML, err, "failed to marshal graph to yaml")
	}
	return string(out), nil
}

// AsJSONString renders a resolved graph back into a JSON document.
func AsJSONString(g *demesgraph.Graph) (string, error) {
	out, err := json.MarshalIndent(graphToTree(g), "", "  ")
	if err != nil {
		return "", demeserr.Wrap(demeserr.KindJSON, err, "failed to marshal graph to json")
	}
	return string(out), nil
}
