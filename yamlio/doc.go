// Package yamlio loads and serialises graphs in their textual forms:
// a YAML 1.1-style document or a JSON document, both decoded by their
// codec into a generic key/value tree (map[string]interface{}), which
// this package then walks into a demesunresolved.Graph and hands to
// demesresolve.Resolve.
//
// JSON has no literal for infinity, so a graph with an open-ended deme
// is written with start_time: null in JSON. Before walking the tree,
// LoadJSON/LoadsJSON rewrite every deme's null start_time to the string
// "Infinity", the one JSON-specific preprocessing step.
package yamlio
