package yamlio_test

import (
	"testing"

	"github.com/katalvlaran/demes/yamlio"
	"github.com/stretchr/testify/require"
)

const singleInfiniteDeme = `
demes:
  - name: A
    epochs:
      - start_size: 100
        end_time: 0
`

// TestLoads_SingleInfiniteStartDeme checks that a deme with no explicit
// start_time or ancestors resolves to an infinite start_time.
func TestLoads_SingleInfiniteStartDeme(t *testing.T) {
	g, err := yamlio.Loads(singleInfiniteDeme)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumDemes())
	d, ok := g.DemeByName("A")
	require.True(t, ok)
	require.True(t, d.StartTime().IsInfinite())
}

// TestYAMLRoundTrip verifies that loading a graph, serialising it back
// to YAML, and reloading it produces a structurally equal graph.
func TestYAMLRoundTrip(t *testing.T) {
	g, err := yamlio.Loads(singleInfiniteDeme)
	require.NoError(t, err)

	text, err := yamlio.AsYAMLString(g)
	require.NoError(t, err)

	reloaded, err := yamlio.Loads(text)
	require.NoError(t, err)
	require.True(t, g.Equal(reloaded))
}

// TestJSONRoundTrip checks that a null start_time in JSON is
// interpreted as infinity, and that YAML and JSON round trips of the
// same graph both preserve that infinity.
func TestJSONRoundTrip(t *testing.T) {
	jsonDoc := `{
		"demes": [
			{
				"name": "A",
				"start_time": null,
				"epochs": [{"start_size": 100, "end_time": 0}]
			}
		]
	}`
	g, err := yamlio.LoadsJSON(jsonDoc)
	require.NoError(t, err)
	d, ok := g.DemeByName("A")
	require.True(t, ok)
	require.True(t, d.StartTime().IsInfinite())

	yamlText, err := yamlio.AsYAMLString(g)
	require.NoError(t, err)
	reloaded, err := yamlio.Loads(yamlText)
	require.NoError(t, err)
	require.True(t, g.Equal(reloaded))

	jsonText, err := yamlio.AsJSONString(g)
	require.NoError(t, err)
	reloadedFromJSON, err := yamlio.LoadsJSON(jsonText)
	require.NoError(t, err)
	require.True(t, g.Equal(reloadedFromJSON))
}

// TestLoads_MultiAncestorMissingProportionsFails: two ancestors with no
// proportions list is an error.
func TestLoads_MultiAncestorMissingProportionsFails(t *testing.T) {
	doc := `
demes:
  - name: A
    epochs:
      - start_size: 100
        end_time: 100
  - name: B
    epochs:
      - start_size: 100
        end_time: 100
  - name: C
    start_time: 100
    ancestors: [A, B]
    epochs:
      - start_size: 50
        end_time: 0
`
	_, err := yamlio.Loads(doc)
	require.Error(t, err)
}
