package yamlio

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demesvalue"
)

// graphToTree renders a resolved graph back into the generic
// map/slice/scalar shape graphFromTree consumes, so that
// Loads(AsYAMLString(g)) reproduces a graph structurally equal to g.
func graphToTree(g *demesgraph.Graph) tree {
	doc := tree{
		"time_units":      g.TimeUnits().String(),
		"generation_time": g.GenerationTime().Float64(),
	}
	if description, ok := g.Description(); ok {
		doc["description"] = description
	}
	if doi := g.DOI(); len(doi) > 0 {
		doc["doi"] = stringsToAny(doi)
	}
	if md := g.Metadata(); md != nil {
		doc["metadata"] = md.Tree()
	}

	demes := make([]interface{}, len(g.Demes()))
	for i, d := range g.Demes() {
		demes[i] = demeToTree(d)
	}
	doc["demes"] = demes

	migrations := make([]interface{}, len(g.Migrations()))
	for i, m := range g.Migrations() {
		migrations[i] = tree{
			"source":     m.Source(),
			"dest":       m.Dest(),
			"start_time": timeToAny(m.StartTime()),
			"end_time":   m.EndTime().Float64(),
			"rate":       m.Rate().Float64(),
		}
	}
	doc["migrations"] = migrations

	pulses := make([]interface{}, len(g.Pulses()))
	for i, p := range g.Pulses() {
		pulses[i] = tree{
			"sources":     stringsToAny(p.Sources()),
			"dest":        p.Dest(),
			"time":        p.Time().Float64(),
			"proportions": proportionsToAny(p.Proportions()),
		}
	}
	doc["pulses"] = pulses

	return doc
}

func demeToTree(d demesgraph.Deme) tree {
	dt := tree{
		"name":       d.Name(),
		"start_time": timeToAny(d.StartTime()),
	}
	if d.Description() != "" {
		dt["description"] = d.Description()
	}
	if len(d.Ancestors()) > 0 {
		dt["ancestors"] = stringsToAny(d.Ancestors())
		dt["proportions"] = proportionsToAny(d.Proportions())
	}
	epochs := make([]interface{}, len(d.Epochs()))
	for i, e := range d.Epochs() {
		epochs[i] = tree{
			"start_time":    timeToAny(e.StartTime()),
			"end_time":      e.EndTime().Float64(),
			"start_size":    e.StartSize().Float64(),
			"end_size":      e.EndSize().Float64(),
			"size_function": e.SizeFunction().String(),
			"cloning_rate":  e.CloningRate().Float64(),
			"selfing_rate":  e.SelfingRate().Float64(),
		}
	}
	dt["epochs"] = epochs
	return dt
}

func timeToAny(t demesvalue.Time) interface{} {
	if t.IsInfinite() {
		return "Infinity"
	}
	return t.Float64()
}

func stringsToAny(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func proportionsToAny(p []demesvalue.Proportion) []interface{} {
	out := make([]interface{}, len(p))
	for i, v := range p {
		out[i] = v.Float64()
	}
	return out
}
