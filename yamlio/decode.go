package yamlio

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesunresolved"
)

// graphFromTree walks a decoded YAML/JSON document into an
// demesunresolved.Graph, the shape demesresolve.Resolve expects.
func graphFromTree(doc tree) (*demesunresolved.Graph, error) {
	units, err := parseTimeUnits(doc)
	if err != nil {
		return nil, err
	}
	generationTime, err := optionalGenerationTime(doc, "generation_time")
	if err != nil {
		return nil, err
	}
	description, err := optionalString(doc, "description")
	if err != nil {
		return nil, err
	}
	doi, err := stringSlice(doc, "doi")
	if err != nil {
		return nil, err
	}
	defaults, err := parseDefaults(subTree(doc, "defaults"))
	if err != nil {
		return nil, err
	}

	demeList, ok := field(doc, "demes")
	if !ok {
		return nil, demeserr.New(demeserr.KindGraph, "graph has no demes")
	}
	demeTrees, ok := asSlice(demeList)
	if !ok {
		return nil, demeserr.New(demeserr.KindGraph, "\"demes\" must be a list")
	}
	demes := make([]demesunresolved.Deme, len(demeTrees))
	for i, raw := range demeTrees {
		dt, ok := asTree(raw)
		if !ok {
			return nil, demeserr.New(demeserr.KindDeme, "demes[%d]: expected a mapping, got %T", i, raw)
		}
		d, derr := parseDeme(dt)
		if derr != nil {
			return nil, derr
		}
		demes[i] = d
	}

	migrationTrees, err := treeSlice(doc, "migrations")
	if err != nil {
		return nil, err
	}
	migrations := make([]demesunresolved.Migration, len(migrationTrees))
	for i, mt := range migrationTrees {
		m, merr := parseMigration(mt)
		if merr != nil {
			return nil, merr
		}
		migrations[i] = m
	}

	pulseTrees, err := treeSlice(doc, "pulses")
	if err != nil {
		return nil, err
	}
	pulses := make([]demesunresolved.Pulse, len(pulseTrees))
	for i, pt := range pulseTrees {
		p, perr := parsePulse(pt)
		if perr != nil {
			return nil, perr
		}
		pulses[i] = p
	}

	g := &demesunresolved.Graph{
		TimeUnits:      units,
		GenerationTime: generationTime,
		DOI:            doi,
		Defaults:       defaults,
		Demes:          demes,
		Migrations:     migrations,
		Pulses:         pulses,
	}
	if description != nil {
		g.Description = *description
	}
	if metadata, ok := field(doc, "metadata"); ok {
		g.Metadata = metadata
	}
	return g, nil
}

func treeSlice(doc tree, key string) ([]tree, error) {
	v, ok := field(doc, key)
	if !ok {
		return nil, nil
	}
	raw, ok := asSlice(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a list, got %T", key, v)
	}
	out := make([]tree, len(raw))
	for i, item := range raw {
		t, ok := asTree(item)
		if !ok {
			return nil, demeserr.New(demeserr.KindValue, "field %q[%d]: expected a mapping, got %T", key, i, item)
		}
		out[i] = t
	}
	return out, nil
}

func parseTimeUnits(doc tree) (demesgraph.TimeUnits, error) {
	v, ok := field(doc, "time_units")
	if !ok {
		return demesgraph.Generations, nil
	}
	s, ok := toString(v)
	if !ok {
		return 0, demeserr.New(demeserr.KindGraph, "field \"time_units\": expected a string, got %T", v)
	}
	switch s {
	case "generations":
		return demesgraph.Generations, nil
	case "years":
		return demesgraph.Years, nil
	default:
		return 0, demeserr.New(demeserr.KindGraph, "field \"time_units\": unrecognised unit %q", s)
	}
}

func parseSizeFunction(doc tree, key string) (*demesgraph.SizeFunction, error) {
	v, ok := field(doc, key)
	if !ok {
		return nil, nil
	}
	s, ok := toString(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindEpoch, "field %q: expected a string, got %T", key, v)
	}
	var sf demesgraph.SizeFunction
	switch s {
	case "constant":
		sf = demesgraph.Constant
	case "linear":
		sf = demesgraph.Linear
	case "exponential":
		sf = demesgraph.Exponential
	default:
		return nil, demeserr.New(demeserr.KindEpoch, "field %q: unrecognised size_function %q", key, s)
	}
	return &sf, nil
}

func parseEpoch(t tree) (demesunresolved.Epoch, error) {
	var e demesunresolved.Epoch
	var err error
	if e.EndTime, err = optionalTime(t, "end_time"); err != nil {
		return e, err
	}
	if e.StartTime, err = optionalTime(t, "start_time"); err != nil {
		return e, err
	}
	if e.StartSize, err = optionalDemeSize(t, "start_size"); err != nil {
		return e, err
	}
	if e.EndSize, err = optionalDemeSize(t, "end_size"); err != nil {
		return e, err
	}
	if e.SizeFunction, err = parseSizeFunction(t, "size_function"); err != nil {
		return e, err
	}
	if e.CloningRate, err = optionalMigrationRate(t, "cloning_rate"); err != nil {
		return e, err
	}
	if e.SelfingRate, err = optionalMigrationRate(t, "selfing_rate"); err != nil {
		return e, err
	}
	return e, nil
}

func parseDeme(t tree) (demesunresolved.Deme, error) {
	var d demesunresolved.Deme
	name, err := requiredString(t, "name")
	if err != nil {
		return d, err
	}
	d.Name = name

	if d.History.Description, err = optionalString(t, "description"); err != nil {
		return d, err
	}
	if d.History.StartTime, err = optionalTime(t, "start_time"); err != nil {
		return d, err
	}
	if d.History.Ancestors, err = stringSlice(t, "ancestors"); err != nil {
		return d, err
	}
	if d.History.Proportions, err = proportionSlice(t, "proportions"); err != nil {
		return d, err
	}

	epochTrees, err := treeSlice(t, "epochs")
	if err != nil {
		return d, err
	}
	d.Epochs = make([]demesunresolved.Epoch, len(epochTrees))
	for i, et := range epochTrees {
		ep, eerr := parseEpoch(et)
		if eerr != nil {
			return d, eerr
		}
		d.Epochs[i] = ep
	}

	if dt := subTree(t, "defaults"); dt != nil {
		epochDefaults, eerr := parseEpoch(subTree(dt, "epoch"))
		if eerr != nil {
			return d, eerr
		}
		d.Defaults = &demesunresolved.DemeLevelDefaults{Epoch: epochDefaults}
	}

	return d, nil
}

func parseMigration(t tree) (demesunresolved.Migration, error) {
	var m demesunresolved.Migration
	var err error
	if m.Demes, err = stringSlice(t, "demes"); err != nil {
		return m, err
	}
	if m.Source, err = optionalString(t, "source"); err != nil {
		return m, err
	}
	if m.Dest, err = optionalString(t, "dest"); err != nil {
		return m, err
	}
	if m.StartTime, err = optionalTime(t, "start_time"); err != nil {
		return m, err
	}
	if m.EndTime, err = optionalTime(t, "end_time"); err != nil {
		return m, err
	}
	if m.Rate, err = optionalMigrationRate(t, "rate"); err != nil {
		return m, err
	}
	return m, nil
}

func parsePulse(t tree) (demesunresolved.Pulse, error) {
	var p demesunresolved.Pulse
	var err error
	if p.Sources, err = stringSlice(t, "sources"); err != nil {
		return p, err
	}
	if p.Dest, err = optionalString(t, "dest"); err != nil {
		return p, err
	}
	if p.Time, err = optionalTime(t, "time"); err != nil {
		return p, err
	}
	if p.Proportions, err = proportionSlice(t, "proportions"); err != nil {
		return p, err
	}
	return p, nil
}

func parseDefaults(t tree) (demesunresolved.Defaults, error) {
	var d demesunresolved.Defaults
	var err error
	if d.Epoch, err = parseEpoch(subTree(t, "epoch")); err != nil {
		return d, err
	}
	if d.Migration, err = parseMigration(subTree(t, "migration")); err != nil {
		return d, err
	}
	if d.Pulse, err = parsePulse(subTree(t, "pulse")); err != nil {
		return d, err
	}

	demeDefaults := subTree(t, "deme")
	if d.Deme.Description, err = optionalString(demeDefaults, "description"); err != nil {
		return d, err
	}
	if d.Deme.StartTime, err = optionalTime(demeDefaults, "start_time"); err != nil {
		return d, err
	}
	if d.Deme.Ancestors, err = stringSlice(demeDefaults, "ancestors"); err != nil {
		return d, err
	}
	if d.Deme.Proportions, err = proportionSlice(demeDefaults, "proportions"); err != nil {
		return d, err
	}
	return d, nil
}
