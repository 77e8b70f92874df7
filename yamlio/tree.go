package yamlio

import (
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// tree is the generic shape both the YAML and JSON decoders produce when
// asked to decode into interface{}: mapping nodes become
// map[string]interface{}, sequences become []interface{}.
type tree = map[string]interface{}

func asTree(v interface{}) (tree, bool) {
	t, ok := v.(tree)
	return t, ok
}

func asSlice(v interface{}) ([]interface{}, bool) {
	s, ok := v.([]interface{})
	return s, ok
}

// field looks up key in t, treating both "absent" and an explicit null
// as not-provided.
func field(t tree, key string) (interface{}, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func subTree(t tree, key string) tree {
	v, ok := field(t, key)
	if !ok {
		return nil
	}
	sub, _ := asTree(v)
	return sub
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func optionalString(t tree, key string) (*string, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	s, ok := toString(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a string, got %T", key, v)
	}
	return &s, nil
}

func requiredString(t tree, key string) (string, error) {
	v, ok := field(t, key)
	if !ok {
		return "", demeserr.New(demeserr.KindValue, "field %q is required", key)
	}
	s, ok := toString(v)
	if !ok {
		return "", demeserr.New(demeserr.KindValue, "field %q: expected a string, got %T", key, v)
	}
	return s, nil
}

func stringSlice(t tree, key string) ([]string, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	raw, ok := asSlice(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a list, got %T", key, v)
	}
	out := make([]string, len(raw))
	for i, item := range raw {
		s, ok := toString(item)
		if !ok {
			return nil, demeserr.New(demeserr.KindValue, "field %q[%d]: expected a string, got %T", key, i, item)
		}
		out[i] = s
	}
	return out, nil
}

// optionalTime parses a time-valued field, which may be a bare number, a
// YAML ".inf"/"-.inf" scalar (already resolved to float64 by the YAML
// decoder), or the string "Infinity" (the JSON rewrite of a null
// start_time, and an accepted YAML spelling besides).
func optionalTime(t tree, key string) (*demesvalue.Time, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	if s, ok := toString(v); ok {
		switch s {
		case "Infinity", ".inf", "+.inf", "Inf", "inf":
			inf := demesvalue.PositiveInfinity
			return &inf, nil
		default:
			return nil, demeserr.New(demeserr.KindValue, "field %q: unrecognised time value %q", key, s)
		}
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a number or \"Infinity\", got %T", key, v)
	}
	tm, err := demesvalue.NewTime(f)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func optionalDemeSize(t tree, key string) (*demesvalue.DemeSize, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a number, got %T", key, v)
	}
	sz, err := demesvalue.NewDemeSize(f)
	if err != nil {
		return nil, err
	}
	return &sz, nil
}

func optionalMigrationRate(t tree, key string) (*demesvalue.MigrationRate, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a number, got %T", key, v)
	}
	r, err := demesvalue.NewMigrationRate(f)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func optionalGenerationTime(t tree, key string) (*demesvalue.GenerationTime, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a number, got %T", key, v)
	}
	g, err := demesvalue.NewGenerationTime(f)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func proportionSlice(t tree, key string) ([]demesvalue.Proportion, error) {
	v, ok := field(t, key)
	if !ok {
		return nil, nil
	}
	raw, ok := asSlice(v)
	if !ok {
		return nil, demeserr.New(demeserr.KindValue, "field %q: expected a list, got %T", key, v)
	}
	out := make([]demesvalue.Proportion, len(raw))
	for i, item := range raw {
		f, ok := toFloat(item)
		if !ok {
			return nil, demeserr.New(demeserr.KindValue, "field %q[%d]: expected a number, got %T", key, i, item)
		}
		p, err := demesvalue.NewProportion(f)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
