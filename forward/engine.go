package forward

import (
	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// engineState tracks the engine's Fresh/AtGeneration/Errored lifecycle.
type engineState int

const (
	stateFresh engineState = iota
	stateAtGeneration
	stateErrored
)

// Engine holds a resolved graph, its time mapper, and the mutable
// per-generation buffers that UpdateState overwrites in place. Buffers
// are sized once at construction; no allocation happens per generation.
// An Engine must not be shared across goroutines without
// external synchronisation; Clone produces an independent copy instead.
type Engine struct {
	graph  *demesgraph.Graph
	mapper *TimeMapper

	state           engineState
	lastTimeUpdated ForwardTime

	parentalSizes  []demesvalue.CurrentSize
	offspringSizes []demesvalue.CurrentSize
	haveOffspring  bool

	ancestry *SquareMatrix

	selfingRates []demesvalue.MigrationRate
	cloningRates []demesvalue.MigrationRate

	// pulseProportions caches each pulse's proportions as raw floats,
	// indexed like graph.Pulses(); sourceScratch/rateScratch are reused
	// when accumulating migrations, keeping UpdateState allocation-free.
	pulseProportions [][]float64
	sourceScratch    []int
	rateScratch      []float64
}

// NewEngine constructs a Fresh Engine over a resolved graph with the
// given burn-in length.
func NewEngine(g *demesgraph.Graph, burnin ForwardTime) (*Engine, error) {
	mapper, err := NewTimeMapper(g, burnin)
	if err != nil {
		return nil, err
	}
	n := g.NumDemes()
	pulseProportions := make([][]float64, len(g.Pulses()))
	for i, p := range g.Pulses() {
		props := make([]float64, len(p.Proportions()))
		for j, pr := range p.Proportions() {
			props[j] = pr.Float64()
		}
		pulseProportions[i] = props
	}
	return &Engine{
		graph:            g,
		mapper:           mapper,
		state:            stateFresh,
		parentalSizes:    make([]demesvalue.CurrentSize, n),
		offspringSizes:   make([]demesvalue.CurrentSize, n),
		ancestry:         NewSquareMatrix(n),
		selfingRates:     make([]demesvalue.MigrationRate, n),
		cloningRates:     make([]demesvalue.MigrationRate, n),
		pulseProportions: pulseProportions,
		sourceScratch:    make([]int, 0, len(g.Migrations())),
		rateScratch:      make([]float64, 0, len(g.Migrations())),
	}, nil
}

// Graph returns the engine's underlying resolved graph.
func (e *Engine) Graph() *demesgraph.Graph { return e.graph }

// Mapper returns the engine's time mapper.
func (e *Engine) Mapper() *TimeMapper { return e.mapper }

// UpdateState advances the engine to forward generation forwardT:
// parental and offspring sizes, ancestry proportions, selfing and
// cloning rates are all recomputed in place. A time outside the mapper's
// range poisons the engine with a TimeError; a size function producing
// an invalid size poisons it with an InvalidDemeSize error; any other
// downstream invariant violation poisons it with an InternalError.
func (e *Engine) UpdateState(forwardT ForwardTime) error {
	if e.state == stateErrored {
		return demeserr.New(demeserr.KindInternal, "engine is in the error state and must be discarded")
	}
	b, ok := e.mapper.Convert(forwardT)
	if !ok {
		e.state = stateErrored
		return demeserr.New(demeserr.KindTime, "forward time %s lies outside the model's range", forwardT)
	}

	if err := e.computeSizes(b, e.parentalSizes); err != nil {
		e.state = stateErrored
		return err
	}

	bMinus1Val := b.Float64() - 1
	e.haveOffspring = bMinus1Val >= 0 && e.anyDemeExtantAt(bMinus1Val)

	if e.haveOffspring {
		bMinus1, err := demesvalue.NewTime(bMinus1Val)
		if err != nil {
			e.state = stateErrored
			return demeserr.Wrap(demeserr.KindInternal, err, "failed to construct offspring-generation backward time")
		}
		if err := e.computeSizes(bMinus1, e.offspringSizes); err != nil {
			e.state = stateErrored
			return err
		}
		if err := e.updateAncestryProportions(b, bMinus1); err != nil {
			e.state = stateErrored
			return err
		}
		e.updateRates(bMinus1)
	} else {
		for i := range e.offspringSizes {
			e.offspringSizes[i] = 0
		}
		e.ancestry.SetIdentity()
		for i := range e.selfingRates {
			e.selfingRates[i] = 0
			e.cloningRates[i] = 0
		}
	}

	e.lastTimeUpdated = forwardT
	e.state = stateAtGeneration
	return nil
}

// anyDemeExtantAt reports whether any deme's existence interval
// [end_time, start_time] contains t.
func (e *Engine) anyDemeExtantAt(t float64) bool {
	for _, d := range e.graph.Demes() {
		if t <= d.StartTime().Float64() && t >= d.EndTime().Float64() {
			return true
		}
	}
	return false
}

// computeSizes fills out with each deme's size at backward time t,
// applying the epoch's size function, or 0 for a deme not extant at t.
func (e *Engine) computeSizes(t demesvalue.Time, out []demesvalue.CurrentSize) error {
	for i, d := range e.graph.Demes() {
		found := false
		for _, ep := range d.Epochs() {
			if ep.Contains(t) {
				sz, err := ep.SizeAt(t)
				if err != nil {
					return err
				}
				out[i] = sz
				found = true
				break
			}
		}
		if !found {
			out[i] = demesvalue.CurrentSize(0)
		}
	}
	return nil
}

// updateAncestryProportions rebuilds the ancestry matrix at parental
// backward time b. A deme's row starts at zero when b lies outside the
// deme's [end_time, start_time] span, takes its declared ancestor
// proportions when b equals the deme's start_time (the generation whose
// offspring are the deme's first cohort), and is self-identity
// otherwise; pulses and then continuous migrations active at bMinus1
// are applied on top via the scale-and-add rule.
func (e *Engine) updateAncestryProportions(b, bMinus1 demesvalue.Time) error {
	n := e.graph.NumDemes()
	for i, d := range e.graph.Demes() {
		row := e.ancestry.Row(i)
		for j := 0; j < n; j++ {
			row[j] = 0
		}
		if d.StartTime().Less(b) || b.Less(d.EndTime()) {
			continue
		}
		if len(d.AncestorIndexes()) > 0 && d.StartTime().Equal(b) {
			for k, ancestorIdx := range d.AncestorIndexes() {
				row[ancestorIdx] = d.Proportions()[k].Float64()
			}
		} else {
			row[i] = 1
		}
	}

	for i, p := range e.graph.Pulses() {
		if !p.Time().Equal(bMinus1) {
			continue
		}
		if err := e.ancestry.applyProportions(p.DestIndex(), p.SourceIndexes(), e.pulseProportions[i]); err != nil {
			return err
		}
	}

	for destIdx := 0; destIdx < n; destIdx++ {
		sources := e.sourceScratch[:0]
		rates := e.rateScratch[:0]
		for _, m := range e.graph.Migrations() {
			if m.DestIndex() == destIdx && m.ActiveAt(bMinus1) {
				sources = append(sources, m.SourceIndex())
				rates = append(rates, m.Rate().Float64())
			}
		}
		if len(sources) == 0 {
			continue
		}
		if err := e.ancestry.applyProportions(destIdx, sources, rates); err != nil {
			return err
		}
	}
	return nil
}

// updateRates records each offspring deme's selfing and cloning rate
// from the epoch containing bMinus1; a deme
// not extant at bMinus1 gets a rate of 0.
func (e *Engine) updateRates(bMinus1 demesvalue.Time) {
	for i, d := range e.graph.Demes() {
		found := false
		for _, ep := range d.Epochs() {
			if ep.Contains(bMinus1) {
				e.selfingRates[i] = ep.SelfingRate()
				e.cloningRates[i] = ep.CloningRate()
				found = true
				break
			}
		}
		if !found {
			e.selfingRates[i] = 0
			e.cloningRates[i] = 0
		}
	}
}

// requireAtGeneration guards every query accessor: only AtGeneration
// permits them.
func (e *Engine) requireAtGeneration() error {
	if e.state != stateAtGeneration {
		return demeserr.New(demeserr.KindInternal, "engine has no current generation: call UpdateState successfully first")
	}
	return nil
}

// LastTimeUpdated returns the last forward generation successfully
// applied, and whether the engine is currently in the AtGeneration state.
func (e *Engine) LastTimeUpdated() (ForwardTime, bool) {
	return e.lastTimeUpdated, e.state == stateAtGeneration
}

// ParentalDemeSizes returns each deme's size at the current generation's
// backward time.
func (e *Engine) ParentalDemeSizes() ([]demesvalue.CurrentSize, error) {
	if err := e.requireAtGeneration(); err != nil {
		return nil, err
	}
	return append([]demesvalue.CurrentSize(nil), e.parentalSizes...), nil
}

// OffspringDemeSizes returns each deme's size one generation more recent
// than the parental generation, or ok=false on the terminal generation.
func (e *Engine) OffspringDemeSizes() (sizes []demesvalue.CurrentSize, ok bool, err error) {
	if err := e.requireAtGeneration(); err != nil {
		return nil, false, err
	}
	if !e.haveOffspring {
		return nil, false, nil
	}
	return append([]demesvalue.CurrentSize(nil), e.offspringSizes...), true, nil
}

// SelfingRates returns each offspring deme's selfing rate.
func (e *Engine) SelfingRates() ([]demesvalue.MigrationRate, error) {
	if err := e.requireAtGeneration(); err != nil {
		return nil, err
	}
	return append([]demesvalue.MigrationRate(nil), e.selfingRates...), nil
}

// CloningRates returns each offspring deme's cloning rate.
func (e *Engine) CloningRates() ([]demesvalue.MigrationRate, error) {
	if err := e.requireAtGeneration(); err != nil {
		return nil, err
	}
	return append([]demesvalue.MigrationRate(nil), e.cloningRates...), nil
}

// AnyExtantParentDemes reports whether at least one deme has a non-zero
// parental size at the current generation.
func (e *Engine) AnyExtantParentDemes() (bool, error) {
	if err := e.requireAtGeneration(); err != nil {
		return false, err
	}
	for _, s := range e.parentalSizes {
		if s.IsExtant() {
			return true, nil
		}
	}
	return false, nil
}

// AnyExtantOffspringDemes reports whether at least one deme has a
// non-zero offspring size at the current generation.
func (e *Engine) AnyExtantOffspringDemes() (bool, error) {
	if err := e.requireAtGeneration(); err != nil {
		return false, err
	}
	if !e.haveOffspring {
		return false, nil
	}
	for _, s := range e.offspringSizes {
		if s.IsExtant() {
			return true, nil
		}
	}
	return false, nil
}

// AncestryProportions returns the current ancestry-proportion matrix.
// The returned matrix aliases the engine's internal buffer and is only
// valid until the next UpdateState call.
func (e *Engine) AncestryProportions() (*SquareMatrix, error) {
	if err := e.requireAtGeneration(); err != nil {
		return nil, err
	}
	return e.ancestry, nil
}

// Clone produces an independent Engine sharing the same graph and
// mapper but with its own buffers, re-baselined via UpdateState(0) since
// the source engine may have already been advanced.
func (e *Engine) Clone() (*Engine, error) {
	clone, err := NewEngine(e.graph, ForwardTime(e.mapper.BurninGeneration()))
	if err != nil {
		return nil, err
	}
	clone.mapper = e.mapper
	zero, err := NewForwardTime(0)
	if err != nil {
		return nil, err
	}
	if err := clone.UpdateState(zero); err != nil {
		return nil, err
	}
	return clone, nil
}
