package forward

import (
	"math"

	"github.com/katalvlaran/demes/demesgraph"
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// ForwardTime is a generation counter: 0 is the model's first generation,
// increasing forward into the present. Unlike demesvalue.Time it never
// represents an unbounded value; burn-in lengths and generation indices
// are both finite by construction.
type ForwardTime float64

// NewForwardTime validates v and returns a ForwardTime, or a ValueError
// if v is not finite or negative.
func NewForwardTime(v float64) (ForwardTime, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, demeserr.New(demeserr.KindValue, "forward time must be finite and >= 0, got %v", v)
	}
	return ForwardTime(v), nil
}

// Float64 returns the underlying value.
func (t ForwardTime) Float64() float64 { return float64(t) }

// String implements fmt.Stringer.
func (t ForwardTime) String() string { return formatFloatPublic(float64(t)) }

// TimeMapper is the single conversion point between a graph's backward
// time axis and the forward generation counter; downstream code never
// performs ad-hoc arithmetic between the two. It is immutable once built
// from a resolved graph and a burn-in length.
type TimeMapper struct {
	modelStartTime   demesvalue.Time
	modelDuration    float64
	burninGeneration float64
}

// NewTimeMapper computes the model's start time and duration from a
// resolved graph and pairs them with the requested burn-in length.
func NewTimeMapper(g *demesgraph.Graph, burnin ForwardTime) (*TimeMapper, error) {
	if g.NumDemes() == 0 {
		return nil, demeserr.New(demeserr.KindGraph, "cannot build a time mapper over a graph with no demes")
	}

	modelStartTime, err := modelStartTimeFromGraph(g)
	if err != nil {
		return nil, err
	}

	mostRecentDemeEnd := g.Demes()[0].EndTime()
	for _, d := range g.Demes()[1:] {
		if d.EndTime().Less(mostRecentDemeEnd) {
			mostRecentDemeEnd = d.EndTime()
		}
	}

	var modelDuration float64
	if mostRecentDemeEnd.Float64() > 0 {
		modelDuration = modelStartTime.Float64() - mostRecentDemeEnd.Float64()
	} else {
		modelDuration = modelStartTime.Float64()
	}

	return &TimeMapper{
		modelStartTime:   modelStartTime,
		modelDuration:    modelDuration,
		burninGeneration: burnin.Float64(),
	}, nil
}

// modelStartTimeFromGraph finds the deepest time at which anything in
// the model changes: 1 + the maximum over every deme's moment of first change
// (an infinite-start deme's first epoch's end_time, or a finite-start
// deme's start_time), every finite migration's start and end times, and
// every pulse's time. The +1 reserves a generation for the most ancient
// change to take effect.
func modelStartTimeFromGraph(g *demesgraph.Graph) (demesvalue.Time, error) {
	var times []float64
	for _, d := range g.Demes() {
		if d.StartTime().IsInfinite() {
			times = append(times, d.Epochs()[0].EndTime().Float64())
		} else {
			times = append(times, d.StartTime().Float64())
		}
	}
	for _, m := range g.Migrations() {
		if !m.StartTime().IsInfinite() {
			times = append(times, m.StartTime().Float64(), m.EndTime().Float64())
		}
	}
	for _, p := range g.Pulses() {
		times = append(times, p.Time().Float64())
	}
	if len(times) == 0 {
		return 0, demeserr.New(demeserr.KindInternal, "graph has no demes, migrations, or pulses to anchor model_start_time")
	}

	max := times[0]
	for _, t := range times[1:] {
		if t > max {
			max = t
		}
	}
	return demesvalue.NewTime(max + 1)
}

// ModelStartTime returns the deepest backward time at which the model
// begins.
func (tm *TimeMapper) ModelStartTime() demesvalue.Time { return tm.modelStartTime }

// ModelDuration returns the model's duration in generations, excluding burn-in.
func (tm *TimeMapper) ModelDuration() float64 { return tm.modelDuration }

// BurninGeneration returns the configured burn-in length in generations.
func (tm *TimeMapper) BurninGeneration() float64 { return tm.burninGeneration }

// Convert returns the backward Time corresponding to forward generation
// t, or ok=false when t lies at or beyond burnin+duration.
func (tm *TimeMapper) Convert(t ForwardTime) (bt demesvalue.Time, ok bool) {
	if t.Float64() >= tm.modelDuration+tm.burninGeneration {
		return 0, false
	}
	bt, err := demesvalue.NewTime(tm.burninGeneration + tm.modelDuration - 1 - t.Float64())
	if err != nil {
		return 0, false
	}
	return bt, true
}

// TimeIterator is a lazy, finite, forward-only sequence of generations.
// It is restartable only by constructing a fresh iterator from the
// TimeMapper.
type TimeIterator struct {
	current float64
	final   float64
}

// TimeIterator returns an iterator running from start (or 0 if nil) up
// to burnin+duration-1 inclusive.
func (tm *TimeMapper) TimeIterator(start *ForwardTime) *TimeIterator {
	current := -1.0
	if start != nil {
		current = start.Float64() - 1
	}
	return &TimeIterator{current: current, final: tm.burninGeneration + tm.modelDuration}
}

// Next advances the iterator, returning the next forward generation and
// true, or false once the sequence is exhausted.
func (it *TimeIterator) Next() (ForwardTime, bool) {
	if it.current < it.final-1 {
		it.current++
		return ForwardTime(it.current), true
	}
	return 0, false
}
