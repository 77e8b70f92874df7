package forward

import (
	"github.com/katalvlaran/demes/demeserr"
	"github.com/katalvlaran/demes/demesvalue"
)

// DemeSizeAt is one sample yielded by DemeSizeHistory: the deme's size
// at a given point in the model, labelled by both backward time and
// forward generation.
type DemeSizeAt struct {
	Time        demesvalue.Time
	ForwardTime ForwardTime
	Size        demesvalue.CurrentSize
}

// DemeSizeHistory iterates one deme's parental size across every
// generation of the model, oldest to most recent. It owns a private
// clone of the engine it is built from, so driving the iterator never
// disturbs the caller's own engine.
type DemeSizeHistory struct {
	engine    *Engine
	demeIndex int
	iterator  *TimeIterator
}

// NewDemeSizeHistory clones e and prepares to iterate deme demeIndex's
// size across the whole model.
func NewDemeSizeHistory(e *Engine, demeIndex int) (*DemeSizeHistory, error) {
	if demeIndex < 0 || demeIndex >= e.Graph().NumDemes() {
		return nil, demeserr.New(demeserr.KindValue, "deme index %d out of range for %d demes", demeIndex, e.Graph().NumDemes())
	}
	clone, err := e.Clone()
	if err != nil {
		return nil, err
	}
	return &DemeSizeHistory{
		engine:    clone,
		demeIndex: demeIndex,
		iterator:  clone.Mapper().TimeIterator(nil),
	}, nil
}

// Next returns the next sample in the history, or ok=false once the
// model's generations are exhausted.
func (h *DemeSizeHistory) Next() (DemeSizeAt, bool, error) {
	ft, ok := h.iterator.Next()
	if !ok {
		return DemeSizeAt{}, false, nil
	}
	if err := h.engine.UpdateState(ft); err != nil {
		return DemeSizeAt{}, false, err
	}
	sizes, err := h.engine.ParentalDemeSizes()
	if err != nil {
		return DemeSizeAt{}, false, err
	}
	bt, ok := h.engine.Mapper().Convert(ft)
	if !ok {
		return DemeSizeAt{}, false, demeserr.New(demeserr.KindInternal,
			"time iterator yielded forward time %s outside the model's range", ft)
	}
	return DemeSizeAt{Time: bt, ForwardTime: ft, Size: sizes[h.demeIndex]}, true, nil
}
