package demeserr

import (
	"errors"
	"fmt"
)

// Kind classifies the offending entity for a resolution or traversal error.
type Kind int

const (
	// KindValue marks a scalar domain violation (out-of-range, non-finite, wrong sign).
	KindValue Kind = iota
	// KindDeme marks a deme-level violation (ancestors, proportions, start_time inference).
	KindDeme
	// KindEpoch marks an epoch-level violation (chain contiguity, size-function mismatch).
	KindEpoch
	// KindMigration marks an asymmetric or symmetric migration violation.
	KindMigration
	// KindPulse marks a pulse violation (proportions, source/dest existence).
	KindPulse
	// KindGraph marks a top-level graph violation (time units, empty deme list).
	KindGraph
	// KindYAML wraps a decode/encode error from the YAML text form.
	KindYAML
	// KindJSON wraps a decode/encode error from the JSON text form.
	KindJSON
	// KindTime marks a forward-time conversion failure (time outside the model's range).
	KindTime
	// KindInvalidDemeSize marks a size produced by a size function that is not finite >= 0.
	KindInvalidDemeSize
	// KindInternal marks a broken invariant inside the traversal engine; always a bug.
	KindInternal
)

// String renders a Kind as the tag used in error messages.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "ValueError"
	case KindDeme:
		return "DemeError"
	case KindEpoch:
		return "EpochError"
	case KindMigration:
		return "MigrationError"
	case KindPulse:
		return "PulseError"
	case KindGraph:
		return "GraphError"
	case KindYAML:
		return "YamlError"
	case KindJSON:
		return "JsonError"
	case KindTime:
		return "TimeError"
	case KindInvalidDemeSize:
		return "InvalidDemeSize"
	case KindInternal:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type returned by every package in this module.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional wrapped cause, e.g. a codec decode error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, demeserr.ErrEpoch) works without callers needing to know
// about *Error at all.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*sentinelError)
	if !ok {
		return false
	}
	return e.Kind == sentinel.kind
}

// sentinelError is the package-level marker checked via errors.Is.
type sentinelError struct {
	kind Kind
}

func (s *sentinelError) Error() string { return s.kind.String() }

// Sentinels for errors.Is comparisons, one per Kind.
var (
	ErrValue           error = &sentinelError{KindValue}
	ErrDeme            error = &sentinelError{KindDeme}
	ErrEpoch           error = &sentinelError{KindEpoch}
	ErrMigration       error = &sentinelError{KindMigration}
	ErrPulse           error = &sentinelError{KindPulse}
	ErrGraph           error = &sentinelError{KindGraph}
	ErrYAML            error = &sentinelError{KindYAML}
	ErrJSON            error = &sentinelError{KindJSON}
	ErrTime            error = &sentinelError{KindTime}
	ErrInvalidDemeSize error = &sentinelError{KindInvalidDemeSize}
	ErrInternal        error = &sentinelError{KindInternal}
)

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around an existing cause,
// preserving it for errors.As/errors.Unwrap.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Is is a package-level convenience identical to errors.Is(err, sentinel)
// for callers that prefer demeserr.Is(err, demeserr.KindEpoch).
func Is(err error, kind Kind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
