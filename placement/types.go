// Package placement defines tunable options and error definitions for the
// report-placement engine.
package placement

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine construction and configuration.
var (
	// ErrStoreNil is returned if a nil store pointer is passed to New.
	ErrStoreNil = errors.New("placement: store is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")
)

// DefaultDedupThreshold is the default merge distance between two reports,
// in the caller's coordinate unit. Tune it to roughly half the distance the
// robot travels between consecutive waypoint reports.
const DefaultDedupThreshold = 0.25

// Option configures the engine via functional arguments. An invalid Option
// (e.g. a non-positive threshold) is recorded internally and surfaced as
// ErrOptionViolation by New or Reload.
type Option func(*Options)

// Options holds the placement parameters.
type Options struct {
	// DedupThreshold is the maximum distance at which two reports are
	// considered the same physical waypoint. Must be positive.
	DedupThreshold float64

	// SmoothPositions enables the position blend on merge: a merged
	// waypoint keeps 30% of its stored coordinate and takes 70% of the
	// new observation. When false, a position never changes after creation.
	SmoothPositions bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - DedupThreshold = DefaultDedupThreshold
//   - smoothing disabled
func DefaultOptions() Options {
	return Options{DedupThreshold: DefaultDedupThreshold}
}

// WithDedupThreshold sets the merge distance.
//
//	t > 0:  use t
//	t <= 0: invalid option → ErrOptionViolation
func WithDedupThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: DedupThreshold must be positive (%g)", ErrOptionViolation, t)
			return
		}
		o.DedupThreshold = t
	}
}

// WithPositionSmoothing toggles the 30/70 position blend on merge.
func WithPositionSmoothing(enabled bool) Option {
	return func(o *Options) { o.SmoothPositions = enabled }
}
