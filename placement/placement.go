// Package placement turns per-waypoint sensor reports into graph structure:
// it merges reports that land near an existing waypoint, creates new
// waypoints otherwise, and maintains the directional links between the
// originating waypoint and the new or merged one.
package placement

import (
	"fmt"

	"github.com/katalvlaran/navgraph/waypoint"
)

// Engine is the placement front of a waypoint.Store. Both entry points are
// idempotent under repeated identical reports: reports against the same
// physical spot converge on one waypoint instead of creating duplicates.
type Engine struct {
	store *waypoint.Store
	opts  Options
}

// New returns an Engine over store, applying any number of functional
// Options. Returns ErrStoreNil for a nil store and ErrOptionViolation for
// bad options.
func New(store *waypoint.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{store: store, opts: o}, nil
}

// Reload re-applies options on a live engine, starting from its current
// settings. The threshold and the smoothing flag are the runtime-tunable
// knobs; an ErrOptionViolation leaves the current settings in place.
func (e *Engine) Reload(opts ...Option) error {
	o := e.opts
	o.err = nil
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	e.opts = o

	return nil
}

// DedupThreshold returns the active merge distance.
func (e *Engine) DedupThreshold() float64 { return e.opts.DedupThreshold }

// SmoothPositions reports whether merge smoothing is active.
func (e *Engine) SmoothPositions() bool { return e.opts.SmoothPositions }

// Nearby returns the waypoint within the dedup threshold of (x, y), if any.
func (e *Engine) Nearby(x, y float64) (waypoint.Waypoint, bool) {
	id, ok := e.store.NearestWithin(x, y, e.opts.DedupThreshold)
	if !ok {
		return waypoint.Waypoint{}, false
	}
	w, _ := e.store.Get(id)

	return w, true
}

// PlaceWaypoint records one location report. A report within the dedup
// threshold of an existing waypoint merges into it (optionally smoothing
// its position) with no link mutation; otherwise a new waypoint is created
// and, unless it is the very first waypoint of the map, connected to origin
// in direction dir. Returns the id the report resolved to.
//
// When a connect will occur, origin and dir are validated before the store
// grows, so a contract violation never leaves a half-placed waypoint.
func (e *Engine) PlaceWaypoint(x, y float64, blocked waypoint.BlockedFlags, origin waypoint.ID, dir waypoint.Direction) (waypoint.ID, error) {
	if id, ok := e.store.NearestWithin(x, y, e.opts.DedupThreshold); ok {
		return id, e.smooth(id, x, y)
	}

	linking := e.store.Count() > 0
	if linking {
		if err := e.checkLink(origin, dir); err != nil {
			return 0, err
		}
	}

	id := e.store.Add(x, y, blocked)
	if linking {
		if err := e.store.Connect(origin, dir, id); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// PlaceObject records one object report. An object waypoint within the
// dedup threshold of (objX, objY) is reused (optionally smoothing its
// position); a nearby navigation waypoint does not count, since an object
// may legitimately coincide with one. Otherwise a fresh object waypoint is
// created, terminal on all four sides. Either way the result is connected
// to origin in direction objDir: an object is always linked from its
// discovering waypoint, even on reuse.
func (e *Engine) PlaceObject(origin waypoint.ID, objX, objY float64, objDir waypoint.Direction) (waypoint.ID, error) {
	if err := e.checkLink(origin, objDir); err != nil {
		return 0, err
	}

	id, reuse := e.nearbyObject(objX, objY)
	if reuse {
		if err := e.smooth(id, objX, objY); err != nil {
			return 0, err
		}
	} else {
		id = e.store.AddObject(objX, objY)
	}

	if err := e.store.Connect(origin, objDir, id); err != nil {
		return 0, err
	}

	return id, nil
}

// checkLink validates the caller-supplied origin and direction of a
// pending connect.
func (e *Engine) checkLink(origin waypoint.ID, dir waypoint.Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", waypoint.ErrInvalidDirection, int(dir))
	}
	if !e.store.Contains(origin) {
		return fmt.Errorf("%w: origin %d (store holds %d)", waypoint.ErrIDOutOfRange, origin, e.store.Count())
	}

	return nil
}

// smooth applies the position blend to id when smoothing is enabled.
func (e *Engine) smooth(id waypoint.ID, x, y float64) error {
	if !e.opts.SmoothPositions {
		return nil
	}

	return e.store.Smooth(id, x, y)
}

// nearbyObject reports whether an object waypoint already sits within the
// dedup threshold of (x, y).
func (e *Engine) nearbyObject(x, y float64) (waypoint.ID, bool) {
	id, ok := e.store.NearestWithin(x, y, e.opts.DedupThreshold)
	if !ok {
		return 0, false
	}
	w, _ := e.store.Get(id)

	return id, w.HasObject
}
