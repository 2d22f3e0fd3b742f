// Package pathfind provides tunable predicates and error definitions for
// nearest-match search over a waypoint.Store.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/navgraph/waypoint"
)

// Sentinel errors for search execution.
var (
	// ErrStoreNil is returned if a nil store pointer is passed.
	ErrStoreNil = errors.New("pathfind: store is nil")

	// ErrStartOutOfRange is returned when the start id is not a valid waypoint.
	ErrStartOutOfRange = errors.New("pathfind: start id out of range")

	// ErrNilPredicate is returned when ToNearest is given a nil predicate.
	ErrNilPredicate = errors.New("pathfind: predicate is nil")
)

// Predicate classifies a waypoint as a search target.
// It must not mutate the store; it is evaluated once per waypoint after
// the relaxation phase.
type Predicate func(w waypoint.Waypoint) bool

// Frontier matches waypoints with at least one unexplored direction.
func Frontier(w waypoint.Waypoint) bool { return w.HasUnknown() }

// Object matches waypoints that represent a detected object.
func Object(w waypoint.Waypoint) bool { return w.HasObject }
