package waypoint

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// R-tree geometry constants.
const (
	// indexDims is the dimensionality of the spatial index.
	indexDims = 2

	// pointExtent is the half-side of the degenerate rectangle standing in
	// for a waypoint position; rtreego rectangles need positive extent.
	pointExtent = 1e-9
)

// Blend weights applied when a repeated observation is smoothed into an
// existing waypoint: keep 30% of the stored coordinate, take 70% of the
// observation, per axis.
const (
	smoothKeep = 0.3
	smoothPull = 0.7
)

// entry wraps one waypoint position for R-tree storage.
type entry struct {
	id   ID
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// pointRect builds the index rectangle for position p.
func pointRect(p orb.Point) rtreego.Rect {
	return rtreego.Point{p[0], p[1]}.ToRect(pointExtent)
}

// Store owns the growing waypoint collection and is the single source of
// truth for spatial and topological state. Waypoints live in a dense arena
// slice indexed by ID; an R-tree over their positions narrows proximity
// queries to a handful of candidates. The arena is append-only: a waypoint
// is never deleted for the lifetime of a map.
//
// Store performs no internal locking; see the package documentation of
// navgraph for the serialization contract.
type Store struct {
	nodes   []Waypoint
	entries []*entry
	tree    *rtreego.Rtree
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{tree: rtreego.NewTree(indexDims, 25, 50)}
}

// Count returns the number of waypoints placed so far.
func (s *Store) Count() int { return len(s.nodes) }

// Contains reports whether id is a currently valid waypoint id.
func (s *Store) Contains(id ID) bool { return id >= 0 && int(id) < len(s.nodes) }

// Add appends a navigation waypoint at (x, y), seeding each direction
// Blocked when flagged and Unknown otherwise, and returns the new id.
func (s *Store) Add(x, y float64, blocked BlockedFlags) ID {
	w := Waypoint{Pos: orb.Point{x, y}}
	for _, d := range Directions {
		if blocked.at(d) {
			w.Links[d] = Blocked
		} else {
			w.Links[d] = Unknown
		}
	}

	return s.append(w)
}

// AddObject appends an object waypoint at (x, y) and returns the new id.
// Object waypoints occupy a terminal slot: all four directions Blocked.
func (s *Store) AddObject(x, y float64) ID {
	w := Waypoint{Pos: orb.Point{x, y}, HasObject: true}
	for _, d := range Directions {
		w.Links[d] = Blocked
	}

	return s.append(w)
}

// append assigns the next dense id, stores the waypoint, and indexes it.
func (s *Store) append(w Waypoint) ID {
	w.ID = ID(len(s.nodes))
	s.nodes = append(s.nodes, w)

	e := &entry{id: w.ID, rect: pointRect(w.Pos)}
	s.entries = append(s.entries, e)
	s.tree.Insert(e)

	return w.ID
}

// Get returns a copy of the waypoint with the given id.
// Returns ErrIDOutOfRange if id is not currently valid.
func (s *Store) Get(id ID) (Waypoint, error) {
	if !s.Contains(id) {
		return Waypoint{}, fmt.Errorf("%w: %d (store holds %d)", ErrIDOutOfRange, id, len(s.nodes))
	}

	return s.nodes[id], nil
}

// Connect links a to b in direction dir and b back to a in the opposite
// direction, so the reciprocity invariant between a and b holds after the
// one mutation. A slot that already pointed at a third waypoint is simply
// overwritten, and the displaced waypoint keeps its one-way link toward
// the rewired slot. Object placement relies on that: every origin that
// reported an object stays linked to it, even after the object's own slot
// was rewired to the latest origin.
// Returns ErrInvalidDirection for a non-cardinal dir and ErrIDOutOfRange
// when either endpoint is not a valid id; both are caller contract
// violations, and the store is left untouched.
func (s *Store) Connect(a ID, dir Direction, b ID) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if !s.Contains(a) {
		return fmt.Errorf("%w: %d (store holds %d)", ErrIDOutOfRange, a, len(s.nodes))
	}
	if !s.Contains(b) {
		return fmt.Errorf("%w: %d (store holds %d)", ErrIDOutOfRange, b, len(s.nodes))
	}

	s.nodes[a].Links[dir] = LinkTo(b)
	s.nodes[b].Links[dir.Opposite()] = LinkTo(a)

	return nil
}

// NearestWithin returns the id of the waypoint closest to (x, y), provided
// its distance is strictly below threshold; ties break to the lowest id.
// The R-tree narrows the scan to candidates inside the threshold box, and
// the exact squared-distance test runs on those candidates only, so the
// result is identical to a full scan of the arena.
func (s *Store) NearestWithin(x, y, threshold float64) (ID, bool) {
	if len(s.nodes) == 0 || threshold <= 0 {
		return 0, false
	}

	p := orb.Point{x, y}
	box := rtreego.Point{x, y}.ToRect(threshold)

	best := ID(-1)
	minDist := math.Inf(1)
	for _, c := range s.tree.SearchIntersect(box) {
		id := c.(*entry).id
		d := planar.DistanceSquared(p, s.nodes[id].Pos)
		if d < minDist || (d == minDist && id < best) {
			minDist = d
			best = id
		}
	}

	if best < 0 || minDist >= threshold*threshold {
		return 0, false
	}

	return best, true
}

// HasUnknownDirections reports whether the waypoint has at least one
// unexplored direction. Returns ErrIDOutOfRange for an invalid id.
func (s *Store) HasUnknownDirections(id ID) (bool, error) {
	if !s.Contains(id) {
		return false, fmt.Errorf("%w: %d (store holds %d)", ErrIDOutOfRange, id, len(s.nodes))
	}

	return s.nodes[id].HasUnknown(), nil
}

// Smooth blends the stored position of id toward an observed position:
// 30% of the stored coordinate plus 70% of the observation, per axis.
// The spatial index entry is refreshed to match the new position.
// Returns ErrIDOutOfRange for an invalid id.
func (s *Store) Smooth(id ID, x, y float64) error {
	if !s.Contains(id) {
		return fmt.Errorf("%w: %d (store holds %d)", ErrIDOutOfRange, id, len(s.nodes))
	}

	w := &s.nodes[id]
	w.Pos = orb.Point{
		smoothKeep*w.Pos[0] + smoothPull*x,
		smoothKeep*w.Pos[1] + smoothPull*y,
	}

	e := s.entries[id]
	s.tree.Delete(e)
	e.rect = pointRect(w.Pos)
	s.tree.Insert(e)

	return nil
}

// Waypoints returns a copy of the waypoint arena, ordered by id.
// Mutating the returned slice does not affect the store.
func (s *Store) Waypoints() []Waypoint {
	out := make([]Waypoint, len(s.nodes))
	copy(out, s.nodes)

	return out
}
