// Package pathfind answers the two recurring navigation queries of an
// exploring robot: the shortest path to the nearest frontier (a waypoint
// with an unexplored direction) and to the nearest detected object.
//
// The engine is a label-correcting breadth-first relaxation over the
// waypoint graph, with step costs equal to the squared straight-line
// distance between neighbors. A waypoint is finalized the first time it is
// popped from the FIFO queue and never relaxed again. On the orthogonal
// grids this map produces, step costs are uniform and the first
// finalization is already optimal; the order is kept verbatim (rather than
// swapped for a priority queue) because callers depend on its tie-breaking.
package pathfind

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/navgraph/waypoint"
)

// none marks an unset predecessor and an empty scan result.
const none = waypoint.ID(-1)

// ToNearest computes the path from `from` to the nearest waypoint matching
// the predicate, nearest by cumulative squared step distance, ties broken
// by lowest id. The returned sequence runs from `from` to the target
// inclusive; `from` itself matching yields a one-element path. When no
// reachable waypoint matches, ToNearest returns a nil path and a nil
// error: an exhausted search is an expected outcome of exploration, not a
// failure.
func ToNearest(s *waypoint.Store, from waypoint.ID, match Predicate) ([]waypoint.ID, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	if match == nil {
		return nil, ErrNilPredicate
	}
	if !s.Contains(from) {
		return nil, fmt.Errorf("%w: %d (store holds %d)", ErrStartOutOfRange, from, s.Count())
	}

	sr := newSearcher(s.Waypoints(), from)
	sr.relax()

	target := sr.nearestMatch(match)
	if target == none {
		return nil, nil
	}

	return sr.pathTo(from, target), nil
}

// NearestFrontier returns the path from `from` to the nearest waypoint
// with at least one unexplored direction, or nil when the map has none.
func NearestFrontier(s *waypoint.Store, from waypoint.ID) ([]waypoint.ID, error) {
	return ToNearest(s, from, Frontier)
}

// NearestObject returns the path from `from` to the nearest object
// waypoint, or nil when the map has none.
func NearestObject(s *waypoint.Store, from waypoint.ID) ([]waypoint.ID, error) {
	return ToNearest(s, from, Object)
}

// searcher encapsulates the mutable relaxation state over one waypoint
// snapshot. Indices into every slice are waypoint ids.
type searcher struct {
	nodes   []waypoint.Waypoint
	dist    []float64
	prev    []waypoint.ID
	visited []bool
	queue   []waypoint.ID
}

// newSearcher seeds the state: all distances infinite except the start at 0,
// no predecessors, the start alone in the queue.
func newSearcher(nodes []waypoint.Waypoint, from waypoint.ID) *searcher {
	n := len(nodes)
	sr := &searcher{
		nodes:   nodes,
		dist:    make([]float64, n),
		prev:    make([]waypoint.ID, n),
		visited: make([]bool, n),
		queue:   make([]waypoint.ID, 0, n),
	}
	for i := range sr.dist {
		sr.dist[i] = math.Inf(1)
		sr.prev[i] = none
	}
	sr.dist[from] = 0
	sr.queue = append(sr.queue, from)

	return sr
}

// relax drains the FIFO queue. Already-visited pops are discarded; a fresh
// pop is marked visited and its connected neighbors relaxed in canonical
// direction order. A neighbor may sit in the queue several times before
// its first (and only) visit.
func (sr *searcher) relax() {
	for len(sr.queue) > 0 {
		id := sr.queue[0]
		sr.queue = sr.queue[1:]

		if sr.visited[id] {
			continue
		}
		sr.visited[id] = true

		for _, d := range waypoint.Directions {
			l := sr.nodes[id].Links[d]
			if !l.Connected() {
				continue
			}
			sr.relaxEdge(id, l.Target())
		}
	}
}

// relaxEdge updates the tentative distance of next via cur, re-queueing
// next on improvement.
func (sr *searcher) relaxEdge(cur, next waypoint.ID) {
	d := sr.dist[cur] + planar.DistanceSquared(sr.nodes[cur].Pos, sr.nodes[next].Pos)
	if d < sr.dist[next] {
		sr.dist[next] = d
		sr.prev[next] = cur
		sr.queue = append(sr.queue, next)
	}
}

// nearestMatch scans all waypoints for the matching one with the minimum
// finite distance. The strict comparison keeps the lowest matching id on
// ties. Returns none when nothing reachable matches.
func (sr *searcher) nearestMatch(match Predicate) waypoint.ID {
	best := none
	minDist := math.Inf(1)
	for i := range sr.nodes {
		if match(sr.nodes[i]) && sr.dist[i] < minDist {
			minDist = sr.dist[i]
			best = waypoint.ID(i)
		}
	}

	return best
}

// pathTo walks predecessor links from target back to from, then reverses
// into a from→target sequence. target must have a finite distance.
func (sr *searcher) pathTo(from, target waypoint.ID) []waypoint.ID {
	path := []waypoint.ID{target}
	for cur := target; cur != from; {
		cur = sr.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
