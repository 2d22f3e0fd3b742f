// Package pathfind implements nearest-match shortest-path search over the
// waypoint graph.
//
// What:
//
//   - ToNearest: shared label-correcting relaxation, parameterized by a
//     Predicate over waypoints; returns the ordered id path from the start
//     to the nearest match, or nil when nothing reachable matches.
//   - NearestFrontier / NearestObject: the two thin wrappers exploration
//     controllers actually call.
//
// Why:
//
//   - "Where is the nearest place I haven't fully explored?" drives the
//     exploration loop; "where is the nearest marked object?" drives
//     retrieval runs. Both are the same search with a different predicate.
//
// Complexity:
//
//   - Relaxation: O(V + E) pops and edge relaxations on uniform grids
//     (a node may be re-queued while unvisited, so worst case exceeds this
//     on irregular metric graphs).
//   - Match scan + path reconstruction: O(V).
//
// Errors:
//
//   - ErrStoreNil: nil store pointer.
//   - ErrStartOutOfRange: start id is not a valid waypoint.
//   - ErrNilPredicate: nil predicate.
//   - An empty search result is not an error: the path is nil, err is nil.
//
// The relaxation finalizes each waypoint on its first pop instead of
// processing in strict cost order. That is exact when the graph is a tree
// or all step costs are equal — the typical orthogonal grid this system
// produces — and it is preserved verbatim because consumers depend on its
// tie-breaking.
package pathfind
