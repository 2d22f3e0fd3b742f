// Package waypoint provides the navigation-map data model and the arena
// Store that owns it.
//
// What:
//
//   - Waypoint: one spatial location with four cardinal Link slots
//     (Unknown, Blocked, or a connected waypoint id) and an object marker.
//   - Store: dense append-only arena (id == position) plus an R-tree over
//     positions for proximity queries.
//   - Connect keeps links reciprocal: A→B in direction d implies B→A in
//     the opposite direction, immediately after every mutation. Rewiring
//     an occupied slot overwrites it; the displaced waypoint keeps its
//     one-way link (see Connect).
//
// Why:
//
//   - Exploration: repeated noisy reports of the same physical spot must
//     resolve to one graph node (NearestWithin is the dedup test).
//   - Navigation: frontier and object queries need O(1) id lookup and a
//     deterministic neighbor order.
//
// Complexity:
//
//   - Add / AddObject / Connect / Get: O(1) amortized (plus O(log V) index insert).
//   - NearestWithin: O(log V + k) for k candidates inside the threshold box.
//   - Waypoints snapshot: O(V).
//
// Errors:
//
//   - ErrIDOutOfRange: id outside the currently valid dense range.
//   - ErrInvalidDirection: direction outside the four cardinal values.
//
// The Store does no internal locking; callers serialize access (see the
// navgraph package documentation).
package waypoint
