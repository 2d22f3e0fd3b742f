// Package navgraph builds a topological map of a robot's environment,
// one sensor report at a time, and answers the two questions exploration
// keeps asking: "where is the nearest place I haven't fully explored?"
// and "where is the nearest marked object?".
//
// 🚀 What is navgraph?
//
//	An in-memory waypoint graph for indoor exploration that brings together:
//		• Waypoint arena: dense ids, four cardinal links, O(1) lookup
//		• Spatial dedup: noisy reports of one place merge into one node (R-tree backed)
//		• Reciprocal links: every connection is kept consistent in both directions
//		• Frontier & object search: shortest path to the nearest matching waypoint
//
// ✨ Why choose navgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable ids, stable tie-breaking, reproducible paths
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – search takes any predicate over waypoints, not just the built-ins
//
// Under the hood, everything is organized under three subpackages:
//
//	waypoint/  — the Waypoint, Direction and Link types plus the arena Store
//	placement/ — merges sensor reports into the store and maintains links
//	pathfind/  — nearest-frontier / nearest-object shortest-path search
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3?
//
//	four placed waypoints; "?" marks an unexplored direction, so a frontier
//	search from 0 returns the path 0→1→3 (or 0→2→3, ties go to lower ids).
//
// Concurrency: the store performs no internal locking. Every operation runs
// to completion without I/O; callers that share one map across goroutines
// must serialize whole placements and searches themselves — a placement is
// a multi-step mutation and must not be observed half-done.
//
//	go get github.com/katalvlaran/navgraph
package navgraph
