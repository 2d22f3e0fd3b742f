// Package placement is the write path of the navigation map: it converts
// sensor reports into waypoint-store mutations.
//
// What:
//
//   - PlaceWaypoint: merge a location report into a nearby waypoint, or
//     create a new one and link it to the waypoint it was discovered from.
//   - PlaceObject: same for detected objects; object waypoints are terminal
//     (all four directions Blocked) and are always linked from their
//     discovering waypoint, even when an existing object is reused.
//   - Optional position smoothing: a merged waypoint's estimate drifts 70%
//     toward each new observation, keeping 30% of the prior value.
//
// Why:
//
//   - Merge-by-proximity is what turns noisy, repeated reports of the same
//     physical place into a single graph node.
//   - The blend lets the position estimate improve with more observations
//     without discarding prior information abruptly.
//
// Options:
//
//   - WithDedupThreshold(t): merge distance, must be positive.
//   - WithPositionSmoothing(on): enable the 30/70 blend (off by default).
//
// Errors:
//
//   - ErrStoreNil: New was given a nil store.
//   - ErrOptionViolation: an option carried an invalid value.
//   - waypoint.ErrIDOutOfRange / waypoint.ErrInvalidDirection: a report
//     named an origin or direction that violates the caller contract;
//     surfaced immediately, never logged-and-ignored.
package placement
