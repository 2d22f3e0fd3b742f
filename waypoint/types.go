// Package waypoint defines the navigation-map data model — waypoints,
// cardinal directions, per-direction link states — and the sentinel errors
// shared by every store operation.
package waypoint

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Sentinel errors for waypoint store operations.
var (
	// ErrIDOutOfRange indicates a waypoint id outside the currently valid set.
	ErrIDOutOfRange = errors.New("waypoint: id out of range")

	// ErrInvalidDirection indicates a direction outside the four cardinal values.
	ErrInvalidDirection = errors.New("waypoint: direction out of range")
)

// ID identifies a waypoint. IDs are dense: assigned sequentially from 0,
// never reused, and doubling as positions in the store's arena, so lookup
// by id is O(1) and reciprocity checks never chase pointers.
type ID int

// Direction is one of the four cardinal connection slots of a waypoint.
type Direction int

// Cardinal directions, in canonical order.
const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the number of cardinal connection slots per waypoint.
const NumDirections = 4

// Directions lists the cardinal values in North, East, South, West order.
// Traversals iterate this array so neighbor order stays deterministic.
var Directions = [NumDirections]Direction{North, East, South, West}

// Valid reports whether d is one of the four cardinal values.
func (d Direction) Valid() bool { return d >= North && d <= West }

// Opposite returns the reverse direction: North↔South, East↔West.
// Only meaningful for valid directions.
func (d Direction) Opposite() Direction { return (d + 2) % NumDirections }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Link is the state of one directional slot: Unknown, Blocked, or the id
// of the connected waypoint (any non-negative value).
type Link int

const (
	// Unknown marks a direction that has not been explored yet.
	Unknown Link = -1

	// Blocked marks an explored direction with no passage.
	Blocked Link = -2
)

// LinkTo returns a Link connected to id.
func LinkTo(id ID) Link { return Link(id) }

// Connected reports whether l points at a waypoint.
func (l Link) Connected() bool { return l >= 0 }

// Target returns the waypoint id l points at.
// Only meaningful when Connected reports true.
func (l Link) Target() ID { return ID(l) }

// String implements fmt.Stringer.
func (l Link) String() string {
	switch {
	case l == Unknown:
		return "Unknown"
	case l == Blocked:
		return "Blocked"
	default:
		return fmt.Sprintf("Link(%d)", int(l))
	}
}

// BlockedFlags records which directions a sensor report saw as walls.
// A flagged direction seeds a Blocked link; an unflagged one seeds Unknown.
type BlockedFlags struct {
	North, East, South, West bool
}

// AllBlocked returns the flag set used for object waypoints, which occupy
// a terminal, non-traversable slot.
func AllBlocked() BlockedFlags {
	return BlockedFlags{North: true, East: true, South: true, West: true}
}

// at returns the flag for direction d. d must be valid.
func (b BlockedFlags) at(d Direction) bool {
	switch d {
	case North:
		return b.North
	case East:
		return b.East
	case South:
		return b.South
	default:
		return b.West
	}
}

// Waypoint is a node of the navigation graph: one spatial location in the
// explored environment, with up to four cardinal connections.
type Waypoint struct {
	// ID is the waypoint's stable identifier and arena position.
	ID ID

	// Pos holds the planar coordinates, in the caller's unit and frame.
	Pos orb.Point

	// Links holds the per-direction state, indexed by Direction.
	Links [NumDirections]Link

	// HasObject marks a waypoint that represents a detected object.
	HasObject bool
}

// X returns the planar x coordinate.
func (w Waypoint) X() float64 { return w.Pos[0] }

// Y returns the planar y coordinate.
func (w Waypoint) Y() float64 { return w.Pos[1] }

// Link returns the state of direction d. d must be valid.
func (w Waypoint) Link(d Direction) Link { return w.Links[d] }

// HasUnknown reports whether at least one direction is unexplored.
// Such a waypoint is a frontier: exploration can still grow the map there.
func (w Waypoint) HasUnknown() bool {
	for _, l := range w.Links {
		if l == Unknown {
			return true
		}
	}

	return false
}
