package waypoint_test

import (
	"fmt"

	"github.com/katalvlaran/navgraph/waypoint"
)

// ExampleStore_Connect shows the reciprocity invariant: one Connect call
// wires both directions.
func ExampleStore_Connect() {
	s := waypoint.NewStore()
	a := s.Add(0, 0, waypoint.BlockedFlags{})
	b := s.Add(0, 1, waypoint.BlockedFlags{})

	if err := s.Connect(a, waypoint.North, b); err != nil {
		fmt.Println("error:", err)
		return
	}

	wa, _ := s.Get(a)
	wb, _ := s.Get(b)
	fmt.Println(wa.Link(waypoint.North), wb.Link(waypoint.South))
	// Output:
	// Link(1) Link(0)
}

// ExampleStore_NearestWithin shows the strict dedup test.
func ExampleStore_NearestWithin() {
	s := waypoint.NewStore()
	s.Add(0, 0, waypoint.BlockedFlags{})
	s.Add(3, 4, waypoint.BlockedFlags{})

	id, ok := s.NearestWithin(0.1, 0.1, 0.25)
	fmt.Println(id, ok)

	_, ok = s.NearestWithin(1.5, 2, 0.25)
	fmt.Println(ok)
	// Output:
	// 0 true
	// false
}
