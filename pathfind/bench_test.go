package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/navgraph/pathfind"
	"github.com/katalvlaran/navgraph/waypoint"
)

// BenchmarkNearestFrontier_Corridor measures search along a corridor of N
// waypoints with the single frontier at the far end.
func BenchmarkNearestFrontier_Corridor(b *testing.B) {
	const N = 10000

	s := waypoint.NewStore()
	// Every corridor node walls off North/South; the East slot of the far
	// end stays Unknown, leaving exactly one frontier.
	prev := s.Add(0, 0, waypoint.BlockedFlags{North: true, South: true, West: true})
	for i := 1; i < N; i++ {
		next := s.Add(float64(i), 0, waypoint.BlockedFlags{North: true, South: true})
		if err := s.Connect(prev, waypoint.East, next); err != nil {
			b.Fatal(err)
		}
		prev = next
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pathfind.NearestFrontier(s, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNearestObject_Grid measures search over a W×H orthogonal grid
// with one object in the far corner.
func BenchmarkNearestObject_Grid(b *testing.B) {
	const W, H = 100, 100

	s := waypoint.NewStore()
	ids := make([]waypoint.ID, 0, W*H)
	for y := 0; y < H; y++ {
		for x := 0; x < W; x++ {
			ids = append(ids, s.Add(float64(x), float64(y), waypoint.AllBlocked()))
		}
	}
	for y := 0; y < H; y++ {
		for x := 0; x < W; x++ {
			if x+1 < W {
				if err := s.Connect(ids[y*W+x], waypoint.East, ids[y*W+x+1]); err != nil {
					b.Fatal(err)
				}
			}
			if y+1 < H {
				if err := s.Connect(ids[y*W+x], waypoint.North, ids[(y+1)*W+x]); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	obj := s.AddObject(W-1, H)
	if err := s.Connect(ids[len(ids)-1], waypoint.North, obj); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pathfind.NearestObject(s, 0); err != nil {
			b.Fatal(err)
		}
	}
}
