package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Gazetteer is a read-only POI name to coordinate lookup. It is never written
// after construction, so it is safe for concurrent use without locking.
type Gazetteer interface {
	Lookup(name string) (orb.Point, bool)
	Len() int
}

type staticGazetteer struct {
	points map[string]orb.Point
}

// NewGazetteer copies entries so later changes to the input map are not observed.
func NewGazetteer(entries map[string]orb.Point) Gazetteer {
	points := make(map[string]orb.Point, len(entries))
	for name, p := range entries {
		points[name] = p
	}
	return &staticGazetteer{points: points}
}

// NewDefaultGazetteer returns the built-in table of common POIs (GCJ-02, lng/lat).
func NewDefaultGazetteer() Gazetteer {
	return NewGazetteer(defaultPOICoords)
}

// Lookup matches by exact name only.
func (g *staticGazetteer) Lookup(name string) (orb.Point, bool) {
	if name == "" {
		return orb.Point{}, false
	}
	p, ok := g.points[name]
	return p, ok
}

func (g *staticGazetteer) Len() int {
	return len(g.points)
}

// PathLengthKm is the geodesic length of the polyline through points, rounded to 0.1 km.
func PathLengthKm(points []orb.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	meters := 0.0
	for i := 1; i < len(points); i++ {
		meters += geo.Distance(points[i-1], points[i])
	}
	return math.Round(meters/100) / 10
}
