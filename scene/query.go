package scene

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/shape"
)

// Pair is two shapes on different bodies whose cached boxes overlap and whose
// filters allow a contact.
type Pair struct {
	A, B *shape.Shape
	// Sensor is set when either shape is a sensor.
	Sensor bool
}

// CandidatePairs tests every pair of shapes against the boxes stored by the
// last CacheAll. Shapes sharing a body never pair.
func (sc *Scene) CandidatePairs() []Pair {
	var pairs []Pair
	for i, a := range sc.shapes {
		for _, b := range sc.shapes[i+1:] {
			if a.Body() == b.Body() {
				continue
			}
			if !a.RawBB().Intersects(b.RawBB()) {
				continue
			}
			if !shape.ShouldCollide(a.Filter(), b.Filter()) {
				continue
			}
			pairs = append(pairs, Pair{A: a, B: b, Sensor: a.Sensor() || b.Sensor()})
		}
	}
	return pairs
}

// PointQuery returns every shape containing p that the query filter may
// collide with.
func (sc *Scene) PointQuery(p cp.Vector, filter shape.Filter) []*shape.Shape {
	var hits []*shape.Shape
	for _, s := range sc.shapes {
		if !shape.ShouldCollide(filter, s.Filter()) {
			continue
		}
		if !s.RawBB().Contains(p) {
			continue
		}
		if s.PointQuery(p) {
			hits = append(hits, s)
		}
	}
	return hits
}

// NearestPointQuery returns the nearest point of every shape within maxDist
// of p.
func (sc *Scene) NearestPointQuery(p cp.Vector, maxDist float64, filter shape.Filter) []shape.NearestPointQueryInfo {
	var out []shape.NearestPointQueryInfo
	for _, s := range sc.shapes {
		if !shape.ShouldCollide(filter, s.Filter()) {
			continue
		}
		info := s.NearestPointQuery(p)
		if info.Distance <= maxDist {
			out = append(out, info)
		}
	}
	return out
}

// NearestPointQueryNearest returns the single closest shape within maxDist
// of p.
func (sc *Scene) NearestPointQueryNearest(p cp.Vector, maxDist float64, filter shape.Filter) (shape.NearestPointQueryInfo, bool) {
	best := shape.NearestPointQueryInfo{Distance: math.Inf(1)}
	found := false
	for _, info := range sc.NearestPointQuery(p, maxDist, filter) {
		if info.Distance < best.Distance {
			best = info
			found = true
		}
	}
	return best, found
}

// SegmentQuery returns every hit along a-b. Sensors are skipped.
func (sc *Scene) SegmentQuery(a, b cp.Vector, filter shape.Filter) []shape.SegmentQueryInfo {
	var out []shape.SegmentQueryInfo
	for _, s := range sc.shapes {
		if s.Sensor() || !shape.ShouldCollide(filter, s.Filter()) {
			continue
		}
		if !s.RawBB().IntersectsSegment(a, b) {
			continue
		}
		if info, ok := s.SegmentQuery(a, b); ok {
			out = append(out, info)
		}
	}
	return out
}

// SegmentQueryFirst returns the hit closest to a.
func (sc *Scene) SegmentQueryFirst(a, b cp.Vector, filter shape.Filter) (shape.SegmentQueryInfo, bool) {
	var (
		first shape.SegmentQueryInfo
		found bool
	)
	for _, info := range sc.SegmentQuery(a, b, filter) {
		if !found || info.T < first.T {
			first = info
			found = true
		}
	}
	return first, found
}
