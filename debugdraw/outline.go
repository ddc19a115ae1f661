package debugdraw

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/shape"
)

// circleSteps is the number of line segments used to approximate a circle.
const circleSteps = 20

// Line is a single stroke in world space.
type Line struct {
	A, B cp.Vector
}

// Outline returns the strokes that trace s at its body's current transform.
func Outline(s *shape.Shape) []Line {
	switch s.Kind() {
	case shape.KindCircle:
		c := s.Circle()
		center := c.Center()
		lines := circleLines(center, c.Radius())
		// angle indicator
		tip := center.Add(cp.ForAngle(s.Body().Angle()).Mult(c.Radius()))
		return append(lines, Line{A: center, B: tip})
	case shape.KindSegment:
		return segmentLines(s)
	case shape.KindPoly:
		verts := s.Poly().WorldVertices()
		lines := make([]Line, len(verts))
		for i := range verts {
			lines[i] = Line{A: verts[i], B: verts[(i+1)%len(verts)]}
		}
		return lines
	}
	return nil
}

func circleLines(center cp.Vector, radius float64) []Line {
	lines := make([]Line, 0, circleSteps)
	prev := cp.Vector{X: center.X + radius, Y: center.Y}
	for i := 1; i <= circleSteps; i++ {
		th := float64(i) * (2 * math.Pi / float64(circleSteps))
		cur := cp.Vector{X: center.X + math.Cos(th)*radius, Y: center.Y + math.Sin(th)*radius}
		lines = append(lines, Line{A: prev, B: cur})
		prev = cur
	}
	return lines
}

func segmentLines(s *shape.Shape) []Line {
	seg := s.Segment()
	a, b, n := seg.WorldEndpoints()
	r := seg.Radius()
	if r == 0 {
		return []Line{{A: a, B: b}}
	}

	n = n.Mult(r)
	lines := []Line{
		{A: a.Add(n), B: b.Add(n)},
		{A: a.Sub(n), B: b.Sub(n)},
	}
	lines = append(lines, circleLines(a, r)...)
	return append(lines, circleLines(b, r)...)
}

// BoxLines returns the four edges of bb.
func BoxLines(bb shape.BoundingBox) []Line {
	lb := bb.Min
	rt := bb.Max
	lt := cp.Vector{X: lb.X, Y: rt.Y}
	rb := cp.Vector{X: rt.X, Y: lb.Y}
	return []Line{{A: lb, B: lt}, {A: lt, B: rt}, {A: rt, B: rb}, {A: rb, B: lb}}
}

// CrossLines returns a small plus sign centered on p.
func CrossLines(p cp.Vector, size float64) []Line {
	l := size / 2
	return []Line{
		{A: cp.Vector{X: p.X - l, Y: p.Y}, B: cp.Vector{X: p.X + l, Y: p.Y}},
		{A: cp.Vector{X: p.X, Y: p.Y - l}, B: cp.Vector{X: p.X, Y: p.Y + l}},
	}
}
