package debugdraw

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/shape"
	"golang.org/x/image/colornames"
)

func mustShape(t *testing.T) func(*shape.Shape, error) *shape.Shape {
	return func(s *shape.Shape, err error) *shape.Shape {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}
		return s
	}
}

func TestOutline(t *testing.T) {
	ids := shape.NewIDAllocator()
	body := shape.FixedBody{P: cp.Vector{X: 10, Y: 20}, A: 0.4}
	cases := []struct {
		name  string
		s     *shape.Shape
		lines int
	}{
		{"circle", mustShape(t)(shape.NewCircle(ids, body, 5, cp.Vector{X: 1})), circleSteps + 1},
		{"thin_segment", mustShape(t)(shape.NewSegment(ids, body, cp.Vector{}, cp.Vector{X: 4}, 0)), 1},
		{"thick_segment", mustShape(t)(shape.NewSegment(ids, body, cp.Vector{}, cp.Vector{X: 4}, 2)), 2 + 2*circleSteps},
		{"box", mustShape(t)(shape.NewBox(ids, body, 4, 2)), 4},
		{"pentagon", mustShape(t)(shape.NewPoly(ids, body, []cp.Vector{
			{X: 0, Y: -7}, {X: 6.6, Y: -2.2}, {X: 4.1, Y: 5.7}, {X: -4.1, Y: 5.7}, {X: -6.6, Y: -2.2},
		}, cp.Vector{})), 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lines := Outline(c.s)
			if len(lines) != c.lines {
				t.Fatalf("len(Outline) = %d, want %d", len(lines), c.lines)
			}
			bb := c.s.CacheBB().Expand(1e-6)
			for _, l := range lines {
				if !bb.Contains(l.A) || !bb.Contains(l.B) {
					t.Fatalf("stroke %v leaves the bounding box %+v", l, bb)
				}
			}
		})
	}
}

func TestOutlineTracesSurface(t *testing.T) {
	ids := shape.NewIDAllocator()
	body := shape.FixedBody{P: cp.Vector{X: -3, Y: 2}, A: 1.1}
	shapes := []*shape.Shape{
		mustShape(t)(shape.NewBox(ids, body, 3, 5)),
		mustShape(t)(shape.NewSegment(ids, body, cp.Vector{X: -1}, cp.Vector{X: 2, Y: 1}, 0)),
	}
	for _, s := range shapes {
		for _, l := range Outline(s) {
			for _, p := range []cp.Vector{l.A, l.B} {
				if d := s.NearestPointQuery(p).Distance; math.Abs(d) > 1e-9 {
					t.Fatalf("%v stroke point %v is %v from the surface", s.Kind(), p, d)
				}
			}
		}
	}
}

func TestBoxLinesCloseLoop(t *testing.T) {
	lines := BoxLines(shape.NewBoundingBox(0, 0, 2, 1))
	for i, l := range lines {
		next := lines[(i+1)%len(lines)]
		if l.B != next.A {
			t.Fatalf("edge %d ends at %v, next starts at %v", i, l.B, next.A)
		}
	}
}

func TestShapeColor(t *testing.T) {
	ids := shape.NewIDAllocator()
	static := cp.NewStaticBody()
	kinematic := cp.NewKinematicBody()

	custom := mustShape(t)(shape.NewCircle(ids, kinematic, 1, cp.Vector{}))
	custom.SetUserData(color.Color(colornames.Teal))
	sensor := mustShape(t)(shape.NewCircle(ids, kinematic, 1, cp.Vector{}))
	sensor.SetSensor(true)

	cases := []struct {
		name string
		s    *shape.Shape
		want color.Color
	}{
		{"user_data", custom, colornames.Teal},
		{"sensor", sensor, colornames.Gold},
		{"static", mustShape(t)(shape.NewCircle(ids, static, 1, cp.Vector{})), colornames.Lightskyblue},
		{"kinematic", mustShape(t)(shape.NewCircle(ids, kinematic, 1, cp.Vector{})), colornames.Orchid},
		{"fixed", mustShape(t)(shape.NewCircle(ids, shape.FixedBody{}, 1, cp.Vector{})), colornames.Orchid},
		{"nil", nil, colornames.White},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ShapeColor(c.s); got != c.want {
				t.Fatalf("ShapeColor = %v, want %v", got, c.want)
			}
		})
	}
}
