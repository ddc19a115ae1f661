package shape

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestBoundingBoxOps(t *testing.T) {
	a := NewBoundingBox(0, 0, 2, 2)
	b := NewBoundingBox(1, -1, 3, 1)
	far := NewBoundingBox(10, 10, 11, 11)

	t.Run("merge", func(t *testing.T) {
		got := a.Merge(b)
		want := NewBoundingBox(0, -1, 3, 2)
		if got != want {
			t.Fatalf("merge = %+v, want %+v", got, want)
		}
		if !got.ContainsBox(a) || !got.ContainsBox(b) {
			t.Fatalf("merged box must contain both inputs")
		}
	})

	t.Run("contains", func(t *testing.T) {
		cases := []struct {
			name string
			p    cp.Vector
			want bool
		}{
			{"center", cp.Vector{X: 1, Y: 1}, true},
			{"corner", cp.Vector{X: 2, Y: 2}, true},
			{"outside_x", cp.Vector{X: 2.5, Y: 1}, false},
			{"outside_y", cp.Vector{X: 1, Y: -0.1}, false},
		}
		for _, c := range cases {
			if got := a.Contains(c.p); got != c.want {
				t.Fatalf("%s: Contains(%v) = %v, want %v", c.name, c.p, got, c.want)
			}
		}
	})

	t.Run("intersects", func(t *testing.T) {
		if !a.Intersects(b) || !b.Intersects(a) {
			t.Fatalf("overlapping boxes should intersect")
		}
		if a.Intersects(far) {
			t.Fatalf("disjoint boxes should not intersect")
		}
		touching := NewBoundingBox(2, 0, 4, 2)
		if !a.Intersects(touching) {
			t.Fatalf("boxes sharing an edge should intersect")
		}
	})

	t.Run("cp_roundtrip", func(t *testing.T) {
		bb := a.ToBB()
		if bb.L != 0 || bb.B != 0 || bb.R != 2 || bb.T != 2 {
			t.Fatalf("ToBB = %+v", bb)
		}
		if FromBB(bb) != a {
			t.Fatalf("FromBB(ToBB(a)) != a")
		}
	})

	t.Run("segment", func(t *testing.T) {
		if !a.IntersectsSegment(cp.Vector{X: -1, Y: 1}, cp.Vector{X: 3, Y: 1}) {
			t.Fatalf("segment through the box should intersect")
		}
		if a.IntersectsSegment(cp.Vector{X: -1, Y: 5}, cp.Vector{X: 3, Y: 5}) {
			t.Fatalf("segment above the box should not intersect")
		}
		if a.IntersectsSegment(cp.Vector{X: -3, Y: 1}, cp.Vector{X: -1, Y: 1}) {
			t.Fatalf("segment ending before the box should not intersect")
		}
		if !a.IntersectsSegment(cp.Vector{X: 1, Y: 1}, cp.Vector{X: 1.5, Y: 1.5}) {
			t.Fatalf("segment inside the box should intersect")
		}
		if !a.IntersectsSegment(cp.Vector{X: 2, Y: 3}, cp.Vector{X: 2, Y: -3}) {
			t.Fatalf("vertical segment along the edge should intersect")
		}
	})

	t.Run("contains_box", func(t *testing.T) {
		if !a.ContainsBox(NewBoundingBox(0.5, 0.5, 2, 2)) {
			t.Fatalf("box sharing edges should be contained")
		}
		if a.ContainsBox(b) {
			t.Fatalf("overlapping box should not be contained")
		}
	})
}

func TestBoundingBoxForCircle(t *testing.T) {
	got := BoundingBoxForCircle(cp.Vector{X: 1, Y: -2}, 3)
	if got != NewBoundingBox(-2, -5, 4, 1) {
		t.Fatalf("BoundingBoxForCircle = %+v", got)
	}
	if got.ToBB() != cp.NewBBForCircle(cp.Vector{X: 1, Y: -2}, 3) {
		t.Fatalf("box differs from cp.NewBBForCircle")
	}
}

func TestBoundingBoxForPoints(t *testing.T) {
	pts := []cp.Vector{{X: 1, Y: 5}, {X: -2, Y: 0}, {X: 3, Y: -1}}
	got := BoundingBoxForPoints(pts)
	want := NewBoundingBox(-2, -1, 3, 5)
	if got != want {
		t.Fatalf("BoundingBoxForPoints = %+v, want %+v", got, want)
	}
	if (BoundingBoxForPoints(nil) != BoundingBox{}) {
		t.Fatalf("empty input should give the zero box")
	}
	if got := want.Expand(1); got != NewBoundingBox(-3, -2, 4, 6) {
		t.Fatalf("Expand(1) = %+v", got)
	}
}
