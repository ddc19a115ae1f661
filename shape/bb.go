package shape

import (
	"github.com/jakecoffman/cp"
)

// BoundingBox is an axis-aligned rectangle. Min is the lower-left corner and
// Max the upper-right corner. The set operations delegate to cp.BB.
type BoundingBox struct {
	Min cp.Vector
	Max cp.Vector
}

// NewBoundingBox returns the box spanning l..r horizontally and b..t vertically.
func NewBoundingBox(l, b, r, t float64) BoundingBox {
	return BoundingBox{Min: cp.Vector{X: l, Y: b}, Max: cp.Vector{X: r, Y: t}}
}

// BoundingBoxForCircle returns the box enclosing a circle.
func BoundingBoxForCircle(center cp.Vector, radius float64) BoundingBox {
	return FromBB(cp.NewBBForCircle(center, radius))
}

// BoundingBoxForPoints returns the tight box around pts. It returns the zero
// box when pts is empty.
func BoundingBoxForPoints(pts []cp.Vector) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{}
	}
	bb := cp.BB{L: pts[0].X, B: pts[0].Y, R: pts[0].X, T: pts[0].Y}
	for _, p := range pts[1:] {
		bb = bb.Expand(p)
	}
	return FromBB(bb)
}

// FromBB converts a Chipmunk box.
func FromBB(bb cp.BB) BoundingBox {
	return NewBoundingBox(bb.L, bb.B, bb.R, bb.T)
}

// ToBB converts the box to Chipmunk's representation.
func (bb BoundingBox) ToBB() cp.BB {
	return cp.BB{L: bb.Min.X, B: bb.Min.Y, R: bb.Max.X, T: bb.Max.Y}
}

// Merge returns the smallest box containing both bb and other.
func (bb BoundingBox) Merge(other BoundingBox) BoundingBox {
	return FromBB(bb.ToBB().Merge(other.ToBB()))
}

// Contains reports whether p lies inside or on the edge of the box.
func (bb BoundingBox) Contains(p cp.Vector) bool {
	return bb.ToBB().ContainsVect(p)
}

// ContainsBox reports whether other lies completely inside bb.
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	return bb.ToBB().Contains(other.ToBB())
}

// Intersects reports whether the two boxes overlap. Touching edges count.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.ToBB().Intersects(other.ToBB())
}

// Expand grows the box by r on every side. cp.BB.Expand grows toward a
// point instead, so the radius form is kept here.
func (bb BoundingBox) Expand(r float64) BoundingBox {
	return NewBoundingBox(bb.Min.X-r, bb.Min.Y-r, bb.Max.X+r, bb.Max.Y+r)
}

// IntersectsSegment reports whether the segment a-b touches the box.
func (bb BoundingBox) IntersectsSegment(a, b cp.Vector) bool {
	return bb.ToBB().IntersectsSegment(a, b)
}
