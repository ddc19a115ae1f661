package shape

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Segment is a line segment with an optional thickness, a capsule when the
// radius is non-zero.
type Segment struct {
	*Shape

	a, b, n cp.Vector
	r       float64
}

// NewSegment builds a segment from a to b in body space. The endpoints must
// differ and the radius must not be negative.
func NewSegment(ids *IDAllocator, body Body, a, b cp.Vector, radius float64) (*Shape, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := checkEndpoints(a, b); err != nil {
		return nil, err
	}
	if err := checkSegmentRadius(radius); err != nil {
		return nil, err
	}
	seg := &Segment{a: a, b: b, n: segmentNormal(a, b), r: radius}
	seg.Shape = newShape(ids, seg, body)
	return seg.Shape, nil
}

func checkEndpoints(a, b cp.Vector) error {
	if a == b {
		return fmt.Errorf("%w: segment endpoints coincide at (%g, %g)", ErrInvalidGeometry, a.X, a.Y)
	}
	return nil
}

func checkSegmentRadius(r float64) error {
	if !(r >= 0) {
		return fmt.Errorf("%w: segment radius %g is negative", ErrInvalidGeometry, r)
	}
	return nil
}

// segmentNormal is b-a rotated by +90 degrees, normalized.
func segmentNormal(a, b cp.Vector) cp.Vector {
	return b.Sub(a).Normalize().Perp()
}

func (*Segment) Kind() Kind {
	return KindSegment
}

func (seg *Segment) A() cp.Vector {
	return seg.a
}

func (seg *Segment) B() cp.Vector {
	return seg.b
}

func (seg *Segment) Radius() float64 {
	return seg.r
}

// Normal returns the body-space unit normal.
func (seg *Segment) Normal() cp.Vector {
	return seg.n
}

// WorldEndpoints returns both endpoints and the normal transformed by the
// body.
func (seg *Segment) WorldEndpoints() (a, b, n cp.Vector) {
	xf := bodyTransform(seg.body)
	return xf.point(seg.a), xf.point(seg.b), xf.vect(seg.n)
}

// SetEndpoints replaces both endpoints without refreshing the cached bounding
// box.
func (seg *Segment) SetEndpoints(a, b cp.Vector) error {
	if err := checkEndpoints(a, b); err != nil {
		return err
	}
	seg.a = a
	seg.b = b
	seg.n = segmentNormal(a, b)
	return nil
}

// SetRadius changes the thickness without refreshing the cached bounding box.
func (seg *Segment) SetRadius(r float64) error {
	if err := checkSegmentRadius(r); err != nil {
		return err
	}
	seg.r = r
	return nil
}

func (seg *Segment) boundingBox(xf transform) BoundingBox {
	ta := xf.point(seg.a)
	tb := xf.point(seg.b)
	return BoundingBoxForPoints([]cp.Vector{ta, tb}).Expand(seg.r)
}

func (seg *Segment) nearestPoint(xf transform, p cp.Vector) (cp.Vector, float64) {
	closest := p.ClosestPointOnSegment(xf.point(seg.a), xf.point(seg.b))
	delta := p.Sub(closest)
	d := delta.Length()
	if d == 0 {
		return closest, -seg.r
	}
	return closest.Add(delta.Mult(seg.r / d)), d - seg.r
}

func (seg *Segment) segmentQuery(xf transform, a, b cp.Vector) (float64, cp.Vector, bool) {
	// A ray starting inside the thickness never reports its exit.
	if _, d := seg.nearestPoint(xf, a); d < 0 {
		return 0, cp.Vector{}, false
	}

	ta := xf.point(seg.a)
	tb := xf.point(seg.b)
	n := xf.vect(seg.n)
	r := seg.r

	d := ta.Sub(a).Dot(n)
	flipped := n
	if d > 0 {
		flipped = n.Neg()
	}
	// Endpoints relative to a, pushed out by the thickness toward a.
	offset := flipped.Mult(r).Sub(a)
	segA := ta.Add(offset)
	segB := tb.Add(offset)
	delta := b.Sub(a)

	if delta.Cross(segA)*delta.Cross(segB) <= 0 {
		dOffset := d + r
		if d > 0 {
			dOffset = d - r
		}
		ad := -dOffset
		bd := delta.Dot(n) - dOffset
		if ad*bd < 0 {
			return ad / (ad - bd), flipped, true
		}
		return 0, cp.Vector{}, false
	}
	if r == 0 {
		return 0, cp.Vector{}, false
	}

	// Missed the flat sides, try the rounded caps.
	t1, n1, ok1 := circleSegmentQuery(ta, r, a, b)
	t2, n2, ok2 := circleSegmentQuery(tb, r, a, b)
	switch {
	case ok1 && (!ok2 || t1 < t2):
		return t1, n1, true
	case ok2:
		return t2, n2, true
	}
	return 0, cp.Vector{}, false
}
