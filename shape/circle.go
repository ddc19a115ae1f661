package shape

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Circle is a disk offset from the body origin.
type Circle struct {
	*Shape

	offset cp.Vector
	r      float64
}

// NewCircle builds a circle of the given radius centered at offset in body
// space. The radius must be positive.
func NewCircle(ids *IDAllocator, body Body, radius float64, offset cp.Vector) (*Shape, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := checkCircleRadius(radius); err != nil {
		return nil, err
	}
	circle := &Circle{offset: offset, r: radius}
	circle.Shape = newShape(ids, circle, body)
	return circle.Shape, nil
}

func checkCircleRadius(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("%w: circle radius %g must be positive", ErrInvalidGeometry, r)
	}
	return nil
}

func (*Circle) Kind() Kind {
	return KindCircle
}

func (c *Circle) Radius() float64 {
	return c.r
}

func (c *Circle) Offset() cp.Vector {
	return c.offset
}

// SetRadius changes the radius without refreshing the cached bounding box.
func (c *Circle) SetRadius(r float64) error {
	if err := checkCircleRadius(r); err != nil {
		return err
	}
	c.r = r
	return nil
}

// SetOffset moves the circle without refreshing the cached bounding box.
func (c *Circle) SetOffset(offset cp.Vector) {
	c.offset = offset
}

// Center returns the circle center in world space.
func (c *Circle) Center() cp.Vector {
	return bodyTransform(c.body).point(c.offset)
}

func (c *Circle) boundingBox(xf transform) BoundingBox {
	return BoundingBoxForCircle(xf.point(c.offset), c.r)
}

func (c *Circle) nearestPoint(xf transform, p cp.Vector) (cp.Vector, float64) {
	return nearestOnDisk(xf.point(c.offset), c.r, p)
}

func (c *Circle) segmentQuery(xf transform, a, b cp.Vector) (float64, cp.Vector, bool) {
	return circleSegmentQuery(xf.point(c.offset), c.r, a, b)
}

// nearestOnDisk returns the point on the circle's edge closest to p and the
// signed distance from p to the disk.
func nearestOnDisk(center cp.Vector, r float64, p cp.Vector) (cp.Vector, float64) {
	delta := p.Sub(center)
	d := delta.Length()
	dir := cp.Vector{X: 0, Y: 1}
	if d > 0 {
		dir = delta.Mult(1 / d)
	}
	return center.Add(dir.Mult(r)), d - r
}

// circleSegmentQuery intersects the segment a-b with a circle. Segments that
// start inside the circle do not hit.
func circleSegmentQuery(center cp.Vector, r float64, a, b cp.Vector) (float64, cp.Vector, bool) {
	da := a.Sub(center)
	db := b.Sub(center)

	qa := da.Dot(da) - 2*da.Dot(db) + db.Dot(db)
	qb := -2*da.Dot(da) + 2*da.Dot(db)
	qc := da.Dot(da) - r*r
	if qa == 0 {
		return 0, cp.Vector{}, false
	}

	det := qb*qb - 4*qa*qc
	if det < 0 {
		return 0, cp.Vector{}, false
	}
	t := (-qb - math.Sqrt(det)) / (2 * qa)
	if t < 0 || t > 1 {
		return 0, cp.Vector{}, false
	}
	return t, da.Lerp(db, t).Normalize(), true
}
