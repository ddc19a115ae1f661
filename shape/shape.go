package shape

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var (
	// ErrInvalidGeometry is returned when a constructor or mutator is given
	// geometry the shape cannot represent.
	ErrInvalidGeometry = errors.New("shape: invalid geometry")
	// ErrNilBody is returned when a shape would be left without a body.
	ErrNilBody = errors.New("shape: nil body")
)

// Kind discriminates the concrete shape classes.
type Kind int

const (
	KindCircle Kind = iota
	KindSegment
	KindPoly
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSegment:
		return "segment"
	case KindPoly:
		return "poly"
	default:
		return "unknown"
	}
}

// Class is the per-variant geometry behind a Shape. All methods work in
// world space given the body transform and never mutate the class.
type Class interface {
	Kind() Kind
	boundingBox(xf transform) BoundingBox
	nearestPoint(xf transform, p cp.Vector) (closest cp.Vector, dist float64)
	segmentQuery(xf transform, a, b cp.Vector) (t float64, n cp.Vector, ok bool)
}

// Shape is a collision primitive attached to a body. The material, filter
// and user data fields are shared by every class.
type Shape struct {
	Class Class

	id   ID
	body Body
	bb   BoundingBox

	elasticity      float64
	friction        float64
	surfaceVelocity cp.Vector
	collisionType   cp.CollisionType
	filter          Filter

	userData interface{}
}

func newShape(ids *IDAllocator, class Class, body Body) *Shape {
	if ids == nil {
		ids = DefaultIDs
	}
	return &Shape{
		Class:  class,
		id:     ids.Next(),
		body:   body,
		filter: DefaultFilter(),
	}
}

func (s *Shape) ID() ID {
	return s.id
}

func (s *Shape) Kind() Kind {
	return s.Class.Kind()
}

func (s *Shape) Body() Body {
	return s.body
}

// SetBody moves the shape to another body. Neither body is told about the
// change.
func (s *Shape) SetBody(body Body) error {
	if body == nil {
		return ErrNilBody
	}
	s.body = body
	return nil
}

func (s *Shape) Elasticity() float64 {
	return s.elasticity
}

// SetElasticity stores e as given; negative values are not rejected.
func (s *Shape) SetElasticity(e float64) {
	s.elasticity = e
}

func (s *Shape) Friction() float64 {
	return s.friction
}

// SetFriction stores u as given; negative values are not rejected.
func (s *Shape) SetFriction(u float64) {
	s.friction = u
}

func (s *Shape) SurfaceVelocity() cp.Vector {
	return s.surfaceVelocity
}

func (s *Shape) SetSurfaceVelocity(v cp.Vector) {
	s.surfaceVelocity = v
}

func (s *Shape) CollisionType() cp.CollisionType {
	return s.collisionType
}

func (s *Shape) SetCollisionType(t cp.CollisionType) {
	s.collisionType = t
}

func (s *Shape) Filter() Filter {
	return s.filter
}

func (s *Shape) SetFilter(f Filter) {
	s.filter = f
}

func (s *Shape) Group() Group {
	return s.filter.Group
}

func (s *Shape) SetGroup(g Group) {
	s.filter.Group = g
}

func (s *Shape) Layers() Layers {
	return s.filter.Layers
}

func (s *Shape) SetLayers(l Layers) {
	s.filter.Layers = l
}

func (s *Shape) Sensor() bool {
	return s.filter.Sensor
}

func (s *Shape) SetSensor(sensor bool) {
	s.filter.Sensor = sensor
}

func (s *Shape) UserData() interface{} {
	return s.userData
}

func (s *Shape) SetUserData(data interface{}) {
	s.userData = data
}

// CacheBB recomputes the world-space bounding box from the current geometry
// and body transform, stores it and returns it.
func (s *Shape) CacheBB() BoundingBox {
	s.bb = s.Class.boundingBox(bodyTransform(s.body))
	return s.bb
}

// RawBB returns the box stored by the last CacheBB call. Geometry mutators do
// not refresh it.
func (s *Shape) RawBB() BoundingBox {
	return s.bb
}

// Circle returns the circle class, or nil for other kinds.
func (s *Shape) Circle() *Circle {
	c, _ := s.Class.(*Circle)
	return c
}

// Segment returns the segment class, or nil for other kinds.
func (s *Shape) Segment() *Segment {
	seg, _ := s.Class.(*Segment)
	return seg
}

// Poly returns the polygon class, or nil for other kinds.
func (s *Shape) Poly() *Poly {
	p, _ := s.Class.(*Poly)
	return p
}
