package shape

import "github.com/jakecoffman/cp"

// Body supplies the world transform of the rigid body a shape is attached to.
// *cp.Body satisfies it.
type Body interface {
	Position() cp.Vector
	Angle() float64
}

// FixedBody is a Body that never moves.
type FixedBody struct {
	P cp.Vector
	A float64
}

func (b FixedBody) Position() cp.Vector { return b.P }
func (b FixedBody) Angle() float64 { return b.A }

// transform maps body-local points into world space.
type transform struct {
	p   cp.Vector
	rot cp.Vector
}

func bodyTransform(b Body) transform {
	return transform{p: b.Position(), rot: cp.ForAngle(b.Angle())}
}

func (t transform) point(v cp.Vector) cp.Vector {
	return t.p.Add(v.Rotate(t.rot))
}

func (t transform) vect(v cp.Vector) cp.Vector {
	return v.Rotate(t.rot)
}
