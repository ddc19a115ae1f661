package prefabs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/shape"
)

const (
	CollisionTypeSolid cp.CollisionType = iota + 1
	CollisionTypeHazard
	CollisionTypeSensor
	CollisionTypeActor
)

var collisionTypes = map[string]cp.CollisionType{
	"":       0,
	"solid":  CollisionTypeSolid,
	"hazard": CollisionTypeHazard,
	"sensor": CollisionTypeSensor,
	"actor":  CollisionTypeActor,
}

var (
	ErrUnknownShapeKind     = errors.New("prefabs: unknown shape kind")
	ErrUnknownCollisionType = errors.New("prefabs: unknown collision type")
	ErrUnknownBodyType      = errors.New("prefabs: unknown body type")
	ErrInvalidLayer         = errors.New("prefabs: invalid layer")
	ErrInvalidColor         = errors.New("prefabs: invalid color")
)

// CollisionType maps a collision type name from a spec to its value.
func CollisionType(name string) (cp.CollisionType, error) {
	t, ok := collisionTypes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCollisionType, name)
	}
	return t, nil
}

// layerBits is the width of the shape.Filter layer mask.
const layerBits = 32

// Filter converts the spec into a collision filter. Layers are bit indexes
// into the mask and must be below 32.
func (f FilterSpec) Filter() (shape.Filter, error) {
	filter := shape.Filter{Group: shape.Group(f.Group), Layers: shape.AllLayers, Sensor: f.Sensor}
	if len(f.Layers) > 0 {
		filter.Layers = 0
		for _, bit := range f.Layers {
			if bit >= layerBits {
				return shape.Filter{}, fmt.Errorf("%w: bit %d is outside 0..%d", ErrInvalidLayer, bit, layerBits-1)
			}
			filter.Layers |= 1 << bit
		}
	}
	return filter, nil
}

// BuildShape creates the shape described by spec on body. A color in the spec
// is stored as the shape's user data.
func BuildShape(ids *shape.IDAllocator, body shape.Body, spec ShapeSpec) (*shape.Shape, error) {
	ctype, err := CollisionType(spec.CollisionType)
	if err != nil {
		return nil, err
	}
	filter, err := spec.Filter.Filter()
	if err != nil {
		return nil, err
	}

	var (
		s        *shape.Shape
		buildErr error
	)
	switch spec.Kind {
	case ShapeCircle:
		s, buildErr = shape.NewCircle(ids, body, spec.Radius, spec.Offset.Vector())
	case ShapeSegment:
		s, buildErr = shape.NewSegment(ids, body, spec.A.Vector(), spec.B.Vector(), spec.Radius)
	case ShapePoly:
		verts := make([]cp.Vector, len(spec.Verts))
		for i, v := range spec.Verts {
			verts[i] = v.Vector()
		}
		s, buildErr = shape.NewPoly(ids, body, verts, spec.Offset.Vector())
	case ShapeBox:
		if spec.BB != nil {
			bb := shape.NewBoundingBox(spec.BB.L, spec.BB.B, spec.BB.R, spec.BB.T)
			s, buildErr = shape.NewBoxBB(ids, body, bb)
		} else {
			s, buildErr = shape.NewBox(ids, body, spec.Width, spec.Height)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeKind, spec.Kind)
	}
	if buildErr != nil {
		return nil, fmt.Errorf("prefabs: build %s: %w", spec.Kind, buildErr)
	}

	s.SetElasticity(spec.Elasticity)
	s.SetFriction(spec.Friction)
	s.SetSurfaceVelocity(spec.SurfaceVelocity.Vector())
	s.SetCollisionType(ctype)
	s.SetFilter(filter)
	if spec.Color != nil {
		s.SetUserData(spec.Color.NRGBA)
	}
	return s, nil
}
