package scene

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/prefabs"
	"github.com/milk9111/chipshape/shape"
)

// Scene owns the Chipmunk space that integrates body motion and the shapes
// attached to those bodies.
type Scene struct {
	Name string

	space  *cp.Space
	ids    *shape.IDAllocator
	bodies map[string]*cp.Body
	names  []string
	shapes []*shape.Shape
	owners shape.Owners[string]
}

// New builds a scene from spec. Each shape is registered with the name of
// the body it belongs to.
func New(spec prefabs.SceneSpec) (*Scene, error) {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	sc := &Scene{
		Name:   spec.Name,
		space:  space,
		ids:    shape.NewIDAllocator(),
		bodies: make(map[string]*cp.Body),
	}

	for i, bs := range spec.Bodies {
		name := bs.Name
		if name == "" {
			name = fmt.Sprintf("body%d", i)
		}
		if _, dup := sc.bodies[name]; dup {
			return nil, fmt.Errorf("scene: duplicate body %q", name)
		}
		body, err := newBody(bs)
		if err != nil {
			return nil, fmt.Errorf("scene: build body %q: %w", name, err)
		}
		space.AddBody(body)
		sc.bodies[name] = body
		sc.names = append(sc.names, name)

		for j, ss := range bs.Shapes {
			s, err := prefabs.BuildShape(sc.ids, body, ss)
			if err != nil {
				return nil, fmt.Errorf("scene: build body %q shape %d: %w", name, j, err)
			}
			sc.shapes = append(sc.shapes, s)
			sc.owners.Register(s.ID(), name)
		}
	}

	sc.CacheAll()
	log.Printf("Scene: built %q with %d bodies and %d shapes", sc.Name, len(sc.bodies), len(sc.shapes))
	return sc, nil
}

func newBody(spec prefabs.BodySpec) (*cp.Body, error) {
	var body *cp.Body
	switch spec.Type {
	case "", prefabs.BodyStatic:
		body = cp.NewStaticBody()
	case prefabs.BodyKinematic:
		body = cp.NewKinematicBody()
		body.SetVelocityVector(spec.Velocity.Vector())
		body.SetAngularVelocity(spec.AngularVelocity)
	default:
		return nil, fmt.Errorf("%w: %q", prefabs.ErrUnknownBodyType, spec.Type)
	}
	body.SetPosition(spec.Position.Vector())
	body.SetAngle(spec.Angle)
	return body, nil
}

// Space returns the underlying Chipmunk space.
func (sc *Scene) Space() *cp.Space {
	if sc == nil {
		return nil
	}
	return sc.space
}

// Step advances the bodies by dt and refreshes every cached bounding box.
func (sc *Scene) Step(dt float64) {
	if sc == nil || sc.space == nil {
		return
	}
	sc.space.Step(dt)
	sc.CacheAll()
}

// CacheAll recomputes the bounding box of every shape from its body's
// current transform.
func (sc *Scene) CacheAll() {
	for _, s := range sc.shapes {
		s.CacheBB()
	}
}

// Shapes returns the live shapes in creation order.
func (sc *Scene) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(sc.shapes))
	copy(out, sc.shapes)
	return out
}

// Body returns the named body.
func (sc *Scene) Body(name string) (*cp.Body, bool) {
	b, ok := sc.bodies[name]
	return b, ok
}

// BodyNames returns the body names in spec order.
func (sc *Scene) BodyNames() []string {
	out := make([]string, len(sc.names))
	copy(out, sc.names)
	return out
}

// Owner returns the name of the body s was built on.
func (sc *Scene) Owner(s *shape.Shape) (string, bool) {
	if s == nil {
		return "", false
	}
	return sc.owners.Owner(s.ID())
}

// Remove drops s from the scene and forgets its owner. It reports whether s
// was part of the scene.
func (sc *Scene) Remove(s *shape.Shape) bool {
	for i, candidate := range sc.shapes {
		if candidate != s {
			continue
		}
		sc.shapes = append(sc.shapes[:i], sc.shapes[i+1:]...)
		sc.owners.Release(s.ID())
		log.Printf("Scene: removed shape %d", s.ID())
		return true
	}
	return false
}
