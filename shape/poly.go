package shape

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Poly is a convex polygon. Vertices keep the order they were given in.
type Poly struct {
	*Shape

	verts []cp.Vector
	// normals[i] is the outward unit normal of the edge verts[i] -> verts[i+1].
	normals []cp.Vector
}

// NewPoly builds a polygon from verts translated by offset. The vertices must
// pass ValidatePolygon.
func NewPoly(ids *IDAllocator, body Body, verts []cp.Vector, offset cp.Vector) (*Shape, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	poly := &Poly{}
	if err := poly.setVerts(verts, offset); err != nil {
		return nil, err
	}
	poly.Shape = newShape(ids, poly, body)
	return poly.Shape, nil
}

// NewBox builds a width x height rectangle centered on the body origin.
func NewBox(ids *IDAllocator, body Body, width, height float64) (*Shape, error) {
	hw, hh := width/2, height/2
	return NewBoxBB(ids, body, NewBoundingBox(-hw, -hh, hw, hh))
}

// NewBoxBB builds a rectangle covering bb in body space.
func NewBoxBB(ids *IDAllocator, body Body, bb BoundingBox) (*Shape, error) {
	verts := []cp.Vector{
		{X: bb.Min.X, Y: bb.Min.Y},
		{X: bb.Min.X, Y: bb.Max.Y},
		{X: bb.Max.X, Y: bb.Max.Y},
		{X: bb.Max.X, Y: bb.Min.Y},
	}
	return NewPoly(ids, body, verts, cp.Vector{})
}

func (p *Poly) setVerts(verts []cp.Vector, offset cp.Vector) error {
	if !ValidatePolygon(verts) {
		return fmt.Errorf("%w: %d vertices do not form a convex polygon", ErrInvalidGeometry, len(verts))
	}
	n := len(verts)
	stored := make([]cp.Vector, n)
	for i, v := range verts {
		stored[i] = v.Add(offset)
	}

	ccw := Winding(stored) > 0
	normals := make([]cp.Vector, n)
	for i := range stored {
		edge := stored[(i+1)%n].Sub(stored[i]).Normalize()
		if ccw {
			normals[i] = edge.ReversePerp()
		} else {
			normals[i] = edge.Perp()
		}
	}

	p.verts = stored
	p.normals = normals
	return nil
}

func (*Poly) Kind() Kind {
	return KindPoly
}

func (p *Poly) Count() int {
	return len(p.verts)
}

// Vertex returns the i-th body-space vertex. ok is false when i is out of
// range.
func (p *Poly) Vertex(i int) (v cp.Vector, ok bool) {
	if i < 0 || i >= len(p.verts) {
		return cp.Vector{}, false
	}
	return p.verts[i], true
}

// Vertices returns a copy of the body-space vertices.
func (p *Poly) Vertices() []cp.Vector {
	out := make([]cp.Vector, len(p.verts))
	copy(out, p.verts)
	return out
}

// WorldVertices returns the vertices transformed by the body.
func (p *Poly) WorldVertices() []cp.Vector {
	return p.worldVerts(bodyTransform(p.body))
}

// SetVertices replaces the vertices with verts translated by offset. The
// cached bounding box is not refreshed. On error the polygon is unchanged.
func (p *Poly) SetVertices(verts []cp.Vector, offset cp.Vector) error {
	return p.setVerts(verts, offset)
}

func (p *Poly) worldVerts(xf transform) []cp.Vector {
	out := make([]cp.Vector, len(p.verts))
	for i, v := range p.verts {
		out[i] = xf.point(v)
	}
	return out
}

func (p *Poly) boundingBox(xf transform) BoundingBox {
	return BoundingBoxForPoints(p.worldVerts(xf))
}

func (p *Poly) nearestPoint(xf transform, q cp.Vector) (cp.Vector, float64) {
	verts := p.worldVerts(xf)
	n := len(verts)

	outside := false
	minDist := math.Inf(1)
	var closest cp.Vector
	for i := 0; i < n; i++ {
		v0 := verts[i]
		v1 := verts[(i+1)%n]
		if q.Sub(v0).Dot(xf.vect(p.normals[i])) > 0 {
			outside = true
		}
		c := q.ClosestPointOnSegment(v0, v1)
		if d := q.Distance(c); d < minDist {
			minDist = d
			closest = c
		}
	}
	if outside {
		return closest, minDist
	}
	return closest, -minDist
}

// segmentQuery clips a-b against every edge half-plane and reports where the
// segment enters the polygon. Segments starting inside do not hit.
func (p *Poly) segmentQuery(xf transform, a, b cp.Vector) (float64, cp.Vector, bool) {
	verts := p.worldVerts(xf)
	delta := b.Sub(a)

	tEnter, tExit := math.Inf(-1), math.Inf(1)
	var entry cp.Vector
	for i, v := range verts {
		n := xf.vect(p.normals[i])
		dist := a.Sub(v).Dot(n)
		denom := delta.Dot(n)
		if denom == 0 {
			if dist > 0 {
				return 0, cp.Vector{}, false
			}
			continue
		}
		t := -dist / denom
		if denom < 0 {
			if t > tEnter {
				tEnter = t
				entry = n
			}
		} else if t < tExit {
			tExit = t
		}
		if tEnter > tExit {
			return 0, cp.Vector{}, false
		}
	}
	if tEnter < 0 || tEnter > 1 {
		return 0, cp.Vector{}, false
	}
	return tEnter, entry, true
}
