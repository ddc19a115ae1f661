package shape

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/common"
)

// Winding returns +1 for counter-clockwise vertices, -1 for clockwise and 0
// when the signed area is zero.
func Winding(verts []cp.Vector) int {
	area := signedArea(verts)
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	}
	return 0
}

// signedArea is twice the shoelace area; positive for counter-clockwise.
func signedArea(verts []cp.Vector) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		sum += verts[i].Cross(verts[(i+1)%n])
	}
	return sum
}

// ValidatePolygon reports whether verts describe a convex polygon with at
// least three vertices. Either winding is accepted, but every corner must
// turn the same way as the overall winding; collinear or repeated vertices
// and polygons that wrap around more than once are rejected.
func ValidatePolygon(verts []cp.Vector) bool {
	n := len(verts)
	if n < 3 {
		return false
	}
	w := float64(Winding(verts))
	if w == 0 {
		return false
	}

	var turning float64
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		c := verts[(i+2)%n]
		e1 := b.Sub(a)
		e2 := c.Sub(b)
		cross := e1.Cross(e2)
		if cross*w <= 0 {
			return false
		}
		turning += math.Atan2(cross, e1.Dot(e2))
	}
	// A simple convex polygon turns exactly once; a star traced with the same
	// turn direction at every corner turns twice or more.
	return common.NearlyEqual(turning, w*2*math.Pi, 1e-6)
}
