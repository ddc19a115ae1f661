package shape

import "github.com/jakecoffman/cp"

// SegmentQueryInfo describes where a segment first touches a shape.
type SegmentQueryInfo struct {
	Shape *Shape
	// T is the fraction along the query segment, in [0, 1].
	T float64
	// Normal is the surface normal at the hit point.
	Normal cp.Vector
}

// HitPoint returns the point at T along a-b.
func (info SegmentQueryInfo) HitPoint(a, b cp.Vector) cp.Vector {
	return a.Lerp(b, info.T)
}

// HitDistance returns the distance from a to the hit point.
func (info SegmentQueryInfo) HitDistance(a, b cp.Vector) float64 {
	return a.Distance(b) * info.T
}

// NearestPointQueryInfo describes the closest point of a shape to a query
// point.
type NearestPointQueryInfo struct {
	Shape *Shape
	Point cp.Vector
	// Distance is negative when the query point is inside the shape.
	Distance float64
}

// NearestPointQuery returns the point on the shape's surface closest to p and
// the signed distance from p to the shape.
func (s *Shape) NearestPointQuery(p cp.Vector) NearestPointQueryInfo {
	closest, d := s.Class.nearestPoint(bodyTransform(s.body), p)
	return NearestPointQueryInfo{Shape: s, Point: closest, Distance: d}
}

// PointQuery reports whether p lies inside the shape or on its edge.
func (s *Shape) PointQuery(p cp.Vector) bool {
	return s.NearestPointQuery(p).Distance <= 0
}

// SegmentQuery casts the segment a-b against the shape. ok is false when the
// segment misses.
func (s *Shape) SegmentQuery(a, b cp.Vector) (info SegmentQueryInfo, ok bool) {
	t, n, hit := s.Class.segmentQuery(bodyTransform(s.body), a, b)
	if !hit {
		return SegmentQueryInfo{}, false
	}
	return SegmentQueryInfo{Shape: s, T: t, Normal: n}, true
}
