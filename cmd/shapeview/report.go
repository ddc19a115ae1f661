package main

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/scene"
	"github.com/milk9111/chipshape/shape"
)

// Cursor is the mouse state the per-frame scene queries run from.
type Cursor struct {
	Point     cp.Vector
	Dragging  bool
	DragStart cp.Vector
	Range     float64
	Filter    shape.Filter
}

// BuildReport runs the queries for the cursor and describes the results.
func BuildReport(sc *scene.Scene, p Cursor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scene %s: %d shapes, %d candidate pairs\n", sc.Name, len(sc.Shapes()), len(sc.CandidatePairs()))
	fmt.Fprintf(&b, "cursor (%.1f, %.1f)\n", p.Point.X, p.Point.Y)

	hits := sc.PointQuery(p.Point, p.Filter)
	if len(hits) == 0 {
		b.WriteString("inside: none\n")
	}
	for _, s := range hits {
		fmt.Fprintf(&b, "inside: %s\n", describe(sc, s))
	}

	if info, ok := sc.NearestPointQueryNearest(p.Point, p.Range, p.Filter); ok {
		fmt.Fprintf(&b, "nearest: %s at (%.1f, %.1f) d=%.2f\n", describe(sc, info.Shape), info.Point.X, info.Point.Y, info.Distance)
	} else {
		fmt.Fprintf(&b, "nearest: none within %.0f\n", p.Range)
	}

	if p.Dragging {
		info, ok := sc.SegmentQueryFirst(p.DragStart, p.Point, p.Filter)
		if ok {
			hit := info.HitPoint(p.DragStart, p.Point)
			fmt.Fprintf(&b, "segment: %s t=%.3f at (%.1f, %.1f) dist=%.1f n=(%.2f, %.2f)\n",
				describe(sc, info.Shape), info.T, hit.X, hit.Y, info.HitDistance(p.DragStart, p.Point),
				info.Normal.X, info.Normal.Y)
		} else {
			b.WriteString("segment: miss\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func describe(sc *scene.Scene, s *shape.Shape) string {
	owner, ok := sc.Owner(s)
	if !ok {
		owner = "?"
	}
	desc := fmt.Sprintf("%s#%d %s", owner, s.ID(), s.Kind())
	if s.Sensor() {
		desc += " (sensor)"
	}
	return desc
}
