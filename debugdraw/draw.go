package debugdraw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/scene"
	"github.com/milk9111/chipshape/shape"
	"golang.org/x/image/colornames"
)

var (
	BoxColor       = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xa0}
	HighlightColor = colornames.White
	NearestColor   = colornames.Lime
	RayColor       = colornames.Lightgrey
	HitColor       = colornames.Red
)

// Drawer renders a scene and query results onto an ebiten image.
type Drawer struct {
	// ShowBoxes draws the cached bounding box of each shape.
	ShowBoxes bool
	Width     float32
}

func NewDrawer() *Drawer {
	return &Drawer{Width: 1.5}
}

// ShapeColor picks the stroke color for s. A color stored as user data wins.
func ShapeColor(s *shape.Shape) color.Color {
	if s == nil {
		return colornames.White
	}
	if c, ok := s.UserData().(color.Color); ok {
		return c
	}
	if s.Sensor() {
		return colornames.Gold
	}
	if b, ok := s.Body().(*cp.Body); ok && b.GetType() == cp.BODY_STATIC {
		return colornames.Lightskyblue
	}
	return colornames.Orchid
}

func (d *Drawer) DrawScene(screen *ebiten.Image, sc *scene.Scene) {
	if screen == nil || sc == nil {
		return
	}
	for _, s := range sc.Shapes() {
		if d.ShowBoxes {
			d.lines(screen, BoxLines(s.RawBB()), BoxColor)
		}
		d.DrawShape(screen, s, ShapeColor(s))
	}
}

func (d *Drawer) DrawShape(screen *ebiten.Image, s *shape.Shape, c color.Color) {
	d.lines(screen, Outline(s), c)
}

// DrawNearest marks the nearest point found for p.
func (d *Drawer) DrawNearest(screen *ebiten.Image, p cp.Vector, info shape.NearestPointQueryInfo) {
	d.lines(screen, []Line{{A: p, B: info.Point}}, NearestColor)
	d.lines(screen, CrossLines(info.Point, 8), NearestColor)
}

// DrawSegmentQuery draws the query segment a-b and, on a hit, the hit point
// and surface normal.
func (d *Drawer) DrawSegmentQuery(screen *ebiten.Image, a, b cp.Vector, info shape.SegmentQueryInfo, hit bool) {
	if !hit {
		d.lines(screen, []Line{{A: a, B: b}}, RayColor)
		return
	}
	p := info.HitPoint(a, b)
	d.lines(screen, []Line{{A: a, B: p}}, RayColor)
	d.lines(screen, []Line{{A: p, B: b}}, BoxColor)
	d.lines(screen, CrossLines(p, 8), HitColor)
	d.lines(screen, []Line{{A: p, B: p.Add(info.Normal.Mult(16))}}, HitColor)
}

func (d *Drawer) lines(screen *ebiten.Image, lines []Line, c color.Color) {
	for _, l := range lines {
		vector.StrokeLine(screen, float32(l.A.X), float32(l.A.Y), float32(l.B.X), float32(l.B.Y), d.Width, c, true)
	}
}
