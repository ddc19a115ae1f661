package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chipshape/debugdraw"
	"github.com/milk9111/chipshape/prefabs"
	"github.com/milk9111/chipshape/scene"
	"github.com/milk9111/chipshape/shape"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1024
	baseHeight = 640

	stepDT = 1.0 / 60.0
	// nearestRange limits the nearest point query under the cursor.
	nearestRange = 120.0
)

// Viewer is the ebiten game that shows a scene and queries it with the mouse.
type Viewer struct {
	frames int
	debug  bool
	paused bool

	sceneName string
	scenes    []string
	scene     *scene.Scene
	drawer    *debugdraw.Drawer

	watcher      *prefabs.Watcher
	clipboardOK  bool
	ui           *ebitenui.UI
	inspector    *Inspector
	lastReport   string
	dragging     bool
	dragStart    cp.Vector
	mouse        cp.Vector
	reloadFailed error
}

func NewViewer(sceneName string, debug, watch bool) (*Viewer, error) {
	v := &Viewer{
		debug:     debug,
		sceneName: sceneName,
		drawer:    debugdraw.NewDrawer(),
	}
	v.drawer.ShowBoxes = debug

	if err := v.load(sceneName); err != nil {
		return nil, err
	}
	if names, err := prefabs.SceneNames(); err == nil {
		v.scenes = names
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Viewer: clipboard unavailable: %v", err)
	} else {
		v.clipboardOK = true
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.DefaultDebounce, prefabs.Dir)
		if err != nil {
			log.Printf("Viewer: watch %s: %v", prefabs.Dir, err)
		} else {
			v.watcher = w
		}
	}

	v.inspector = NewInspector(v)
	v.ui = v.inspector.UI
	return v, nil
}

func (v *Viewer) Close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
}

func (v *Viewer) load(name string) error {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return err
	}
	sc, err := scene.New(*spec)
	if err != nil {
		return err
	}
	v.scene = sc
	v.sceneName = name
	return nil
}

// Reload rebuilds the current scene from its spec. The old scene stays up
// when the spec fails to load.
func (v *Viewer) Reload() {
	if err := v.load(v.sceneName); err != nil {
		v.reloadFailed = err
		log.Printf("Viewer: reload %s: %v", v.sceneName, err)
		return
	}
	v.reloadFailed = nil
	log.Printf("Viewer: reloaded %s", v.sceneName)
}

// NextScene switches to the scene after the current one in name order.
func (v *Viewer) NextScene() {
	if len(v.scenes) == 0 {
		return
	}
	next := v.scenes[0]
	for i, name := range v.scenes {
		if name == v.sceneName || name == v.sceneName+".yaml" {
			next = v.scenes[(i+1)%len(v.scenes)]
			break
		}
	}
	if err := v.load(next); err != nil {
		log.Printf("Viewer: load %s: %v", next, err)
	}
}

// CopyReport puts the current query report on the system clipboard.
func (v *Viewer) CopyReport() {
	if !v.clipboardOK {
		log.Printf("Viewer: clipboard unavailable, report not copied")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(v.lastReport))
}

func (v *Viewer) ToggleBoxes() {
	v.drawer.ShowBoxes = !v.drawer.ShowBoxes
}

func (v *Viewer) Update() error {
	v.frames++
	v.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.Reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.CopyReport()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		v.ToggleBoxes()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.paused = !v.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.NextScene()
	}

	x, y := ebiten.CursorPosition()
	v.mouse = cp.Vector{X: float64(x), Y: float64(y)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !v.inspector.Contains(x, y) {
		v.dragging = true
		v.dragStart = v.mouse
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		for _, s := range v.scene.PointQuery(v.mouse, shape.DefaultFilter()) {
			v.scene.Remove(s)
		}
	}

	if !v.paused {
		v.scene.Step(stepDT)
	}

	v.lastReport = BuildReport(v.scene, v.cursor())
	if v.reloadFailed != nil {
		v.lastReport += fmt.Sprintf("\nreload failed: %v", v.reloadFailed)
	}
	v.inspector.SetReport(v.lastReport)
	v.ui.Update()
	return nil
}

func (v *Viewer) pollWatcher() {
	if v.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-v.watcher.Events:
			if !ok {
				v.watcher = nil
				return
			}
			if name != prefabs.SceneName(v.sceneName) {
				continue
			}
			log.Printf("Viewer: %s changed", name)
			v.Reload()
		case err, ok := <-v.watcher.Errors:
			if ok {
				log.Printf("Viewer: watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (v *Viewer) cursor() Cursor {
	return Cursor{
		Point:     v.mouse,
		Dragging:  v.dragging,
		DragStart: v.dragStart,
		Range:     nearestRange,
		Filter:    shape.DefaultFilter(),
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.drawer.DrawScene(screen, v.scene)

	p := v.cursor()
	for _, s := range v.scene.PointQuery(p.Point, p.Filter) {
		v.drawer.DrawShape(screen, s, debugdraw.HighlightColor)
	}
	if info, ok := v.scene.NearestPointQueryNearest(p.Point, p.Range, p.Filter); ok {
		v.drawer.DrawNearest(screen, p.Point, info)
	}
	if p.Dragging {
		info, hit := v.scene.SegmentQueryFirst(p.DragStart, p.Point, p.Filter)
		v.drawer.DrawSegmentQuery(screen, p.DragStart, p.Point, info, hit)
	}

	v.ui.Draw(screen)

	if v.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", v.frames, ebiten.ActualFPS()))
	}
}

func (v *Viewer) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
