package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneName := flag.String("scene", "default", "scene name in prefabs/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw cached bounding boxes and frame stats")
	watch := flag.Bool("watch", false, "reload the scene when files in prefabs/ change")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("shapeview")

	viewer, err := NewViewer(*sceneName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer viewer.Close()

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
