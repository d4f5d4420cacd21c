package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "scene prefab in prefabs/ (embedded copy used when absent on disk)")
	watch := flag.Bool("watch", false, "reload the scene when prefab files change")
	debug := flag.Bool("debug", false, "enable debug overlay")
	scale := flag.Int("scale", 3, "window scale factor")
	flag.Parse()

	app, err := NewApp(Config{
		ScenePath: *scenePath,
		Watch:     *watch,
		Debug:     *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	w, h := app.Layout(0, 0)
	if *scale < 1 {
		*scale = 1
	}
	ebiten.SetWindowSize(w*(*scale), h*(*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("sprites")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
