package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/sprites/prefabs"
	"github.com/milk9111/sprites/render"
	"github.com/milk9111/sprites/scene"
	"github.com/milk9111/sprites/timer"
)

type Config struct {
	ScenePath string
	Watch     bool
	Debug     bool
}

// App is the application context handed to ebiten. It owns the clock every
// timed task runs on, the image registry and the current scene.
type App struct {
	cfg Config

	timers   *timer.Scheduler
	images   *render.Images
	renderer *render.Ebiten
	scene    *scene.Scene
	watcher  *prefabs.Watcher
	frames   int
}

func NewApp(cfg Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		timers:   timer.NewScheduler(),
		images:   render.NewImages(),
		renderer: render.NewEbiten(),
	}
	registerGeneratedImages(a.images)

	if err := a.reload(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

func (a *App) reload() error {
	spec, err := prefabs.LoadSceneSpec(a.cfg.ScenePath)
	if err != nil {
		return err
	}
	s, err := prefabs.Build(spec, a.images.Resolve, a.timers)
	if err != nil {
		return err
	}
	if a.scene != nil {
		a.scene.Stop()
	}
	a.scene = s
	log.Printf("loaded scene %s: %d entities, %d collision boxes", a.cfg.ScenePath, s.Len(), len(s.Collisions()))
	return nil
}

func (a *App) pollReload() {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Poll() {
		if name != filepath.Base(a.cfg.ScenePath) {
			continue
		}
		if err := a.reload(); err != nil {
			log.Printf("reload %s: %v", name, err)
		}
	}
	select {
	case err := <-a.watcher.Errors:
		log.Printf("prefab watch: %v", err)
	default:
	}
}

func (a *App) Update() error {
	a.frames++
	a.pollReload()
	a.timers.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.scene.Render(a.renderer)

	if a.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d  FPS: %.2f  Tasks: %d",
			a.frames, ebiten.ActualFPS(), a.timers.Len()))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.scene.Width), int(a.scene.Height)
}

func (a *App) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.scene != nil {
		a.scene.Stop()
	}
}
