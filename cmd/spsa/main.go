package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/sprites/anim"
	"github.com/milk9111/sprites/render"
	"github.com/milk9111/sprites/scene"
	"github.com/milk9111/sprites/sheet"
	"github.com/milk9111/sprites/timer"
	"golang.org/x/image/colornames"
)

const viewSize = 512

type demoGame struct {
	timers   *timer.Scheduler
	sheet    *sheet.Sheet
	driver   *anim.Driver
	renderer *render.Ebiten
	dst      scene.Rect
	wraps    int
}

func (g *demoGame) Update() error {
	g.timers.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.renderer.Fill(colornames.Black)
	if f, ok := g.sheet.CurrentFrame(); ok {
		g.renderer.DrawImage(g.sheet.Image, f, g.dst)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d/%d  cycles %d",
		g.sheet.Index()+1, g.sheet.CurrentLen(), g.wraps))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func loadSheet(path string, frameW, frameH int) (*sheet.Sheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return sheet.New(ebiten.NewImageFromImage(img), frameW, frameH)
}

func main() {
	path := flag.String("sheet", "player-Sheet.png", "sprite sheet PNG")
	frameW := flag.Int("fw", 128, "frame width in pixels")
	frameH := flag.Int("fh", 128, "frame height in pixels")
	from := flag.Int("from", 0, "first frame of the group")
	to := flag.Int("to", -1, "last frame of the group (-1 = last frame of the sheet)")
	fps := flag.Int("fps", 12, "frames per second")
	mirror := flag.Bool("mirror", false, "flip the frames horizontally")
	backward := flag.Bool("backward", false, "play in reverse")
	loops := flag.Int("loops", 0, "stop after this many cycles (0 = forever)")
	flag.Parse()

	sh, err := loadSheet(*path, *frameW, *frameH)
	if err != nil {
		log.Fatal(err)
	}
	last := *to
	if last < 0 {
		last = sh.FrameCount() - 1
	}
	if *mirror {
		_, err = sh.AddMirroredRange(*from, last)
	} else {
		_, err = sh.AddRange(*from, last)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: %d frames, playing %d..%d", *path, sh.FrameCount(), *from, last)

	if *fps <= 0 {
		*fps = 12
	}
	interval := time.Second / time.Duration(*fps)
	dir := anim.Forward
	if *backward {
		dir = anim.Backward
	}

	scale := float64(viewSize) / float64(max(*frameW, *frameH))
	w, h := float64(*frameW)*scale, float64(*frameH)*scale
	g := &demoGame{
		timers:   timer.NewScheduler(),
		sheet:    sh,
		renderer: render.NewEbiten(),
		dst:      scene.Rect{X: (viewSize - w) / 2, Y: (viewSize - h) / 2, W: w, H: h},
	}
	g.driver = anim.NewDriver(sh, g.timers)
	g.driver.OnWrap = func() { g.wraps++ }
	g.driver.OnDone = func() { log.Printf("finished %d cycles", *loops) }

	if *loops > 0 {
		err = g.driver.Loop(*loops, interval, dir)
	} else {
		err = g.driver.Start(dir, interval)
	}
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
