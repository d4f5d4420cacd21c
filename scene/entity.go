package scene

import (
	"fmt"
	"image/color"

	"github.com/milk9111/sprites/anim"
	"github.com/milk9111/sprites/sheet"
	"github.com/milk9111/sprites/timer"
)

// Renderer is the drawing surface a scene renders to.
type Renderer interface {
	Fill(c color.Color)
	// DrawImage draws the src region of img stretched over dst. A negative
	// src.W draws the region flipped horizontally.
	DrawImage(img sheet.Image, src sheet.Frame, dst Rect)
}

// Kind tags what an Entity draws.
type Kind int

const (
	Static Kind = iota
	Animated
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Animated:
		return "animated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entity is a renderable box: either a whole static image or the current
// frame of a sprite sheet.
type Entity struct {
	Box
	Kind Kind

	Image sheet.Image  // Static
	Sheet *sheet.Sheet // Animated
	Anim  *anim.Driver // Animated

	parent *Scene
	seq    uint64
}

// NewSprite creates a static entity. A zero width or height takes the
// image's size.
func NewSprite(id string, x, y float64, img sheet.Image, w, h float64) *Entity {
	if img != nil {
		if w == 0 {
			w = float64(img.Bounds().Dx())
		}
		if h == 0 {
			h = float64(img.Bounds().Dy())
		}
	}
	return &Entity{
		Box:   Box{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}},
		Kind:  Static,
		Image: img,
	}
}

// NewAnimated creates an entity playing frames from sh, driven by timers.
// A zero width or height takes the sheet's frame size.
func NewAnimated(id string, x, y float64, sh *sheet.Sheet, w, h float64, timers timer.Service) *Entity {
	if w == 0 {
		w = float64(sh.FrameW)
	}
	if h == 0 {
		h = float64(sh.FrameH)
	}
	return &Entity{
		Box:   Box{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}},
		Kind:  Animated,
		Sheet: sh,
		Anim:  anim.NewDriver(sh, timers),
	}
}

// Parent is the scene the entity was added to, or nil.
func (e *Entity) Parent() *Scene { return e.parent }

// Render draws the entity once.
func (e *Entity) Render(r Renderer) {
	switch e.Kind {
	case Static:
		if e.Image == nil {
			return
		}
		b := e.Image.Bounds()
		src := sheet.Frame{X: b.Min.X, Y: b.Min.Y, W: b.Dx(), H: b.Dy()}
		r.DrawImage(e.Image, src, e.Rect)
	case Animated:
		if e.Sheet == nil {
			return
		}
		f, ok := e.Sheet.CurrentFrame()
		if !ok {
			return
		}
		r.DrawImage(e.Sheet.Image, f, e.Rect)
	}
}

// Stop cancels the entity's animation and movement tasks.
func (e *Entity) Stop() {
	if e.Anim != nil {
		e.Anim.Stop()
	}
	e.StopMoving()
}
