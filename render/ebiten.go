// Package render draws scenes with ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sprites/scene"
	"github.com/milk9111/sprites/sheet"
)

// Ebiten implements scene.Renderer on an ebiten screen. Images that are not
// already *ebiten.Image are uploaded once and cached.
type Ebiten struct {
	Filter ebiten.Filter

	screen   *ebiten.Image
	uploaded map[sheet.Image]*ebiten.Image
}

func NewEbiten() *Ebiten {
	return &Ebiten{
		Filter:   ebiten.FilterNearest,
		uploaded: make(map[sheet.Image]*ebiten.Image),
	}
}

// Begin sets the target for the next render pass.
func (r *Ebiten) Begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Ebiten) Fill(c color.Color) {
	if r.screen == nil {
		return
	}
	r.screen.Fill(c)
}

func (r *Ebiten) DrawImage(img sheet.Image, src sheet.Frame, dst scene.Rect) {
	if r.screen == nil || img == nil || src.W == 0 || src.H == 0 {
		return
	}
	eimg := r.upload(img)
	if eimg == nil {
		return
	}
	sub, ok := eimg.SubImage(src.Rect()).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = Placement(src, dst)
	op.Filter = r.Filter
	r.screen.DrawImage(sub, op)
}

// Forget drops the cached upload for img.
func (r *Ebiten) Forget(img sheet.Image) {
	if cached, ok := r.uploaded[img]; ok {
		cached.Deallocate()
		delete(r.uploaded, img)
	}
}

func (r *Ebiten) upload(img sheet.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if cached, ok := r.uploaded[img]; ok {
		return cached
	}
	std, ok := img.(image.Image)
	if !ok {
		return nil
	}
	eimg := ebiten.NewImageFromImage(std)
	r.uploaded[img] = eimg
	return eimg
}

// Placement maps the unit space of a src-sized region onto dst. Mirrored
// frames are flipped inside their own width so they stay aligned with dst.
func Placement(src sheet.Frame, dst scene.Rect) ebiten.GeoM {
	var g ebiten.GeoM
	w := src.W
	if w < 0 {
		w = -w
	}
	if w == 0 || src.H == 0 {
		return g
	}
	if src.Mirrored() {
		g.Scale(-1, 1)
		g.Translate(float64(w), 0)
	}
	g.Scale(dst.W/float64(w), dst.H/float64(src.H))
	g.Translate(dst.X, dst.Y)
	return g
}
