package main

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/sprites/render"
	"golang.org/x/image/colornames"
)

// The sample scene draws from sheets generated here so the binary carries no
// image assets.
func registerGeneratedImages(images *render.Images) {
	images.Register("walker", walkerSheet())
	images.Register("torch", torchSheet())
	images.Register("crate", crateImage())
}

// walkerSheet is 3x3 frames of 16x24: six walk poses then three idle poses.
// A nose on the right makes mirrored groups visibly face left.
func walkerSheet() *image.RGBA {
	const fw, fh = 16, 24
	img := image.NewRGBA(image.Rect(0, 0, fw*3, fh*3))
	for i := 0; i < 9; i++ {
		ox, oy := (i%3)*fw, (i/3)*fh
		body := colorful.Hsv(200+float64(i)*8, 0.6, 0.9).Clamped()
		fill(img, image.Rect(ox+4, oy+4, ox+12, oy+16), body)
		fill(img, image.Rect(ox+12, oy+8, ox+14, oy+10), colornames.Peachpuff)

		stride := 0
		if i < 6 {
			stride = []int{-2, -1, 0, 2, 1, 0}[i]
		}
		fill(img, image.Rect(ox+5+stride, oy+16, ox+7+stride, oy+24), colornames.Darkslategray)
		fill(img, image.Rect(ox+9-stride, oy+16, ox+11-stride, oy+24), colornames.Darkslategray)
	}
	return img
}

// torchSheet is four 8x16 frames of a flame over a stick.
func torchSheet() *image.RGBA {
	const fw, fh = 8, 16
	img := image.NewRGBA(image.Rect(0, 0, fw*4, fh))
	hot, _ := colorful.Hex("#ffd23f")
	cool, _ := colorful.Hex("#e4572e")
	for i := 0; i < 4; i++ {
		ox := i * fw
		height := []int{5, 7, 6, 4}[i]
		for y := 0; y < height; y++ {
			c := hot.BlendLab(cool, float64(y)/float64(height)).Clamped()
			fill(img, image.Rect(ox+2, 8-y, ox+6, 9-y), c)
		}
		fill(img, image.Rect(ox+3, 9, ox+5, fh), colornames.Saddlebrown)
	}
	return img
}

func crateImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(img, img.Bounds(), colornames.Peru)
	fill(img, image.Rect(2, 2, 14, 14), colornames.Sienna)
	for i := 2; i < 14; i++ {
		img.Set(i, i, colornames.Peru)
	}
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
