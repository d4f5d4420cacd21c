package sheet

import (
	"fmt"
	"image"
)

// Image is the bitmap a sheet is cut from. Both *ebiten.Image and image.Image
// satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// Frame is a source rectangle in sheet pixel space. A negative W marks a
// horizontally mirrored frame whose origin sits on its right edge.
type Frame struct {
	X, Y int
	W, H int
}

// Mirrored reports whether the frame should be drawn flipped.
func (f Frame) Mirrored() bool { return f.W < 0 }

// Rect returns the normalised source region regardless of mirroring.
func (f Frame) Rect() image.Rectangle {
	if f.W < 0 {
		return image.Rect(f.X+f.W, f.Y, f.X, f.Y+f.H)
	}
	return image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

// Mirror flips the frame horizontally without moving it on the sheet.
func (f Frame) Mirror() Frame {
	return Frame{X: f.X + f.W, Y: f.Y, W: -f.W, H: f.H}
}

// BuildFrames cuts img into a row-major grid of frameW x frameH frames.
// Partial cells on the right and bottom edges are ignored.
func BuildFrames(img Image, frameW, frameH int) ([]Frame, error) {
	if img == nil {
		return nil, fmt.Errorf("sheet: nil image: %w", ErrInvalidFrameSize)
	}
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("sheet: frame size %dx%d: %w", frameW, frameH, ErrInvalidFrameSize)
	}
	bounds := img.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("sheet: frame %dx%d on image %dx%d: %w",
			frameW, frameH, bounds.Dx(), bounds.Dy(), ErrInvalidFrameSize)
	}

	frames := make([]Frame, cols*rows)
	for i := range frames {
		col := i % cols
		row := i / cols
		frames[i] = Frame{
			X: bounds.Min.X + col*frameW,
			Y: bounds.Min.Y + row*frameH,
			W: frameW,
			H: frameH,
		}
	}
	return frames, nil
}
