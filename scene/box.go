package scene

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fogleman/ease"
	"github.com/milk9111/sprites/timer"
)

// StandardInterval is the default step for timed movement, 50 steps a second.
const StandardInterval = 20 * time.Millisecond

// Curve maps movement progress in [0,1] to distance covered in [0,1].
type Curve func(t float64) float64

var curves = map[string]Curve{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_out_cubic": ease.InOutCubic,
	"in_out_sine":  ease.InOutSine,
	"out_bounce":   ease.OutBounce,
}

// ParseCurve looks up an easing curve by name. An empty name is linear.
func ParseCurve(name string) (Curve, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ease.Linear, nil
	}
	c, ok := curves[key]
	if !ok {
		return nil, fmt.Errorf("scene: unknown easing curve %q", name)
	}
	return c, nil
}

// Box is a positioned rectangle that can move over time. It owns at most one
// movement task.
type Box struct {
	ID string
	Rect

	move *timer.Task
}

func NewBox(id string, x, y, w, h float64) *Box {
	return &Box{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}}
}

func (b *Box) Move(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

func (b *Box) MoveTo(x, y float64) {
	b.Move(x-b.X, y-b.Y)
}

// MoveTimed moves the box by (dx, dy) spread across d, one step per interval.
// A zero interval means StandardInterval and a nil curve is linear. Starting
// a new timed move cancels the one in progress.
func (b *Box) MoveTimed(timers timer.Service, dx, dy float64, d, interval time.Duration, curve Curve) error {
	if interval == 0 {
		interval = StandardInterval
	}
	if interval < 0 {
		return fmt.Errorf("scene: move %s every %v: %w", b.ID, interval, timer.ErrInvalidInterval)
	}
	if curve == nil {
		curve = ease.Linear
	}
	steps := int(math.Round(float64(d) / float64(interval)))
	if steps < 1 {
		steps = 1
	}

	b.StopMoving()

	k := 0
	var task *timer.Task
	task, err := timers.Every(interval, func() {
		k++
		prev := curve(float64(k-1) / float64(steps))
		cur := curve(float64(k) / float64(steps))
		b.Move(dx*(cur-prev), dy*(cur-prev))
		if k >= steps {
			task.Cancel()
		}
	})
	if err != nil {
		return fmt.Errorf("scene: move %s: %w", b.ID, err)
	}
	b.move = task
	return nil
}

// MoveToTimed is MoveTimed towards an absolute position.
func (b *Box) MoveToTimed(timers timer.Service, x, y float64, d, interval time.Duration, curve Curve) error {
	return b.MoveTimed(timers, x-b.X, y-b.Y, d, interval, curve)
}

// Moving reports whether a timed move is in progress.
func (b *Box) Moving() bool { return b.move.Active() }

func (b *Box) StopMoving() {
	b.move.Cancel()
	b.move = nil
}
