// Package anim plays sprite sheet groups on a timer.
package anim

import (
	"fmt"
	"time"

	"github.com/milk9111/sprites/timer"
)

// Cursor is the playback position a Driver advances. *sheet.Sheet implements it.
type Cursor interface {
	NextFrame() bool
	PreviousFrame() bool
	CurrentLen() int
	SwitchGroup(handle int) error
}

// Driver steps a Cursor on a repeating timer task. A driver owns at most one
// task: starting again cancels the running one first.
type Driver struct {
	// OnWrap runs after any tick that lands the cursor on index 0.
	OnWrap func()
	// OnDone runs when a bounded Loop finishes on its own.
	OnDone func()

	cursor Cursor
	timers timer.Service

	task      *timer.Task
	dir       Direction
	remaining int
}

func NewDriver(cursor Cursor, timers timer.Service) *Driver {
	return &Driver{cursor: cursor, timers: timers}
}

// Start steps the cursor once per interval until Stop is called.
func (d *Driver) Start(dir Direction, interval time.Duration) error {
	return d.run(dir, interval, -1)
}

// Loop plays the active group reps times through, one step per interval, and
// then stops. The group length is sampled when the loop starts.
func (d *Driver) Loop(reps int, interval time.Duration, dir Direction) error {
	if interval <= 0 {
		return fmt.Errorf("anim: loop every %v: %w", interval, timer.ErrInvalidInterval)
	}
	ticks := reps * d.cursor.CurrentLen()
	if ticks <= 0 {
		d.Stop()
		return nil
	}
	return d.run(dir, interval, ticks)
}

// Stop cancels the running task, if any.
func (d *Driver) Stop() *Driver {
	if d.task != nil {
		d.task.Cancel()
		d.task = nil
	}
	d.remaining = 0
	return d
}

// SwitchAnimation changes the active group and rewinds it. A running task
// keeps going on the new group.
func (d *Driver) SwitchAnimation(handle int) (*Driver, error) {
	if err := d.cursor.SwitchGroup(handle); err != nil {
		return d, err
	}
	return d, nil
}

// Active reports whether a task is running.
func (d *Driver) Active() bool { return d.task.Active() }

// Direction is the direction of the current or last run.
func (d *Driver) Direction() Direction { return d.dir }

// Remaining is the number of ticks left in a bounded loop, or -1 while
// running unbounded.
func (d *Driver) Remaining() int { return d.remaining }

func (d *Driver) run(dir Direction, interval time.Duration, ticks int) error {
	if interval <= 0 {
		return fmt.Errorf("anim: start every %v: %w", interval, timer.ErrInvalidInterval)
	}
	d.Stop()

	var task *timer.Task
	task, err := d.timers.Every(interval, func() { d.tick(task) })
	if err != nil {
		return fmt.Errorf("anim: schedule: %w", err)
	}
	d.task = task
	d.dir = dir
	d.remaining = ticks
	return nil
}

func (d *Driver) tick(task *timer.Task) {
	var wrapped bool
	if d.dir == Backward {
		wrapped = d.cursor.PreviousFrame()
	} else {
		wrapped = d.cursor.NextFrame()
	}
	if wrapped && d.OnWrap != nil {
		d.OnWrap()
	}
	// OnWrap may have stopped or restarted the driver.
	if d.task != task || d.remaining < 0 {
		return
	}
	d.remaining--
	if d.remaining == 0 {
		d.Stop()
		if d.OnDone != nil {
			d.OnDone()
		}
	}
}
