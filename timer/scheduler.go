// Package timer schedules repeating callbacks against a clock that the game
// loop advances explicitly. Nothing runs on other goroutines: every callback
// fires inside Advance, in deadline order.
package timer

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInterval = errors.New("timer: interval must be positive")
	ErrNilCallback     = errors.New("timer: nil callback")
)

// Service schedules repeating callbacks.
type Service interface {
	Every(interval time.Duration, fn func()) (*Task, error)
}

// Task is a cancellable handle for a repeating callback.
type Task struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	active   bool
}

// Cancel stops the task. It is safe to call more than once, on a nil task,
// and from inside the task's own callback.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.active = false
}

// Active reports whether the task will fire again.
func (t *Task) Active() bool {
	return t != nil && t.active
}

// Interval returns the task period.
func (t *Task) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.interval
}

// Scheduler is a Service driven by Advance.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every schedules fn to run once per interval, first at now+interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) (*Task, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("timer: every %v: %w", interval, ErrInvalidInterval)
	}
	if fn == nil {
		return nil, ErrNilCallback
	}
	t := &Task{
		interval: interval,
		next:     s.now + interval,
		fn:       fn,
		active:   true,
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Now is the total time advanced so far.
func (s *Scheduler) Now() time.Duration { return s.now }

// Len is the number of active tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.active {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and fires every callback that falls
// due, earliest deadline first. Tasks due at the same instant fire in the
// order they were scheduled. Tasks scheduled from a callback start counting
// from that callback's deadline.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		t.fn()
	}
	s.now = target
	s.compact()
}

func (s *Scheduler) nextDue(target time.Duration) *Task {
	var due *Task
	for _, t := range s.tasks {
		if !t.active || t.next > target {
			continue
		}
		if due == nil || t.next < due.next {
			due = t
		}
	}
	return due
}

func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.active {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
