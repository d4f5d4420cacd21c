package sheet

import "fmt"

// Group returns the active group handle.
func (s *Sheet) Group() int { return s.current }

// Index returns the cursor position within the active group.
func (s *Sheet) Index() int { return s.index }

// CurrentLen is the length of the active group.
func (s *Sheet) CurrentLen() int { return s.GroupLen(s.current) }

// CurrentFrame resolves the cursor. ok is false when no group exists yet or
// the cursor was moved out of range with UncheckedToFrame set.
func (s *Sheet) CurrentFrame() (Frame, bool) {
	if s.current < 0 || s.current >= len(s.groups) {
		return Frame{}, false
	}
	frames := s.groups[s.current].frames
	if s.index < 0 || s.index >= len(frames) {
		return Frame{}, false
	}
	return frames[s.index], true
}

// SwitchGroup makes handle the active group and rewinds to its first frame.
func (s *Sheet) SwitchGroup(handle int) error {
	if err := s.checkGroup(handle); err != nil {
		return err
	}
	s.current = handle
	s.index = 0
	return nil
}

// ToFrame moves the cursor within the active group.
func (s *Sheet) ToFrame(i int) error {
	if !s.UncheckedToFrame {
		if n := s.CurrentLen(); i < 0 || i >= n {
			return fmt.Errorf("sheet: frame %d of group %d (len %d): %w", i, s.current, n, ErrFrameIndexOutOfRange)
		}
	}
	s.index = i
	return nil
}

// NextFrame steps forward, wrapping at the end of the group. It reports
// whether the cursor landed on index 0.
func (s *Sheet) NextFrame() bool {
	n := s.CurrentLen()
	if n == 0 {
		return false
	}
	s.index++
	if s.index >= n {
		s.index = 0
	}
	return s.index == 0
}

// PreviousFrame steps backward, wrapping below 0 to the last frame. Like
// NextFrame it reports whether the cursor landed on index 0, so stepping
// from 1 to 0 returns true and wrapping from 0 to the end returns false.
func (s *Sheet) PreviousFrame() bool {
	n := s.CurrentLen()
	if n == 0 {
		return false
	}
	s.index--
	if s.index < 0 {
		s.index = n - 1
	}
	return s.index == 0
}
