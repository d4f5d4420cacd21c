package sheet

import "fmt"

type group struct {
	name    string
	indices []int
	frames  []Frame
}

// Sheet is a sprite sheet cut into a frame table, with an ordered registry of
// frame groups and a playback cursor over them.
type Sheet struct {
	Image  Image
	FrameW int
	FrameH int

	// UncheckedToFrame restores the legacy ToFrame behaviour: the index is
	// stored without validation and CurrentFrame reports no frame until a
	// valid index is reached again.
	UncheckedToFrame bool

	frames []Frame
	groups []group
	names  map[string]int

	current int
	index   int
}

// New builds the frame table for img once. The image must already be decoded.
func New(img Image, frameW, frameH int) (*Sheet, error) {
	frames, err := BuildFrames(img, frameW, frameH)
	if err != nil {
		return nil, err
	}
	return &Sheet{
		Image:  img,
		FrameW: frameW,
		FrameH: frameH,
		frames: frames,
		names:  make(map[string]int),
	}, nil
}

// Clone returns a sheet sharing this sheet's frames and groups with its own
// cursor at the start of the first group. Groups added to either sheet later
// are not seen by the other.
func (s *Sheet) Clone() *Sheet {
	names := make(map[string]int, len(s.names))
	for k, v := range s.names {
		names[k] = v
	}
	return &Sheet{
		Image:            s.Image,
		FrameW:           s.FrameW,
		FrameH:           s.FrameH,
		UncheckedToFrame: s.UncheckedToFrame,
		frames:           s.frames,
		groups:           append([]group(nil), s.groups...),
		names:            names,
	}
}

// FrameCount is the number of frames in the table.
func (s *Sheet) FrameCount() int { return len(s.frames) }

// Frame returns table entry i.
func (s *Sheet) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(s.frames) {
		return Frame{}, fmt.Errorf("sheet: frame %d of %d: %w", i, len(s.frames), ErrFrameIndexOutOfRange)
	}
	return s.frames[i], nil
}

// Frames returns a copy of the frame table.
func (s *Sheet) Frames() []Frame {
	return append([]Frame(nil), s.frames...)
}

// AddGroup appends a group made of the given table indices, in order.
// Indices may repeat. The returned handle is the group's position.
func (s *Sheet) AddGroup(indices ...int) (int, error) {
	g := group{
		indices: make([]int, 0, len(indices)),
		frames:  make([]Frame, 0, len(indices)),
	}
	for _, i := range indices {
		f, err := s.Frame(i)
		if err != nil {
			return -1, err
		}
		g.indices = append(g.indices, i)
		g.frames = append(g.frames, f)
	}
	s.groups = append(s.groups, g)
	return len(s.groups) - 1, nil
}

// AddRange appends a group holding table entries start..end inclusive.
func (s *Sheet) AddRange(start, end int) (int, error) {
	indices, err := s.span(start, end)
	if err != nil {
		return -1, err
	}
	return s.AddGroup(indices...)
}

// AddMirroredRange is AddRange with every frame flipped horizontally.
func (s *Sheet) AddMirroredRange(start, end int) (int, error) {
	handle, err := s.AddRange(start, end)
	if err != nil {
		return -1, err
	}
	g := &s.groups[handle]
	for i, f := range g.frames {
		g.frames[i] = f.Mirror()
	}
	return handle, nil
}

func (s *Sheet) span(start, end int) ([]int, error) {
	if start > end || start < 0 || end >= len(s.frames) {
		return nil, fmt.Errorf("sheet: range %d..%d of %d frames: %w", start, end, len(s.frames), ErrInvalidRange)
	}
	indices := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		indices = append(indices, i)
	}
	return indices, nil
}

// NameGroup attaches a lookup name to a group. Renaming replaces the old name.
func (s *Sheet) NameGroup(handle int, name string) error {
	if err := s.checkGroup(handle); err != nil {
		return err
	}
	if old := s.groups[handle].name; old != "" {
		delete(s.names, old)
	}
	s.groups[handle].name = name
	if name != "" {
		s.names[name] = handle
	}
	return nil
}

// Lookup finds a group handle by name.
func (s *Sheet) Lookup(name string) (int, bool) {
	h, ok := s.names[name]
	return h, ok
}

// GroupCount is the number of registered groups.
func (s *Sheet) GroupCount() int { return len(s.groups) }

// GroupLen returns the number of frames in a group, or 0 for an invalid handle.
func (s *Sheet) GroupLen(handle int) int {
	if handle < 0 || handle >= len(s.groups) {
		return 0
	}
	return len(s.groups[handle].frames)
}

// GroupFrames returns a copy of the resolved frames of a group.
func (s *Sheet) GroupFrames(handle int) ([]Frame, error) {
	if err := s.checkGroup(handle); err != nil {
		return nil, err
	}
	return append([]Frame(nil), s.groups[handle].frames...), nil
}

// GroupIndices returns the table indices a group was built from.
func (s *Sheet) GroupIndices(handle int) ([]int, error) {
	if err := s.checkGroup(handle); err != nil {
		return nil, err
	}
	return append([]int(nil), s.groups[handle].indices...), nil
}

func (s *Sheet) checkGroup(handle int) error {
	if handle < 0 || handle >= len(s.groups) {
		return fmt.Errorf("sheet: group %d of %d: %w", handle, len(s.groups), ErrGroupIndexOutOfRange)
	}
	return nil
}
