package sheet

import (
	"errors"
	"image"
	"testing"
)

func newImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func mustSheet(t *testing.T, w, h, fw, fh int) *Sheet {
	t.Helper()
	s, err := New(newImage(w, h), fw, fh)
	if err != nil {
		t.Fatalf("New(%dx%d, %dx%d) failed: %v", w, h, fw, fh, err)
	}
	return s
}

func TestBuildFramesGrid(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		fw, fh int
		cols   int
		rows   int
	}{
		{"exact_fit", 100, 60, 20, 20, 5, 3},
		{"partial_edges", 105, 59, 20, 20, 5, 2},
		{"single_frame", 32, 32, 32, 32, 1, 1},
		{"one_row", 128, 16, 16, 16, 8, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			frames, err := BuildFrames(newImage(c.w, c.h), c.fw, c.fh)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(frames) != c.cols*c.rows {
				t.Fatalf("expected %d frames, got %d", c.cols*c.rows, len(frames))
			}
			for i, f := range frames {
				wantX := (i % c.cols) * c.fw
				wantY := (i / c.cols) * c.fh
				if f.X != wantX || f.Y != wantY || f.W != c.fw || f.H != c.fh {
					t.Fatalf("frame %d: expected (%d,%d,%d,%d), got %+v", i, wantX, wantY, c.fw, c.fh, f)
				}
			}
		})
	}
}

func TestBuildFramesInvalidSize(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		fw, fh int
	}{
		{"too_wide", 10, 40, 20, 20},
		{"too_tall", 40, 10, 20, 20},
		{"zero_width", 40, 40, 0, 20},
		{"negative_height", 40, 40, 20, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(newImage(c.w, c.h), c.fw, c.fh)
			if !errors.Is(err, ErrInvalidFrameSize) {
				t.Fatalf("expected ErrInvalidFrameSize, got %v", err)
			}
		})
	}
}

func TestAddGroup(t *testing.T) {
	s := mustSheet(t, 100, 60, 20, 20)

	h, err := s.AddGroup(4, 0, 4, 14)
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if h != 0 {
		t.Fatalf("expected first handle 0, got %d", h)
	}
	frames, _ := s.GroupFrames(h)
	want := []int{4, 0, 4, 14}
	for k, idx := range want {
		f, _ := s.Frame(idx)
		if frames[k] != f {
			t.Fatalf("position %d: expected table frame %d %+v, got %+v", k, idx, f, frames[k])
		}
	}

	if _, err := s.AddGroup(1, 15); !errors.Is(err, ErrFrameIndexOutOfRange) {
		t.Fatalf("expected ErrFrameIndexOutOfRange, got %v", err)
	}
	if _, err := s.AddGroup(-1); !errors.Is(err, ErrFrameIndexOutOfRange) {
		t.Fatalf("expected ErrFrameIndexOutOfRange for negative index, got %v", err)
	}
	if s.GroupCount() != 1 {
		t.Fatalf("failed AddGroup must not register a group, count=%d", s.GroupCount())
	}
}

func TestAddRange(t *testing.T) {
	s := mustSheet(t, 100, 60, 20, 20)

	cases := []struct {
		name       string
		start, end int
		err        error
	}{
		{"middle", 3, 7, nil},
		{"single", 9, 9, nil},
		{"whole_table", 0, 14, nil},
		{"reversed", 5, 2, ErrInvalidRange},
		{"end_past_table", 10, 15, ErrInvalidRange},
		{"negative_start", -1, 3, ErrInvalidRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := s.AddRange(c.start, c.end)
			if c.err != nil {
				if !errors.Is(err, c.err) {
					t.Fatalf("expected %v, got %v", c.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.GroupLen(h) != c.end-c.start+1 {
				t.Fatalf("expected len %d, got %d", c.end-c.start+1, s.GroupLen(h))
			}
			frames, _ := s.GroupFrames(h)
			for k, f := range frames {
				want, _ := s.Frame(c.start + k)
				if f != want {
					t.Fatalf("position %d: expected %+v, got %+v", k, want, f)
				}
			}
		})
	}
}

func TestAddMirroredRange(t *testing.T) {
	s := mustSheet(t, 100, 60, 20, 20)

	h, err := s.AddMirroredRange(5, 6)
	if err != nil {
		t.Fatalf("AddMirroredRange failed: %v", err)
	}
	frames, _ := s.GroupFrames(h)
	want := []Frame{{X: 20, Y: 20, W: -20, H: 20}, {X: 40, Y: 20, W: -20, H: 20}}
	for k := range want {
		if frames[k] != want[k] {
			t.Fatalf("position %d: expected %+v, got %+v", k, want[k], frames[k])
		}
		if !frames[k].Mirrored() {
			t.Fatalf("position %d should be mirrored", k)
		}
	}
	if got := frames[0].Rect(); got != image.Rect(0, 20, 20, 40) {
		t.Fatalf("mirrored frame should cover the original region, got %v", got)
	}

	indices, _ := s.GroupIndices(h)
	if len(indices) != 2 || indices[0] != 5 || indices[1] != 6 {
		t.Fatalf("unexpected indices %v", indices)
	}
}

func TestNamedGroups(t *testing.T) {
	s := mustSheet(t, 100, 60, 20, 20)
	walk, _ := s.AddRange(0, 4)
	idle, _ := s.AddGroup(5)

	if err := s.NameGroup(walk, "walk"); err != nil {
		t.Fatalf("NameGroup failed: %v", err)
	}
	if err := s.NameGroup(idle, "idle"); err != nil {
		t.Fatalf("NameGroup failed: %v", err)
	}
	if h, ok := s.Lookup("walk"); !ok || h != walk {
		t.Fatalf("expected walk=%d, got %d ok=%v", walk, h, ok)
	}

	if err := s.NameGroup(walk, "run"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if _, ok := s.Lookup("walk"); ok {
		t.Fatalf("old name should be released after rename")
	}
	if err := s.NameGroup(7, "missing"); !errors.Is(err, ErrGroupIndexOutOfRange) {
		t.Fatalf("expected ErrGroupIndexOutOfRange, got %v", err)
	}
}

func TestClone(t *testing.T) {
	s := mustSheet(t, 100, 60, 20, 20)
	walk, _ := s.AddRange(0, 4)
	_ = s.NameGroup(walk, "walk")
	s.NextFrame()

	c := s.Clone()
	if c.Index() != 0 || c.Group() != 0 {
		t.Fatalf("clone should start at the beginning, got %d/%d", c.Group(), c.Index())
	}
	if h, ok := c.Lookup("walk"); !ok || h != walk {
		t.Fatalf("clone should keep group names")
	}

	c.NextFrame()
	c.NextFrame()
	if s.Index() != 1 || c.Index() != 2 {
		t.Fatalf("cursors should be independent, got %d and %d", s.Index(), c.Index())
	}

	extra, _ := c.AddGroup(14)
	if s.GroupCount() != 1 || c.GroupLen(extra) != 1 {
		t.Fatalf("groups added to the clone must not leak into the original")
	}
}
