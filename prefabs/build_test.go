package prefabs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/sprites/scene"
	"github.com/milk9111/sprites/sheet"
	"github.com/milk9111/sprites/timer"
)

func testImages() ImageResolver {
	imgs := map[string]sheet.Image{
		"walker": image.NewRGBA(image.Rect(0, 0, 48, 72)),
		"torch":  image.NewRGBA(image.Rect(0, 0, 32, 16)),
		"crate":  image.NewRGBA(image.Rect(0, 0, 16, 16)),
	}
	return func(key string) (sheet.Image, error) {
		img, ok := imgs[key]
		if !ok {
			return nil, fmt.Errorf("no image %q", key)
		}
		return img, nil
	}
}

func TestBuildEmbeddedScene(t *testing.T) {
	spec, err := LoadSceneSpec("scene.yaml")
	if err != nil {
		t.Fatalf("LoadSceneSpec failed: %v", err)
	}
	clock := timer.NewScheduler()
	s, err := Build(spec, testImages(), clock)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s.Width != 320 || s.Height != 180 || s.Background == nil {
		t.Fatalf("unexpected scene header %vx%v bg=%v", s.Width, s.Height, s.Background)
	}
	if s.Len() != len(spec.Entities) {
		t.Fatalf("expected %d entities, got %d", len(spec.Entities), s.Len())
	}
	if len(s.Collisions()) != 1 {
		t.Fatalf("expected one collision box, got %d", len(s.Collisions()))
	}

	hero, ok := s.Entity("hero")
	if !ok || hero.Kind != scene.Animated {
		t.Fatalf("hero should be animated")
	}
	guard, _ := s.Entity("guard")
	if hero.Sheet == guard.Sheet {
		t.Fatalf("entities must not share a cursor")
	}
	idle, _ := guard.Sheet.Lookup("idle")
	if guard.Sheet.Group() != idle {
		t.Fatalf("guard should start on idle, got group %d", guard.Sheet.Group())
	}
	if !hero.Anim.Active() || !hero.Moving() {
		t.Fatalf("hero should be playing and moving")
	}

	clock.Advance(5 * time.Second)
	if math.Abs(hero.X-260) > 1e-6 {
		t.Fatalf("hero should arrive at x=260, got %v", hero.X)
	}
	torch, _ := s.Entity("torch_right")
	if torch.Anim.Active() {
		t.Fatalf("bounded loop should have finished")
	}
	crate, _ := s.Entity("crate")
	if crate.Kind != scene.Static || crate.W != 16 {
		t.Fatalf("unexpected crate %+v", crate.Rect)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
		text string
	}{
		{
			name: "frame_too_big",
			yaml: "sheets: [{name: s, image: crate, frame_w: 32, frame_h: 32}]",
			want: sheet.ErrInvalidFrameSize,
		},
		{
			name: "group_index_out_of_range",
			yaml: "sheets: [{name: s, image: torch, frame_w: 8, frame_h: 16, groups: [{frames: [0, 4]}]}]",
			want: sheet.ErrFrameIndexOutOfRange,
		},
		{
			name: "reversed_range",
			yaml: "sheets: [{name: s, image: torch, frame_w: 8, frame_h: 16, groups: [{from: 3, to: 1}]}]",
			want: sheet.ErrInvalidRange,
		},
		{
			name: "unknown_group",
			yaml: "sheets: [{name: s, image: torch, frame_w: 8, frame_h: 16, groups: [{name: a, from: 0, to: 1}]}]\nentities: [{id: e, sheet: s, group: b}]",
			text: `unknown group "b"`,
		},
		{
			name: "missing_image",
			yaml: "entities: [{id: e, image: nope}]",
			text: `no image "nope"`,
		},
		{
			name: "duplicate_entity",
			yaml: "entities: [{id: e, image: crate}, {id: e, image: crate}]",
			want: scene.ErrDuplicateEntity,
		},
		{
			name: "bad_interval",
			yaml: "sheets: [{name: s, image: torch, frame_w: 8, frame_h: 16, groups: [{from: 0, to: 3}]}]\nentities: [{id: e, sheet: s, play: {interval_ms: 0}}]",
			want: timer.ErrInvalidInterval,
		},
		{
			name: "mirror_frames_list",
			yaml: "sheets: [{name: s, image: torch, frame_w: 8, frame_h: 16, groups: [{frames: [1], mirror: true}]}]",
			text: "mirror needs a from/to range",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := ParseSpec[SceneSpec]([]byte(c.yaml))
			if err != nil {
				t.Fatalf("ParseSpec failed: %v", err)
			}
			_, err = Build(&spec, testImages(), timer.NewScheduler())
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if c.text != "" && !strings.Contains(err.Error(), c.text) {
				t.Fatalf("expected error containing %q, got %v", c.text, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}, false},
		{"102030", color.NRGBA{R: 16, G: 32, B: 48, A: 255}, false},
		{"#ff000080", color.NRGBA{R: 255, A: 128}, false},
		{"#12", color.NRGBA{}, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if (err != nil) != c.err {
			t.Fatalf("ParseColor(%q) error = %v", c.in, err)
		}
		if err == nil && got != c.want {
			t.Fatalf("ParseColor(%q) = %v, expected %v", c.in, got, c.want)
		}
	}

	named, err := ParseColor("CornflowerBlue")
	if err != nil {
		t.Fatalf("named colour failed: %v", err)
	}
	if r, g, b, _ := named.RGBA(); r>>8 != 100 || g>>8 != 149 || b>>8 != 237 {
		t.Fatalf("unexpected cornflowerblue %v", named)
	}
}
