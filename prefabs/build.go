package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/sprites/anim"
	"github.com/milk9111/sprites/scene"
	"github.com/milk9111/sprites/sheet"
	"github.com/milk9111/sprites/timer"
)

// ImageResolver turns an image key from a prefab into a decoded image.
type ImageResolver func(key string) (sheet.Image, error)

// BuildSheet cuts the sheet image and registers its groups in order.
func BuildSheet(spec SheetSpec, images ImageResolver) (*sheet.Sheet, error) {
	img, err := images(spec.Image)
	if err != nil {
		return nil, fmt.Errorf("prefabs: sheet %q: %w", spec.Name, err)
	}
	sh, err := sheet.New(img, spec.FrameW, spec.FrameH)
	if err != nil {
		return nil, fmt.Errorf("prefabs: sheet %q: %w", spec.Name, err)
	}
	sh.UncheckedToFrame = spec.UncheckedToFrame

	for i, g := range spec.Groups {
		handle, err := addGroup(sh, g)
		if err != nil {
			return nil, fmt.Errorf("prefabs: sheet %q group %d %q: %w", spec.Name, i, g.Name, err)
		}
		if g.Name == "" {
			continue
		}
		if _, dup := sh.Lookup(g.Name); dup {
			return nil, fmt.Errorf("prefabs: sheet %q: duplicate group %q", spec.Name, g.Name)
		}
		if err := sh.NameGroup(handle, g.Name); err != nil {
			return nil, err
		}
	}
	return sh, nil
}

func addGroup(sh *sheet.Sheet, g GroupSpec) (int, error) {
	switch {
	case len(g.Frames) > 0:
		if g.From != nil || g.To != nil {
			return -1, fmt.Errorf("frames and from/to are exclusive")
		}
		if g.Mirror {
			return -1, fmt.Errorf("mirror needs a from/to range")
		}
		return sh.AddGroup(g.Frames...)
	case g.From != nil && g.To != nil:
		if g.Mirror {
			return sh.AddMirroredRange(*g.From, *g.To)
		}
		return sh.AddRange(*g.From, *g.To)
	default:
		return -1, fmt.Errorf("group needs frames or from/to")
	}
}

// Build creates a scene from spec. Animated entities each get their own
// cursor over a shared sheet, and any play or move instructions are started
// on timers.
func Build(spec *SceneSpec, images ImageResolver, timers timer.Service) (*scene.Scene, error) {
	s := scene.New(spec.Scene.Width, spec.Scene.Height, nil)
	if bg := spec.Scene.Background; bg != nil {
		s.Background = bg.Color
	}

	sheets := make(map[string]*sheet.Sheet, len(spec.Sheets))
	for _, ss := range spec.Sheets {
		if _, dup := sheets[ss.Name]; dup {
			return nil, fmt.Errorf("prefabs: duplicate sheet %q", ss.Name)
		}
		sh, err := BuildSheet(ss, images)
		if err != nil {
			return nil, err
		}
		sheets[ss.Name] = sh
	}

	for _, es := range spec.Entities {
		e, err := buildEntity(es, sheets, images, timers)
		if err != nil {
			s.Stop()
			return nil, fmt.Errorf("prefabs: entity %q: %w", es.ID, err)
		}
		if err := s.AddEntity(e); err != nil {
			e.Stop()
			s.Stop()
			return nil, err
		}
	}

	for _, bs := range spec.Collisions {
		if err := s.AddCollision(scene.NewBox(bs.ID, bs.X, bs.Y, bs.W, bs.H)); err != nil {
			s.Stop()
			return nil, err
		}
	}
	return s, nil
}

func buildEntity(es EntitySpec, sheets map[string]*sheet.Sheet, images ImageResolver, timers timer.Service) (*scene.Entity, error) {
	var e *scene.Entity
	switch {
	case es.Sheet != "" && es.Image != "":
		return nil, fmt.Errorf("image and sheet are exclusive")
	case es.Sheet != "":
		shared, ok := sheets[es.Sheet]
		if !ok {
			return nil, fmt.Errorf("unknown sheet %q", es.Sheet)
		}
		e = scene.NewAnimated(es.ID, es.X, es.Y, shared.Clone(), es.W, es.H, timers)
		if es.Group != "" {
			handle, ok := e.Sheet.Lookup(es.Group)
			if !ok {
				return nil, fmt.Errorf("unknown group %q in sheet %q", es.Group, es.Sheet)
			}
			if _, err := e.Anim.SwitchAnimation(handle); err != nil {
				return nil, err
			}
		}
		if es.Play != nil {
			if err := play(e.Anim, *es.Play); err != nil {
				return nil, err
			}
		}
	case es.Image != "":
		if es.Play != nil || es.Group != "" {
			return nil, fmt.Errorf("static image %q cannot play", es.Image)
		}
		img, err := images(es.Image)
		if err != nil {
			return nil, err
		}
		e = scene.NewSprite(es.ID, es.X, es.Y, img, es.W, es.H)
	default:
		return nil, fmt.Errorf("needs an image or a sheet")
	}

	if es.Move != nil {
		curve, err := scene.ParseCurve(es.Move.Curve)
		if err != nil {
			e.Stop()
			return nil, err
		}
		err = e.MoveToTimed(timers, es.Move.ToX, es.Move.ToY,
			ms(es.Move.DurationMS), ms(es.Move.IntervalMS), curve)
		if err != nil {
			e.Stop()
			return nil, err
		}
	}
	return e, nil
}

func play(d *anim.Driver, ps PlaySpec) error {
	dir, err := anim.ParseDirection(ps.Direction)
	if err != nil {
		return err
	}
	if ps.Loop > 0 {
		return d.Loop(ps.Loop, ms(ps.IntervalMS), dir)
	}
	return d.Start(dir, ms(ps.IntervalMS))
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
