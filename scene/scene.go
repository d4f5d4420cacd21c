// Package scene holds renderable entities and draws them back to front.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

var (
	ErrDuplicateEntity = errors.New("scene: duplicate id")
	ErrEntityNotFound  = errors.New("scene: id not found")
)

// Scene is a keyed collection of entities plus a list of collision boxes.
// Collision boxes are stored only; nothing resolves them.
type Scene struct {
	Width      float64
	Height     float64
	Background color.Color

	entities   map[string]*Entity
	order      []*Entity
	collisions map[string]*Box
	boxes      []*Box
	nextSeq    uint64
}

func New(width, height float64, background color.Color) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Background: background,
		entities:   make(map[string]*Entity),
		collisions: make(map[string]*Box),
	}
}

// AddEntity adds e and makes this scene its parent.
func (s *Scene) AddEntity(e *Entity) error {
	if e == nil {
		return fmt.Errorf("scene: nil entity")
	}
	if _, ok := s.entities[e.ID]; ok {
		return fmt.Errorf("scene: add %q: %w", e.ID, ErrDuplicateEntity)
	}
	s.nextSeq++
	e.seq = s.nextSeq
	e.parent = s
	s.entities[e.ID] = e
	s.order = append(s.order, e)
	return nil
}

// RemoveEntity detaches the entity with the given id. Its tasks keep
// running; call Entity.Stop to end them.
func (s *Scene) RemoveEntity(id string) error {
	e, ok := s.entities[id]
	if !ok {
		return fmt.Errorf("scene: remove %q: %w", id, ErrEntityNotFound)
	}
	delete(s.entities, id)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	e.parent = nil
	return nil
}

func (s *Scene) Entity(id string) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

func (s *Scene) Len() int { return len(s.order) }

// Entities returns the entities in draw order.
func (s *Scene) Entities() []*Entity {
	s.sort()
	return append([]*Entity(nil), s.order...)
}

func (s *Scene) AddCollision(b *Box) error {
	if b == nil {
		return fmt.Errorf("scene: nil collision box")
	}
	if _, ok := s.collisions[b.ID]; ok {
		return fmt.Errorf("scene: add collision %q: %w", b.ID, ErrDuplicateEntity)
	}
	s.collisions[b.ID] = b
	s.boxes = append(s.boxes, b)
	return nil
}

func (s *Scene) RemoveCollision(id string) error {
	b, ok := s.collisions[id]
	if !ok {
		return fmt.Errorf("scene: remove collision %q: %w", id, ErrEntityNotFound)
	}
	delete(s.collisions, id)
	for i, o := range s.boxes {
		if o == b {
			s.boxes = append(s.boxes[:i], s.boxes[i+1:]...)
			break
		}
	}
	return nil
}

// Collisions returns the collision boxes in insertion order.
func (s *Scene) Collisions() []*Box {
	return append([]*Box(nil), s.boxes...)
}

// Stop cancels every entity task. Used before a scene is discarded.
func (s *Scene) Stop() {
	for _, e := range s.order {
		e.Stop()
	}
	for _, b := range s.boxes {
		b.StopMoving()
	}
}

// Render fills the background and draws every entity ordered by bottom edge,
// so lower entities overlap higher ones.
func (s *Scene) Render(r Renderer) {
	if s.Background != nil {
		r.Fill(s.Background)
	}
	s.sort()
	for _, e := range s.order {
		e.Render(r)
	}
}

func (s *Scene) sort() {
	sort.SliceStable(s.order, func(i, j int) bool {
		bi, bj := s.order[i].Bottom(), s.order[j].Bottom()
		if bi != bj {
			return bi < bj
		}
		return s.order[i].seq < s.order[j].seq
	})
}
