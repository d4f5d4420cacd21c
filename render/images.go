package render

import (
	"fmt"
	"sort"

	"github.com/milk9111/sprites/sheet"
)

// Images is a keyed store of decoded images that prefabs refer to by name.
type Images struct {
	images map[string]sheet.Image
}

func NewImages() *Images {
	return &Images{images: make(map[string]sheet.Image)}
}

// Register stores an image by key, replacing any previous one.
func (s *Images) Register(key string, img sheet.Image) {
	if key == "" || img == nil {
		return
	}
	s.images[key] = img
}

// Get returns a registered image.
func (s *Images) Get(key string) (sheet.Image, bool) {
	img, ok := s.images[key]
	return img, ok
}

// Resolve is Get with an error, shaped for prefabs.ImageResolver.
func (s *Images) Resolve(key string) (sheet.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	img, ok := s.images[key]
	if !ok {
		return nil, fmt.Errorf("render: image %q not registered", key)
	}
	return img, nil
}

// Keys lists registered keys in sorted order.
func (s *Images) Keys() []string {
	keys := make([]string, 0, len(s.images))
	for k := range s.images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
