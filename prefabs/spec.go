package prefabs

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec, err := ParseSpec[T](data)
	if err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func ParseSpec[T any](data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

type SceneSpec struct {
	Scene      SceneInfoSpec `yaml:"scene"`
	Sheets     []SheetSpec   `yaml:"sheets"`
	Entities   []EntitySpec  `yaml:"entities"`
	Collisions []BoxSpec     `yaml:"collisions"`
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SceneInfoSpec struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Background *YAMLColor `yaml:"background"`
}

type SheetSpec struct {
	Name             string      `yaml:"name"`
	Image            string      `yaml:"image"`
	FrameW           int         `yaml:"frame_w"`
	FrameH           int         `yaml:"frame_h"`
	UncheckedToFrame bool        `yaml:"unchecked_to_frame"`
	Groups           []GroupSpec `yaml:"groups"`
}

// GroupSpec is either an explicit frame list or an inclusive from..to range.
type GroupSpec struct {
	Name   string `yaml:"name"`
	Frames []int  `yaml:"frames"`
	From   *int   `yaml:"from"`
	To     *int   `yaml:"to"`
	Mirror bool   `yaml:"mirror"`
}

type EntitySpec struct {
	ID    string    `yaml:"id"`
	X     float64   `yaml:"x"`
	Y     float64   `yaml:"y"`
	W     float64   `yaml:"w"`
	H     float64   `yaml:"h"`
	Image string    `yaml:"image"`
	Sheet string    `yaml:"sheet"`
	Group string    `yaml:"group"`
	Play  *PlaySpec `yaml:"play"`
	Move  *MoveSpec `yaml:"move"`
}

// PlaySpec starts an entity's animation. Loop > 0 plays that many cycles and
// stops; otherwise the animation runs until stopped.
type PlaySpec struct {
	Direction  string `yaml:"direction"`
	IntervalMS int    `yaml:"interval_ms"`
	Loop       int    `yaml:"loop"`
}

type MoveSpec struct {
	ToX        float64 `yaml:"to_x"`
	ToY        float64 `yaml:"to_y"`
	DurationMS int     `yaml:"duration_ms"`
	IntervalMS int     `yaml:"interval_ms"`
	Curve      string  `yaml:"curve"`
}

type BoxSpec struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	W  float64 `yaml:"w"`
	H  float64 `yaml:"h"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return named, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	switch len(s) {
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return nil, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: a}, nil
	default:
		return nil, fmt.Errorf("invalid color format: %s", s)
	}
}
