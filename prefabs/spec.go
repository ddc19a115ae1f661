package prefabs

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// SceneSpec describes a set of bodies and the shapes attached to them.
type SceneSpec struct {
	Name   string     `yaml:"name"`
	Bodies []BodySpec `yaml:"bodies"`
}

// LoadSpec decodes a prefab file into T. Keys that T does not declare are
// rejected so a misspelled field fails the load instead of being dropped.
// An empty file decodes to the zero T.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	data, err := Load(filename)
	if err != nil {
		return spec, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		var zero T
		return zero, fmt.Errorf("prefabs: decode %s: %w", filename, err)
	}
	return spec, nil
}

func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(cleanPrefabPath(filename), ".yaml")
	}
	return &spec, nil
}

const (
	BodyStatic    = "static"
	BodyKinematic = "kinematic"
)

type BodySpec struct {
	Name string `yaml:"name"`
	// Type is "static" (the default) or "kinematic".
	Type            string      `yaml:"type"`
	Position        VectorSpec  `yaml:"position"`
	Angle           float64     `yaml:"angle"`
	Velocity        VectorSpec  `yaml:"velocity"`
	AngularVelocity float64     `yaml:"angular_velocity"`
	Shapes          []ShapeSpec `yaml:"shapes"`
}

const (
	ShapeCircle  = "circle"
	ShapeSegment = "segment"
	ShapePoly    = "poly"
	ShapeBox     = "box"
)

type ShapeSpec struct {
	Kind string `yaml:"kind"`

	Radius float64      `yaml:"radius"`
	Offset VectorSpec   `yaml:"offset"`
	A      VectorSpec   `yaml:"a"`
	B      VectorSpec   `yaml:"b"`
	Verts  []VectorSpec `yaml:"verts"`
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	// BB, when set on a box, takes precedence over Width and Height.
	BB *BBSpec `yaml:"bb"`

	Elasticity      float64    `yaml:"elasticity"`
	Friction        float64    `yaml:"friction"`
	SurfaceVelocity VectorSpec `yaml:"surface_velocity"`
	CollisionType   string     `yaml:"collision_type"`
	Filter          FilterSpec `yaml:"filter"`
	Color           *Color     `yaml:"color"`
}

type FilterSpec struct {
	Group uint `yaml:"group"`
	// Layers lists the layer bits the shape occupies. Empty means all layers.
	Layers []uint `yaml:"layers"`
	Sensor bool   `yaml:"sensor"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type BBSpec struct {
	L float64 `yaml:"l"`
	B float64 `yaml:"b"`
	R float64 `yaml:"r"`
	T float64 `yaml:"t"`
}

// Color is a shape tint. It is written either as a colornames name such as
// "tomato" or as hex #rrggbb or #rrggbbaa.
type Color struct {
	color.NRGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if value.Kind != yaml.ScalarNode || value.Decode(&s) != nil {
		return fmt.Errorf("%w: line %d: want a name or hex string", ErrInvalidColor, value.Line)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

// ParseColor resolves a color name or a hex string.
func ParseColor(s string) (color.NRGBA, error) {
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || (len(raw) != 3 && len(raw) != 4) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c := color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xff}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}
