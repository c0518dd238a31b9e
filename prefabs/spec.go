package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BindingSpec is the default key-binding table. Order matters: bindings are
// registered top to bottom and the first entry for a name wins.
type BindingSpec struct {
	Bindings []KeyBindingSpec `yaml:"bindings"`
}

type KeyBindingSpec struct {
	Name string `yaml:"name"`
	Key  int    `yaml:"key"`
}

func LoadBindingSpec() (*BindingSpec, error) {
	spec, err := LoadSpec[BindingSpec]("bindings.yaml")
	if err != nil {
		return nil, err
	}
	for i, b := range spec.Bindings {
		if b.Name == "" {
			return nil, fmt.Errorf("prefabs: bindings.yaml: entry %d has no name", i)
		}
	}
	return &spec, nil
}

// MovementSpec holds the movement controller tunables. Zero fields fall back
// to the defaults below.
type MovementSpec struct {
	JumpVelocity float64 `yaml:"jump_velocity"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	ClimbSpeed   float64 `yaml:"climb_speed"`
	Gravity      float64 `yaml:"gravity"`
}

const (
	DefaultJumpVelocity = 100.0
	DefaultWalkSpeed    = 20.0
	DefaultClimbSpeed   = 20.0
	DefaultGravity      = -200.0
)

func LoadMovementSpec() (*MovementSpec, error) {
	data, err := Load("movement.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load movement.yaml: %w", err)
	}
	return ParseMovementSpec(data)
}

func ParseMovementSpec(data []byte) (*MovementSpec, error) {
	var spec MovementSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal movement spec: %w", err)
	}
	if spec.JumpVelocity == 0 {
		spec.JumpVelocity = DefaultJumpVelocity
	}
	if spec.WalkSpeed == 0 {
		spec.WalkSpeed = DefaultWalkSpeed
	}
	if spec.ClimbSpeed == 0 {
		spec.ClimbSpeed = DefaultClimbSpeed
	}
	if spec.Gravity == 0 {
		spec.Gravity = DefaultGravity
	}
	return &spec, nil
}

// DebugDrawSpec configures the box overlay drawn by the game binary.
type DebugDrawSpec struct {
	Solid     YAMLColor `yaml:"solid"`
	Trigger   YAMLColor `yaml:"trigger"`
	Climbable YAMLColor `yaml:"climbable"`
	Body      YAMLColor `yaml:"body"`
	Contact   YAMLColor `yaml:"contact"`
}

func LoadDebugDrawSpec() (*DebugDrawSpec, error) {
	spec, err := LoadSpec[DebugDrawSpec]("debug_draw.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
