package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus a map of component name to
// component spec.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BoxComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type MotionComponentSpec struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Ducking   bool   `yaml:"ducking"`
}

type ClimberComponentSpec struct {
	CanClimb bool `yaml:"can_climb"`
}

type ColliderComponentSpec struct {
	Trigger bool `yaml:"trigger"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing bool                                 `yaml:"playing"`
}

type CollisionScriptComponentSpec struct {
	Script string `yaml:"script"`
}

type ControllerComponentSpec struct {
	FixedSubjectBox   bool `yaml:"fixed_subject_box"`
	SkipDuckAnimation bool `yaml:"skip_duck_animation"`
}

type HeldKeysComponentSpec struct {
	Keys []int `yaml:"keys"`
}
