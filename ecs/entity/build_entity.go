package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":       addPlayerTag,
	"transform":        addTransform,
	"box":              addBox,
	"velocity":         addVelocity,
	"motion":           addMotion,
	"lifecycle":        addLifecycle,
	"climber":          addClimber,
	"climbable":        addClimbable,
	"collider":         addCollider,
	"gravity_scale":    addGravityScale,
	"animation":        addAnimation,
	"collision_script": addCollisionScript,
	"controller":       addController,
	"held_keys":        addHeldKeys,
}

// Components not listed here are built afterwards in name order.
var componentBuildOrder = []string{
	"player_tag",
	"transform",
	"box",
	"velocity",
	"motion",
	"lifecycle",
	"climber",
	"climbable",
	"collider",
	"gravity_scale",
	"animation",
	"collision_script",
	"controller",
	"held_keys",
}

// BuildEntity creates an entity from a prefab file. On any component error
// the half-built entity is destroyed.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

// BuildEntityAt builds a prefab and moves it to (x, y).
func BuildEntityAt(w *ecs.World, prefabPath string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: override transform: %w", prefabPath, err)
	}
	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addClimbable(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ClimbableComponent.Kind(), &component.Climbable{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

func addBox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BoxComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode box spec: %w", err)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("box has negative size %gx%g", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{Width: spec.Width, Height: spec.Height})
}

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VelocityComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.X, Y: spec.Y})
}

func addMotion(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MotionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode motion spec: %w", err)
	}
	m := &component.Motion{Ducking: spec.Ducking}
	if spec.Primary != "" {
		if m.Primary, err = component.ParsePrimaryState(spec.Primary); err != nil {
			return err
		}
	}
	if spec.Secondary != "" {
		if m.Secondary, err = component.ParseSecondaryState(spec.Secondary); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.MotionComponent.Kind(), m)
}

func addLifecycle(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.LifecycleComponent.Kind(), &component.Lifecycle{})
}

func addClimber(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ClimberComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode climber spec: %w", err)
	}
	return ecs.Add(w, e, component.ClimberComponent.Kind(), &component.Climber{CanClimb: spec.CanClimb})
}

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Trigger: spec.Trigger})
}

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GravityScaleComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity_scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	clips := make(map[string]component.AnimationClip, len(spec.Defs))
	for name, def := range spec.Defs {
		clips[name] = component.AnimationClip{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if spec.Current != "" {
		if _, ok := clips[spec.Current]; !ok {
			return fmt.Errorf("animation: current clip %q is not defined", spec.Current)
		}
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Clips:   clips,
		Current: spec.Current,
		Playing: spec.Playing,
	})
}

func addCollisionScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollisionScriptComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision_script spec: %w", err)
	}
	if spec.Script == "" {
		return fmt.Errorf("collision_script: script is required")
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return fmt.Errorf("collision_script: load %q: %w", spec.Script, err)
	}
	return ecs.Add(w, e, component.CollisionScriptComponent.Kind(), &component.CollisionScript{
		Path:   prefabs.CleanScriptPath(spec.Script),
		Source: src,
	})
}

func addController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ControllerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller spec: %w", err)
	}
	return ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		FixedSubjectBox:   spec.FixedSubjectBox,
		SkipDuckAnimation: spec.SkipDuckAnimation,
	})
}

func addHeldKeys(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HeldKeysComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode held_keys spec: %w", err)
	}
	held := &component.HeldKeys{}
	for _, code := range spec.Keys {
		held.Set(code, true)
	}
	return ecs.Add(w, e, component.HeldKeysComponent.Kind(), held)
}
