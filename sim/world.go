package sim

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/entity"
	"github.com/milk9111/scrollcore/ecs/system"
	"github.com/milk9111/scrollcore/input"
	"github.com/milk9111/scrollcore/levels"
	"github.com/milk9111/scrollcore/prefabs"
)

// World owns one level worth of simulation state and runs it one tick at a
// time: controller, integration, collision, animation, cleanup.
type World struct {
	ECS      *ecs.World
	Input    *input.Tracker
	Registry *system.CollisionRegistry
	Scripts  *system.ScriptHooks
	Tuning   *system.Tuning

	Controller *system.MovementController
	Collisions *system.CollisionSystem
	Level      *entity.LoadedLevel

	scheduler *ecs.Scheduler
}

// NewWorld wires the systems, applies the default bindings and tuning and
// loads levelName.
func NewWorld(levelName string) (*World, error) {
	w := &World{
		Input:    input.NewTracker(),
		Registry: system.NewCollisionRegistry(),
		Scripts:  system.NewScriptHooks(),
	}

	tuning, err := LoadTuning()
	if err != nil {
		return nil, err
	}
	w.Tuning = &tuning

	if err := ApplyBindings(w.Input); err != nil {
		return nil, err
	}

	w.Controller = system.NewMovementController(w.Input.Bindings(), w.Registry, w.Tuning)
	w.Collisions = system.NewCollisionSystem(w.Registry, w.Scripts)
	w.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(w.Input, w.Controller),
		system.NewMotionSystem(w.Tuning),
		w.Collisions,
		system.NewAnimationSystem(),
		system.NewCleanupSystem(w.Registry),
	)

	if err := w.Load(levelName); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the ECS world with a freshly built level. Bindings, tuning
// and compiled scripts survive.
func (w *World) Load(levelName string) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if levelName == "" {
		return fmt.Errorf("level name is empty")
	}
	lvl, err := levels.Load(levelName)
	if err != nil {
		return fmt.Errorf("load level %s: %w", levelName, err)
	}

	world := ecs.NewWorld()
	loaded, err := entity.BuildLevel(world, lvl)
	if err != nil {
		return err
	}
	w.ECS = world
	w.Level = loaded
	w.Registry.Clear()
	w.Input.Reset()
	return nil
}

// Step runs one tick. The tracker's last-frame shadow is updated afterwards so
// consumers see edges for exactly one tick.
func (w *World) Step() {
	w.scheduler.Update(w.ECS)
	w.Input.Snapshot()
}

func (w *World) Ticks() uint64 {
	return w.scheduler.Ticks()
}

// Player returns the level's player entity if it is still alive.
func (w *World) Player() (ecs.Entity, bool) {
	if w.Level == nil || !ecs.IsAlive(w.ECS, w.Level.Player) {
		return ecs.Nil, false
	}
	return w.Level.Player, true
}

// Reload applies an edited prefab or script file. Entity prefabs only affect
// entities built after the edit.
func (w *World) Reload(path string) error {
	base := filepath.Base(path)
	switch {
	case prefabs.IsScriptFile(base):
		src, err := prefabs.LoadScript(base)
		if err != nil {
			return fmt.Errorf("reload %s: %w", base, err)
		}
		return w.Scripts.Compile(prefabs.CleanScriptPath(base), src)
	case base == "movement.yaml":
		tuning, err := LoadTuning()
		if err != nil {
			return err
		}
		*w.Tuning = tuning
		log.Printf("sim: movement tuning reloaded: %+v", tuning)
	case base == "bindings.yaml":
		// Bindings are first-write-wins; edits apply on the next start.
		log.Printf("sim: %s changed, restart to apply", base)
	}
	return nil
}

// LoadTuning reads movement.yaml into controller tuning.
func LoadTuning() (system.Tuning, error) {
	spec, err := prefabs.LoadMovementSpec()
	if err != nil {
		return system.Tuning{}, err
	}
	return system.Tuning{
		JumpVelocity: spec.JumpVelocity,
		WalkSpeed:    spec.WalkSpeed,
		ClimbSpeed:   spec.ClimbSpeed,
		Gravity:      spec.Gravity,
	}, nil
}

// ApplyBindings registers the default bindings in file order.
func ApplyBindings(t *input.Tracker) error {
	spec, err := prefabs.LoadBindingSpec()
	if err != nil {
		return err
	}
	for _, b := range spec.Bindings {
		t.Bind(b.Name, b.Key)
	}
	return nil
}
