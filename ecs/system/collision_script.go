package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
)

// Script globals. Inputs are set before every run; outputs are read back.
var scriptInputs = map[string]any{
	"phase":        "",
	"self_name":    "",
	"other_name":   "",
	"other_player": false,
	"depth_x":      0.0,
	"depth_y":      0.0,
}

var scriptOutputs = map[string]any{
	"kill_self":    false,
	"kill_other":   false,
	"delete_self":  false,
	"delete_other": false,
	"message":      "",
}

// ScriptHooks compiles collision scripts once per path and runs a fresh clone
// for every notification.
type ScriptHooks struct {
	compiled map[string]*tengo.Compiled
	// failed holds paths whose source did not compile. They stay disabled
	// until Compile succeeds for the path again.
	failed map[string]bool
}

func NewScriptHooks() *ScriptHooks {
	return &ScriptHooks{
		compiled: make(map[string]*tengo.Compiled),
		failed:   make(map[string]bool),
	}
}

// Compile validates and caches a script. Compiling the same path again
// replaces the cached program, which is how hot reload swaps scripts.
func (h *ScriptHooks) Compile(path string, src []byte) error {
	script := tengo.NewScript(src)
	for name, v := range scriptInputs {
		if err := script.Add(name, v); err != nil {
			return fmt.Errorf("collision script %q: add %s: %w", path, name, err)
		}
	}
	for name, v := range scriptOutputs {
		if err := script.Add(name, v); err != nil {
			return fmt.Errorf("collision script %q: add %s: %w", path, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("collision script %q: compile: %w", path, err)
	}
	if h.compiled == nil {
		h.compiled = make(map[string]*tengo.Compiled)
	}
	h.compiled[path] = compiled
	delete(h.failed, path)
	return nil
}

// Run executes the script attached to self for one notification and applies
// its outputs to the world.
func (h *ScriptHooks) Run(w *ecs.World, sc *component.CollisionScript, kind ecs.CollisionEventKind, self, other ecs.Entity, depth cp.Vector) error {
	if sc == nil {
		return nil
	}
	base, ok := h.compiled[sc.Path]
	if !ok {
		if h.failed[sc.Path] {
			return nil
		}
		if err := h.Compile(sc.Path, sc.Source); err != nil {
			if h.failed == nil {
				h.failed = make(map[string]bool)
			}
			h.failed[sc.Path] = true
			return err
		}
		base = h.compiled[sc.Path]
	}

	run := base.Clone()
	inputs := map[string]any{
		"phase":        string(kind),
		"self_name":    entityName(w, self),
		"other_name":   entityName(w, other),
		"other_player": ecs.Has(w, other, component.PlayerTagComponent.Kind()),
		"depth_x":      depth.X,
		"depth_y":      depth.Y,
	}
	for name, v := range inputs {
		if err := run.Set(name, v); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	for name, v := range scriptOutputs {
		if err := run.Set(name, v); err != nil {
			return fmt.Errorf("reset %s: %w", name, err)
		}
	}
	if err := run.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if run.Get("kill_self").Bool() {
		kill(w, self)
	}
	if run.Get("kill_other").Bool() {
		kill(w, other)
	}
	if run.Get("delete_self").Bool() {
		markForDeletion(w, self)
	}
	if run.Get("delete_other").Bool() {
		markForDeletion(w, other)
	}
	if msg := run.Get("message").String(); msg != "" {
		log.Printf("collision: entity=%s script: %s", self, msg)
	}
	return nil
}

func entityName(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		return n.Value
	}
	return ""
}

func kill(w *ecs.World, e ecs.Entity) {
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok {
		return
	}
	m.Primary = component.PrimaryDead
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X = 0
	}
}

func markForDeletion(w *ecs.World, e ecs.Entity) {
	if l, ok := ecs.Get(w, e, component.LifecycleComponent.Kind()); ok {
		l.PendingDeletion = true
		return
	}
	_ = ecs.Add(w, e, component.LifecycleComponent.Kind(), &component.Lifecycle{PendingDeletion: true})
}
