package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/sim"
)

// Script is a recorded input session replayed against a fresh level.
type Script struct {
	Level  string        `yaml:"level"`
	Ticks  int           `yaml:"ticks"`
	Target string        `yaml:"target"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent presses or releases one key before the given tick runs. Either
// key or binding must be set; binding is resolved through the world's
// bindings.
type ScriptEvent struct {
	Tick    int    `yaml:"tick"`
	Key     int    `yaml:"key"`
	Binding string `yaml:"binding"`
	Pressed bool   `yaml:"pressed"`
}

// Frame is the observed state of the target after one tick.
type Frame struct {
	Tick      int
	X, Y      float64
	Primary   component.PrimaryState
	Secondary component.SecondaryState
	Contacts  int
	Alive     bool
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse replay script: %w", err)
	}
	if s.Level == "" {
		s.Level = "demo"
	}
	if s.Target == "" {
		s.Target = "player"
	}
	if s.Ticks <= 0 {
		return nil, fmt.Errorf("replay script needs a positive tick count")
	}
	for i, ev := range s.Events {
		if ev.Tick < 0 || ev.Tick >= s.Ticks {
			return nil, fmt.Errorf("event %d: tick %d outside [0, %d)", i, ev.Tick, s.Ticks)
		}
		if ev.Key == 0 && ev.Binding == "" {
			return nil, fmt.Errorf("event %d: key or binding required", i)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].Tick < s.Events[j].Tick })
	return &s, nil
}

// Run builds the script's level and replays its events into the target
// entity, one tick at a time. The live tracker is never touched.
func Run(s *Script, verbose bool) ([]Frame, error) {
	w, err := sim.NewWorld(s.Level)
	if err != nil {
		return nil, err
	}
	target, ok := findByName(w.ECS, s.Target)
	if !ok {
		return nil, fmt.Errorf("no entity named %q in level %s", s.Target, s.Level)
	}

	frames := make([]Frame, 0, s.Ticks)
	next := 0
	var last Frame
	for tick := 0; tick < s.Ticks; tick++ {
		for ; next < len(s.Events) && s.Events[next].Tick == tick; next++ {
			ev := s.Events[next]
			code := ev.Key
			if ev.Binding != "" {
				code = w.Input.LookupBinding(ev.Binding)
			}
			w.Controller.ApplyInputEvent(w.ECS, target, code, ev.Pressed)
		}
		w.Step()

		f := observe(w, target, tick)
		frames = append(frames, f)
		if verbose || tick == 0 || f.Primary != last.Primary || f.Secondary != last.Secondary || f.Alive != last.Alive {
			log.Printf("tick %4d: pos=(%.2f, %.2f) %s/%s contacts=%d alive=%v",
				f.Tick, f.X, f.Y, f.Primary, f.Secondary, f.Contacts, f.Alive)
		}
		last = f
	}
	return frames, nil
}

func observe(w *sim.World, e ecs.Entity, tick int) Frame {
	f := Frame{Tick: tick, Alive: ecs.IsAlive(w.ECS, e)}
	if !f.Alive {
		return f
	}
	if tr, ok := ecs.Get(w.ECS, e, component.TransformComponent.Kind()); ok {
		f.X, f.Y = tr.X, tr.Y
	}
	if m, ok := ecs.Get(w.ECS, e, component.MotionComponent.Kind()); ok {
		f.Primary, f.Secondary = m.Primary, m.Secondary
	}
	f.Contacts = len(w.Registry.CollidersOf(e))
	return f
}

func findByName(w *ecs.World, name string) (ecs.Entity, bool) {
	found := ecs.Nil
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if found == ecs.Nil && n.Value == name {
			found = e
		}
	})
	return found, found != ecs.Nil
}
