package system

import (
	"log"

	"github.com/milk9111/scrollcore/common"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
)

// PlayAnimation switches e to the named clip and restarts it. Unknown clip
// names leave the current clip playing and are logged once per entity.
func PlayAnimation(w *ecs.World, e ecs.Entity, name string) bool {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || name == "" {
		return false
	}
	if _, ok := anim.Clips[name]; !ok {
		if anim.NoteMissing(name) {
			log.Printf("animation: entity=%s has no clip %q", e, name)
		}
		return false
	}
	anim.Current = name
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
	return true
}

// AnimationSystem advances the current clip of every animated entity.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}
		clip, ok := anim.Clips[anim.Current]
		if !ok || clip.FrameCount <= 0 || clip.FPS <= 0 {
			return
		}

		ticksPerFrame := int(float64(common.TicksPerSecond) / clip.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}
		anim.FrameTimer++
		if anim.FrameTimer < ticksPerFrame {
			return
		}
		anim.FrameTimer = 0
		anim.Frame++
		if anim.Frame < clip.FrameCount {
			return
		}
		if clip.Loop {
			anim.Frame = 0
			return
		}
		anim.Frame = clip.FrameCount - 1
		anim.Playing = false
	})
}
