package render

import (
	"testing"

	"github.com/milk9111/scrollcore/common"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/prefabs"
	"golang.org/x/image/colornames"
)

func TestPaletteFromSpec(t *testing.T) {
	if p := PaletteFromSpec(nil); p.Solid != colornames.Slategray {
		t.Fatalf("nil spec should keep defaults")
	}
	spec, err := prefabs.LoadDebugDrawSpec()
	if err != nil {
		t.Fatalf("LoadDebugDrawSpec: %v", err)
	}
	p := PaletteFromSpec(spec)
	if p.Solid == colornames.Slategray {
		t.Fatalf("spec colors should override defaults")
	}
}

func TestFollowClampsToBounds(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 5, Y: 500}); err != nil {
		t.Fatal(err)
	}
	r := NewBoxRenderer(DefaultPalette(), 2)
	bounds := common.Rect{Width: 400, Height: 300}
	r.Follow(e, w, bounds, 200, 100)
	// view is 100x50 world units
	if r.camX != 0 || r.camY != 250 {
		t.Fatalf("camera = (%v, %v), want (0, 250)", r.camX, r.camY)
	}
}
