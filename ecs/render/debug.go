package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/scrollcore/common"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/prefabs"
	"golang.org/x/image/colornames"
)

// Palette colors the box overlay.
type Palette struct {
	Solid     color.Color
	Trigger   color.Color
	Climbable color.Color
	Body      color.Color
	Contact   color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Solid:     colornames.Slategray,
		Trigger:   colornames.Indianred,
		Climbable: colornames.Burlywood,
		Body:      colornames.Skyblue,
		Contact:   colornames.Orange,
	}
}

// PaletteFromSpec overrides defaults with any colors set in spec.
func PaletteFromSpec(spec *prefabs.DebugDrawSpec) Palette {
	p := DefaultPalette()
	if spec == nil {
		return p
	}
	set := func(dst *color.Color, c prefabs.YAMLColor) {
		if c.Color != nil {
			*dst = c.Color
		}
	}
	set(&p.Solid, spec.Solid)
	set(&p.Trigger, spec.Trigger)
	set(&p.Climbable, spec.Climbable)
	set(&p.Body, spec.Body)
	set(&p.Contact, spec.Contact)
	return p
}

// BoxRenderer draws every entity box as an outline. The world is y-up; the
// screen is y-down, so boxes are flipped against the level height.
type BoxRenderer struct {
	Palette Palette
	Zoom    float64

	camX, camY float64
}

func NewBoxRenderer(p Palette, zoom float64) *BoxRenderer {
	if zoom <= 0 {
		zoom = 1
	}
	return &BoxRenderer{Palette: p, Zoom: zoom}
}

// Follow centers the view on focus, clamped to bounds.
func (r *BoxRenderer) Follow(focus ecs.Entity, w *ecs.World, bounds common.Rect, screenW, screenH int) {
	t, ok := ecs.Get(w, focus, component.TransformComponent.Kind())
	if !ok {
		return
	}
	viewW := float64(screenW) / r.Zoom
	viewH := float64(screenH) / r.Zoom
	r.camX = clamp(t.X-viewW/2, 0, bounds.Width-viewW)
	r.camY = clamp(t.Y-viewH/2, 0, bounds.Height-viewH)
}

// Draw outlines every box. Entities in contact (present in pairs) are drawn
// with the contact color.
func (r *BoxRenderer) Draw(screen *ebiten.Image, w *ecs.World, contacts map[ecs.Entity]bool) {
	_, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BoxComponent.Kind(), func(e ecs.Entity, t *component.Transform, b *component.Box) {
		clr := r.colorFor(w, e)
		if contacts[e] && ecs.Has(w, e, component.MotionComponent.Kind()) {
			clr = r.Palette.Contact
		}
		x := (t.X - r.camX) * r.Zoom
		y := float64(screenH) - (t.Y+b.Height-r.camY)*r.Zoom
		vector.StrokeRect(screen, float32(x), float32(y), float32(b.Width*r.Zoom), float32(b.Height*r.Zoom), 1, clr, false)
	})
}

func (r *BoxRenderer) colorFor(w *ecs.World, e ecs.Entity) color.Color {
	switch {
	case ecs.Has(w, e, component.ClimbableComponent.Kind()):
		return r.Palette.Climbable
	case ecs.Has(w, e, component.MotionComponent.Kind()):
		return r.Palette.Body
	}
	if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok && c.Trigger {
		return r.Palette.Trigger
	}
	return r.Palette.Solid
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
