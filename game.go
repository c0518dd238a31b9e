package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/ecs/render"
	"github.com/milk9111/scrollcore/prefabs"
	"github.com/milk9111/scrollcore/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	debug bool

	world    *sim.World
	keyboard *ebitenSource
	renderer *render.BoxRenderer
	watcher  *prefabs.Watcher
}

func NewGame(levelName string, debug bool, zoom float64) (*Game, error) {
	world, err := sim.NewWorld(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	palette := render.DefaultPalette()
	if spec, err := prefabs.LoadDebugDrawSpec(); err != nil {
		log.Printf("game: debug draw colors: %v", err)
	} else {
		palette = render.PaletteFromSpec(spec)
	}

	return &Game{
		debug:    debug,
		world:    world,
		keyboard: newEbitenSource(),
		renderer: render.NewBoxRenderer(palette, zoom),
	}, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if g.watcher != nil {
		for _, name := range g.watcher.Drain() {
			if err := g.world.Reload(name); err != nil {
				log.Printf("game: reload %s: %v", name, err)
			}
		}
	}

	g.keyboard.Apply(g.world.Input)
	g.world.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	contacts := make(map[ecs.Entity]bool)
	for _, p := range g.world.Registry.Pairs() {
		contacts[p.Subject] = true
	}

	if player, ok := g.world.Player(); ok {
		g.renderer.Follow(player, g.world.ECS, g.world.Level.Bounds, baseWidth, baseHeight)
	}
	g.renderer.Draw(screen, g.world.ECS, contacts)

	if !g.debug {
		return
	}
	msg := fmt.Sprintf("Tick: %d    FPS: %.2f    Pairs: %d", g.world.Ticks(), ebiten.ActualFPS(), g.world.Registry.Len())
	if player, ok := g.world.Player(); ok {
		if m, ok := ecs.Get(g.world.ECS, player, component.MotionComponent.Kind()); ok {
			msg += fmt.Sprintf("\nPlayer: %s / %s  ducking=%v", m.Primary, m.Secondary, m.Ducking)
		}
		if a, ok := ecs.Get(g.world.ECS, player, component.AnimationComponent.Kind()); ok {
			msg += fmt.Sprintf("  anim=%s", a.Current)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
