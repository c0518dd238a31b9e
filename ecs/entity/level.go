package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollcore/common"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/levels"
)

// LoadedLevel summarizes what BuildLevel created.
type LoadedLevel struct {
	Player ecs.Entity
	Spawn  cp.Vector
	Bounds common.Rect

	Solids   int
	Hazards  int
	Ladders  int
	Entities []ecs.Entity
}

// BuildLevel turns a tile level into collider entities and spawns the level's
// prefab entities. Rows are flipped so world y grows upwards.
func BuildLevel(w *ecs.World, lvl *levels.Level) (*LoadedLevel, error) {
	if w == nil || lvl == nil {
		return nil, fmt.Errorf("build level: world and level are required")
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	out := &LoadedLevel{
		Bounds: common.Rect{
			Width:  float64(lvl.Width * common.TileSize),
			Height: float64(lvl.Height * common.TileSize),
		},
	}

	for layerIdx, layer := range lvl.Layers {
		if !lvl.HasPhysics(layerIdx) {
			continue
		}
		if err := buildLayer(w, lvl, layer, out); err != nil {
			return nil, fmt.Errorf("build level: layer %d: %w", layerIdx, err)
		}
	}

	for _, spec := range lvl.Entities {
		pos := tileOrigin(lvl, spec.X, spec.Y, 1)
		e, err := BuildEntityAt(w, spec.Type+".yaml", pos.X, pos.Y)
		if err != nil {
			return nil, fmt.Errorf("build level: entity %q at (%d, %d): %w", spec.Type, spec.X, spec.Y, err)
		}
		out.Entities = append(out.Entities, e)
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) && out.Player == ecs.Nil {
			out.Player = e
			out.Spawn = pos
		}
	}

	return out, nil
}

// Merge contiguous solid tiles into larger rectangles so the resolver scans
// fewer colliders. Hazards stay one per tile; ladders merge into columns.
func buildLayer(w *ecs.World, lvl *levels.Level, layer []int, out *LoadedLevel) error {
	processed := make([]bool, lvl.Width*lvl.Height)
	solidAt := func(x, y int) bool {
		idx := y*lvl.Width + x
		v := layer[idx]
		return !processed[idx] && v != levels.TileEmpty && v != levels.TileHazard && v != levels.TileLadder
	}

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] {
				continue
			}
			switch layer[idx] {
			case levels.TileEmpty:
				processed[idx] = true

			case levels.TileHazard:
				pos := tileOrigin(lvl, x, y, 1)
				if _, err := BuildEntityAt(w, "spike.yaml", pos.X, pos.Y); err != nil {
					return err
				}
				processed[idx] = true
				out.Hazards++

			case levels.TileLadder:
				h := 1
				for y+h < lvl.Height && layer[(y+h)*lvl.Width+x] == levels.TileLadder {
					processed[(y+h)*lvl.Width+x] = true
					h++
				}
				processed[idx] = true
				pos := tileOrigin(lvl, x, y, h)
				e, err := BuildEntityAt(w, "ladder.yaml", pos.X, pos.Y)
				if err != nil {
					return err
				}
				if err := setBox(w, e, common.TileSize, float64(h*common.TileSize)); err != nil {
					return err
				}
				out.Ladders++

			default:
				rw := 1
				for x+rw < lvl.Width && solidAt(x+rw, y) {
					rw++
				}
				rh := 1
			heightLoop:
				for y+rh < lvl.Height {
					for xi := x; xi < x+rw; xi++ {
						if !solidAt(xi, y+rh) {
							break heightLoop
						}
					}
					rh++
				}
				for yy := y; yy < y+rh; yy++ {
					for xx := x; xx < x+rw; xx++ {
						processed[yy*lvl.Width+xx] = true
					}
				}
				pos := tileOrigin(lvl, x, y, rh)
				e, err := BuildEntityAt(w, "solid.yaml", pos.X, pos.Y)
				if err != nil {
					return err
				}
				if err := setBox(w, e, float64(rw*common.TileSize), float64(rh*common.TileSize)); err != nil {
					return err
				}
				out.Solids++
			}
		}
	}
	return nil
}

// tileOrigin returns the world position of the bottom-left corner of a
// block that starts at row y and spans rows tiles downwards.
func tileOrigin(lvl *levels.Level, x, y, rows int) cp.Vector {
	return cp.Vector{
		X: float64(x * common.TileSize),
		Y: float64((lvl.Height - y - rows) * common.TileSize),
	}
}

func setBox(w *ecs.World, e ecs.Entity, width, height float64) error {
	return ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{Width: width, Height: height})
}
