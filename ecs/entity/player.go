package entity

import "github.com/milk9111/scrollcore/ecs"

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return BuildEntityAt(w, "player.yaml", x, y)
}
