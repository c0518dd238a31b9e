package common

const (
	// TileSize is the edge length of a level tile in world units.
	TileSize = 16
	// TicksPerSecond matches ebiten's default update rate.
	TicksPerSecond = 60
)
