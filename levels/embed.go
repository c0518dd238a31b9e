package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Tile values understood by the level builder. Any other positive value on a
// physics layer is solid.
const (
	TileEmpty  = 0
	TileSolid  = 1
	TileHazard = 2
	TileLadder = 3
)

// Level is a tile grid stored row-major with row 0 at the top.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity places a prefab at a tile position.
type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level: invalid size %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("level: layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// HasPhysics reports whether layer idx takes part in collision.
func (l *Level) HasPhysics(idx int) bool {
	return idx < len(l.LayerMeta) && l.LayerMeta[idx].Physics
}

// Load reads a level by base name, preferring levels/<name> on disk over the
// embedded copy.
func Load(name string) (*Level, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "levels/")
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return Parse(data)
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
