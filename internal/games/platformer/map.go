package platformer

import (
	"math"

	"github.com/vovakirdan/tui-motion/internal/core"
	"github.com/vovakirdan/tui-motion/internal/games/platformer/levels"
)

// Tile is a sprite placed on the tile grid. Grid y grows upwards.
type Tile struct {
	Sprite      string
	X, Y        int
	AlignCenter bool
	OffsetX     float64 // Fraction of a tile, ignored when AlignCenter
	OffsetY     float64
}

// NewTile creates a collidable terrain tile.
func NewTile(sprite string, x, y int) Tile {
	return Tile{Sprite: sprite, X: x, Y: y}
}

// NewDecoration creates a non-collidable sprite.
func NewDecoration(sprite string, x, y int, alignCenter bool, offsetX, offsetY float64) Tile {
	return Tile{
		Sprite:      sprite,
		X:           x,
		Y:           y,
		AlignCenter: alignCenter,
		OffsetX:     offsetX,
		OffsetY:     offsetY,
	}
}

// Coords returns the sprite's top-left corner in y-down screen pixels.
func (t Tile) Coords(screenH, tileSize, spriteW, spriteH float64) core.Vec2 {
	if t.AlignCenter {
		return core.V(
			tileSize*float64(t.X)+(tileSize-spriteW)/2,
			screenH-float64(t.Y)*tileSize-spriteH,
		)
	}
	return core.V(
		tileSize*(float64(t.X)+t.OffsetX),
		screenH-(1+float64(t.Y)+t.OffsetY)*tileSize,
	)
}

// Map is a static tile grid with decorations and a goal flag. Only the flag
// changes after construction.
type Map struct {
	TileSize    float64
	Tiles       []Tile
	Decorations []Tile
	Flag        Tile

	flagUp      string
	flagReached bool
}

// NewMap builds a map from a level definition.
func NewMap(lvl levels.Level) *Map {
	m := &Map{
		TileSize:    lvl.TileSize,
		Tiles:       make([]Tile, 0, len(lvl.Tiles)),
		Decorations: make([]Tile, 0, len(lvl.Decorations)),
		Flag:        tileFromDef(lvl.Flag),
		flagUp:      lvl.FlagUp,
	}
	for _, d := range lvl.Tiles {
		m.Tiles = append(m.Tiles, NewTile(d.Sprite, d.X, d.Y))
	}
	for _, d := range lvl.Decorations {
		m.Decorations = append(m.Decorations, tileFromDef(d))
	}
	return m
}

func tileFromDef(d levels.TileDef) Tile {
	return NewDecoration(d.Sprite, d.X, d.Y, d.Center, d.OffsetX, d.OffsetY)
}

// GridCell returns the tile cell containing pos.
func (m *Map) GridCell(pos core.Vec2) (int, int) {
	return int(math.Floor(pos.X / m.TileSize)), int(math.Floor(pos.Y / m.TileSize))
}

// FloorUnder returns the top edge of the highest tile in pos's column at or
// below pos's row, or 0.
func (m *Map) FloorUnder(pos core.Vec2) float64 {
	x, y := m.GridCell(pos)
	best, found := 0, false
	for _, t := range m.Tiles {
		if t.X == x && t.Y <= y && (!found || t.Y > best) {
			best, found = t.Y, true
		}
	}
	if !found {
		return 0
	}
	return float64(best+1) * m.TileSize
}

// CeilingOver returns the bottom edge of the lowest tile in pos's column at
// or above pos's row, or screenH.
func (m *Map) CeilingOver(pos core.Vec2, screenH float64) float64 {
	x, y := m.GridCell(pos)
	best, found := 0, false
	for _, t := range m.Tiles {
		if t.X == x && t.Y >= y && (!found || t.Y < best) {
			best, found = t.Y, true
		}
	}
	if !found {
		return screenH
	}
	return float64(best) * m.TileSize
}

// WallLeft returns the right edge of the nearest tile in pos's row at or
// left of pos's column, or 0.
func (m *Map) WallLeft(pos core.Vec2) float64 {
	x, y := m.GridCell(pos)
	best, found := 0, false
	for _, t := range m.Tiles {
		if t.Y == y && t.X <= x && (!found || t.X > best) {
			best, found = t.X, true
		}
	}
	if !found {
		return 0
	}
	return float64(best+1) * m.TileSize
}

// WallRight returns the left edge of the nearest tile in pos's row at or
// right of pos's column, or screenW.
func (m *Map) WallRight(pos core.Vec2, screenW float64) float64 {
	x, y := m.GridCell(pos)
	best, found := 0, false
	for _, t := range m.Tiles {
		if t.Y == y && t.X >= x && (!found || t.X < best) {
			best, found = t.X, true
		}
	}
	if !found {
		return screenW
	}
	return float64(best) * m.TileSize
}

// FlagReached raises the flag. Calls after the first are no-ops.
func (m *Map) FlagReached() {
	if m.flagReached {
		return
	}
	m.flagReached = true
	if m.flagUp != "" {
		m.Flag.Sprite = m.flagUp
	}
}

// IsFlagReached reports whether the flag has been raised.
func (m *Map) IsFlagReached() bool {
	return m.flagReached
}
