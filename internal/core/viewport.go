package core

import "math"

// Viewport maps a rectangle of world space (pixels, y pointing down) onto a
// block of screen cells. Rows above Top are left for the HUD.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
	Top            int
}

// NewViewport fits a worldW x worldH world into cols x rows cells starting
// at screen row top.
func NewViewport(worldW, worldH float64, cols, rows, top int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		Cols:   Max(cols, 1),
		Rows:   Max(rows, 1),
		Top:    top,
	}
}

// CellW returns the world width covered by one cell.
func (v Viewport) CellW() float64 {
	return v.WorldW / float64(v.Cols)
}

// CellH returns the world height covered by one cell.
func (v Viewport) CellH() float64 {
	return v.WorldH / float64(v.Rows)
}

// ToCell converts a world point to fractional screen cell coordinates.
func (v Viewport) ToCell(x, y float64) (float64, float64) {
	return x / v.CellW(), y/v.CellH() + float64(v.Top)
}

// RectToCells converts a world rectangle to the integer cell rectangle it
// covers. Partially covered cells count when at least half of the cell is
// covered along that axis; a non-empty rectangle always covers one cell.
func (v Viewport) RectToCells(x, y, w, h float64) Rect {
	cx0, cy0 := v.ToCell(x, y)
	cx1, cy1 := v.ToCell(x+w, y+h)

	x0, x1 := int(math.Round(cx0)), int(math.Round(cx1))
	y0, y1 := int(math.Round(cy0)), int(math.Round(cy1))
	if w > 0 && x1 <= x0 {
		x0 = int(math.Floor(cx0))
		x1 = x0 + 1
	}
	if h > 0 && y1 <= y0 {
		y0 = int(math.Floor(cy0))
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}
