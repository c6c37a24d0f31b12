package core

import "math"

// Projection maps world units onto a terminal cell grid.
// Games simulate in fixed world units (e.g. 720x900) regardless of the
// terminal; the projection scales that field into the rows below the HUD.
type Projection struct {
	WorldW, WorldH float64
	Cols, Rows     int // Cells available for the playfield
	OffsetY        int // Rows reserved above the playfield (HUD)
}

// NewProjection builds a projection of a world onto a screen, leaving
// hudRows rows at the top for text.
func NewProjection(worldW, worldH float64, screenW, screenH, hudRows int) Projection {
	return Projection{
		WorldW:  worldW,
		WorldH:  worldH,
		Cols:    max(screenW, 1),
		Rows:    max(screenH-hudRows, 1),
		OffsetY: hudRows,
	}
}

// Cell converts a world point to screen cell coordinates.
func (p Projection) Cell(v Vec) (int, int) {
	x := int(math.Floor(v.X / p.WorldW * float64(p.Cols)))
	y := int(math.Floor(v.Y/p.WorldH*float64(p.Rows))) + p.OffsetY
	return x, y
}

// Rect converts a world rectangle to a cell rectangle at least one cell in size.
func (p Projection) Rect(r RectF) Rect {
	x0, y0 := p.Cell(Vec{r.X, r.Y})
	x1, y1 := p.Cell(Vec{r.Right(), r.Bottom()})
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// InField reports whether a cell lies inside the projected playfield.
func (p Projection) InField(x, y int) bool {
	return x >= 0 && x < p.Cols && y >= p.OffsetY && y < p.OffsetY+p.Rows
}

// cellSize returns the world size of one cell.
func (p Projection) cellSize() (float64, float64) {
	return p.WorldW / float64(p.Cols), p.WorldH / float64(p.Rows)
}

// DrawPoint draws a single glyph at a world point, clipped to the field.
func (p Projection) DrawPoint(dst *Screen, v Vec, ch rune, c Color) {
	x, y := p.Cell(v)
	if p.InField(x, y) {
		dst.SetColor(x, y, ch, c)
	}
}

// DrawRect fills the cells covered by a world rectangle.
func (p Projection) DrawRect(dst *Screen, r RectF, ch rune, c Color) {
	cr := p.Rect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if p.InField(x, y) {
				dst.SetColor(x, y, ch, c)
			}
		}
	}
}

// DrawDisc fills the cells whose centers lie inside a world circle.
// The cell holding the center is always drawn, so small circles stay visible.
func (p Projection) DrawDisc(dst *Screen, center Vec, radius float64, ch rune, c Color) {
	cw, chh := p.cellSize()
	x0, y0 := p.Cell(center.Sub(Vec{radius, radius}))
	x1, y1 := p.Cell(center.Add(Vec{radius, radius}))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := Vec{(float64(x) + 0.5) * cw, (float64(y-p.OffsetY) + 0.5) * chh}
			if mid.Sub(center).LenSq() <= radius*radius && p.InField(x, y) {
				dst.SetColor(x, y, ch, c)
			}
		}
	}
	p.DrawPoint(dst, center, ch, c)
}
