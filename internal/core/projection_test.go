package core

import "testing"

func TestProjectionCell(t *testing.T) {
	p := NewProjection(720, 900, 72, 32, 2)

	tests := []struct {
		name   string
		v      Vec
		wx, wy int
	}{
		{"origin", V(0, 0), 0, 2},
		{"center", V(360, 450), 36, 17},
		{"just inside bottom-right", V(719.9, 899.9), 71, 31},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := p.Cell(tc.v)
			if x != tc.wx || y != tc.wy {
				t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.v, x, y, tc.wx, tc.wy)
			}
			if !p.InField(x, y) {
				t.Errorf("Cell(%v) should be in field", tc.v)
			}
		})
	}
}

func TestProjectionRectMinimumSize(t *testing.T) {
	p := NewProjection(720, 900, 72, 32, 2)

	// A 4-unit wide bullet is smaller than a cell but must still draw.
	r := p.Rect(RectF{X: 100, Y: 100, W: 4, H: 16})
	if r.W < 1 || r.H < 1 {
		t.Errorf("Rect() = %+v, expected at least 1x1", r)
	}

	if p.InField(0, 1) {
		t.Error("HUD rows should not be part of the field")
	}
}

func TestProjectionDrawDiscAndRect(t *testing.T) {
	p := NewProjection(100, 100, 10, 11, 1)
	s := NewScreen(10, 11)

	p.DrawDisc(s, V(50, 50), 1, 'o', ColorWhite)
	x, y := p.Cell(V(50, 50))
	if s.Get(x, y) != 'o' {
		t.Error("a tiny disc should still draw its center cell")
	}

	p.DrawDisc(s, V(50, 50), 25, '@', ColorRed)
	if s.Get(5, 6) != '@' || s.Get(0, 1) == '@' {
		t.Error("large disc should cover the center and miss the corner")
	}

	p.DrawRect(s, RectF{X: -50, Y: 0, W: 70, H: 10}, '#', ColorBlue)
	if s.Get(0, 1) != '#' || s.Get(1, 1) != '#' {
		t.Error("rect should be clipped to the field, not dropped")
	}
	if s.Get(0, 0) == '#' {
		t.Error("rect must not spill into the HUD row")
	}
}
