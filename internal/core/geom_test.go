package core

import "testing"

func TestRectRightBottom(t *testing.T) {
	r := NewRect(3, 1, 29, 5) // Overlay box on an 80x24 field

	if r.Right() != 32 || r.Bottom() != 6 {
		t.Errorf("edges = (%d, %d), expected (32, 6)", r.Right(), r.Bottom())
	}
}

func TestClampCellIndex(t *testing.T) {
	const cols = 80
	tests := []struct {
		name string
		cell int
		want int
	}{
		{"left of field", -3, 0},
		{"first column", 0, 0},
		{"inside", 41, 41},
		{"last column", cols - 1, cols - 1},
		{"past the right wall", cols, cols - 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.cell, 0, cols-1); got != tc.want {
				t.Errorf("Clamp(%d) = %d, expected %d", tc.cell, got, tc.want)
			}
		})
	}
}

func TestClampFBounceOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"centre", 0, 0},
		{"half right", 0.5, 0.5},
		{"beyond right edge", 1.27, 1},
		{"beyond left edge", -1.5, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.offset, -1, 1); got != tc.want {
				t.Errorf("ClampF(%v) = %v, expected %v", tc.offset, got, tc.want)
			}
		})
	}
}

func TestMinMaxBoxWidth(t *testing.T) {
	// Message boxes are as wide as their longest line plus a margin, capped by the screen.
	if w := Min(Max(len("GAME OVER"), len("Press R to restart"))+4, 80); w != 22 {
		t.Errorf("box width = %d, expected 22", w)
	}
	if w := Min(Max(30, 12)+4, 20); w != 20 {
		t.Errorf("box width = %d, expected screen cap 20", w)
	}
}

func TestRectFInterior(t *testing.T) {
	brick := RectF{X: 20, Y: 30, W: 70, H: 20}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 55, 40, true},
		{"on left edge", 20, 40, false},
		{"on right edge", 90, 40, false},
		{"on top edge", 55, 30, false},
		{"on bottom edge", 55, 50, false},
		{"just inside corner", 20.01, 30.01, true},
		{"in the padding", 92, 40, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := brick.Interior(tc.x, tc.y); got != tc.want {
				t.Errorf("Interior(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if brick.Right() != 90 || brick.Bottom() != 50 {
		t.Errorf("edges = (%v, %v), expected (90, 50)", brick.Right(), brick.Bottom())
	}
}
