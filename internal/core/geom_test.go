package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 20, true},
		{39, 59, true},
		{40, 20, false},
		{10, 60, false},
		{9, 30, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestViewport(t *testing.T) {
	// 800x400 world whose top edge is y=300, drawn into 80x20 cells
	v := NewViewport(800, 400, 300, 80, 20)

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"left edge", v.Col(0), 0},
		{"world x 60", v.Col(60), 6},
		{"right edge", v.Col(800), 80},
		{"top edge", v.Row(300), 0},
		{"ground row", v.Row(680), 19},
		{"above top", v.Row(280), -1},
		{"width 35", v.Cells(35), 4},
		{"tiny width", v.Cells(1), 1},
	}

	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s: got %d, expected %d", tc.name, tc.got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
}
