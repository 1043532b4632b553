package runner

import "testing"

func defaultBox() PlayerBox {
	return PlayerBox{X: 60, Width: 30, GroundLevel: 624, Clearance: 20}
}

func TestCollides(t *testing.T) {
	box := defaultBox()

	tests := []struct {
		name      string
		y         float64
		obstacles []Obstacle
		expected  bool
	}{
		{"no obstacles", 624, nil, false},
		{"overlap on the ground", 624, []Obstacle{{X: 70, Width: 30}}, true},
		{"overlap from the left", 624, []Obstacle{{X: 40, Width: 30}}, true},
		{"obstacle wider than player", 624, []Obstacle{{X: 50, Width: 50}}, true},
		{"obstacle ahead", 624, []Obstacle{{X: 100, Width: 30}}, false},
		{"touching right edge", 624, []Obstacle{{X: 90, Width: 30}}, false},
		{"touching left edge", 624, []Obstacle{{X: 30, Width: 30}}, false},
		{"overlap but above clearance", 600, []Obstacle{{X: 70, Width: 30}}, false},
		{"exactly at clearance threshold", 604, []Obstacle{{X: 70, Width: 30}}, false},
		{"just below clearance threshold", 604.5, []Obstacle{{X: 70, Width: 30}}, true},
		{"second obstacle hits", 624, []Obstacle{{X: 300, Width: 30}, {X: 85, Width: 40}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.y, box, tc.obstacles); got != tc.expected {
				t.Errorf("Collides(%v, %+v) = %v, expected %v", tc.y, tc.obstacles, got, tc.expected)
			}
		})
	}
}

func TestCollidesDeterministic(t *testing.T) {
	box := defaultBox()
	obstacles := []Obstacle{{X: 70, Width: 30}, {X: 500, Width: 45}}

	first := Collides(620, box, obstacles)
	for i := 0; i < 100; i++ {
		if Collides(620, box, obstacles) != first {
			t.Fatal("Collides should return the same answer for the same input")
		}
	}
	if obstacles[0].X != 70 || obstacles[1].X != 500 {
		t.Error("Collides must not modify the obstacle list")
	}
}
