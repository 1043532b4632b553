package runner

// PlayerBox is the fixed horizontal span of the player plus the vertical
// clearance rule used for collisions.
type PlayerBox struct {
	X           float64
	Width       float64
	GroundLevel float64
	Clearance   float64 // the player is hittable while y > GroundLevel-Clearance
}

// Collides reports whether the player at height y hits any obstacle.
//
// An obstacle hits when its span overlaps the player's span
// (o.X < X+Width and o.X+o.Width > X) while the player is low enough
// (y > GroundLevel-Clearance). This is a discrete AABB test; at high scroll
// speeds thin obstacles can tunnel between ticks.
func Collides(y float64, box PlayerBox, obstacles []Obstacle) bool {
	if y <= box.GroundLevel-box.Clearance {
		return false
	}
	for _, o := range obstacles {
		if o.X < box.X+box.Width && o.Right() > box.X {
			return true
		}
	}
	return false
}
