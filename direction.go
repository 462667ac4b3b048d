package pleat

import "math"

// Direction is a cardinal direction for the disclosure arrow. The ordinal
// values are arranged so that each successive direction is a 90° clockwise
// quarter turn from the previous one, which keeps rotation math to simple
// ordinal arithmetic.
type Direction int

const (
	DirectionLeft  Direction = iota // 0
	DirectionUp                     // 1
	DirectionRight                  // 2
	DirectionDown                   // 3
)

// Steps returns the signed number of clockwise quarter turns from one
// direction to another. The difference is deliberately not wrapped: turning
// from Down back to Right is -1 (a counter-clockwise quarter turn), so an
// expand rotation and the matching collapse rotation are exact negatives and
// repeated toggle cycles compose to zero net rotation.
func Steps(from, to Direction) int {
	return int(to) - int(from)
}

// Rotation returns the signed rotation from one direction to another in
// radians. Positive values rotate clockwise in screen coordinates.
func Rotation(from, to Direction) float64 {
	return float64(Steps(from, to)) * math.Pi / 2
}

// String returns the lowercase direction name for logging.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	}
	return "unknown"
}
