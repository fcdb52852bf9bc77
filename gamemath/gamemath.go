// Package gamemath holds the pure numeric pieces of the simulation so the
// systems stay thin and the math stays testable without an ECS world.
package gamemath

import "math"

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SanitizeElapsed guards the frame timestep. Negative or NaN elapsed values
// have no meaning for the integrator, so they collapse to zero (a frozen
// frame) instead of propagating.
func SanitizeElapsed(elapsed float64) float64 {
	if math.IsNaN(elapsed) || elapsed < 0 {
		return 0
	}
	return elapsed
}

// GravityStep advances one tick of ballistic motion and returns the new
// height, horizontal position and vertical velocity. The height update uses
// the post-step velocity term so short and long ticks land on the same arc.
func GravityStep(height, xpos, vx, vy, gravity, elapsed float64) (h, x, newVY float64) {
	h = height + elapsed*(vy+elapsed*gravity)
	x = xpos + elapsed*vx
	newVY = vy + elapsed*gravity
	return h, x, newVY
}

// Bounce reflects horizontal motion off the board edges. When xpos has left
// [minX, maxX] the position is clamped back onto the bound and vx is
// reflected with the given restitution, so a single crossing produces a
// single bounce.
func Bounce(xpos, vx, minX, maxX, restitution float64) (x, newVX float64, bounced bool) {
	if xpos < minX {
		return minX, -vx * restitution, true
	}
	if xpos > maxX {
		return maxX, -vx * restitution, true
	}
	return xpos, vx, false
}

// HomingStep moves a chaser one tick toward a goal by a fixed fraction of
// the remaining separation per axis. The chaser converges on the goal but
// never overshoots it.
func HomingStep(cx, cy, goalX, goalY, divisor float64) (x, y float64) {
	x = cx + (goalX-cx)/divisor
	y = cy + (goalY-cy)/divisor
	return x, y
}

// Distance is the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap reports whether two points are within radius of each other.
// The test is inclusive: touching at exactly radius counts as an overlap.
func CirclesOverlap(ax, ay, bx, by, radius float64) bool {
	return Distance(ax, ay, bx, by) <= radius
}

// LaunchVelocity converts an aim angle and charge power into the initial
// flight velocity.
func LaunchVelocity(angleDeg int, power, angleDivisor, powerFactor float64) (vx, vy float64) {
	return float64(angleDeg) / angleDivisor, powerFactor * power
}
