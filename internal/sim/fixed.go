package sim

import "github.com/vovakirdan/starfighter/internal/core"

// Fixed-point shifts: ship motion moves one pixel per 512 units, bullets per 64.
const (
	ShipShift   uint = 9
	BulletShift uint = 6
)

// Integrate adds a requested velocity to the carried remainder and splits the
// sum into a whole-pixel delta and a new remainder.
// The shift is arithmetic, so delta rounds toward negative infinity and the
// remainder always lies in [0, 1<<shift).
func Integrate(requested, remainder int, shift uint) (delta, newRemainder int) {
	combined := requested + remainder
	delta = combined >> shift
	newRemainder = combined - delta<<shift
	return delta, newRemainder
}

// IntegratePoint applies Integrate to both axes.
func IntegratePoint(v, rem core.Point, shift uint) (delta, newRem core.Point) {
	delta.X, newRem.X = Integrate(v.X, rem.X, shift)
	delta.Y, newRem.Y = Integrate(v.Y, rem.Y, shift)
	return delta, newRem
}

// Velocity returns the per-tick velocity for heading r: (-sine, -cosine).
// Ship thrust and bullets share this sign convention.
func Velocity(r RotationIndex) core.Point {
	return core.Point{X: -Sine(r), Y: -Cosine(r)}
}
