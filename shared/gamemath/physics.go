// Package gamemath holds the pure geometry helpers used by the player
// integrator and collision resolver. Positions are rectangle centers and
// sizes are full extents.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ContactTolerance widens each span on both ends so touching boxes count as
// overlapping.
const ContactTolerance = 1.0

// Overlaps reports whether two center-positioned rectangles overlap on both
// axes, with ContactTolerance applied.
func Overlaps(posA, sizeA, posB, sizeB dmath.Vec2) bool {
	ax, ay := posA.X-sizeA.X/2, posA.Y-sizeA.Y/2
	bx, by := posB.X-sizeB.X/2, posB.Y-sizeB.Y/2
	return spanOverlaps(ax, sizeA.X, bx, sizeB.X) && spanOverlaps(ay, sizeA.Y, by, sizeB.Y)
}

// spanOverlaps checks whether either span's leading edge falls within the
// other span.
func spanOverlaps(a, lenA, b, lenB float64) bool {
	return (b-ContactTolerance <= a && a <= b+lenB+ContactTolerance) ||
		(a-ContactTolerance <= b && b <= a+lenA+ContactTolerance)
}

// Reduction scales v by p and snaps the result to zero when its magnitude
// falls under threshold.
func Reduction(v, p, threshold float64) float64 {
	if math.Abs(v*p) < threshold {
		return 0
	}
	return v * p
}

// ClampUnit clamps a value to [0, 1].
func ClampUnit(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
