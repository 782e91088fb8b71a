package motion

import (
	"math"

	"github.com/automoto/movingsquare/shared/gamemath"
)

// Contact describes one resolved collision.
type Contact struct {
	Side Side
	// ImpactSpeed is the vertical speed before correction.
	ImpactSpeed float64
}

// Resolve pushes the body out of an overlapping obstacle through the face
// with the smallest edge distance. Ties go to floor, then ceiling, left,
// right.
func Resolve(b *Body, o Obstacle) Contact {
	distances := [4]float64{
		SideFloor:   math.Abs(b.Bottom() - o.Top()),
		SideCeiling: math.Abs(b.Top() - o.Bottom()),
		SideLeft:    math.Abs(b.Left() - o.Right()),
		SideRight:   math.Abs(b.Right() - o.Left()),
	}

	side := SideNone
	best := math.Inf(1)
	for s, d := range distances {
		if d < best {
			side = Side(s)
			best = d
		}
	}

	contact := Contact{Side: side, ImpactSpeed: b.Speed.Y}

	switch side {
	case SideFloor:
		b.Pos.Y = o.Pos.Y + b.Size.Y/2 + o.Size.Y/2
		b.JumpLock = false
		if b.Speed.Y < 0 {
			b.Speed.Y = 0
		}
	case SideCeiling:
		b.Pos.Y = o.Pos.Y - b.Size.Y/2 - o.Size.Y/2
		if b.Speed.Y > 0 {
			b.Speed.Y = 0
		}
		b.GravityCounter = 0
	case SideLeft:
		b.Pos.X = o.Pos.X + b.Size.X/2 + o.Size.X/2
		if b.Speed.X < 0 {
			b.Speed.X = 0
		}
	case SideRight:
		b.Pos.X = o.Pos.X - b.Size.X/2 - o.Size.X/2
		if b.Speed.X > 0 {
			b.Speed.X = 0
		}
	default:
		// NaN distances only
		return contact
	}

	b.Contacts[side] = true
	return contact
}

// ResolveAll resolves the body against each overlapping obstacle in order.
// Each correction sees the body as left by the previous one.
func ResolveAll(b *Body, obstacles []Obstacle) []Contact {
	var contacts []Contact
	for _, o := range obstacles {
		if !gamemath.Overlaps(b.Pos, b.Size, o.Pos, o.Size) {
			continue
		}
		contacts = append(contacts, Resolve(b, o))
	}
	return contacts
}

// ImpactVolume maps a vertical impact speed to a playback volume in [0, 1].
func ImpactVolume(speed, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return gamemath.ClampUnit(math.Abs(speed) / base)
}
