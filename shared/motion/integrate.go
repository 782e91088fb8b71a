package motion

import (
	"github.com/automoto/movingsquare/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Integrate advances the body by one fixed tick. Contact flags read here are
// the ones set by the previous tick's resolution, and are cleared at the end
// so the resolver can set them fresh.
func Integrate(b *Body, t Tuning) {
	if !b.Contacts[SideFloor] && b.GravityCounter == 0 {
		b.Speed.Y -= t.Mass
	}

	if b.GravityCounter > 0 {
		b.GravityCounter--
	}

	if (b.Accel.X < 0 && !b.Contacts[SideLeft]) || (b.Accel.X > 0 && !b.Contacts[SideRight]) {
		b.Speed.X += b.Accel.X
	}

	b.Speed.Y += b.Accel.Y

	b.Accel = math.Vec2{}

	p := t.Deceleration
	if b.Contacts[SideFloor] {
		p *= t.GroundFriction
	}
	b.Speed.X = gamemath.Reduction(b.Speed.X, p, t.SpeedThreshold)

	b.Pos.X += b.Speed.X
	b.Pos.Y += b.Speed.Y

	b.Contacts = Contacts{}
}
