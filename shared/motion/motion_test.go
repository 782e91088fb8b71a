package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

var testTuning = Tuning{
	Mass:           1,
	Acceleration:   1,
	JumpStrength:   7,
	JumpTime:       20,
	Deceleration:   0.8,
	GroundFriction: 0.8,
	SpeedThreshold: 0.5,
}

func vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

func newBody(x, y float64) *Body {
	return &Body{Pos: vec(x, y), Size: vec(50, 50)}
}

func TestIntegrate(t *testing.T) {
	t.Run("free fall accumulates mass per tick", func(t *testing.T) {
		b := newBody(0, 500)
		for i := 0; i < 10; i++ {
			Integrate(b, testTuning)
		}
		assert.Equal(t, -10.0, b.Speed.Y)
		// 1 + 2 + ... + 10
		assert.Equal(t, 500.0-55.0, b.Pos.Y)
	})

	t.Run("resting body on floor stays put", func(t *testing.T) {
		b := newBody(0, 25)
		floor := Obstacle{Pos: vec(0, -50), Size: vec(400, 100)}
		for i := 0; i < 60; i++ {
			Integrate(b, testTuning)
			ResolveAll(b, []Obstacle{floor})
		}
		assert.Equal(t, 25.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Speed.Y)
		assert.Equal(t, 0.0, b.Speed.X)
		assert.True(t, b.OnGround())
	})

	t.Run("gravity counter suspends gravity and counts down", func(t *testing.T) {
		b := newBody(0, 500)
		b.GravityCounter = 2
		Integrate(b, testTuning)
		assert.Equal(t, 0.0, b.Speed.Y)
		assert.Equal(t, 1, b.GravityCounter)
		Integrate(b, testTuning)
		assert.Equal(t, 0.0, b.Speed.Y)
		assert.Equal(t, 0, b.GravityCounter)
		Integrate(b, testTuning)
		assert.Equal(t, -1.0, b.Speed.Y)
	})

	t.Run("wall contact blocks acceleration into the wall", func(t *testing.T) {
		b := newBody(0, 500)
		b.GravityCounter = 5
		b.Contacts[SideRight] = true
		b.Accel.X = 1
		Integrate(b, testTuning)
		assert.Equal(t, 0.0, b.Speed.X)

		b.Contacts[SideLeft] = true
		b.Accel.X = 2
		Integrate(b, testTuning)
		assert.InDelta(t, 1.6, b.Speed.X, 1e-9)
	})

	t.Run("acceleration and contacts reset every tick", func(t *testing.T) {
		b := newBody(0, 500)
		b.Accel = vec(3, 4)
		b.Contacts = Contacts{true, true, true, true}
		Integrate(b, testTuning)
		assert.Equal(t, math.Vec2{}, b.Accel)
		assert.Equal(t, Contacts{}, b.Contacts)
	})

	t.Run("ground friction stops a slow slide", func(t *testing.T) {
		b := newBody(0, 25)
		b.Speed.X = 0.7
		b.Contacts[SideFloor] = true
		Integrate(b, testTuning)
		assert.Equal(t, 0.0, b.Speed.X)
	})
}

func TestApplyIntents(t *testing.T) {
	t.Run("move intents are additive", func(t *testing.T) {
		b := newBody(0, 0)
		ApplyIntents(b, []Intent{IntentMoveLeft, IntentMoveLeft, IntentMoveRight}, testTuning)
		assert.Equal(t, -1.0, b.Accel.X)
	})

	t.Run("jump start locks until landing", func(t *testing.T) {
		b := newBody(0, 0)
		Apply(b, IntentJumpStart, testTuning)
		assert.True(t, b.JumpLock)
		assert.Equal(t, 7.0, b.Accel.Y)
		assert.Equal(t, 20, b.GravityCounter)

		Apply(b, IntentJumpStart, testTuning)
		assert.Equal(t, 7.0, b.Accel.Y)
	})

	t.Run("jump end cancels counteraction", func(t *testing.T) {
		b := newBody(0, 0)
		b.GravityCounter = 12
		Apply(b, IntentJumpEnd, testTuning)
		assert.Equal(t, 0, b.GravityCounter)
	})
}

func TestJumpScenario(t *testing.T) {
	floor := Obstacle{Pos: vec(0, -50), Size: vec(800, 100)}
	b := newBody(0, 25)
	tick := func(intents ...Intent) {
		ApplyIntents(b, intents, testTuning)
		Integrate(b, testTuning)
		ResolveAll(b, []Obstacle{floor})
	}

	tick()
	require.True(t, b.OnGround())

	tick(IntentJumpStart)
	assert.True(t, b.JumpLock)
	assert.Greater(t, b.Pos.Y, 25.0)

	apex := b.Pos.Y
	for i := 0; i < 5; i++ {
		tick(IntentJumpStart)
		if b.Pos.Y > apex {
			apex = b.Pos.Y
		}
	}
	// A second press in the air gives no extra lift.
	assert.Equal(t, 7.0, b.Speed.Y)

	landed := false
	for i := 0; i < 200; i++ {
		tick()
		if !b.JumpLock {
			landed = true
			break
		}
	}
	require.True(t, landed)
	assert.Equal(t, 25.0, b.Pos.Y)

	tick(IntentJumpStart)
	assert.True(t, b.JumpLock)
	assert.Greater(t, b.Pos.Y, 25.0)
}

func TestResolve(t *testing.T) {
	t.Run("floor snaps on top and unlocks jump", func(t *testing.T) {
		b := newBody(0, 22)
		b.Speed.Y = -6
		b.JumpLock = true
		c := Resolve(b, Obstacle{Pos: vec(0, -50), Size: vec(400, 100)})
		assert.Equal(t, SideFloor, c.Side)
		assert.Equal(t, -6.0, c.ImpactSpeed)
		assert.Equal(t, 25.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Speed.Y)
		assert.False(t, b.JumpLock)
		assert.True(t, b.Contacts[SideFloor])
	})

	t.Run("ceiling snaps below and cancels counteraction", func(t *testing.T) {
		b := newBody(0, 78)
		b.Speed.Y = 5
		b.GravityCounter = 10
		c := Resolve(b, Obstacle{Pos: vec(0, 150), Size: vec(400, 100)})
		assert.Equal(t, SideCeiling, c.Side)
		assert.Equal(t, 75.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Speed.Y)
		assert.Equal(t, 0, b.GravityCounter)
	})

	t.Run("left face pushes body right", func(t *testing.T) {
		b := newBody(122, 0)
		b.Speed.X = -4
		c := Resolve(b, Obstacle{Pos: vec(50, 0), Size: vec(100, 400)})
		assert.Equal(t, SideLeft, c.Side)
		assert.Equal(t, 125.0, b.Pos.X)
		assert.Equal(t, 0.0, b.Speed.X)
		assert.True(t, b.Contacts[SideLeft])
	})

	t.Run("right face pushes body left", func(t *testing.T) {
		b := newBody(-22, 0)
		b.Speed.X = 4
		c := Resolve(b, Obstacle{Pos: vec(50, 0), Size: vec(100, 400)})
		assert.Equal(t, SideRight, c.Side)
		assert.Equal(t, -25.0, b.Pos.X)
		assert.Equal(t, 0.0, b.Speed.X)
	})

	t.Run("speed away from the face is kept", func(t *testing.T) {
		b := newBody(0, 22)
		b.Speed.Y = 3
		Resolve(b, Obstacle{Pos: vec(0, -50), Size: vec(400, 100)})
		assert.Equal(t, 3.0, b.Speed.Y)
	})

	t.Run("ties prefer floor then ceiling then left", func(t *testing.T) {
		// Equal boxes on top of each other: all four distances are 50.
		b := newBody(0, 0)
		c := Resolve(b, Obstacle{Pos: vec(0, 0), Size: vec(50, 50)})
		assert.Equal(t, SideFloor, c.Side)

		// Ceiling and left tie, floor is further away.
		b = newBody(0, 0)
		c = Resolve(b, Obstacle{Pos: vec(-10, 10), Size: vec(50, 50)})
		assert.Equal(t, SideCeiling, c.Side)

		// Left and right tie, floor and ceiling further away.
		b = &Body{Pos: vec(0, 0), Size: vec(10, 50)}
		c = Resolve(b, Obstacle{Pos: vec(0, 0), Size: vec(10, 50)})
		assert.Equal(t, SideLeft, c.Side)
	})
}

func TestResolveAll(t *testing.T) {
	t.Run("skips obstacles out of reach", func(t *testing.T) {
		b := newBody(0, 300)
		contacts := ResolveAll(b, []Obstacle{{Pos: vec(0, -50), Size: vec(400, 100)}})
		assert.Empty(t, contacts)
		assert.Equal(t, 300.0, b.Pos.Y)
	})

	t.Run("resolves corner against floor and wall", func(t *testing.T) {
		b := newBody(0, 23)
		b.Speed = vec(3, -2)
		floor := Obstacle{Pos: vec(0, -50), Size: vec(400, 100)}
		wall := Obstacle{Pos: vec(48, 100), Size: vec(50, 200)}
		contacts := ResolveAll(b, []Obstacle{floor, wall})
		require.Len(t, contacts, 2)
		assert.Equal(t, SideFloor, contacts[0].Side)
		assert.Equal(t, SideRight, contacts[1].Side)
		assert.Equal(t, -2.0, b.Pos.X)
		assert.Equal(t, 0.0, b.Speed.X)
		assert.Equal(t, 25.0, b.Pos.Y)
	})
}

func TestImpactVolume(t *testing.T) {
	assert.Equal(t, 0.5, ImpactVolume(-10, 20))
	assert.Equal(t, 1.0, ImpactVolume(40, 20))
	assert.Equal(t, 0.0, ImpactVolume(5, 0))
}
