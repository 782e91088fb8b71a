// Package motion implements the player's fixed-tick movement: intents,
// integration and collision resolution against static obstacles. It has no
// dependencies on ebitengine or resolv, so it can be tested headless.
package motion

import (
	"github.com/yohamta/donburi/features/math"
)

// Side identifies which face of an obstacle the body touched.
type Side int

const (
	SideFloor Side = iota
	SideCeiling
	SideLeft
	SideRight
	SideNone Side = -1
)

func (s Side) String() string {
	switch s {
	case SideFloor:
		return "floor"
	case SideCeiling:
		return "ceiling"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Contacts holds per-tick contact flags indexed by Side.
type Contacts [4]bool

// Body is the single controllable rectangle. Pos is the center, Size the
// full extents, and the world is y-up.
type Body struct {
	Pos   math.Vec2
	Size  math.Vec2
	Speed math.Vec2
	Accel math.Vec2

	Contacts       Contacts
	JumpLock       bool
	GravityCounter int
}

func (b *Body) Bottom() float64 { return b.Pos.Y - b.Size.Y/2 }
func (b *Body) Top() float64    { return b.Pos.Y + b.Size.Y/2 }
func (b *Body) Left() float64   { return b.Pos.X - b.Size.X/2 }
func (b *Body) Right() float64  { return b.Pos.X + b.Size.X/2 }

// OnGround reports whether the body landed on something this tick.
func (b *Body) OnGround() bool {
	return b.Contacts[SideFloor]
}

// Obstacle is a static, axis-aligned rectangle.
type Obstacle struct {
	Pos  math.Vec2
	Size math.Vec2
}

func (o Obstacle) Bottom() float64 { return o.Pos.Y - o.Size.Y/2 }
func (o Obstacle) Top() float64    { return o.Pos.Y + o.Size.Y/2 }
func (o Obstacle) Left() float64   { return o.Pos.X - o.Size.X/2 }
func (o Obstacle) Right() float64  { return o.Pos.X + o.Size.X/2 }

// Tuning is the set of movement constants applied each tick.
type Tuning struct {
	Mass           float64 // gravity pull per tick
	Acceleration   float64 // horizontal push per move intent
	JumpStrength   float64
	JumpTime       int // ticks of gravity counteraction after a jump
	Deceleration   float64
	GroundFriction float64
	SpeedThreshold float64
}
