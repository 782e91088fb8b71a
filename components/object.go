package components

import (
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData links an entity to its broadphase object.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broadphase grid.
var Space = donburi.NewComponentType[resolv.Space]()

// SpaceFrameData places the broadphase in the world. resolv coordinates are
// world coordinates minus Frame.Origin.
type SpaceFrameData struct {
	Frame    leveldata.Frame
	CellSize int
}

var SpaceFrame = donburi.NewComponentType[SpaceFrameData]()

// BoxData is the world-space rectangle of a static level object. Pos is the
// center, y-up.
type BoxData struct {
	Pos  math.Vec2
	Size math.Vec2
}

// Obstacle returns the box as a collision obstacle.
func (b BoxData) Obstacle() motion.Obstacle {
	return motion.Obstacle{Pos: b.Pos, Size: b.Size}
}

var Box = donburi.NewComponentType[BoxData]()
