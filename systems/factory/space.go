package factory

import (
	"math"

	"github.com/automoto/movingsquare/archetypes"
	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ScreenFrame is the part of the world shown on screen.
func ScreenFrame() leveldata.Frame {
	return leveldata.Frame{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
}

// CreateSpace creates the broadphase covering frame.
func CreateSpace(ecs *ecs.ECS, frame leveldata.Frame, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, newSpace(frame, cellSize))
	components.SpaceFrame.SetValue(space, components.SpaceFrameData{Frame: frame, CellSize: cellSize})
	return space
}

// newSpace rounds the frame up to whole cells; resolv drops partial ones.
func newSpace(frame leveldata.Frame, cellSize int) *resolv.Space {
	cells := func(size float64) int {
		return int(math.Ceil(size/float64(cellSize))) * cellSize
	}
	return resolv.NewSpace(cells(frame.Width), cells(frame.Height), cellSize, cellSize)
}

// ResizeSpace replaces the broadphase with one covering frame. Objects
// already in the space keep their world positions.
func ResizeSpace(ecs *ecs.ECS, frame leveldata.Frame) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	old := components.Space.Get(entry)
	data := components.SpaceFrame.Get(entry)
	space := newSpace(frame, data.CellSize)

	dx := data.Frame.Origin.X - frame.Origin.X
	dy := data.Frame.Origin.Y - frame.Origin.Y
	for _, obj := range old.Objects() {
		old.Remove(obj)
		obj.X += dx
		obj.Y += dy
		space.Add(obj)
	}

	components.Space.Set(entry, space)
	data.Frame = frame
}

// spaceOrigin returns the world position of the broadphase origin.
func spaceOrigin(ecs *ecs.ECS) dmath.Vec2 {
	entry, ok := components.SpaceFrame.First(ecs.World)
	if !ok {
		return dmath.Vec2{}
	}
	return components.SpaceFrame.Get(entry).Frame.Origin
}

// addToSpace links obj to entry and inserts it into the broadphase, if one
// exists.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
