package leveldata

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// Frame is an axis-aligned area of the world. Origin is its bottom-left
// corner.
type Frame struct {
	Origin math.Vec2
	Width  float64
	Height float64
}

// Local converts a world position to one relative to the frame origin.
func (f Frame) Local(p math.Vec2) math.Vec2 {
	return math.Vec2{X: p.X - f.Origin.X, Y: p.Y - f.Origin.Y}
}

// Bounds returns the smallest frame covering base and every object in the
// level, grown by margin on each side of the objects.
func (l *Level) Bounds(base Frame, margin float64) Frame {
	minX, minY := base.Origin.X, base.Origin.Y
	maxX, maxY := minX+base.Width, minY+base.Height

	for _, o := range l.Objects {
		minX = gomath.Min(minX, o.Pos.X-o.Size.X/2-margin)
		minY = gomath.Min(minY, o.Pos.Y-o.Size.Y/2-margin)
		maxX = gomath.Max(maxX, o.Pos.X+o.Size.X/2+margin)
		maxY = gomath.Max(maxY, o.Pos.Y+o.Size.Y/2+margin)
	}

	return Frame{
		Origin: math.Vec2{X: minX, Y: minY},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
