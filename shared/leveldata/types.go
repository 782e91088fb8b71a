// Package leveldata parses level files and run directories. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS, and has no dependencies on
// ebitengine or resolv.
package leveldata

import (
	"github.com/yohamta/donburi/features/math"
)

// Legacy level files use a 640x480 y-down canvas. The game world is twice
// that size with y pointing up.
const (
	LegacyScale  = 2.0
	WorldHeight  = 960.0
	CoinRadius   = 20.0
	PlayerExtent = 50.0
)

// Kind identifies what a parsed Object places into the level.
type Kind int

const (
	KindObstacle Kind = iota
	KindCoin
	KindDoor
	KindPlayerSpawn
)

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindCoin:
		return "Coin"
	case KindDoor:
		return "Door"
	case KindPlayerSpawn:
		return "PlayerSpawn"
	}
	return "Unknown"
}

// Object is one placed level object in world coordinates. Pos is the center.
// Size is zero for player spawns.
type Object struct {
	Kind Kind
	Pos  math.Vec2
	Size math.Vec2
}

// Level is the parsed content of one level file.
type Level struct {
	Path    string
	Objects []Object
}

// CoinCount returns the number of coins placed in the level.
func (l *Level) CoinCount() int {
	n := 0
	for _, o := range l.Objects {
		if o.Kind == KindCoin {
			n++
		}
	}
	return n
}

// Spawn returns the last player spawn in the level, if any.
func (l *Level) Spawn() (math.Vec2, bool) {
	var pos math.Vec2
	found := false
	for _, o := range l.Objects {
		if o.Kind == KindPlayerSpawn {
			pos = o.Pos
			found = true
		}
	}
	return pos, found
}

// Info describes a run directory, read from its info file.
type Info struct {
	Dir    string
	Name   string
	Author string
	Amount int
}
