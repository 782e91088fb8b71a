package components

import (
	"io/fs"

	"github.com/automoto/movingsquare/shared/session"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton describing where levels come from and which one
// is spawned.
type LevelData struct {
	FS      fs.FS
	Path    string
	Loaded  bool
	Objects int
}

var Level = donburi.NewComponentType[LevelData]()

// LevelRequestsData holds transitions queued during a tick. They are
// drained at the start of the next tick.
type LevelRequestsData struct {
	Pending []session.Request
}

var LevelRequests = donburi.NewComponentType[LevelRequestsData]()

// Session is the singleton score and run state.
var Session = donburi.NewComponentType[session.Session]()
