package sim

import (
	"fmt"

	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/yohamta/donburi/features/math"
)

// Report summarizes a level after letting the player fall idle from its
// spawn.
type Report struct {
	Path     string
	Objects  int
	Coins    int
	Doors    int
	HasSpawn bool
	Grounded bool
	Final    math.Vec2
}

// Problems lists what would make the level unplayable or unwinnable.
func (r Report) Problems() []string {
	var problems []string
	if r.Objects == 0 {
		problems = append(problems, "no objects")
	}
	if !r.HasSpawn {
		problems = append(problems, "no PLAYER_POS")
	}
	if r.Doors == 0 {
		problems = append(problems, "no door")
	}
	if !r.Grounded {
		problems = append(problems, fmt.Sprintf("player does not land, ended at %.1f, %.1f", r.Final.X, r.Final.Y))
	}
	return problems
}

// CheckLevel loads lvl and steps it ticks times with no input.
func CheckLevel(cfg Config, lvl *leveldata.Level, ticks int) Report {
	report := Report{
		Path:    lvl.Path,
		Objects: len(lvl.Objects),
		Coins:   lvl.CoinCount(),
	}
	for _, o := range lvl.Objects {
		if o.Kind == leveldata.KindDoor {
			report.Doors++
		}
	}
	_, report.HasSpawn = lvl.Spawn()

	w := NewWorld(cfg, session.New(lvl.Path, "", 1))
	w.Load(lvl, 0)
	for i := 0; i < ticks; i++ {
		w.Step(nil)
	}

	report.Grounded = w.Body.OnGround()
	report.Final = w.Body.Pos
	return report
}
