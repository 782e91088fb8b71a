// Package sim steps a level without ebitengine or an ECS world, using the
// same tick order as the game scene. It backs the level checker and lets
// whole-level behavior be tested headless.
package sim

import (
	gomath "math"
	"sort"

	"github.com/automoto/movingsquare/shared/gamemath"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

const (
	tagSolid  = "solid"
	tagCoin   = "coin"
	tagDoor   = "door"
	tagPlayer = "player"
)

// Config sizes the world and the player.
type Config struct {
	Width       int
	Height      int
	CellSize    int
	ProbeMargin float64
	PlayerSize  float64
	Tuning      motion.Tuning
}

// item is the payload of every level object in the space. id is the index
// in the level file and orders resolution.
type item struct {
	id  int
	box motion.Obstacle
	obj *resolv.Object
}

// World is one loaded level and the player in it.
type World struct {
	Space   *resolv.Space
	Body    motion.Body
	Session *session.Session

	cfg   Config
	frame leveldata.Frame
	probe *resolv.Object
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Contacts []motion.Contact
	Coins    int
	Requests []session.Request
}

func NewWorld(cfg Config, s *session.Session) *World {
	return &World{cfg: cfg, Session: s}
}

// Load replaces the current level with lvl and places the player at its
// spawn, or at the world center when it has none. The space covers the
// screen and every object of the level.
func (w *World) Load(lvl *leveldata.Level, index int) {
	screen := leveldata.Frame{Width: float64(w.cfg.Width), Height: float64(w.cfg.Height)}
	w.frame = lvl.Bounds(screen, w.cfg.ProbeMargin+1)
	w.Space = resolv.NewSpace(cells(w.frame.Width, w.cfg.CellSize), cells(w.frame.Height, w.cfg.CellSize), w.cfg.CellSize, w.cfg.CellSize)

	for i, o := range lvl.Objects {
		var tag string
		switch o.Kind {
		case leveldata.KindObstacle:
			tag = tagSolid
		case leveldata.KindCoin:
			tag = tagCoin
		case leveldata.KindDoor:
			tag = tagDoor
		default:
			continue
		}
		at := w.frame.Local(o.Pos)
		obj := resolv.NewObject(at.X-o.Size.X/2, at.Y-o.Size.Y/2, o.Size.X, o.Size.Y, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, o.Size.X, o.Size.Y))
		obj.Data = &item{id: i, box: motion.Obstacle{Pos: o.Pos, Size: o.Size}, obj: obj}
		w.Space.Add(obj)
	}

	spawn, ok := lvl.Spawn()
	if !ok {
		spawn = math.Vec2{X: float64(w.cfg.Width) / 2, Y: float64(w.cfg.Height) / 2}
	}
	size := math.Vec2{X: w.cfg.PlayerSize, Y: w.cfg.PlayerSize}
	w.Body = motion.Body{Pos: spawn, Size: size}

	m := w.cfg.ProbeMargin
	w.probe = resolv.NewObject(0, 0, size.X+2*m, size.Y+2*m, tagPlayer)
	w.probe.SetShape(resolv.NewRectangle(0, 0, size.X+2*m, size.Y+2*m))
	w.Space.Add(w.probe)
	w.syncProbe()

	if w.Session != nil {
		w.Session.LevelLoaded(index, lvl.CoinCount())
	}
}

// Step runs one tick: intents, integration, obstacle resolution, coin
// pickup, the door and the run clock.
func (w *World) Step(intents []motion.Intent) StepResult {
	var res StepResult

	motion.ApplyIntents(&w.Body, intents, w.cfg.Tuning)
	motion.Integrate(&w.Body, w.cfg.Tuning)
	w.syncProbe()

	nearby := w.nearby(tagSolid)
	obstacles := make([]motion.Obstacle, 0, len(nearby))
	for _, it := range nearby {
		obstacles = append(obstacles, it.box)
	}
	res.Contacts = motion.ResolveAll(&w.Body, obstacles)
	w.syncProbe()

	for _, coin := range w.touching(tagCoin) {
		w.Space.Remove(coin.obj)
		res.Coins++
		if w.Session != nil {
			w.Session.CollectCoin()
		}
	}

	if w.Session == nil {
		return res
	}
	if len(w.touching(tagDoor)) > 0 {
		res.Requests = w.Session.TouchDoor()
	}
	w.Session.Tick()
	return res
}

// CoinsLeft counts the coins still in the level.
func (w *World) CoinsLeft() int {
	n := 0
	for _, obj := range w.Space.Objects() {
		if obj.HasTags(tagCoin) {
			n++
		}
	}
	return n
}

// cells rounds size up to a whole number of cells.
func cells(size float64, cellSize int) int {
	return int(gomath.Ceil(size/float64(cellSize))) * cellSize
}

func (w *World) syncProbe() {
	w.probe.X = w.Body.Left() - w.frame.Origin.X - w.cfg.ProbeMargin
	w.probe.Y = w.Body.Bottom() - w.frame.Origin.Y - w.cfg.ProbeMargin
	w.probe.Update()
}

// nearby returns the broadphase candidates with tag, ordered by id.
func (w *World) nearby(tag string) []*item {
	check := w.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	seen := make(map[*item]bool)
	var items []*item
	for _, obj := range check.ObjectsByTags(tag) {
		it, ok := obj.Data.(*item)
		if !ok || seen[it] {
			continue
		}
		seen[it] = true
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].id < items[j].id })
	return items
}

func (w *World) touching(tag string) []*item {
	var items []*item
	for _, it := range w.nearby(tag) {
		if gamemath.Overlaps(w.Body.Pos, w.Body.Size, it.box.Pos, it.box.Size) {
			items = append(items, it)
		}
	}
	return items
}
