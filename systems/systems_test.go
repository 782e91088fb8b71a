package systems

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/automoto/movingsquare/systems/factory"
	"github.com/automoto/movingsquare/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestIntentsFromInput(t *testing.T) {
	var input components.InputData

	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionJump] = true
	assert.Equal(t, []motion.Intent{
		motion.IntentMoveLeft,
		motion.IntentMoveRight,
		motion.IntentJumpStart,
	}, IntentsFromInput(&input))

	// Held jump only fires once.
	input.Previous = input.Current
	input.Current[cfg.ActionMoveLeft] = false
	assert.Equal(t, []motion.Intent{motion.IntentMoveRight}, IntentsFromInput(&input))

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	assert.Equal(t, []motion.Intent{motion.IntentJumpEnd}, IntentsFromInput(&input))

	input.Previous = input.Current
	assert.Empty(t, IntentsFromInput(&input))
}

func TestSummaryLines(t *testing.T) {
	summary := &components.SummaryData{
		Result:    session.Summary{Run: "og4", Coins: 7, Ticks: 150},
		BestTicks: 150,
		NewBest:   true,
	}
	assert.Equal(t, []string{"Time: 2.50s", "Coins: 7", "Best: 2.50s  New best!"}, SummaryLines(summary))

	summary.NewBest = false
	summary.BestTicks = 90
	assert.Equal(t, "Best: 1.50s", SummaryLines(summary)[2])
}

func TestLerpColor(t *testing.T) {
	assert.Equal(t, cfg.White, lerpColor(cfg.White, cfg.BrightGreen, 0))
	assert.Equal(t, cfg.BrightGreen, lerpColor(cfg.White, cfg.BrightGreen, 2))
}

// Both levels share a floor with its top edge at y=40. The first has one
// coin ahead of the door; the second has its door at the far right.
var testRun = fstest.MapFS{
	"run/info": {Data: []byte("LEVELS Test Run\nAUTHOR tests\n")},
	"run/0":    {Data: []byte("BARRIER 0 460 640 20\nPLAYER_POS 40 420\nCOIN 100 430\nDOOR 150 410 30 50\n")},
	"run/1":    {Data: []byte("BARRIER 0 460 640 20\nPLAYER_POS 40 420\nDOOR 590 410 30 50\n")},
}

func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, factory.ScreenFrame(), cfg.Levels.SpaceCellSize)
	factory.CreatePlayer(e, math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2})

	run, err := leveldata.ReadInfo(testRun, "run")
	require.NoError(t, err)
	require.Equal(t, 2, run.Amount)
	factory.CreateLevel(e, testRun, run)
	return e
}

// step runs the gameplay systems in scene order with intents queued for
// the player.
func step(e *ecs.ECS, intents ...motion.Intent) {
	UpdateLevelRequests(e)
	if player, ok := tags.Player.First(e.World); ok {
		queue := components.Intents.Get(player)
		queue.Pending = append(queue.Pending, intents...)
	}
	UpdatePlayer(e)
	UpdateCollisions(e)
	UpdateCoins(e)
	UpdateDoor(e)
	UpdateTimer(e)
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func playerBody(t *testing.T, e *ecs.ECS) *motion.Body {
	t.Helper()
	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return components.Body.Get(player)
}

func TestLevelLoadAndLanding(t *testing.T) {
	e := newTestWorld(t)

	step(e)
	s := GetSession(e)
	require.NotNil(t, s)
	assert.Equal(t, session.PhasePlaying, s.Phase)
	assert.Equal(t, 1, s.Score.Needed)
	assert.Equal(t, 1, count(e, tags.Coin))
	assert.Equal(t, 1, count(e, tags.Door))
	assert.Equal(t, 1, count(e, tags.Obstacle))

	for i := 0; i < 10; i++ {
		step(e)
	}
	body := playerBody(t, e)
	assert.True(t, body.OnGround())
	assert.Equal(t, 130.0, body.Pos.X)
	assert.Equal(t, 65.0, body.Pos.Y)

	var impacts int
	for _, req := range GetOrCreateAudio(e).PendingSFX {
		if req.ID == cfg.SoundImpact {
			impacts++
		}
	}
	assert.Equal(t, 1, impacts)
}

func TestRunThroughBothLevels(t *testing.T) {
	e := newTestWorld(t)
	step(e)

	for i := 0; i < 200; i++ {
		step(e, motion.IntentMoveRight)
	}

	s := GetSession(e)
	assert.Equal(t, 1, s.Run.Index)
	assert.True(t, s.Run.Next.Finish)
	assert.Equal(t, 0, s.Score.Needed)
	assert.Equal(t, 1, s.Collected)
	assert.Equal(t, 0, count(e, tags.Coin))
	assert.Equal(t, 1, count(e, tags.Door))
	assert.False(t, IsSummaryActive(e))

	level, ok := components.Level.First(e.World)
	require.True(t, ok)
	assert.Equal(t, "run/1", components.Level.Get(level).Path)

	for i := 0; i < 800 && !IsSummaryActive(e); i++ {
		step(e, motion.IntentMoveRight)
	}
	require.True(t, IsSummaryActive(e))

	summary := GetOrCreateSummary(e)
	assert.Equal(t, "Test", summary.Result.Run)
	assert.Equal(t, 1, summary.Result.Coins)
	assert.Equal(t, session.PhaseFinished, s.Phase)
	assert.True(t, summary.NewBest)
	assert.Equal(t, summary.Result.Ticks, summary.BestTicks)
}

func TestControlsHint(t *testing.T) {
	assert.Equal(t, "Arrows: Navigate   Enter: Select", controlsHint(components.InputKeyboard, false))
	assert.Equal(t, "Left Stick/D-Pad: Navigate   A: Select   Start: Resume", controlsHint(components.InputXbox, true))
	assert.Contains(t, controlsHint(components.InputPlayStation, true), "Options: Resume")
}

func newRunWorld(t *testing.T, fsys fstest.MapFS, withPlayer bool) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, factory.ScreenFrame(), cfg.Levels.SpaceCellSize)
	if withPlayer {
		factory.CreatePlayer(e, math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2})
	}

	run, err := leveldata.ReadInfo(fsys, "run")
	require.NoError(t, err)
	factory.CreateLevel(e, fsys, run)
	return e
}

func TestLevelOutsideScreen(t *testing.T) {
	// The floor's top edge is at y=-40 and it is 2000 units wide.
	fsys := fstest.MapFS{
		"run/info": {Data: []byte("LEVELS Outside\n")},
		"run/0":    {Data: []byte("BARRIER 0 500 1000 20\nPLAYER_POS 40 420\nCOIN 800 470\n")},
	}
	e := newRunWorld(t, fsys, true)

	for i := 0; i < 30; i++ {
		step(e)
	}
	body := playerBody(t, e)
	assert.True(t, body.OnGround())
	assert.Equal(t, -15.0, body.Pos.Y)

	for i := 0; i < 900; i++ {
		step(e, motion.IntentMoveRight)
	}
	assert.Greater(t, body.Pos.X, 1640.0)
	assert.Equal(t, -15.0, body.Pos.Y)
	assert.Equal(t, 1, GetSession(e).Score.Current)
	assert.Equal(t, 0, count(e, tags.Coin))
}

func TestLevelLoadWithoutPlayer(t *testing.T) {
	e := newRunWorld(t, testRun, false)

	lvl := leveldata.Load(testRun, "run/0")
	assert.False(t, factory.SpawnLevel(e, lvl))
	assert.Equal(t, 0, count(e, tags.LevelObject))

	UpdateLevelRequests(e)

	level, ok := components.Level.First(e.World)
	require.True(t, ok)
	assert.Empty(t, components.LevelRequests.Get(level).Pending)
	assert.False(t, components.Level.Get(level).Loaded)
	assert.Equal(t, 0, count(e, tags.LevelObject))

	s := GetSession(e)
	assert.Equal(t, 0, s.Score.Needed)
	assert.NotEqual(t, session.PhasePlaying, s.Phase)
}
