package sim

import (
	"strings"
	"testing"

	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/shared/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	Width:       1280,
	Height:      960,
	CellSize:    32,
	ProbeMargin: 2,
	PlayerSize:  50,
	Tuning: motion.Tuning{
		Mass:           1,
		Acceleration:   1,
		JumpStrength:   7,
		JumpTime:       20,
		Deceleration:   0.8,
		GroundFriction: 0.8,
		SpeedThreshold: 0.5,
	},
}

// The floor's top edge is at y=40 and the spawn puts the player's bottom
// edge at y=45.
const floorAndSpawn = "BARRIER 0 460 640 20\nPLAYER_POS 40 420\n"

func parseLevel(t *testing.T, text string) *leveldata.Level {
	t.Helper()
	objects, err := leveldata.Parse(strings.NewReader(text), "test")
	require.NoError(t, err)
	return &leveldata.Level{Path: "test", Objects: objects}
}

func landedWorld(t *testing.T, text string, s *session.Session) *World {
	t.Helper()
	w := NewWorld(testConfig, s)
	w.Load(parseLevel(t, text), 0)
	for i := 0; i < 30; i++ {
		w.Step(nil)
	}
	require.True(t, w.Body.OnGround())
	return w
}

func walkRight(w *World, ticks int) (coins int, requests []session.Request) {
	for i := 0; i < ticks; i++ {
		res := w.Step([]motion.Intent{motion.IntentMoveRight})
		coins += res.Coins
		requests = append(requests, res.Requests...)
	}
	return coins, requests
}

func TestFallAndLand(t *testing.T) {
	w := landedWorld(t, floorAndSpawn, nil)
	assert.Equal(t, 130.0, w.Body.Pos.X)
	assert.Equal(t, 65.0, w.Body.Pos.Y)
	assert.Equal(t, 0.0, w.Body.Speed.Y)
	assert.False(t, w.Body.JumpLock)
}

func TestJumpArc(t *testing.T) {
	w := landedWorld(t, floorAndSpawn, nil)

	w.Step([]motion.Intent{motion.IntentJumpStart})
	assert.Equal(t, 72.0, w.Body.Pos.Y)
	assert.True(t, w.Body.JumpLock)

	for i := 0; i < 19; i++ {
		w.Step(nil)
	}
	assert.Equal(t, 205.0, w.Body.Pos.Y)
	assert.Equal(t, 0, w.Body.GravityCounter)

	w.Step(nil)
	assert.Equal(t, 6.0, w.Body.Speed.Y)

	for i := 0; i < 120; i++ {
		w.Step(nil)
	}
	assert.Equal(t, 65.0, w.Body.Pos.Y)
	assert.False(t, w.Body.JumpLock)
	assert.True(t, w.Body.OnGround())
}

func TestCoinsAndDoor(t *testing.T) {
	t.Run("coin then door loads the next level", func(t *testing.T) {
		s := session.New("test", "runs/test", 2)
		w := landedWorld(t, floorAndSpawn+"COIN 100 430\nDOOR 150 410 30 50\n", s)
		require.Equal(t, 1, s.Score.Needed)

		coins, requests := walkRight(w, 200)
		assert.Equal(t, 1, coins)
		assert.Equal(t, 0, w.CoinsLeft())
		require.Len(t, requests, 1)
		assert.Equal(t, session.RequestLoadLevel, requests[0].Kind)
		assert.Equal(t, "runs/test/1", requests[0].Path)
		assert.Equal(t, session.PhaseWon, s.Phase)
	})

	t.Run("door without the coins stays shut", func(t *testing.T) {
		s := session.New("test", "runs/test", 2)
		w := landedWorld(t, floorAndSpawn+"DOOR 100 410 30 50\nCOIN 200 430\n", s)

		coins, requests := walkRight(w, 200)
		assert.Equal(t, 1, coins)
		assert.Empty(t, requests)
		assert.Equal(t, 1, s.Score.Current)
		assert.Equal(t, session.PhasePlaying, s.Phase)
	})
}

func TestCheckLevel(t *testing.T) {
	t.Run("playable level", func(t *testing.T) {
		report := CheckLevel(testConfig, parseLevel(t, floorAndSpawn+"DOOR 590 410 30 50\n"), 60)
		assert.True(t, report.HasSpawn)
		assert.True(t, report.Grounded)
		assert.Equal(t, 1, report.Doors)
		assert.Empty(t, report.Problems())
	})

	t.Run("bottomless level", func(t *testing.T) {
		report := CheckLevel(testConfig, parseLevel(t, "PLAYER_POS 40 420\nCOIN 300 100\n"), 60)
		assert.False(t, report.Grounded)
		assert.Len(t, report.Problems(), 2)
	})

	t.Run("empty level", func(t *testing.T) {
		report := CheckLevel(testConfig, &leveldata.Level{Path: "empty"}, 10)
		assert.Len(t, report.Problems(), 4)
	})
}

// referenceStep moves b one tick against every obstacle of lvl, without a
// broadphase.
func referenceStep(b *motion.Body, lvl *leveldata.Level, intents []motion.Intent) {
	var obstacles []motion.Obstacle
	for _, o := range lvl.Objects {
		if o.Kind == leveldata.KindObstacle {
			obstacles = append(obstacles, motion.Obstacle{Pos: o.Pos, Size: o.Size})
		}
	}
	motion.ApplyIntents(b, intents, testConfig.Tuning)
	motion.Integrate(b, testConfig.Tuning)
	motion.ResolveAll(b, obstacles)
}

func TestBroadphaseCoversLevelOutsideScreen(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		ticks   int
		intents []motion.Intent
	}{
		{
			name:  "floor below the screen",
			level: "BARRIER 0 500 640 20\nPLAYER_POS 40 420\n",
			ticks: 60,
		},
		{
			name:    "floor wider than the screen",
			level:   "BARRIER 0 460 1000 20\nPLAYER_POS 40 420\n",
			ticks:   900,
			intents: []motion.Intent{motion.IntentMoveRight},
		},
		{
			name:    "wall left of the screen",
			level:   "BARRIER -200 460 400 20\nBARRIER -200 -100 10 560\nPLAYER_POS 40 420\n",
			ticks:   400,
			intents: []motion.Intent{motion.IntentMoveLeft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := parseLevel(t, tt.level)
			w := NewWorld(testConfig, nil)
			w.Load(lvl, 0)
			ref := w.Body

			for i := 0; i < tt.ticks; i++ {
				w.Step(tt.intents)
				referenceStep(&ref, lvl, tt.intents)
				require.Equal(t, ref, w.Body, "tick %d", i)
			}
			assert.True(t, w.Body.OnGround())
		})
	}

	t.Run("player walks past the right edge of the screen", func(t *testing.T) {
		w := NewWorld(testConfig, nil)
		w.Load(parseLevel(t, "BARRIER 0 460 1000 20\nPLAYER_POS 40 420\n"), 0)
		for i := 0; i < 900; i++ {
			w.Step([]motion.Intent{motion.IntentMoveRight})
		}
		assert.Greater(t, w.Body.Pos.X, 1280.0)
		assert.Equal(t, 65.0, w.Body.Pos.Y)
	})

	t.Run("wall left of the screen stops the player", func(t *testing.T) {
		w := NewWorld(testConfig, nil)
		w.Load(parseLevel(t, "BARRIER -200 460 400 20\nBARRIER -200 -100 10 560\nPLAYER_POS 40 420\n"), 0)
		for i := 0; i < 400; i++ {
			w.Step([]motion.Intent{motion.IntentMoveLeft})
		}
		assert.Equal(t, -355.0, w.Body.Pos.X)
		assert.True(t, w.Body.Contacts[motion.SideLeft])
	})

	t.Run("level check lands below the screen", func(t *testing.T) {
		report := CheckLevel(testConfig, parseLevel(t, "BARRIER 0 500 640 20\nPLAYER_POS 40 420\nDOOR 590 450 30 50\n"), 60)
		assert.Empty(t, report.Problems())
		assert.Equal(t, -15.0, report.Final.Y)
	})
}
