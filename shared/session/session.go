// Package session tracks a single playthrough of a run: coin score, the
// door win condition, and which level comes next.
package session

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/movingsquare/shared/leveldata"
)

// TicksPerSecond matches the fixed update rate.
const TicksPerSecond = 60

// Score counts collected coins against the number the door requires.
type Score struct {
	Current int
	Needed  int
}

// Complete reports whether the door will open. More coins than needed is
// fine, since branching levels may hold spares.
func (s Score) Complete() bool {
	return s.Current >= s.Needed
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Current, s.Needed)
}

// NextLevel points to the following level of a run, or marks the end.
type NextLevel struct {
	Index  int
	Finish bool
}

// RunData describes the run being played.
type RunData struct {
	Name  string
	Path  string
	Index int
	Count int
	Next  NextLevel
}

// Enter makes index the current level and recomputes Next.
func (r *RunData) Enter(index int) {
	r.Index = index
	if index+1 >= r.Count {
		r.Next = NextLevel{Finish: true}
		return
	}
	r.Next = NextLevel{Index: index + 1}
}

// LevelPath returns the path of the current level.
func (r *RunData) LevelPath() string {
	return leveldata.LevelPath(r.Path, r.Index)
}

// Phase is the state of the win-condition machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseFinished:
		return "Finished"
	}
	return "Unknown"
}

// RequestKind selects what a Request asks the driver to do.
type RequestKind int

const (
	RequestLoadLevel RequestKind = iota
	RequestShowSummary
)

// Summary is shown when a run is finished.
type Summary struct {
	Run   string
	Coins int
	Ticks int
}

// Elapsed converts the tick count to wall time at the fixed update rate.
func (s Summary) Elapsed() time.Duration {
	return time.Duration(s.Ticks) * time.Second / TicksPerSecond
}

// Request is a side effect produced by a state transition.
type Request struct {
	Kind    RequestKind
	Path    string
	Index   int
	Summary Summary
}

// Session is the score and progress state for one run.
type Session struct {
	Score Score
	Run   RunData
	Phase Phase
	// Collected counts every coin picked up during the run.
	Collected int
	// Ticks counts gameplay ticks since the run started.
	Ticks int
}

// New returns a session for the run stored at dir with count levels.
func New(name, dir string, count int) *Session {
	s := &Session{Run: RunData{Name: name, Path: dir, Count: count}}
	s.Run.Enter(0)
	return s
}

// Start resets the session to the first level of the run and returns the
// request that loads it.
func (s *Session) Start() Request {
	s.Score = Score{}
	s.Collected = 0
	s.Ticks = 0
	// Won until LevelLoaded, so the door stays inert while loading.
	s.Phase = PhaseWon
	s.Run.Enter(0)
	return s.loadRequest(0)
}

// LevelLoaded is called once the level at index has been spawned with the
// given number of coins.
func (s *Session) LevelLoaded(index, coins int) {
	s.Run.Enter(index)
	s.Score.Needed = coins
	s.Phase = PhasePlaying
	log.Printf("[SESSION] Level %d of %s needs %d coins", index, s.Run.Name, coins)
}

// CollectCoin records one coin pickup.
func (s *Session) CollectCoin() {
	if s.Phase != PhasePlaying {
		return
	}
	s.Score.Current++
	s.Collected++
}

// Tick advances the run clock while a level is being played.
func (s *Session) Tick() {
	if s.Phase == PhasePlaying {
		s.Ticks++
	}
}

// TouchDoor is called on every tick the player overlaps a door. It fires at
// most once per level.
func (s *Session) TouchDoor() []Request {
	if s.Phase != PhasePlaying || !s.Score.Complete() {
		return nil
	}

	log.Printf("[SESSION] Level %d of %s won", s.Run.Index, s.Run.Name)
	s.Score.Current = 0

	if s.Run.Next.Finish {
		s.Phase = PhaseFinished
		return []Request{{
			Kind: RequestShowSummary,
			Summary: Summary{
				Run:   s.Run.Name,
				Coins: s.Collected,
				Ticks: s.Ticks,
			},
		}}
	}

	s.Phase = PhaseWon
	return []Request{s.loadRequest(s.Run.Next.Index)}
}

func (s *Session) loadRequest(index int) Request {
	return Request{
		Kind:  RequestLoadLevel,
		Path:  leveldata.LevelPath(s.Run.Path, index),
		Index: index,
	}
}
