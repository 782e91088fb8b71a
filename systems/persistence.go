package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedBest is the best completion of a run stored on disk
type SavedBest struct {
	Ticks int `json:"ticks"`
	Coins int `json:"coins"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for best-time storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "movingsquare",
	})
	if err != nil {
		log.Printf("[SAVE] Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func bestKey(run string) string {
	return "best-" + run
}

// LoadBest returns the stored best completion for a run, or nil if there is none
func LoadBest(run string) *SavedBest {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(bestKey(run))
	if err != nil {
		log.Printf("[SAVE] Warning: Could not load best time for %s: %v", run, err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var best SavedBest
	if err := json.Unmarshal(data, &best); err != nil {
		log.Printf("[SAVE] Warning: Could not parse best time for %s: %v", run, err)
		return nil
	}
	return &best
}

// SaveBest stores a run completion
func SaveBest(run string, best SavedBest) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(best)
	if err != nil {
		log.Printf("[SAVE] Warning: Could not serialize best time: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(bestKey(run), data); err != nil {
		log.Printf("[SAVE] Warning: Could not save best time for %s: %v", run, err)
		return err
	}
	return nil
}

// RecordCompletion compares a finished run with the stored best and keeps
// the faster one. It returns the best ticks after the update and whether
// this completion is a new best.
func RecordCompletion(run string, ticks, coins int) (int, bool) {
	prev := LoadBest(run)
	if prev != nil && prev.Ticks <= ticks {
		return prev.Ticks, false
	}
	_ = SaveBest(run, SavedBest{Ticks: ticks, Coins: coins})
	return ticks, true
}
