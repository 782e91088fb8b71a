// Command levelcheck loads every level of one or all runs headless, lets
// the player fall from the spawn and reports levels that cannot be played.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/leveldata"
	"github.com/automoto/movingsquare/shared/sim"
)

func main() {
	dir := flag.String("levels", "assets/levels", "Directory holding one folder per run")
	run := flag.String("run", "", "Only check this run (empty = all runs)")
	ticks := flag.Int("ticks", 180, "Idle ticks to simulate per level")
	flag.Parse()

	fsys := os.DirFS(*dir)
	runs, err := leveldata.ListRuns(fsys, ".")
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}

	cfg := sim.Config{
		Width:       config.C.Width,
		Height:      config.C.Height,
		CellSize:    config.Levels.SpaceCellSize,
		ProbeMargin: config.Levels.ProbeMargin,
		PlayerSize:  config.Player.Size,
		Tuning:      config.Player.Tuning(),
	}

	checked, failed := 0, 0
	for _, info := range runs {
		if *run != "" && info.Dir != *run {
			continue
		}
		log.Printf("Checking run %q by %s (%d levels)", info.Name, info.Author, info.Amount)

		for i := 0; i < info.Amount; i++ {
			lvl, err := leveldata.Read(fsys, leveldata.LevelPath(info.Dir, i))
			if err != nil {
				fmt.Printf("FAIL %s/%d: %v\n", info.Dir, i, err)
				failed++
				continue
			}

			report := sim.CheckLevel(cfg, lvl, *ticks)
			checked++
			problems := report.Problems()
			if len(problems) == 0 {
				fmt.Printf("ok   %s: %d objects, %d coins\n", report.Path, report.Objects, report.Coins)
				continue
			}
			failed++
			for _, p := range problems {
				fmt.Printf("FAIL %s: %s\n", report.Path, p)
			}
		}
	}

	log.Printf("Checked %d levels, %d failed", checked, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
