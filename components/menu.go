package components

import (
	"github.com/automoto/movingsquare/shared/session"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuLevels
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()

// SummaryMenuOption represents the buttons on the end-of-run screen
type SummaryMenuOption int

const (
	SummaryReplay SummaryMenuOption = iota
	SummaryMainMenu
)

// SummaryData is shown once the last level of a run is won.
type SummaryData struct {
	Active         bool
	Result         session.Summary
	BestTicks      int
	NewBest        bool
	SelectedOption SummaryMenuOption
}

var Summary = donburi.NewComponentType[SummaryData]()
