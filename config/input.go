package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func bind(keys []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: keys, StandardGamepadButtons: buttons}
}

type keys = []ebiten.Key

func init() {
	// Gamepad buttons use the standard layout: RightBottom is A/Cross,
	// RightRight is B/Circle and CenterRight is Start/Options.
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:   bind(keys{ebiten.KeyA, ebiten.KeyLeft}, ebiten.StandardGamepadButtonLeftLeft),
			ActionMoveRight:  bind(keys{ebiten.KeyD, ebiten.KeyRight}, ebiten.StandardGamepadButtonLeftRight),
			ActionJump:       bind(keys{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp}, ebiten.StandardGamepadButtonRightBottom),
			ActionPause:      bind(keys{ebiten.KeyEscape, ebiten.KeyP}, ebiten.StandardGamepadButtonCenterRight),
			ActionDebug:      bind(keys{ebiten.KeyF1}),
			ActionMenuUp:     bind(keys{ebiten.KeyUp, ebiten.KeyW}, ebiten.StandardGamepadButtonLeftTop),
			ActionMenuDown:   bind(keys{ebiten.KeyDown, ebiten.KeyS}, ebiten.StandardGamepadButtonLeftBottom),
			ActionMenuSelect: bind(keys{ebiten.KeyEnter}, ebiten.StandardGamepadButtonRightBottom),
			ActionMenuBack:   bind(keys{ebiten.KeyEscape, ebiten.KeyBackspace}, ebiten.StandardGamepadButtonRightRight),
		},
	}
}
