package systems

import (
	"strings"

	"github.com/automoto/movingsquare/components"
	cfg "github.com/automoto/movingsquare/config"
	"github.com/automoto/movingsquare/shared/motion"
	"github.com/automoto/movingsquare/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// Gamepads are classified once by name.
var gamepadKinds = make(map[ebiten.GamepadID]components.InputMethod)

var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// stickAction maps one direction of the left stick onto an action.
type stickAction struct {
	axis   ebiten.StandardGamepadAxis
	sign   float64
	action cfg.ActionID
}

var stickActions = []stickAction{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, -1, cfg.ActionMoveLeft},
	{ebiten.StandardGamepadAxisLeftStickHorizontal, 1, cfg.ActionMoveRight},
	{ebiten.StandardGamepadAxisLeftStickVertical, -1, cfg.ActionMenuUp},
	{ebiten.StandardGamepadAxisLeftStickVertical, 1, cfg.ActionMenuDown},
}

// UpdateInput polls keyboard and gamepads into this frame's action states.
// It runs before anything that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	keyboard := pollKeyboard(input)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	pad, padUsed := ebiten.GamepadID(0), false
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if pollGamepad(input, id) {
			pad, padUsed = id, true
		}
	}

	switch {
	case padUsed:
		input.LastInputMethod = gamepadKind(pad)
	case keyboard:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeyboard(input *components.InputData) bool {
	used := false
	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				used = true
			}
		}
	}
	return used
}

func pollGamepad(input *components.InputData, id ebiten.GamepadID) bool {
	used := false
	for action, binding := range cfg.Input.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				input.Current[action] = true
				used = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, s := range stickActions {
		if ebiten.StandardGamepadAxisValue(id, s.axis)*s.sign > deadzone {
			input.Current[s.action] = true
			used = true
		}
	}
	return used
}

func gamepadKind(id ebiten.GamepadID) components.InputMethod {
	if kind, ok := gamepadKinds[id]; ok {
		return kind
	}
	kind := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(id))
	for _, n := range playStationNames {
		if strings.Contains(name, n) {
			kind = components.InputPlayStation
			break
		}
	}
	gamepadKinds[id] = kind
	return kind
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// IntentsFromInput maps this tick's action states to movement intents.
// Moves are level triggered, jumps edge triggered.
func IntentsFromInput(input *components.InputData) []motion.Intent {
	var intents []motion.Intent
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		intents = append(intents, motion.IntentMoveLeft)
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		intents = append(intents, motion.IntentMoveRight)
	}
	jump := GetAction(input, cfg.ActionJump)
	if jump.JustPressed {
		intents = append(intents, motion.IntentJumpStart)
	}
	if jump.JustReleased {
		intents = append(intents, motion.IntentJumpEnd)
	}
	return intents
}

// UpdatePlayerInput queues the intents for this tick on the player.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	intents := IntentsFromInput(input)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		queue := components.Intents.Get(e)
		queue.Pending = append(queue.Pending, intents...)
	})
}

// MenuBackPressed reports whether the back action was pressed this frame.
func MenuBackPressed(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionMenuBack).JustPressed
}
