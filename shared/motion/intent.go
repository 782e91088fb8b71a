package motion

// Intent is a discrete movement request derived from input for one tick.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentJumpStart
	IntentJumpEnd
)

func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentJumpStart:
		return "JumpStart"
	case IntentJumpEnd:
		return "JumpEnd"
	}
	return "Unknown"
}

// Apply folds a single intent into the body's pending acceleration and jump
// state. Move intents are additive within a tick.
func Apply(b *Body, intent Intent, t Tuning) {
	switch intent {
	case IntentMoveLeft:
		b.Accel.X -= t.Acceleration
	case IntentMoveRight:
		b.Accel.X += t.Acceleration
	case IntentJumpStart:
		if b.JumpLock {
			return
		}
		b.Accel.Y += t.JumpStrength
		b.JumpLock = true
		b.GravityCounter = t.JumpTime
	case IntentJumpEnd:
		b.GravityCounter = 0
	}
}

// ApplyIntents applies intents in order.
func ApplyIntents(b *Body, intents []Intent, t Tuning) {
	for _, intent := range intents {
		Apply(b, intent, t)
	}
}
