package input

import rl "github.com/gen2brain/raylib-go/raylib"

var keyBindings = map[Action][]int32{
	Up:         {rl.KeyUp},
	Down:       {rl.KeyDown},
	Left:       {rl.KeyLeft},
	Right:      {rl.KeyRight},
	Confirm:    {rl.KeyEnter, rl.KeyN},
	Cancel:     {rl.KeyM, rl.KeyBackspace},
	Quit:       {rl.KeyEscape},
	Hunt:       {rl.KeySpace},
	Trainer:    {rl.KeyT},
	VolumeUp:   {rl.KeyEqual, rl.KeyKpAdd},
	VolumeDown: {rl.KeyMinus, rl.KeyKpSubtract},
}

var buttonBindings = map[Action][]int32{
	Confirm:    {rl.GamepadButtonRightFaceDown},
	Cancel:     {rl.GamepadButtonRightFaceRight},
	Quit:       {rl.GamepadButtonMiddleRight},
	Hunt:       {rl.GamepadButtonRightFaceLeft},
	Trainer:    {rl.GamepadButtonRightFaceUp},
	VolumeUp:   {rl.GamepadButtonRightTrigger1},
	VolumeDown: {rl.GamepadButtonLeftTrigger1},
}

// State owns the previous gamepad samples so axis and hat motion can be
// turned into presses. Create one per window and call Reset when a screen
// takes over input.
type State struct {
	gamepad  int32
	deadzone float32
	prevAxis Axis
	prevHat  Hat
}

func NewState(gamepad int32) *State {
	return &State{gamepad: gamepad, deadzone: Deadzone}
}

func (s *State) Reset() {
	s.prevAxis = Axis{}
	s.prevHat = Hat{}
}

// Poll samples the keyboard and gamepad. Call once per frame; raylib
// refreshes its input state in rl.EndDrawing.
func (s *State) Poll() Frame {
	var f Frame
	f.Closing = rl.WindowShouldClose()

	for action, keys := range keyBindings {
		for _, k := range keys {
			if rl.IsKeyPressed(k) {
				f.Press(action)
			}
			if rl.IsKeyDown(k) {
				f.Hold(action)
			}
		}
	}

	if !rl.IsGamepadAvailable(s.gamepad) {
		return f
	}
	for action, buttons := range buttonBindings {
		for _, b := range buttons {
			if rl.IsGamepadButtonPressed(s.gamepad, b) {
				f.Press(action)
			}
			if rl.IsGamepadButtonDown(s.gamepad, b) {
				f.Hold(action)
			}
		}
	}

	axis := Axis{
		X: rl.GetGamepadAxisMovement(s.gamepad, rl.GamepadAxisLeftX),
		Y: rl.GetGamepadAxisMovement(s.gamepad, rl.GamepadAxisLeftY),
	}
	for _, a := range axisEdges(s.prevAxis, axis, s.deadzone) {
		f.Press(a)
	}
	for _, a := range axisHeld(axis, s.deadzone) {
		f.Hold(a)
	}
	s.prevAxis = axis

	hat := s.sampleHat()
	for _, a := range hatEdges(s.prevHat, hat) {
		f.Press(a)
	}
	s.prevHat = hat
	return f
}

func (s *State) sampleHat() Hat {
	var h Hat
	if rl.IsGamepadButtonDown(s.gamepad, rl.GamepadButtonLeftFaceUp) {
		h.Y = 1
	}
	if rl.IsGamepadButtonDown(s.gamepad, rl.GamepadButtonLeftFaceDown) {
		h.Y = -1
	}
	if rl.IsGamepadButtonDown(s.gamepad, rl.GamepadButtonLeftFaceLeft) {
		h.X = -1
	}
	if rl.IsGamepadButtonDown(s.gamepad, rl.GamepadButtonLeftFaceRight) {
		h.X = 1
	}
	return h
}
