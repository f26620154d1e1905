// Package input maps keyboard and gamepad state onto device actions.
package input

import "strings"

type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Confirm
	Cancel
	Quit
	Hunt
	Trainer
	VolumeUp
	VolumeDown
	actionCount
)

var actionNames = [actionCount]string{
	"UP", "DOWN", "LEFT", "RIGHT", "CONFIRM", "CANCEL", "QUIT",
	"HUNT", "TRAINER", "VOLUME_UP", "VOLUME_DOWN",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "UNKNOWN"
	}
	return actionNames[a]
}

// ParseAction resolves an action name case-insensitively.
func ParseAction(name string) (Action, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// Frame is the action state sampled once per rendered frame.
type Frame struct {
	pressed [actionCount]bool
	held    [actionCount]bool
	Closing bool
}

// Press marks a as pressed on this frame and held.
func (f *Frame) Press(a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks a as held without a new press.
func (f *Frame) Hold(a Action) {
	if a < 0 || a >= actionCount {
		return
	}
	f.held[a] = true
}

func (f Frame) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && f.pressed[a]
}

func (f Frame) Held(a Action) bool {
	return a >= 0 && a < actionCount && f.held[a]
}

// AnyPressed reports whether any action started this frame.
func (f Frame) AnyPressed() bool {
	for _, p := range f.pressed {
		if p {
			return true
		}
	}
	return false
}

// Quitting is true when the window is closing or QUIT was pressed.
func (f Frame) Quitting() bool {
	return f.Closing || f.pressed[Quit]
}

// Deadzone is the analog stick magnitude below which an axis reads as centered.
const Deadzone = float32(0.5)

// Axis is one analog stick sample, Y grows downward.
type Axis struct {
	X float32
	Y float32
}

// Hat is a digital pad sample, each component in {-1, 0, 1}, Y grows upward.
type Hat struct {
	X int
	Y int
}

// axisEdges returns the direction actions whose half-axis crossed the
// deadzone outward between prev and cur.
func axisEdges(prev, cur Axis, deadzone float32) []Action {
	var out []Action
	if cur.Y < -deadzone && prev.Y >= -deadzone {
		out = append(out, Up)
	}
	if cur.Y > deadzone && prev.Y <= deadzone {
		out = append(out, Down)
	}
	if cur.X < -deadzone && prev.X >= -deadzone {
		out = append(out, Left)
	}
	if cur.X > deadzone && prev.X <= deadzone {
		out = append(out, Right)
	}
	return out
}

// axisHeld returns the directions currently deflected past the deadzone.
func axisHeld(cur Axis, deadzone float32) []Action {
	var out []Action
	if cur.Y < -deadzone {
		out = append(out, Up)
	}
	if cur.Y > deadzone {
		out = append(out, Down)
	}
	if cur.X < -deadzone {
		out = append(out, Left)
	}
	if cur.X > deadzone {
		out = append(out, Right)
	}
	return out
}

func hatEdges(prev, cur Hat) []Action {
	var out []Action
	if cur.Y == 1 && prev.Y != 1 {
		out = append(out, Up)
	}
	if cur.Y == -1 && prev.Y != -1 {
		out = append(out, Down)
	}
	if cur.X == -1 && prev.X != -1 {
		out = append(out, Left)
	}
	if cur.X == 1 && prev.X != 1 {
		out = append(out, Right)
	}
	return out
}

// Volume adjusts a music volume for the frame's volume actions in 0.1 steps,
// clamped to [0, 1].
func Volume(f Frame, v float32) float32 {
	if f.Pressed(VolumeUp) {
		v += 0.1
	}
	if f.Pressed(VolumeDown) {
		v -= 0.1
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
