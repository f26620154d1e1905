package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// rlClock reads the raylib monotonic timer.
type rlClock struct{}

func (rlClock) NowMillis() int64 {
	return int64(rl.GetTime() * 1000)
}

// rlSurface is the window. Phases query its size every run.
type rlSurface struct{}

func (rlSurface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}
