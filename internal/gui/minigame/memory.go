package minigame

import (
	"math/rand/v2"

	"github.com/appengine-ltd/pokedex/internal/hunt"
	"github.com/appengine-ltd/pokedex/internal/input"
)

const (
	MemorySequenceLength = 4
	MemoryInputWindow    = 3000

	memoryIntro = 1500
	memoryShow  = 500
	memoryPause = 250
)

var directions = []input.Action{input.Up, input.Down, input.Left, input.Right}

type memoryPhase int

const (
	memoryIntroPhase memoryPhase = iota
	memoryShowing
	memoryInput
)

// Memory shows a sequence of arrows and then expects it back. The whole
// input phase gets MemoryInputWindow per arrow.
type Memory struct {
	Sequence []input.Action
	Entered  int

	phase      memoryPhase
	phaseStart int64
	shown      int
	done       bool
	outcome    hunt.CombatOutcome
}

func NewMemory(rng *rand.Rand, now int64) *Memory {
	seq := make([]input.Action, MemorySequenceLength)
	for i := range seq {
		seq[i] = directions[rng.IntN(len(directions))]
	}
	return &Memory{Sequence: seq, phaseStart: now}
}

func (m *Memory) Done() bool { return m.done }

func (m *Memory) Outcome() hunt.CombatOutcome { return m.outcome }

func (m *Memory) finish(out hunt.CombatOutcome) {
	m.done = true
	m.outcome = out
}

// Update advances the game by one frame.
func (m *Memory) Update(f input.Frame, now int64) {
	if m.done {
		return
	}
	if f.Quitting() {
		m.finish(hunt.CombatQuit)
		return
	}
	if f.Pressed(input.Cancel) {
		m.finish(hunt.CombatLose)
		return
	}

	switch m.phase {
	case memoryIntroPhase:
		if now-m.phaseStart > memoryIntro {
			m.phase = memoryShowing
			m.phaseStart = now
		}
	case memoryShowing:
		if m.shown >= len(m.Sequence) {
			m.phase = memoryInput
			m.phaseStart = now
			return
		}
		if now-m.phaseStart > memoryShow+memoryPause {
			m.shown++
			m.phaseStart = now
		}
	case memoryInput:
		if now-m.phaseStart > m.timeLimit() {
			m.finish(hunt.CombatLose)
			return
		}
		for _, d := range directions {
			if !f.Pressed(d) {
				continue
			}
			if d != m.Sequence[m.Entered] {
				m.finish(hunt.CombatLose)
				return
			}
			m.Entered++
			if m.Entered == len(m.Sequence) {
				m.finish(hunt.CombatWin)
				return
			}
		}
	}
}

func (m *Memory) timeLimit() int64 {
	return int64(len(m.Sequence)) * MemoryInputWindow
}

// Showing returns the arrow to display now, if any.
func (m *Memory) Showing(now int64) (input.Action, bool) {
	if m.phase != memoryShowing || m.shown >= len(m.Sequence) {
		return 0, false
	}
	if now-m.phaseStart >= memoryShow {
		return 0, false
	}
	return m.Sequence[m.shown], true
}

func (m *Memory) Intro() bool { return m.phase == memoryIntroPhase }

func (m *Memory) AwaitingInput() bool { return m.phase == memoryInput }

// Remaining is the input time left in ms.
func (m *Memory) Remaining(now int64) int64 {
	if m.phase != memoryInput {
		return m.timeLimit()
	}
	return max(0, m.timeLimit()-(now-m.phaseStart))
}
