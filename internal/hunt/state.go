// Package hunt sequences one encounter from region selection through the
// combat, catch and stabilize minigames to the capture write.
package hunt

// State is a phase of a hunt session.
type State int

const (
	RegionSelection State = iota
	Encounter
	Combat
	Catching
	Stabilizing
	Success
	Fled
	Quit
	ExitToShell
)

func (s State) String() string {
	switch s {
	case RegionSelection:
		return "region_selection"
	case Encounter:
		return "encounter"
	case Combat:
		return "combat"
	case Catching:
		return "catching"
	case Stabilizing:
		return "stabilizing"
	case Success:
		return "success"
	case Fled:
		return "fled"
	case Quit:
		return "quit"
	case ExitToShell:
		return "exit_to_shell"
	default:
		return "unknown"
	}
}

// ShellResult tells the owning shell what to do after a hunt.
type ShellResult string

const (
	ResultQuit     ShellResult = "quit"
	ResultMainMenu ShellResult = "main_menu"
	ResultDetail   ShellResult = "detail"
)

type CombatOutcome int

const (
	CombatWin CombatOutcome = iota
	CombatLose
	CombatQuit
)

func (o CombatOutcome) String() string {
	switch o {
	case CombatWin:
		return "win"
	case CombatLose:
		return "lose"
	default:
		return "quit"
	}
}

type CatchOutcome int

const (
	CatchCaught CatchOutcome = iota
	CatchFled
	CatchQuit
)

func (o CatchOutcome) String() string {
	switch o {
	case CatchCaught:
		return "caught"
	case CatchFled:
		return "fled"
	default:
		return "quit"
	}
}

type StabilizeOutcome int

const (
	StabilizeCaught StabilizeOutcome = iota
	StabilizeFailed
	StabilizeQuit
	StabilizeBack
)

func (o StabilizeOutcome) String() string {
	switch o {
	case StabilizeCaught:
		return "caught"
	case StabilizeFailed:
		return "failed"
	case StabilizeBack:
		return "back"
	default:
		return "quit"
	}
}

// Outcomes outside the closed sets end the hunt as a quit.

func NextAfterCombat(o CombatOutcome) State {
	switch o {
	case CombatWin:
		return Catching
	case CombatLose:
		return Fled
	default:
		return Quit
	}
}

func NextAfterCatch(o CatchOutcome) State {
	switch o {
	case CatchCaught:
		return Stabilizing
	case CatchFled:
		return Fled
	default:
		return Quit
	}
}

// NextAfterStabilize sends "back" to region selection: the encounter is
// abandoned without counting as a flee.
func NextAfterStabilize(o StabilizeOutcome) State {
	switch o {
	case StabilizeCaught:
		return Success
	case StabilizeFailed:
		return Fled
	case StabilizeBack:
		return RegionSelection
	default:
		return Quit
	}
}
