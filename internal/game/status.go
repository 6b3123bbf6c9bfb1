package game

// Phase is the play life cycle: Prepare until the first click, Start while
// the ball is in play, Stop after a life is lost until the next click.
type Phase uint8

const (
	PhasePrepare Phase = iota
	PhaseStop
	PhaseStart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePrepare:
		return "prepare"
	case PhaseStop:
		return "stop"
	case PhaseStart:
		return "start"
	default:
		return "unknown"
	}
}

// Outcome records how a game ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// Status holds score, lives and the play phase.
type Status struct {
	Score   int
	Lives   int
	Phase   Phase
	Outcome Outcome
}

// NewStatus returns a status in the Prepare phase.
func NewStatus(score, lives int) *Status {
	return &Status{
		Score: score,
		Lives: lives,
		Phase: PhasePrepare,
	}
}

// Over reports whether the game has been won or lost.
func (s *Status) Over() bool {
	return s.Outcome != OutcomeNone
}
