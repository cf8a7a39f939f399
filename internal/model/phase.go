package model

import "fmt"

type Phase string

const (
	PhaseGenerating Phase = "GENERATING"
	PhaseVoting     Phase = "VOTING"
	PhaseFinished   Phase = "FINISHED"
)

// phaseTransitions lists the single forward step allowed from each phase.
// FINISHED is terminal.
var phaseTransitions = map[Phase]Phase{
	PhaseGenerating: PhaseVoting,
	PhaseVoting:     PhaseFinished,
}

// ParsePhase accepts only the exact upper-case phase names.
func ParsePhase(s string) (Phase, error) {
	switch p := Phase(s); p {
	case PhaseGenerating, PhaseVoting, PhaseFinished:
		return p, nil
	}
	return "", fmt.Errorf("unknown phase %q", s)
}

// CanTransition reports whether the board may move from p to next.
func (p Phase) CanTransition(next Phase) bool {
	allowed, ok := phaseTransitions[p]
	return ok && allowed == next
}

func (p Phase) String() string { return string(p) }
