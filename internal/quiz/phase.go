package quiz

import "fmt"

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseQuestion
	PhaseFeedback
	PhaseReview
	PhaseResults
)

var phaseNames = [...]string{
	PhaseSetup:    "setup",
	PhaseQuestion: "question",
	PhaseFeedback: "feedback",
	PhaseReview:   "review",
	PhaseResults:  "results",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(b))
}

// inFlight reports whether a session in this phase can still change.
func (p Phase) inFlight() bool {
	return p == PhaseQuestion || p == PhaseFeedback || p == PhaseReview
}
