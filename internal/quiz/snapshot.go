package quiz

import (
	"fmt"
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
)

// Snapshot is the resumable state of an in-flight graded session.
type Snapshot struct {
	Phase    Phase                `json:"phase"`
	Session  models.QuizSession   `json:"session"`
	Selected string               `json:"selected,omitempty"`
	ShownAt  map[string]time.Time `json:"shownAt,omitempty"`
}

// Snapshot returns the state worth resuming. Study decks and finished
// sessions are not resumable.
func (e *Engine) Snapshot() (Snapshot, bool) {
	if e.session == nil || !e.phase.inFlight() || !e.session.Config.Mode.Graded() {
		return Snapshot{}, false
	}

	shown := make(map[string]time.Time, len(e.shownAt))
	for id, t := range e.shownAt {
		shown[id] = t
	}
	return Snapshot{
		Phase:    e.phase,
		Session:  e.session.Clone(),
		Selected: e.selected,
		ShownAt:  shown,
	}, true
}

// Restore adopts snap as the active session after checking it is consistent.
// A rejected snapshot leaves the engine unchanged.
func (e *Engine) Restore(snap Snapshot) error {
	if err := checkSnapshot(snap); err != nil {
		return err
	}

	s := snap.Session.Clone()
	e.session = &s
	e.phase = snap.Phase
	e.selected = snap.Selected
	e.shownAt = make(map[string]time.Time, len(snap.ShownAt))
	for id, t := range snap.ShownAt {
		e.shownAt[id] = t
	}
	e.studied = make(map[string]bool)
	e.markShown()
	return nil
}

func checkSnapshot(snap Snapshot) error {
	s := snap.Session
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, args...))
	}

	if !snap.Phase.inFlight() {
		return invalid("phase %s is not resumable", snap.Phase)
	}
	if !s.Config.Mode.Graded() {
		return invalid("mode %q is not resumable", s.Config.Mode)
	}
	if snap.Phase == PhaseReview && s.Config.Mode != models.ModeTest {
		return invalid("review phase in %s mode", s.Config.Mode)
	}
	if snap.Phase == PhaseFeedback && s.Config.Mode == models.ModeTest {
		return invalid("feedback phase in test mode")
	}
	if s.Finalized() {
		return invalid("session already finalized")
	}
	if len(s.Questions) == 0 {
		return invalid("session has no questions")
	}
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return invalid("index %d out of range", s.CurrentQuestionIndex)
	}
	if len(s.Answers) > len(s.Questions) {
		return invalid("%d answers for %d questions", len(s.Answers), len(s.Questions))
	}

	questions := make(map[string]models.Question, len(s.Questions))
	for _, q := range s.Questions {
		if _, dup := questions[q.ID]; dup {
			return invalid("duplicate question %q", q.ID)
		}
		questions[q.ID] = q
	}
	seen := make(map[string]bool, len(s.Answers))
	for _, a := range s.Answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			return invalid("answer for unknown question %q", a.QuestionID)
		}
		if seen[a.QuestionID] {
			return invalid("duplicate answer for %q", a.QuestionID)
		}
		seen[a.QuestionID] = true
		if !q.HasOption(a.SelectedOptionID) || a.IsCorrect != (a.SelectedOptionID == q.CorrectAnswerID) {
			return invalid("inconsistent answer for %q", a.QuestionID)
		}
		if a.TimeSpent < 0 {
			return invalid("negative time spent for %q", a.QuestionID)
		}
	}

	current := s.Questions[s.CurrentQuestionIndex]
	if snap.Selected != "" && !current.HasOption(snap.Selected) {
		return invalid("selected option %q not in current question", snap.Selected)
	}
	if snap.Phase == PhaseFeedback && !seen[current.ID] {
		return invalid("feedback phase without an answer")
	}
	return nil
}
