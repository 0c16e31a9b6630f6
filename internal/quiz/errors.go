package quiz

import (
	"errors"
	"fmt"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
)

var (
	ErrInsufficientQuestions = errors.New("no questions match the selected filters")
	ErrIncompleteSubmission  = errors.New("test has unanswered questions")
	ErrNoSession             = errors.New("no active session")
	ErrNoSelection           = errors.New("no option selected")
	ErrUnknownOption         = errors.New("option does not belong to the current question")
	ErrIndexOutOfRange       = errors.New("question index out of range")
	ErrNoIncorrectAnswers    = errors.New("session has no incorrect answers")
	ErrInvalidConfig         = errors.New("invalid quiz config")
	ErrInvalidSnapshot       = errors.New("invalid session snapshot")
	ErrRecordFailed          = errors.New("failed to record finished session")
)

// TransitionError reports an operation that the current phase or mode does
// not accept. The engine state is unchanged when it is returned.
type TransitionError struct {
	Op    string
	Phase Phase
	Mode  models.QuizMode
}

func (e *TransitionError) Error() string {
	if e.Mode == "" {
		return fmt.Sprintf("quiz: %s not allowed in %s phase", e.Op, e.Phase)
	}
	return fmt.Sprintf("quiz: %s not allowed in %s phase of a %s session", e.Op, e.Phase, e.Mode)
}

// IncompleteSubmissionError lists the zero-based indices of unanswered
// questions.
type IncompleteSubmissionError struct {
	Unanswered []int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("%s: %d unanswered", ErrIncompleteSubmission, len(e.Unanswered))
}

func (e *IncompleteSubmissionError) Count() int {
	return len(e.Unanswered)
}

func (e *IncompleteSubmissionError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}
