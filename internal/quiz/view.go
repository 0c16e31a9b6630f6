package quiz

import (
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
)

// View is the read state the presentation layer renders. It holds copies
// only; changing it has no effect on the engine.
type View struct {
	Phase     Phase
	Mode      models.QuizMode
	SessionID string

	Index    int
	Total    int
	Question *models.Question
	Selected string
	Answer   *models.QuizAnswer

	Answered      []bool
	AnsweredCount int
	Correct       int
	Incorrect     int
	Progress      float64
	Elapsed       time.Duration

	Studied   int
	IsStudied bool
	IsLast    bool

	Score            *float64
	Passed           *bool
	Grade            string
	ShowExplanations bool
}

func (e *Engine) View() View {
	v := View{Phase: e.phase}
	s := e.session
	if s == nil {
		return v
	}

	v.Mode = s.Config.Mode
	v.SessionID = s.ID
	v.Index = s.CurrentQuestionIndex
	v.Total = len(s.Questions)
	v.Selected = e.selected
	v.ShowExplanations = s.Config.ShowExplanations || s.Config.Mode != models.ModeTest

	q := s.Questions[s.CurrentQuestionIndex].Clone()
	v.Question = &q
	if a, ok := s.AnswerFor(q.ID); ok {
		v.Answer = &a
	}

	v.Answered = make([]bool, len(s.Questions))
	for i, sq := range s.Questions {
		if _, ok := s.AnswerFor(sq.ID); ok {
			v.Answered[i] = true
			v.AnsweredCount++
		}
	}
	v.Correct = s.CorrectCount()
	v.Incorrect = s.IncorrectCount()

	if v.Total > 0 {
		if s.Config.Mode == models.ModeStudy {
			v.Progress = float64(v.Index+1) / float64(v.Total) * 100
		} else {
			v.Progress = float64(v.AnsweredCount) / float64(v.Total) * 100
		}
	}
	v.IsLast = v.Index == v.Total-1

	end := e.now()
	if s.EndTime != nil {
		end = *s.EndTime
	}
	if end.After(s.StartTime) {
		v.Elapsed = end.Sub(s.StartTime)
	}

	v.Studied = len(e.studied)
	v.IsStudied = e.studied[q.ID]

	if s.Score != nil {
		score := *s.Score
		v.Score = &score
		v.Grade = Grade(score)
	}
	if s.IsPassed != nil {
		passed := *s.IsPassed
		v.Passed = &passed
	}
	return v
}
