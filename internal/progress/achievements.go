package progress

import (
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
)

var catalogue = []models.Achievement{
	{ID: "first-steps", Name: "First Steps", Description: "Complete your first quiz", Criteria: models.CriteriaQuizzes, Value: 1},
	{ID: "bookworm", Name: "Bookworm", Description: "Bookmark 10 questions", Criteria: models.CriteriaBookmarks, Value: 10},
	{ID: "perfect-score", Name: "Perfect Score", Description: "Get 100% on a practice quiz", Criteria: models.CriteriaAccuracy, Value: 100},
	{ID: "test-ready", Name: "Test Ready", Description: "Pass the 40-question test", Criteria: models.CriteriaTestPassed, Value: quiz.TestQuestionCount},
	{ID: "week-streak", Name: "Week Streak", Description: "Study seven days in a row", Criteria: models.CriteriaStreak, Value: 7},
	{ID: "century", Name: "Century", Description: "Answer 100 questions", Criteria: models.CriteriaQuestions, Value: 100},
}

// Achievements lists every achievement that can be unlocked.
func Achievements() []models.Achievement {
	return append([]models.Achievement(nil), catalogue...)
}

// unlock appends newly earned achievements. Unlocked ones are never removed.
func unlock(p *models.UserProgress, now time.Time) {
	have := make(map[string]bool, len(p.Achievements))
	for _, a := range p.Achievements {
		have[a.ID] = true
	}
	for _, a := range catalogue {
		if have[a.ID] || !earned(p, a) {
			continue
		}
		t := now
		a.UnlockedAt = &t
		p.Achievements = append(p.Achievements, a)
	}
}

func earned(p *models.UserProgress, a models.Achievement) bool {
	st := p.OverallStats
	switch a.Criteria {
	case models.CriteriaQuizzes:
		return float64(st.TotalQuizzesTaken) >= a.Value
	case models.CriteriaBookmarks:
		return float64(len(p.BookmarkedQuestions)) >= a.Value
	case models.CriteriaStreak:
		return float64(p.StreakDays) >= a.Value
	case models.CriteriaQuestions:
		return float64(st.TotalQuestionsAttempted) >= a.Value
	case models.CriteriaAccuracy:
		for _, s := range p.QuizHistory {
			if s.Config.Mode == models.ModePractice && s.Score != nil && *s.Score >= a.Value && len(s.Answers) > 0 {
				return true
			}
		}
	case models.CriteriaTestPassed:
		for _, s := range p.QuizHistory {
			if s.Config.Mode == models.ModeTest && s.IsPassed != nil && *s.IsPassed && float64(len(s.Questions)) >= a.Value {
				return true
			}
		}
	}
	return false
}
