package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
	"go.uber.org/zap"
)

// ToggleBookmark flips the bookmark on a catalog question and returns the
// new state.
func (s *StudyS) ToggleBookmark(questionID string) (bool, error) {
	if _, ok := s.catalog.ByID(questionID); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	on := s.bookmarks.Toggle(questionID)
	if err := s.progress.SetBookmark(questionID, on); err != nil {
		s.log.DPanic("bookmark mirror out of sync", zap.String("question_id", questionID), zap.Error(err))
	}

	s.saveBookmarks()
	s.saveProgress()
	return on, nil
}

func (s *StudyS) IsBookmarked(questionID string) bool {
	return s.bookmarks.IsBookmarked(questionID)
}

// Bookmarks returns the bookmarked questions in bookmark order. Ids missing
// from the catalog are skipped.
func (s *StudyS) Bookmarks() []models.Question {
	ids := s.bookmarks.All()
	out := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := s.catalog.ByID(id); ok {
			out = append(out, q)
		}
	}
	return out
}

func (s *StudyS) ClearBookmarks() {
	s.bookmarks.Clear()
	if err := s.progress.ReconcileBookmarks(nil); err != nil {
		s.log.DPanic("bookmark mirror out of sync", zap.Error(err))
	}
	s.saveBookmarks()
	s.saveProgress()
}

// Progress returns a copy of the user's progress.
func (s *StudyS) Progress() (models.UserProgress, bool) {
	return s.progress.Snapshot()
}

// ResetProgress wipes the statistics. Bookmarks survive and are mirrored
// again.
func (s *StudyS) ResetProgress() error {
	if err := s.progress.Reset(); err != nil {
		return err
	}
	if err := s.progress.ReconcileBookmarks(s.bookmarks.All()); err != nil {
		return err
	}
	s.log.Info("progress reset", zap.String("user_id", s.userID))
	s.saveProgress()
	return nil
}

// ProgressSummary renders the overall statistics for chat.
func (s *StudyS) ProgressSummary() string {
	p, ok := s.progress.Snapshot()
	if !ok {
		return "No progress yet."
	}
	st := p.OverallStats

	var b strings.Builder
	b.WriteString("📊 Your progress\n\n")
	fmt.Fprintf(&b, "✅ Correct: %d / %d (%.1f%%)\n", st.TotalQuestionsCorrect, st.TotalQuestionsAttempted, st.OverallAccuracy)
	fmt.Fprintf(&b, "📝 Quizzes: %d, tests: %d\n", st.TotalQuizzesTaken, st.TotalTestsTaken)
	if st.TotalTestsTaken > 0 {
		fmt.Fprintf(&b, "🏁 Best test: %.2f%%, average: %.2f%%\n", st.BestTestScore, st.AverageTestScore)
	}
	fmt.Fprintf(&b, "⏱ Study time: %.1f min\n", st.TotalStudyTime)
	fmt.Fprintf(&b, "🔥 Streak: %d day(s)\n", p.StreakDays)
	fmt.Fprintf(&b, "🔖 Bookmarks: %d, to review: %d\n", len(p.BookmarkedQuestions), len(p.IncorrectQuestions))

	if len(p.ChapterProgress) > 0 {
		b.WriteString("\nBy chapter:\n")
		for _, ch := range p.ChapterProgress {
			fmt.Fprintf(&b, "  Chapter %d: %d / %d (%.1f%%)\n", ch.Chapter, ch.QuestionsCorrect, ch.QuestionsAttempted, ch.OverallAccuracy)
		}
	}

	if len(p.Achievements) > 0 {
		names := make([]string, 0, len(p.Achievements))
		for _, a := range p.Achievements {
			names = append(names, a.Name)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "\n🏆 %s\n", strings.Join(names, ", "))
	}

	return b.String()
}

// ResultsSummary renders the results screen for the finished session.
func (s *StudyS) ResultsSummary() string {
	v := s.engine.View()
	if v.Phase != quiz.PhaseResults || v.Score == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏁 %s finished\n\n", modeTitle(v.Mode))
	fmt.Fprintf(&b, "Score: %.2f%% (%s)\n", *v.Score, v.Grade)
	fmt.Fprintf(&b, "✅ %d  ❌ %d  of %d\n", v.Correct, v.Incorrect, v.Total)
	if v.Passed != nil {
		if *v.Passed {
			b.WriteString("\n🎉 Passed! You need 80% and you made it.\n")
		} else {
			b.WriteString("\n😕 Not passed. You need 80% to pass.\n")
		}
	}
	return b.String()
}

func modeTitle(m models.QuizMode) string {
	switch m {
	case models.ModeStudy:
		return "Study"
	case models.ModePractice:
		return "Practice"
	case models.ModeTest:
		return "Test"
	case models.ModeReview:
		return "Review"
	}
	return string(m)
}
