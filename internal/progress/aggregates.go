package progress

import (
	"sort"
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
)

// addCategory counts one answer against the question's category. firstTry is
// true when the question has never been attempted before.
func addCategory(p *models.UserProgress, q models.Question, a models.QuizAnswer, firstTry bool, now time.Time) {
	idx := -1
	for i, cp := range p.CategoryProgress {
		if cp.Category == q.Category {
			idx = i
			break
		}
	}
	if idx < 0 {
		p.CategoryProgress = append(p.CategoryProgress, models.CategoryProgress{Category: q.Category})
		sort.SliceStable(p.CategoryProgress, func(i, j int) bool {
			return p.CategoryProgress[i].Category < p.CategoryProgress[j].Category
		})
		for i, cp := range p.CategoryProgress {
			if cp.Category == q.Category {
				idx = i
			}
		}
	}

	cp := &p.CategoryProgress[idx]
	if firstTry {
		cp.AttemptedQuestions++
	}
	cp.Attempts++
	if a.IsCorrect {
		cp.CorrectAnswers++
	}
	cp.TotalTimeSpent += a.TimeSpent
	cp.Accuracy = accuracy(cp.CorrectAnswers, cp.Attempts)
	cp.AverageTimePerQuestion = float64(cp.TotalTimeSpent) / float64(cp.Attempts)
	cp.LastStudied = now
}

// addChapter counts one answer against the question's chapter and section.
// Questions without a section are counted under "general".
func addChapter(p *models.UserProgress, q models.Question, a models.QuizAnswer) {
	idx := -1
	for i, cp := range p.ChapterProgress {
		if cp.Chapter == q.Chapter {
			idx = i
			break
		}
	}
	if idx < 0 {
		p.ChapterProgress = append(p.ChapterProgress, models.ChapterProgress{
			Chapter:  q.Chapter,
			Sections: map[string]models.SectionProgress{},
		})
		sort.SliceStable(p.ChapterProgress, func(i, j int) bool {
			return p.ChapterProgress[i].Chapter < p.ChapterProgress[j].Chapter
		})
		for i, cp := range p.ChapterProgress {
			if cp.Chapter == q.Chapter {
				idx = i
			}
		}
	}

	cp := &p.ChapterProgress[idx]
	if cp.Sections == nil {
		cp.Sections = map[string]models.SectionProgress{}
	}
	cp.QuestionsAttempted++
	if a.IsCorrect {
		cp.QuestionsCorrect++
	}
	cp.OverallAccuracy = accuracy(cp.QuestionsCorrect, cp.QuestionsAttempted)

	name := q.Section
	if name == "" {
		name = "general"
	}
	sp := cp.Sections[name]
	sp.QuestionsAttempted++
	if a.IsCorrect {
		sp.QuestionsCorrect++
	}
	sp.Accuracy = accuracy(sp.QuestionsCorrect, sp.QuestionsAttempted)
	cp.Sections[name] = sp
}
