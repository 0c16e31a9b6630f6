package models

import "time"

type QuestionProgress struct {
	QuestionID     string    `json:"questionId"`
	AttemptCount   int       `json:"attemptCount"`
	CorrectCount   int       `json:"correctCount"`
	IncorrectCount int       `json:"incorrectCount"`
	LastAttempt    time.Time `json:"lastAttempt"`
	IsBookmarked   bool      `json:"isBookmarked"`
	Notes          string    `json:"notes,omitempty"`
}

type CategoryProgress struct {
	Category               Category  `json:"category"`
	AttemptedQuestions     int       `json:"attemptedQuestions"`
	Attempts               int       `json:"attempts"`
	CorrectAnswers         int       `json:"correctAnswers"`
	Accuracy               float64   `json:"accuracy"`
	AverageTimePerQuestion float64   `json:"averageTimePerQuestion"`
	TotalTimeSpent         int       `json:"totalTimeSpent"`
	LastStudied            time.Time `json:"lastStudied"`
}

type SectionProgress struct {
	QuestionsAttempted int     `json:"questionsAttempted"`
	QuestionsCorrect   int     `json:"questionsCorrect"`
	Accuracy           float64 `json:"accuracy"`
}

type ChapterProgress struct {
	Chapter            int                        `json:"chapter"`
	Sections           map[string]SectionProgress `json:"sections"`
	QuestionsAttempted int                        `json:"questionsAttempted"`
	QuestionsCorrect   int                        `json:"questionsCorrect"`
	OverallAccuracy    float64                    `json:"overallAccuracy"`
}

type AchievementCriteria string

const (
	CriteriaAccuracy   AchievementCriteria = "accuracy"
	CriteriaStreak     AchievementCriteria = "streak"
	CriteriaQuestions  AchievementCriteria = "questions"
	CriteriaTestPassed AchievementCriteria = "test_passed"
	CriteriaQuizzes    AchievementCriteria = "quizzes"
	CriteriaBookmarks  AchievementCriteria = "bookmarks"
)

type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Criteria    AchievementCriteria `json:"criteria"`
	Value       float64             `json:"value"`
	UnlockedAt  *time.Time          `json:"unlockedAt,omitempty"`
}

type OverallStats struct {
	TotalQuestionsAttempted int     `json:"totalQuestionsAttempted"`
	TotalQuestionsCorrect   int     `json:"totalQuestionsCorrect"`
	OverallAccuracy         float64 `json:"overallAccuracy"`
	TotalStudyTime          float64 `json:"totalStudyTime"` // minutes
	TotalQuizzesTaken       int     `json:"totalQuizzesTaken"`
	TotalTestsTaken         int     `json:"totalTestsTaken"`
	BestTestScore           float64 `json:"bestTestScore"`
	AverageTestScore        float64 `json:"averageTestScore"`
}

type UserProgress struct {
	UserID              string                      `json:"userId"`
	OverallStats        OverallStats                `json:"overallStats"`
	CategoryProgress    []CategoryProgress          `json:"categoryProgress"`
	ChapterProgress     []ChapterProgress           `json:"chapterProgress"`
	QuestionProgress    map[string]QuestionProgress `json:"questionProgress"`
	QuizHistory         []QuizSession               `json:"quizHistory"`
	BookmarkedQuestions []string                    `json:"bookmarkedQuestions"`
	IncorrectQuestions  []string                    `json:"incorrectQuestions"`
	Achievements        []Achievement               `json:"achievements"`
	StreakDays          int                         `json:"streakDays"`
	LastStudyDate       time.Time                   `json:"lastStudyDate"`
}

// Clone returns a deep copy.
func (p UserProgress) Clone() UserProgress {
	c := p
	c.CategoryProgress = append([]CategoryProgress(nil), p.CategoryProgress...)
	c.ChapterProgress = make([]ChapterProgress, len(p.ChapterProgress))
	for i, ch := range p.ChapterProgress {
		cc := ch
		cc.Sections = make(map[string]SectionProgress, len(ch.Sections))
		for k, v := range ch.Sections {
			cc.Sections[k] = v
		}
		c.ChapterProgress[i] = cc
	}
	c.QuestionProgress = make(map[string]QuestionProgress, len(p.QuestionProgress))
	for k, v := range p.QuestionProgress {
		c.QuestionProgress[k] = v
	}
	c.QuizHistory = make([]QuizSession, len(p.QuizHistory))
	for i, s := range p.QuizHistory {
		c.QuizHistory[i] = s.Clone()
	}
	c.BookmarkedQuestions = append([]string(nil), p.BookmarkedQuestions...)
	c.IncorrectQuestions = append([]string(nil), p.IncorrectQuestions...)
	c.Achievements = make([]Achievement, len(p.Achievements))
	for i, a := range p.Achievements {
		ac := a
		if a.UnlockedAt != nil {
			t := *a.UnlockedAt
			ac.UnlockedAt = &t
		}
		c.Achievements[i] = ac
	}
	return c
}
