package models

import "time"

type QuizMode string

const (
	ModeStudy    QuizMode = "study"
	ModePractice QuizMode = "practice"
	ModeTest     QuizMode = "test"
	ModeReview   QuizMode = "review"
)

// Graded reports whether answers are submitted and scored in this mode.
func (m QuizMode) Graded() bool {
	return m == ModePractice || m == ModeTest || m == ModeReview
}

type QuizConfig struct {
	Mode              QuizMode     `json:"mode" validate:"required,quizmode"`
	QuestionCount     int          `json:"questionCount" validate:"min=0"`
	Categories        []Category   `json:"categories,omitempty" validate:"dive,category"`
	Difficulty        []Difficulty `json:"difficulty,omitempty" validate:"dive,difficulty"`
	Chapters          []int        `json:"chapters,omitempty" validate:"dive,min=1"`
	IncludeBookmarked bool         `json:"includeBookmarked,omitempty"`
	IncludeIncorrect  bool         `json:"includeIncorrect,omitempty"`
	ShuffleQuestions  bool         `json:"shuffleQuestions"`
	ShuffleOptions    bool         `json:"shuffleOptions"`
	ShowExplanations  bool         `json:"showExplanations"`
	TimeLimit         int          `json:"timeLimit,omitempty" validate:"min=0"`

	// QuestionIDs restricts the pool to these ids when non-empty. It is
	// resolved from IncludeBookmarked/IncludeIncorrect before the session
	// starts.
	QuestionIDs []string `json:"questionIds,omitempty"`
}

func (c QuizConfig) Clone() QuizConfig {
	out := c
	out.Categories = append([]Category(nil), c.Categories...)
	out.Difficulty = append([]Difficulty(nil), c.Difficulty...)
	out.Chapters = append([]int(nil), c.Chapters...)
	out.QuestionIDs = append([]string(nil), c.QuestionIDs...)
	return out
}

type QuizAnswer struct {
	QuestionID       string    `json:"questionId"`
	SelectedOptionID string    `json:"selectedOptionId"`
	IsCorrect        bool      `json:"isCorrect"`
	TimeSpent        int       `json:"timeSpent"`
	Timestamp        time.Time `json:"timestamp"`
}

type QuizSession struct {
	ID                   string       `json:"id"`
	Config               QuizConfig   `json:"config"`
	Questions            []Question   `json:"questions"`
	Answers              []QuizAnswer `json:"answers"`
	CurrentQuestionIndex int          `json:"currentQuestionIndex"`
	StartTime            time.Time    `json:"startTime"`
	EndTime              *time.Time   `json:"endTime,omitempty"`
	Score                *float64     `json:"score,omitempty"`
	IsPassed             *bool        `json:"isPassed,omitempty"`
}

func (s QuizSession) Finalized() bool {
	return s.EndTime != nil
}

func (s QuizSession) AnswerFor(questionID string) (QuizAnswer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return QuizAnswer{}, false
}

func (s QuizSession) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

func (s QuizSession) IncorrectCount() int {
	return len(s.Answers) - s.CorrectCount()
}

func (s QuizSession) TotalTimeSpent() int {
	total := 0
	for _, a := range s.Answers {
		total += a.TimeSpent
	}
	return total
}

// Clone returns a copy that shares no slices or pointers with s.
func (s QuizSession) Clone() QuizSession {
	c := s
	c.Config = s.Config.Clone()
	c.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		c.Questions[i] = q.Clone()
	}
	c.Answers = append([]QuizAnswer(nil), s.Answers...)
	if s.EndTime != nil {
		t := *s.EndTime
		c.EndTime = &t
	}
	if s.Score != nil {
		v := *s.Score
		c.Score = &v
	}
	if s.IsPassed != nil {
		v := *s.IsPassed
		c.IsPassed = &v
	}
	return c
}
