package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
)

var (
	ErrNotInitialized  = errors.New("progress ledger is not initialized")
	ErrAlreadyRecorded = errors.New("session already recorded")
	ErrNotFinalized    = errors.New("session is not finalized")
)

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger aggregates finished sessions into the UserProgress singleton. Every
// mutation is applied to a copy that replaces the current value only when it
// is complete.
type Ledger struct {
	progress *models.UserProgress
	now      func() time.Time
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func empty(userID string) models.UserProgress {
	return models.UserProgress{
		UserID:              userID,
		CategoryProgress:    []models.CategoryProgress{},
		ChapterProgress:     []models.ChapterProgress{},
		QuestionProgress:    map[string]models.QuestionProgress{},
		QuizHistory:         []models.QuizSession{},
		BookmarkedQuestions: []string{},
		IncorrectQuestions:  []string{},
		Achievements:        []models.Achievement{},
	}
}

// Initialize creates the singleton for userID. It does nothing when the
// ledger already holds progress.
func (l *Ledger) Initialize(userID string) {
	if l.progress != nil {
		return
	}
	p := empty(userID)
	l.progress = &p
}

// Load adopts previously persisted progress, filling in nil collections.
func (l *Ledger) Load(p models.UserProgress) {
	c := p.Clone()
	if c.QuestionProgress == nil {
		c.QuestionProgress = map[string]models.QuestionProgress{}
	}
	for i := range c.ChapterProgress {
		if c.ChapterProgress[i].Sections == nil {
			c.ChapterProgress[i].Sections = map[string]models.SectionProgress{}
		}
	}
	l.progress = &c
}

// RecordSession folds a finalized session into the aggregates.
func (l *Ledger) RecordSession(s models.QuizSession) error {
	if l.progress == nil {
		return ErrNotInitialized
	}
	if !s.Finalized() {
		return fmt.Errorf("%w: %s", ErrNotFinalized, s.ID)
	}
	for _, h := range l.progress.QuizHistory {
		if h.ID == s.ID {
			return fmt.Errorf("%w: %s", ErrAlreadyRecorded, s.ID)
		}
	}

	now := l.now()
	p := l.progress.Clone()
	correct := s.CorrectCount()

	st := &p.OverallStats
	st.TotalQuestionsAttempted += len(s.Answers)
	st.TotalQuestionsCorrect += correct
	st.OverallAccuracy = accuracy(st.TotalQuestionsCorrect, st.TotalQuestionsAttempted)
	st.TotalStudyTime += float64(s.TotalTimeSpent()) / 60
	st.TotalQuizzesTaken++
	if s.Config.Mode == models.ModeTest {
		score := 0.0
		if s.Score != nil {
			score = *s.Score
		}
		st.TotalTestsTaken++
		if score > st.BestTestScore {
			st.BestTestScore = score
		}
		n := float64(st.TotalTestsTaken)
		st.AverageTestScore = (st.AverageTestScore*(n-1) + score) / n
	}

	questions := make(map[string]models.Question, len(s.Questions))
	for _, q := range s.Questions {
		questions[q.ID] = q
	}

	incorrect := make(map[string]bool, len(p.IncorrectQuestions))
	for _, id := range p.IncorrectQuestions {
		incorrect[id] = true
	}

	for _, a := range s.Answers {
		q, known := questions[a.QuestionID]
		qp, seen := p.QuestionProgress[a.QuestionID]
		if !seen {
			qp = models.QuestionProgress{QuestionID: a.QuestionID}
		}
		if known {
			addCategory(&p, q, a, !seen, now)
			addChapter(&p, q, a)
		}

		qp.AttemptCount++
		if a.IsCorrect {
			qp.CorrectCount++
		} else {
			qp.IncorrectCount++
		}
		qp.LastAttempt = a.Timestamp
		if qp.LastAttempt.IsZero() {
			qp.LastAttempt = now
		}
		p.QuestionProgress[a.QuestionID] = qp

		if !a.IsCorrect && !incorrect[a.QuestionID] {
			incorrect[a.QuestionID] = true
			p.IncorrectQuestions = append(p.IncorrectQuestions, a.QuestionID)
		}
	}

	p.StreakDays = nextStreak(p.StreakDays, p.LastStudyDate, now)
	p.LastStudyDate = now
	p.QuizHistory = append(p.QuizHistory, s.Clone())
	unlock(&p, now)

	l.progress = &p
	return nil
}

func accuracy(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted) * 100
}

// nextStreak counts consecutive calendar days with at least one recorded
// session.
func nextStreak(streak int, last, now time.Time) int {
	if streak == 0 || last.IsZero() {
		return 1
	}
	lastDay := day(last.In(now.Location()))
	today := day(now)
	switch {
	case lastDay.Equal(today):
		return streak
	case lastDay.AddDate(0, 0, 1).Equal(today):
		return streak + 1
	default:
		return 1
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ToggleBookmark flips the bookmark mirror for id and returns the new state.
func (l *Ledger) ToggleBookmark(id string) (bool, error) {
	if l.progress == nil {
		return false, ErrNotInitialized
	}
	on := !contains(l.progress.BookmarkedQuestions, id)
	return on, l.SetBookmark(id, on)
}

// SetBookmark puts id into or out of the bookmark list and sets the matching
// QuestionProgress flag.
func (l *Ledger) SetBookmark(id string, on bool) error {
	if l.progress == nil {
		return ErrNotInitialized
	}
	p := l.progress.Clone()
	setBookmark(&p, id, on)
	unlock(&p, l.now())
	l.progress = &p
	return nil
}

// ReconcileBookmarks makes the mirror equal to ids, in that order.
func (l *Ledger) ReconcileBookmarks(ids []string) error {
	if l.progress == nil {
		return ErrNotInitialized
	}
	p := l.progress.Clone()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for id, qp := range p.QuestionProgress {
		if qp.IsBookmarked && !want[id] {
			qp.IsBookmarked = false
			p.QuestionProgress[id] = qp
		}
	}
	p.BookmarkedQuestions = []string{}
	for _, id := range ids {
		setBookmark(&p, id, true)
	}
	unlock(&p, l.now())
	l.progress = &p
	return nil
}

func setBookmark(p *models.UserProgress, id string, on bool) {
	has := contains(p.BookmarkedQuestions, id)
	switch {
	case on && !has:
		p.BookmarkedQuestions = append(p.BookmarkedQuestions, id)
	case !on && has:
		out := p.BookmarkedQuestions[:0]
		for _, b := range p.BookmarkedQuestions {
			if b != id {
				out = append(out, b)
			}
		}
		p.BookmarkedQuestions = out
	}

	qp, ok := p.QuestionProgress[id]
	if !ok {
		if !on {
			return
		}
		qp = models.QuestionProgress{QuestionID: id}
	}
	qp.IsBookmarked = on
	p.QuestionProgress[id] = qp
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (l *Ledger) QuestionProgress(id string) (models.QuestionProgress, bool) {
	if l.progress == nil {
		return models.QuestionProgress{}, false
	}
	qp, ok := l.progress.QuestionProgress[id]
	return qp, ok
}

func (l *Ledger) CategoryProgress(c models.Category) (models.CategoryProgress, bool) {
	if l.progress == nil {
		return models.CategoryProgress{}, false
	}
	for _, cp := range l.progress.CategoryProgress {
		if cp.Category == c {
			return cp, true
		}
	}
	return models.CategoryProgress{}, false
}

func (l *Ledger) ChapterProgress(chapter int) (models.ChapterProgress, bool) {
	if l.progress == nil {
		return models.ChapterProgress{}, false
	}
	for _, cp := range l.progress.ChapterProgress {
		if cp.Chapter == chapter {
			c := cp
			c.Sections = make(map[string]models.SectionProgress, len(cp.Sections))
			for k, v := range cp.Sections {
				c.Sections[k] = v
			}
			return c, true
		}
	}
	return models.ChapterProgress{}, false
}

func (l *Ledger) Stats() models.OverallStats {
	if l.progress == nil {
		return models.OverallStats{}
	}
	return l.progress.OverallStats
}

func (l *Ledger) IncorrectQuestions() []string {
	if l.progress == nil {
		return nil
	}
	return append([]string(nil), l.progress.IncorrectQuestions...)
}

// Snapshot returns a deep copy of the current progress.
func (l *Ledger) Snapshot() (models.UserProgress, bool) {
	if l.progress == nil {
		return models.UserProgress{}, false
	}
	return l.progress.Clone(), true
}

// Reset clears everything except the user id.
func (l *Ledger) Reset() error {
	if l.progress == nil {
		return ErrNotInitialized
	}
	p := empty(l.progress.UserID)
	l.progress = &p
	return nil
}
