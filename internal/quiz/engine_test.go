package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/catalog"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recorderSpy struct {
	sessions []models.QuizSession
	err      error
}

func (r *recorderSpy) RecordSession(s models.QuizSession) error {
	r.sessions = append(r.sessions, s)
	return r.err
}

func newQuestion(id string, chapter int, cat models.Category) models.Question {
	return models.Question{
		ID:         id,
		Category:   cat,
		Difficulty: models.DifficultyEasy,
		Chapter:    chapter,
		Prompt:     "prompt " + id,
		Options: []models.Option{
			{ID: "a", Text: "right"},
			{ID: "b", Text: "wrong"},
			{ID: "c", Text: "also wrong"},
		},
		CorrectAnswerID: "a",
	}
}

func newCatalog(t *testing.T, perChapter map[int]int) *catalog.Catalog {
	t.Helper()

	var qs []models.Question
	for ch := 1; ch <= 4; ch++ {
		for i := 1; i <= perChapter[ch]; i++ {
			qs = append(qs, newQuestion(fmt.Sprintf("ch%d-q%02d", ch, i), ch, models.CategoryRoads))
		}
	}
	c, err := catalog.New(qs)
	require.NoError(t, err)
	return c
}

func newTestEngine(t *testing.T, cat Catalog, rec Recorder) (*Engine, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	ids := 0
	e := NewEngine(cat, rec,
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		}),
	)
	return e, clock
}

func practice(count int, chapters ...int) models.QuizConfig {
	return models.QuizConfig{Mode: models.ModePractice, QuestionCount: count, Chapters: chapters}
}

func answerPractice(t *testing.T, e *Engine, option string) {
	t.Helper()
	require.NoError(t, e.Select(option))
	_, err := e.Submit()
	require.NoError(t, err)
	require.NoError(t, e.Advance())
}

func TestEngine_Start(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, map[int]int{1: 10, 2: 3})

	tests := []struct {
		name      string
		cfg       models.QuizConfig
		wantLen   int
		wantErrIs error
	}{
		{
			name:    "chapter filter truncated to count",
			cfg:     practice(5, 1),
			wantLen: 5,
		},
		{
			name:    "count above matches uses all matches",
			cfg:     practice(50, 2),
			wantLen: 3,
		},
		{
			name:    "no filters",
			cfg:     practice(100),
			wantLen: 13,
		},
		{
			name:    "study ignores count",
			cfg:     models.QuizConfig{Mode: models.ModeStudy, Chapters: []int{1}},
			wantLen: 10,
		},
		{
			name:    "id restriction",
			cfg:     models.QuizConfig{Mode: models.ModeReview, QuestionCount: 10, QuestionIDs: []string{"ch2-q01", "ch1-q03"}},
			wantLen: 2,
		},
		{
			name:      "no matches",
			cfg:       practice(5, 99),
			wantErrIs: ErrInsufficientQuestions,
		},
		{
			name:      "filters exclude each other",
			cfg:       models.QuizConfig{Mode: models.ModePractice, QuestionCount: 5, Chapters: []int{1}, Categories: []models.Category{models.CategoryParking}},
			wantErrIs: ErrInsufficientQuestions,
		},
		{
			name:      "zero count in practice",
			cfg:       practice(0, 1),
			wantErrIs: ErrInvalidConfig,
		},
		{
			name:      "unknown mode",
			cfg:       models.QuizConfig{Mode: "exam", QuestionCount: 5},
			wantErrIs: ErrInvalidConfig,
		},
		{
			name:      "unknown category",
			cfg:       models.QuizConfig{Mode: models.ModePractice, QuestionCount: 5, Categories: []models.Category{"boats"}},
			wantErrIs: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestEngine(t, cat, nil)
			s, err := e.Start(tt.cfg)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				assert.Equal(t, PhaseSetup, e.Phase())
				_, ok := e.Session()
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Len(t, s.Questions, tt.wantLen)
			assert.Equal(t, 0, s.CurrentQuestionIndex)
			assert.Empty(t, s.Answers)
			assert.Equal(t, "session-1", s.ID)
			assert.Equal(t, PhaseQuestion, e.Phase())

			seen := map[string]bool{}
			for _, q := range s.Questions {
				assert.False(t, seen[q.ID], "duplicate %s", q.ID)
				seen[q.ID] = true
				for _, ch := range tt.cfg.Chapters {
					assert.Equal(t, ch, q.Chapter)
				}
			}
		})
	}
}

func TestEngine_Start_FailureKeepsPreviousSession(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 3}), nil)
	first, err := e.Start(practice(2, 1))
	require.NoError(t, err)

	_, err = e.Start(practice(2, 99))
	require.ErrorIs(t, err, ErrInsufficientQuestions)

	s, ok := e.Session()
	require.True(t, ok)
	assert.Equal(t, first.ID, s.ID)
	assert.Equal(t, PhaseQuestion, e.Phase())
}

func TestEngine_Start_ShuffleIsSeeded(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, map[int]int{1: 10})
	cfg := practice(10, 1)
	cfg.ShuffleQuestions = true
	cfg.ShuffleOptions = true

	order := func() ([]string, []string) {
		e, _ := newTestEngine(t, cat, nil)
		s, err := e.Start(cfg)
		require.NoError(t, err)
		var ids, opts []string
		for _, q := range s.Questions {
			ids = append(ids, q.ID)
			opts = append(opts, q.Options[0].ID)
		}
		return ids, opts
	}

	ids1, opts1 := order()
	ids2, opts2 := order()
	assert.Equal(t, ids1, ids2)
	assert.Equal(t, opts1, opts2)
	assert.ElementsMatch(t, ids1, func() []string {
		var out []string
		for _, q := range cat.All() {
			out = append(out, q.ID)
		}
		return out
	}())

	// the catalog keeps its own option order
	for _, q := range cat.All() {
		assert.Equal(t, "a", q.Options[0].ID)
	}
}

func TestEngine_PracticeScoring(t *testing.T) {
	t.Parallel()

	rec := &recorderSpy{}
	e, clock := newTestEngine(t, newCatalog(t, map[int]int{1: 3}), rec)
	_, err := e.Start(practice(3, 1))
	require.NoError(t, err)

	clock.Advance(7 * time.Second)
	require.NoError(t, e.Select("a"))
	a, err := e.Submit()
	require.NoError(t, err)
	assert.True(t, a.IsCorrect)
	assert.Equal(t, 7, a.TimeSpent)
	assert.Equal(t, PhaseFeedback, e.Phase())
	require.NoError(t, e.Advance())

	answerPractice(t, e, "b")
	assert.Equal(t, 1, e.View().Incorrect)
	answerPractice(t, e, "a")

	assert.Equal(t, PhaseResults, e.Phase())
	require.Len(t, rec.sessions, 1)

	s := rec.sessions[0]
	assert.Equal(t, 2, s.CorrectCount())
	assert.Equal(t, 1, s.IncorrectCount())
	require.NotNil(t, s.Score)
	assert.Equal(t, 66.67, *s.Score)
	assert.Nil(t, s.IsPassed)
	require.NotNil(t, s.EndTime)

	v := e.View()
	assert.Equal(t, 2, v.Correct)
	assert.Equal(t, 1, v.Incorrect)
	assert.Equal(t, "D", v.Grade)
	assert.Equal(t, float64(100), v.Progress)
}

func TestEngine_ReviewIncorrect(t *testing.T) {
	t.Parallel()

	rec := &recorderSpy{}
	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 3}), rec)
	_, err := e.Start(practice(3, 1))
	require.NoError(t, err)

	answerPractice(t, e, "a")
	answerPractice(t, e, "b")
	answerPractice(t, e, "a")
	require.Len(t, rec.sessions, 1)
	original := rec.sessions[0]

	sub, err := e.ReviewIncorrect()
	require.NoError(t, err)
	require.Len(t, sub.Questions, 1)
	assert.Equal(t, original.Questions[1].ID, sub.Questions[0].ID)
	assert.Empty(t, sub.Answers)
	assert.NotEqual(t, original.ID, sub.ID)
	assert.Equal(t, models.ModePractice, sub.Config.Mode)
	assert.Equal(t, PhaseQuestion, e.Phase())

	answerPractice(t, e, "a")
	require.Len(t, rec.sessions, 2)
	assert.Equal(t, float64(100), *rec.sessions[1].Score)
	assert.Equal(t, 66.67, *rec.sessions[0].Score)

	_, err = e.ReviewIncorrect()
	require.ErrorIs(t, err, ErrNoIncorrectAnswers)
	assert.Equal(t, PhaseResults, e.Phase())
}

func TestEngine_TestSubmission(t *testing.T) {
	t.Parallel()

	rec := &recorderSpy{}
	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 10, 2: 10, 3: 10, 4: 10}), rec)
	s, err := e.Start(models.QuizConfig{Mode: models.ModeTest, QuestionCount: TestQuestionCount})
	require.NoError(t, err)
	require.Len(t, s.Questions, 40)

	for i := 0; i < 39; i++ {
		option := "a"
		if i < 5 {
			option = "b"
		}
		_, err := e.Record(option)
		require.NoError(t, err)
		require.NoError(t, e.Next())
	}
	assert.Equal(t, 39, e.View().Index)

	require.NoError(t, e.OpenReview())
	err = e.SubmitSession()
	require.ErrorIs(t, err, ErrIncompleteSubmission)
	var incomplete *IncompleteSubmissionError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 1, incomplete.Count())
	assert.Equal(t, []int{39}, incomplete.Unanswered)
	assert.Equal(t, PhaseReview, e.Phase())
	assert.Empty(t, rec.sessions)

	require.NoError(t, e.GoTo(39))
	assert.Equal(t, PhaseQuestion, e.Phase())
	_, err = e.Record("a")
	require.NoError(t, err)
	require.NoError(t, e.OpenReview())
	require.NoError(t, e.SubmitSession())

	assert.Equal(t, PhaseResults, e.Phase())
	require.Len(t, rec.sessions, 1)
	done := rec.sessions[0]
	assert.Len(t, done.Answers, 40)
	assert.Equal(t, 87.5, *done.Score)
	require.NotNil(t, done.IsPassed)
	assert.True(t, *done.IsPassed)
}

func TestEngine_TestFailsBelowThreshold(t *testing.T) {
	t.Parallel()

	rec := &recorderSpy{}
	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 5}), rec)
	_, err := e.Start(models.QuizConfig{Mode: models.ModeTest, QuestionCount: 5})
	require.NoError(t, err)

	for i, option := range []string{"a", "a", "a", "b", "b"} {
		require.NoError(t, e.GoTo(i))
		_, err := e.Record(option)
		require.NoError(t, err)
	}
	require.NoError(t, e.OpenReview())
	require.NoError(t, e.SubmitSession())

	require.Len(t, rec.sessions, 1)
	assert.Equal(t, float64(60), *rec.sessions[0].Score)
	assert.False(t, *rec.sessions[0].IsPassed)
	assert.False(t, *e.View().Passed)
}

func TestEngine_RecordUpserts(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 3}), nil)
	_, err := e.Start(models.QuizConfig{Mode: models.ModeTest, QuestionCount: 3})
	require.NoError(t, err)

	_, err = e.Record("b")
	require.NoError(t, err)
	a, err := e.Record("a")
	require.NoError(t, err)
	assert.True(t, a.IsCorrect)

	s, _ := e.Session()
	require.Len(t, s.Answers, 1)
	assert.Equal(t, "a", s.Answers[0].SelectedOptionID)

	require.NoError(t, e.Next())
	require.NoError(t, e.Previous())
	assert.Equal(t, "a", e.View().Selected)

	_, err = e.Record("z")
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestEngine_SelectionAndSubmitErrors(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 3}), nil)
	_, err := e.Start(practice(3, 1))
	require.NoError(t, err)

	_, err = e.Submit()
	require.ErrorIs(t, err, ErrNoSelection)

	require.ErrorIs(t, e.Select("z"), ErrUnknownOption)
	require.NoError(t, e.Select("b"))
	require.NoError(t, e.Select("a"))
	assert.Equal(t, "a", e.View().Selected)

	a, err := e.Submit()
	require.NoError(t, err)
	assert.Equal(t, "a", a.SelectedOptionID)

	_, err = e.Submit()
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, PhaseFeedback, terr.Phase)
}

func TestEngine_IllegalTransitions(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, map[int]int{1: 3})

	tests := []struct {
		name string
		mode models.QuizMode
		op   func(e *Engine) error
	}{
		{"submit in test", models.ModeTest, func(e *Engine) error { _, err := e.Submit(); return err }},
		{"record in practice", models.ModePractice, func(e *Engine) error { _, err := e.Record("a"); return err }},
		{"next in practice", models.ModePractice, (*Engine).Next},
		{"previous in review", models.ModeReview, (*Engine).Previous},
		{"goto in practice", models.ModePractice, func(e *Engine) error { return e.GoTo(1) }},
		{"open review in practice", models.ModePractice, (*Engine).OpenReview},
		{"close review from question", models.ModeTest, (*Engine).CloseReview},
		{"submit session from question", models.ModeTest, (*Engine).SubmitSession},
		{"advance from question", models.ModePractice, (*Engine).Advance},
		{"finish in practice", models.ModePractice, (*Engine).Finish},
		{"shuffle in test", models.ModeTest, (*Engine).Shuffle},
		{"select in study", models.ModeStudy, func(e *Engine) error { return e.Select("a") }},
		{"review incorrect mid session", models.ModePractice, func(e *Engine) error { _, err := e.ReviewIncorrect(); return err }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestEngine(t, cat, nil)
			_, err := e.Start(models.QuizConfig{Mode: tt.mode, QuestionCount: 3})
			require.NoError(t, err)
			before, _ := e.Session()
			phase := e.Phase()

			err = tt.op(e)
			var terr *TransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.mode, terr.Mode)

			after, _ := e.Session()
			assert.Equal(t, before, after)
			assert.Equal(t, phase, e.Phase())
		})
	}
}

func TestEngine_NoSession(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 1}), nil)

	require.ErrorIs(t, e.Select("a"), ErrNoSession)
	require.ErrorIs(t, e.Next(), ErrNoSession)
	require.ErrorIs(t, e.OpenReview(), ErrNoSession)
	_, err := e.Submit()
	require.ErrorIs(t, err, ErrNoSession)

	v := e.View()
	assert.Equal(t, PhaseSetup, v.Phase)
	assert.Nil(t, v.Question)
}

func TestEngine_Navigation(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 3}), nil)
	_, err := e.Start(models.QuizConfig{Mode: models.ModeTest, QuestionCount: 3})
	require.NoError(t, err)

	require.NoError(t, e.Previous())
	assert.Equal(t, 0, e.View().Index)

	require.NoError(t, e.GoTo(2))
	assert.True(t, e.View().IsLast)
	require.NoError(t, e.Next())
	assert.Equal(t, 2, e.View().Index)

	require.ErrorIs(t, e.GoTo(3), ErrIndexOutOfRange)
	require.ErrorIs(t, e.GoTo(-1), ErrIndexOutOfRange)
	assert.Equal(t, 2, e.View().Index)

	require.NoError(t, e.OpenReview())
	require.NoError(t, e.CloseReview())
	assert.Equal(t, PhaseQuestion, e.Phase())
}

func TestEngine_RecorderFailureKeepsResults(t *testing.T) {
	t.Parallel()

	rec := &recorderSpy{err: errors.New("disk full")}
	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 1}), rec)
	_, err := e.Start(practice(1, 1))
	require.NoError(t, err)

	require.NoError(t, e.Select("a"))
	_, err = e.Submit()
	require.NoError(t, err)

	err = e.Advance()
	require.ErrorIs(t, err, ErrRecordFailed)
	assert.Equal(t, PhaseResults, e.Phase())
	assert.Equal(t, float64(100), *e.View().Score)
	assert.Len(t, rec.sessions, 1)
}

func TestEngine_Study(t *testing.T) {
	t.Parallel()

	rec := &recorderSpy{}
	e, _ := newTestEngine(t, newCatalog(t, map[int]int{1: 5}), rec)
	_, err := e.Start(models.QuizConfig{Mode: models.ModeStudy})
	require.NoError(t, err)

	marked, err := e.ToggleStudied()
	require.NoError(t, err)
	assert.True(t, marked)
	require.NoError(t, e.Next())
	_, err = e.ToggleStudied()
	require.NoError(t, err)
	assert.Equal(t, 2, e.View().Studied)
	assert.Equal(t, float64(40), e.View().Progress)

	marked, err = e.ToggleStudied()
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Equal(t, 1, e.View().Studied)

	require.NoError(t, e.Shuffle())
	v := e.View()
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, 0, v.Studied)
	assert.Equal(t, 5, v.Total)

	_, ok := e.Snapshot()
	assert.False(t, ok)

	require.NoError(t, e.Finish())
	assert.Equal(t, PhaseResults, e.Phase())
	assert.Empty(t, rec.sessions)
	assert.Nil(t, e.View().Score)
}

func TestEngine_Reset(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, map[int]int{1: 2})
	for _, setup := range []func(e *Engine){
		func(e *Engine) {},
		func(e *Engine) { _ = e.Select("a"); _, _ = e.Submit() },
		func(e *Engine) { answerPractice(t, e, "a"); answerPractice(t, e, "b") },
	} {
		e, _ := newTestEngine(t, cat, nil)
		_, err := e.Start(practice(2, 1))
		require.NoError(t, err)
		setup(e)

		e.Retry()
		assert.Equal(t, PhaseSetup, e.Phase())
		_, ok := e.Session()
		assert.False(t, ok)

		s, err := e.Start(practice(2, 1))
		require.NoError(t, err)
		assert.Empty(t, s.Answers)
		assert.Empty(t, e.View().Selected)
	}
}

func TestEngine_SnapshotRestore(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, map[int]int{1: 3})
	e, clock := newTestEngine(t, cat, nil)
	_, err := e.Start(practice(3, 1))
	require.NoError(t, err)
	answerPractice(t, e, "b")
	require.NoError(t, e.Select("a"))

	snap, ok := e.Snapshot()
	require.True(t, ok)
	assert.Equal(t, PhaseQuestion, snap.Phase)
	assert.Equal(t, "a", snap.Selected)

	restored, _ := newTestEngine(t, cat, nil)
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, e.View().Index, restored.View().Index)
	assert.Equal(t, e.View().Answered, restored.View().Answered)
	assert.Equal(t, "a", restored.View().Selected)

	clock.Advance(time.Minute)
	_, err = restored.Submit()
	require.NoError(t, err)
	require.NoError(t, restored.Advance())
	answerPractice(t, restored, "a")
	assert.Equal(t, PhaseResults, restored.Phase())

	_, ok = restored.Snapshot()
	assert.False(t, ok)
}

func TestEngine_RestoreRejectsCorruptSnapshots(t *testing.T) {
	t.Parallel()

	cat := newCatalog(t, map[int]int{1: 3})
	e, _ := newTestEngine(t, cat, nil)
	_, err := e.Start(models.QuizConfig{Mode: models.ModeTest, QuestionCount: 3})
	require.NoError(t, err)
	_, err = e.Record("a")
	require.NoError(t, err)
	good, ok := e.Snapshot()
	require.True(t, ok)

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
	}{
		{"index out of range", func(s *Snapshot) { s.Session.CurrentQuestionIndex = 3 }},
		{"duplicate answer", func(s *Snapshot) { s.Session.Answers = append(s.Session.Answers, s.Session.Answers[0]) }},
		{"unknown question", func(s *Snapshot) { s.Session.Answers[0].QuestionID = "nope" }},
		{"wrong correctness", func(s *Snapshot) { s.Session.Answers[0].IsCorrect = false }},
		{"finished phase", func(s *Snapshot) { s.Phase = PhaseResults }},
		{"feedback in test", func(s *Snapshot) { s.Phase = PhaseFeedback }},
		{"study mode", func(s *Snapshot) { s.Session.Config.Mode = models.ModeStudy }},
		{"no questions", func(s *Snapshot) { s.Session.Questions = nil }},
		{"unknown selection", func(s *Snapshot) { s.Selected = "z" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := good
			snap.Session = good.Session.Clone()
			tt.mutate(&snap)

			target, _ := newTestEngine(t, cat, nil)
			err := target.Restore(snap)
			require.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.Equal(t, PhaseSetup, target.Phase())
		})
	}
}

func TestPhase_Text(t *testing.T) {
	t.Parallel()

	for _, p := range []Phase{PhaseSetup, PhaseQuestion, PhaseFeedback, PhaseReview, PhaseResults} {
		b, err := p.MarshalText()
		require.NoError(t, err)

		var got Phase
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, p, got)
	}

	var p Phase
	require.Error(t, p.UnmarshalText([]byte("limbo")))
	assert.Equal(t, "phase(9)", Phase(9).String())
}
