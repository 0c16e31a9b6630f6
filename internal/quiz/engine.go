package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/pkg/validator"
)

// Catalog is the read-only question source the engine draws sessions from.
type Catalog interface {
	All() []models.Question
	ByChapter(n int) []models.Question
	ByCategory(c models.Category) []models.Question
	ByDifficulty(d models.Difficulty) []models.Question
}

// Recorder receives every graded session exactly once, when it enters the
// results phase.
type Recorder interface {
	RecordSession(session models.QuizSession) error
}

type RecorderFunc func(session models.QuizSession) error

func (f RecorderFunc) RecordSession(session models.QuizSession) error {
	return f(session)
}

type Option func(*Engine)

func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rnd = r }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// Engine is the quiz session state machine. It is driven by one caller at a
// time and holds no locks.
type Engine struct {
	catalog  Catalog
	recorder Recorder
	rnd      *rand.Rand
	now      func() time.Time
	newID    func() string

	phase    Phase
	session  *models.QuizSession
	selected string
	shownAt  map[string]time.Time
	studied  map[string]bool
}

func NewEngine(catalog Catalog, recorder Recorder, opts ...Option) *Engine {
	e := &Engine{
		catalog:  catalog,
		recorder: recorder,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		newID:    uuid.NewString,
		phase:    PhaseSetup,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// Session returns a copy of the current session.
func (e *Engine) Session() (models.QuizSession, bool) {
	if e.session == nil {
		return models.QuizSession{}, false
	}
	return e.session.Clone(), true
}

// Start builds a new session from cfg and replaces any previous one. On error
// the engine is left exactly as it was.
func (e *Engine) Start(cfg models.QuizConfig) (models.QuizSession, error) {
	if err := validateConfig(cfg); err != nil {
		return models.QuizSession{}, err
	}

	pool := e.pool(cfg)
	if len(pool) == 0 {
		return models.QuizSession{}, ErrInsufficientQuestions
	}

	if cfg.ShuffleQuestions {
		e.shuffle(pool)
	}
	if cfg.Mode != models.ModeStudy && cfg.QuestionCount < len(pool) {
		pool = pool[:cfg.QuestionCount]
	}
	if cfg.ShuffleOptions {
		for i := range pool {
			opts := pool[i].Options
			e.rnd.Shuffle(len(opts), func(a, b int) { opts[a], opts[b] = opts[b], opts[a] })
		}
	}

	e.begin(cfg.Clone(), pool)
	return e.session.Clone(), nil
}

func validateConfig(cfg models.QuizConfig) error {
	if err := validator.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Mode != models.ModeStudy && cfg.QuestionCount < 1 {
		return fmt.Errorf("%w: question count must be at least 1 in %s mode", ErrInvalidConfig, cfg.Mode)
	}
	return nil
}

// pool reads the narrowest catalog index the filters allow, then applies
// every filter. Duplicates are dropped, first occurrence wins.
func (e *Engine) pool(cfg models.QuizConfig) []models.Question {
	var base []models.Question
	switch {
	case len(cfg.Chapters) > 0:
		for _, ch := range cfg.Chapters {
			base = append(base, e.catalog.ByChapter(ch)...)
		}
	case len(cfg.Categories) > 0:
		for _, c := range cfg.Categories {
			base = append(base, e.catalog.ByCategory(c)...)
		}
	case len(cfg.Difficulty) > 0:
		for _, d := range cfg.Difficulty {
			base = append(base, e.catalog.ByDifficulty(d)...)
		}
	default:
		base = e.catalog.All()
	}

	chapters := make(map[int]bool, len(cfg.Chapters))
	for _, ch := range cfg.Chapters {
		chapters[ch] = true
	}
	categories := make(map[models.Category]bool, len(cfg.Categories))
	for _, c := range cfg.Categories {
		categories[c] = true
	}
	levels := make(map[models.Difficulty]bool, len(cfg.Difficulty))
	for _, d := range cfg.Difficulty {
		levels[d] = true
	}
	ids := make(map[string]bool, len(cfg.QuestionIDs))
	for _, id := range cfg.QuestionIDs {
		ids[id] = true
	}

	seen := make(map[string]bool, len(base))
	out := make([]models.Question, 0, len(base))
	for _, q := range base {
		switch {
		case seen[q.ID]:
			continue
		case len(chapters) > 0 && !chapters[q.Chapter]:
			continue
		case len(categories) > 0 && !categories[q.Category]:
			continue
		case len(levels) > 0 && !levels[q.Difficulty]:
			continue
		case len(ids) > 0 && !ids[q.ID]:
			continue
		}
		seen[q.ID] = true
		out = append(out, q.Clone())
	}
	return out
}

func (e *Engine) shuffle(qs []models.Question) {
	e.rnd.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
}

func (e *Engine) begin(cfg models.QuizConfig, questions []models.Question) {
	e.session = &models.QuizSession{
		ID:        e.newID(),
		Config:    cfg,
		Questions: questions,
		Answers:   []models.QuizAnswer{},
		StartTime: e.now(),
	}
	e.phase = PhaseQuestion
	e.selected = ""
	e.shownAt = make(map[string]time.Time)
	e.studied = make(map[string]bool)
	e.markShown()
}

func (e *Engine) current() models.Question {
	return e.session.Questions[e.session.CurrentQuestionIndex]
}

func (e *Engine) markShown() {
	id := e.current().ID
	if _, ok := e.shownAt[id]; !ok {
		e.shownAt[id] = e.now()
	}
}

// check returns ErrNoSession or a *TransitionError unless the engine is in
// one of phases and the session mode is one of modes.
func (e *Engine) check(op string, phases []Phase, modes ...models.QuizMode) error {
	if e.session == nil {
		return ErrNoSession
	}
	mode := e.session.Config.Mode

	phaseOK := false
	for _, p := range phases {
		if p == e.phase {
			phaseOK = true
			break
		}
	}
	modeOK := false
	for _, m := range modes {
		if m == mode {
			modeOK = true
			break
		}
	}
	if !phaseOK || !modeOK {
		return &TransitionError{Op: op, Phase: e.phase, Mode: mode}
	}
	return nil
}

var (
	onQuestion = []Phase{PhaseQuestion}
	navigable  = []Phase{PhaseQuestion, PhaseReview}
)

// Select stores a provisional choice for the current question, replacing any
// earlier one.
func (e *Engine) Select(optionID string) error {
	if err := e.check("select", onQuestion, models.ModePractice, models.ModeReview, models.ModeTest); err != nil {
		return err
	}
	if !e.current().HasOption(optionID) {
		return ErrUnknownOption
	}
	e.selected = optionID
	return nil
}

// Submit grades the provisional choice and moves to feedback.
func (e *Engine) Submit() (models.QuizAnswer, error) {
	if err := e.check("submit", onQuestion, models.ModePractice, models.ModeReview); err != nil {
		return models.QuizAnswer{}, err
	}
	if e.selected == "" {
		return models.QuizAnswer{}, ErrNoSelection
	}

	answer := e.upsert(e.current(), e.selected)
	e.phase = PhaseFeedback
	return answer, nil
}

// Record stores the answer for the current test question without leaving it.
func (e *Engine) Record(optionID string) (models.QuizAnswer, error) {
	if err := e.check("record", onQuestion, models.ModeTest); err != nil {
		return models.QuizAnswer{}, err
	}
	q := e.current()
	if !q.HasOption(optionID) {
		return models.QuizAnswer{}, ErrUnknownOption
	}

	e.selected = optionID
	return e.upsert(q, optionID), nil
}

func (e *Engine) upsert(q models.Question, optionID string) models.QuizAnswer {
	now := e.now()
	spent := 0
	if shown, ok := e.shownAt[q.ID]; ok && now.After(shown) {
		spent = int(now.Sub(shown) / time.Second)
	}

	answer := models.QuizAnswer{
		QuestionID:       q.ID,
		SelectedOptionID: optionID,
		IsCorrect:        optionID == q.CorrectAnswerID,
		TimeSpent:        spent,
		Timestamp:        now,
	}

	for i := range e.session.Answers {
		if e.session.Answers[i].QuestionID == q.ID {
			e.session.Answers[i] = answer
			return answer
		}
	}
	e.session.Answers = append(e.session.Answers, answer)
	return answer
}

func (e *Engine) moveTo(i int) {
	e.session.CurrentQuestionIndex = i
	e.selected = ""
	if a, ok := e.session.AnswerFor(e.current().ID); ok {
		e.selected = a.SelectedOptionID
	}
	e.markShown()
}

// GoTo jumps to question i. From the test review screen it also returns to
// the question phase.
func (e *Engine) GoTo(i int) error {
	if err := e.check("go to", navigable, models.ModeStudy, models.ModeTest); err != nil {
		return err
	}
	if i < 0 || i >= len(e.session.Questions) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(e.session.Questions))
	}

	e.moveTo(i)
	e.phase = PhaseQuestion
	return nil
}

// Next moves forward one question; on the last question it does nothing.
func (e *Engine) Next() error {
	if err := e.check("next", onQuestion, models.ModeStudy, models.ModeTest); err != nil {
		return err
	}
	if i := e.session.CurrentQuestionIndex; i < len(e.session.Questions)-1 {
		e.moveTo(i + 1)
	}
	return nil
}

// Previous moves back one question; on the first question it does nothing.
func (e *Engine) Previous() error {
	if err := e.check("previous", onQuestion, models.ModeStudy, models.ModeTest); err != nil {
		return err
	}
	if i := e.session.CurrentQuestionIndex; i > 0 {
		e.moveTo(i - 1)
	}
	return nil
}

// Advance leaves the feedback phase: to the next question, or to results
// after the last one.
func (e *Engine) Advance() error {
	if err := e.check("advance", []Phase{PhaseFeedback}, models.ModePractice, models.ModeReview); err != nil {
		return err
	}
	if i := e.session.CurrentQuestionIndex; i < len(e.session.Questions)-1 {
		e.moveTo(i + 1)
		e.phase = PhaseQuestion
		return nil
	}
	return e.finalize()
}

func (e *Engine) OpenReview() error {
	if err := e.check("open review", onQuestion, models.ModeTest); err != nil {
		return err
	}
	e.phase = PhaseReview
	return nil
}

func (e *Engine) CloseReview() error {
	if err := e.check("close review", []Phase{PhaseReview}, models.ModeTest); err != nil {
		return err
	}
	e.phase = PhaseQuestion
	return nil
}

// SubmitSession scores a test once every question has an answer. Otherwise
// it returns *IncompleteSubmissionError and stays on the review screen.
func (e *Engine) SubmitSession() error {
	if err := e.check("submit test", []Phase{PhaseReview}, models.ModeTest); err != nil {
		return err
	}
	if missing := e.unanswered(); len(missing) > 0 {
		return &IncompleteSubmissionError{Unanswered: missing}
	}
	return e.finalize()
}

// Finish closes a flashcard deck. Study sessions are neither scored nor
// recorded.
func (e *Engine) Finish() error {
	if err := e.check("finish", onQuestion, models.ModeStudy); err != nil {
		return err
	}
	now := e.now()
	e.session.EndTime = &now
	e.phase = PhaseResults
	return nil
}

func (e *Engine) finalize() error {
	now := e.now()
	s := e.session
	correct := s.CorrectCount()
	total := len(s.Questions)

	score := Score(correct, total)
	s.EndTime = &now
	s.Score = &score
	if s.Config.Mode == models.ModeTest {
		passed := Passed(correct, total)
		s.IsPassed = &passed
	}
	e.phase = PhaseResults
	e.selected = ""

	if e.recorder == nil {
		return nil
	}
	if err := e.recorder.RecordSession(s.Clone()); err != nil {
		return fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	return nil
}

func (e *Engine) unanswered() []int {
	var missing []int
	for i, q := range e.session.Questions {
		if _, ok := e.session.AnswerFor(q.ID); !ok {
			missing = append(missing, i)
		}
	}
	return missing
}

// Shuffle reorders the flashcard deck and starts it over.
func (e *Engine) Shuffle() error {
	if err := e.check("shuffle", onQuestion, models.ModeStudy); err != nil {
		return err
	}
	e.shuffle(e.session.Questions)
	e.session.CurrentQuestionIndex = 0
	e.studied = make(map[string]bool)
	e.markShown()
	return nil
}

// ToggleStudied flips the studied mark of the current flashcard and returns
// the new mark.
func (e *Engine) ToggleStudied() (bool, error) {
	if err := e.check("mark studied", onQuestion, models.ModeStudy); err != nil {
		return false, err
	}
	id := e.current().ID
	if e.studied[id] {
		delete(e.studied, id)
		return false, nil
	}
	e.studied[id] = true
	return true, nil
}

// ReviewIncorrect starts a sub-session made of the questions the finished
// practice session got wrong. The finished session is left untouched.
func (e *Engine) ReviewIncorrect() (models.QuizSession, error) {
	if err := e.check("review incorrect", []Phase{PhaseResults}, models.ModePractice, models.ModeReview); err != nil {
		return models.QuizSession{}, err
	}

	var (
		questions []models.Question
		ids       []string
	)
	for _, q := range e.session.Questions {
		if a, ok := e.session.AnswerFor(q.ID); ok && !a.IsCorrect {
			questions = append(questions, q.Clone())
			ids = append(ids, q.ID)
		}
	}
	if len(questions) == 0 {
		return models.QuizSession{}, ErrNoIncorrectAnswers
	}

	cfg := e.session.Config.Clone()
	cfg.QuestionCount = len(questions)
	cfg.QuestionIDs = ids
	e.begin(cfg, questions)
	return e.session.Clone(), nil
}

// Reset discards the session from any phase and returns to setup.
func (e *Engine) Reset() {
	e.phase = PhaseSetup
	e.session = nil
	e.selected = ""
	e.shownAt = nil
	e.studied = nil
}

// Retry is Reset under the name the results screen uses.
func (e *Engine) Retry() {
	e.Reset()
}
