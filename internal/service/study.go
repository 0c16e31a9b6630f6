package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/bookmark"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/progress"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/repository"
	"github.com/simplysrv/WA-Driving-Test-Prep/pkg/validator"
	"go.uber.org/zap"
)

var ErrUnknownQuestion = errors.New("unknown question")

// StudyS owns the quiz engine and both ledgers. It is driven by one caller
// at a time; only persistence runs on another goroutine.
type StudyS struct {
	catalog   CatalogI
	repo      RepositoryI
	snapshots RepositoryI
	engine    *quiz.Engine
	bookmarks *bookmark.Ledger
	progress  *progress.Ledger
	writer    *writer
	userID    string
	log       *zap.Logger

	snapshotStored bool
}

func NewStudyService(catalog CatalogI, repo, snapshots RepositoryI, opts Options, log *zap.Logger) *StudyS {
	if snapshots == nil {
		snapshots = repo
	}

	s := &StudyS{
		catalog:   catalog,
		repo:      repo,
		snapshots: snapshots,
		bookmarks: bookmark.NewLedger(),
		writer:    newWriter(opts.Buffer, opts.WriteTimeout, log),
		userID:    opts.UserID,
		log:       log,
	}

	var (
		engineOpts   []quiz.Option
		progressOpts []progress.Option
	)
	if opts.Rand != nil {
		engineOpts = append(engineOpts, quiz.WithRand(opts.Rand))
	} else {
		engineOpts = append(engineOpts, quiz.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	}
	if opts.Clock != nil {
		engineOpts = append(engineOpts, quiz.WithClock(opts.Clock))
		progressOpts = append(progressOpts, progress.WithClock(opts.Clock))
	}

	s.engine = quiz.NewEngine(catalog, quiz.RecorderFunc(s.recordSession), engineOpts...)
	s.progress = progress.NewLedger(progressOpts...)

	return s
}

// Load restores bookmarks, progress and any in-flight session. Records that
// cannot be read are logged and replaced by the empty state.
func (s *StudyS) Load(ctx context.Context) error {
	var ids []string
	if s.loadRecord(ctx, s.repo, repository.KeyBookmarks, &ids) {
		s.bookmarks.Load(ids)
	}

	var p models.UserProgress
	if s.loadRecord(ctx, s.repo, repository.KeyUserProgress, &p) {
		s.progress.Load(p)
	}
	s.progress.Initialize(s.userID)
	if err := s.progress.ReconcileBookmarks(s.bookmarks.All()); err != nil {
		s.log.DPanic("reconcile bookmarks", zap.Error(err))
	}

	var snap quiz.Snapshot
	if s.loadRecord(ctx, s.snapshots, repository.KeyQuizSession, &snap) {
		if err := s.engine.Restore(snap); err != nil {
			s.log.Warn("discarding saved session", zap.Error(err))
			// a dropped delete is retried by the next sync
			s.snapshotStored = !s.writer.enqueue(writeOp{store: s.snapshots, key: repository.KeyQuizSession, del: true})
		} else {
			s.snapshotStored = true
			s.log.Info("resumed saved session",
				zap.String("session_id", snap.Session.ID),
				zap.String("phase", snap.Phase.String()))
		}
	}

	return ctx.Err()
}

func (s *StudyS) loadRecord(ctx context.Context, store RepositoryI, key string, dest any) bool {
	data, err := store.Load(ctx, key)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return false
	case errors.Is(err, repository.ErrUnsupportedSchema):
		s.log.Warn("ignoring record with unsupported schema", zap.String("key", key), zap.Error(err))
		return false
	case err != nil:
		s.log.Error("failed to load record", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Warn("ignoring undecodable record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Close flushes pending writes until ctx ends.
func (s *StudyS) Close(ctx context.Context) error {
	return s.writer.close(ctx)
}

func (s *StudyS) save(store RepositoryI, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("failed to encode record", zap.String("key", key), zap.Error(err))
		return false
	}
	return s.writer.enqueue(writeOp{store: store, key: key, payload: data})
}

func (s *StudyS) saveProgress() {
	p, ok := s.progress.Snapshot()
	if !ok {
		return
	}
	s.save(s.repo, repository.KeyUserProgress, p)
}

func (s *StudyS) saveBookmarks() {
	s.save(s.repo, repository.KeyBookmarks, s.bookmarks.All())
}

// syncSnapshot stores the in-flight session, or removes the stored one once
// nothing is resumable. snapshotStored stays set until a delete is queued.
func (s *StudyS) syncSnapshot() {
	snap, ok := s.engine.Snapshot()
	if !ok {
		if s.snapshotStored && s.writer.enqueue(writeOp{store: s.snapshots, key: repository.KeyQuizSession, del: true}) {
			s.snapshotStored = false
		}
		return
	}
	if s.save(s.snapshots, repository.KeyQuizSession, snap) {
		s.snapshotStored = true
	}
}

func (s *StudyS) recordSession(session models.QuizSession) error {
	if err := s.progress.RecordSession(session); err != nil {
		if errors.Is(err, progress.ErrNotInitialized) {
			s.log.DPanic("session finished before progress was loaded", zap.String("session_id", session.ID))
		}
		return err
	}

	s.log.Info("session recorded",
		zap.String("session_id", session.ID),
		zap.String("mode", string(session.Config.Mode)),
		zap.Int("questions", len(session.Questions)),
		zap.Int("correct", session.CorrectCount()))
	s.saveProgress()
	return nil
}

// finished absorbs a recording failure: the session is already in results
// and stays there.
func (s *StudyS) finished(err error) error {
	if errors.Is(err, quiz.ErrRecordFailed) {
		s.log.Error("failed to record session", zap.Error(err))
		return nil
	}
	return err
}

// StartSession starts a session from cfg, resolving the bookmarked and
// incorrect pools into an id restriction first.
func (s *StudyS) StartSession(cfg models.QuizConfig) (models.QuizSession, error) {
	cfg = cfg.Clone()
	if cfg.IncludeBookmarked || cfg.IncludeIncorrect {
		ids := s.pool(cfg.IncludeBookmarked, cfg.IncludeIncorrect)
		if len(cfg.QuestionIDs) > 0 {
			ids = intersect(cfg.QuestionIDs, ids)
		}
		if len(ids) == 0 {
			return models.QuizSession{}, quiz.ErrInsufficientQuestions
		}
		cfg.QuestionIDs = ids
	}

	session, err := s.engine.Start(cfg)
	if err != nil {
		return models.QuizSession{}, err
	}

	s.log.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("mode", string(cfg.Mode)),
		zap.Int("questions", len(session.Questions)))
	s.syncSnapshot()
	return session, nil
}

func (s *StudyS) pool(bookmarked, incorrect bool) []string {
	seen := map[string]bool{}
	var ids []string
	add := func(list []string) {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if bookmarked {
		add(s.bookmarks.All())
	}
	if incorrect {
		add(s.progress.IncorrectQuestions())
	}
	return ids
}

func intersect(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, id := range b {
		in[id] = true
	}
	var out []string
	for _, id := range a {
		if in[id] {
			out = append(out, id)
		}
	}
	return out
}

// StartTest starts the shuffled 40-question simulation over every chapter.
func (s *StudyS) StartTest() (models.QuizSession, error) {
	return s.StartSession(models.QuizConfig{
		Mode:             models.ModeTest,
		QuestionCount:    quiz.TestQuestionCount,
		ShuffleQuestions: true,
	})
}

// StartReview drills previously missed questions. count <= 0 uses all of
// them.
func (s *StudyS) StartReview(count int) (models.QuizSession, error) {
	if count <= 0 {
		count = len(s.progress.IncorrectQuestions())
	}
	if count <= 0 {
		return models.QuizSession{}, quiz.ErrInsufficientQuestions
	}
	return s.StartSession(models.QuizConfig{
		Mode:             models.ModeReview,
		QuestionCount:    count,
		IncludeIncorrect: true,
		ShuffleQuestions: true,
		ShowExplanations: true,
	})
}

// StartBookmarked runs the bookmarked questions in study or practice mode.
func (s *StudyS) StartBookmarked(mode models.QuizMode) (models.QuizSession, error) {
	if err := validator.ValidateVar(mode, "required,oneof=study practice"); err != nil {
		return models.QuizSession{}, fmt.Errorf("%w: %v", quiz.ErrInvalidConfig, err)
	}
	return s.StartSession(models.QuizConfig{
		Mode:              mode,
		QuestionCount:     s.bookmarks.Len(),
		IncludeBookmarked: true,
		ShowExplanations:  true,
	})
}

func (s *StudyS) Retry() {
	s.engine.Retry()
	s.syncSnapshot()
}

func (s *StudyS) Reset() {
	s.engine.Reset()
	s.syncSnapshot()
}

func (s *StudyS) ReviewIncorrect() (models.QuizSession, error) {
	session, err := s.engine.ReviewIncorrect()
	if err != nil {
		return models.QuizSession{}, err
	}
	s.syncSnapshot()
	return session, nil
}

func (s *StudyS) Select(optionID string) error {
	if err := s.engine.Select(optionID); err != nil {
		return err
	}
	s.syncSnapshot()
	return nil
}

func (s *StudyS) Submit() (models.QuizAnswer, error) {
	answer, err := s.engine.Submit()
	if err != nil {
		return models.QuizAnswer{}, err
	}
	s.syncSnapshot()
	return answer, nil
}

func (s *StudyS) Record(optionID string) (models.QuizAnswer, error) {
	answer, err := s.engine.Record(optionID)
	if err != nil {
		return models.QuizAnswer{}, err
	}
	s.syncSnapshot()
	return answer, nil
}

func (s *StudyS) Advance() error {
	err := s.finished(s.engine.Advance())
	if err != nil {
		return err
	}
	s.syncSnapshot()
	return nil
}

func (s *StudyS) SubmitSession() error {
	err := s.finished(s.engine.SubmitSession())
	if err != nil {
		return err
	}
	s.syncSnapshot()
	return nil
}

func (s *StudyS) Next() error {
	return s.navigate(s.engine.Next)
}

func (s *StudyS) Previous() error {
	return s.navigate(s.engine.Previous)
}

func (s *StudyS) GoTo(i int) error {
	return s.navigate(func() error { return s.engine.GoTo(i) })
}

func (s *StudyS) OpenReview() error {
	return s.navigate(s.engine.OpenReview)
}

func (s *StudyS) CloseReview() error {
	return s.navigate(s.engine.CloseReview)
}

func (s *StudyS) Finish() error {
	return s.navigate(s.engine.Finish)
}

func (s *StudyS) Shuffle() error {
	return s.navigate(s.engine.Shuffle)
}

func (s *StudyS) navigate(op func() error) error {
	if err := op(); err != nil {
		return err
	}
	s.syncSnapshot()
	return nil
}

func (s *StudyS) ToggleStudied() (bool, error) {
	return s.engine.ToggleStudied()
}

func (s *StudyS) View() quiz.View {
	return s.engine.View()
}

func (s *StudyS) Chapters() []int {
	return s.catalog.Chapters()
}

func (s *StudyS) Question(id string) (models.Question, error) {
	q, ok := s.catalog.ByID(id)
	if !ok {
		return models.Question{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return q, nil
}
