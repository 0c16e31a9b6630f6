package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/service"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/cache"
	"go.uber.org/zap"
)

const (
	prefixSetup = "setup_"
	prefixQuiz  = "q_"
)

var practiceCounts = []int{10, 20, 40}

type QuizSI interface {
	StartSession(cfg models.QuizConfig) (models.QuizSession, error)
	StartTest() (models.QuizSession, error)
	StartReview(count int) (models.QuizSession, error)
	StartBookmarked(mode models.QuizMode) (models.QuizSession, error)
	Select(optionID string) error
	Submit() (models.QuizAnswer, error)
	Record(optionID string) (models.QuizAnswer, error)
	Advance() error
	Next() error
	Previous() error
	GoTo(i int) error
	OpenReview() error
	CloseReview() error
	SubmitSession() error
	Finish() error
	Shuffle() error
	ToggleStudied() (bool, error)
	ReviewIncorrect() (models.QuizSession, error)
	Retry()
	Reset()
	View() quiz.View
	ResultsSummary() string
	Chapters() []int
	ToggleBookmark(questionID string) (bool, error)
	IsBookmarked(questionID string) bool
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
	}
}

func (t *QuizT) showSetup(chatID int64, mode models.QuizMode) {
	d := cache.Draft{Mode: mode, Chapters: map[int]bool{}, Count: practiceCounts[0]}
	for _, ch := range t.service.Chapters() {
		d.Chapters[ch] = true
	}
	t.cache.SetDraft(chatID, d)

	text, markup := renderSetup(d, t.service.Chapters())
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) handleSetup(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	cmd := strings.TrimPrefix(query.Data, prefixSetup)

	d, exists := t.cache.GetDraft(chatID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "⌛ This setup has expired. Pick a mode from the menu."), t.log)
		return
	}

	switch {
	case strings.HasPrefix(cmd, "ch_"):
		ch, err := strconv.Atoi(strings.TrimPrefix(cmd, "ch_"))
		if err != nil {
			t.log.Warn("bad chapter in callback", zap.String("data", query.Data))
			return
		}
		d.Chapters[ch] = !d.Chapters[ch]
	case cmd == "count":
		d.Count = nextCount(d.Count)
	case cmd == "shuffle":
		d.Shuffle = !d.Shuffle
	case cmd == "start":
		cfg := d.Config()
		if len(cfg.Chapters) == 0 {
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Pick at least one chapter."), t.log)
			return
		}
		t.cache.DeleteDraft(chatID)
		t.start(chatID, func() (models.QuizSession, error) {
			return t.service.StartSession(cfg)
		})
		return
	default:
		t.log.Warn("unknown setup callback", zap.String("data", query.Data))
		return
	}

	t.cache.SetDraft(chatID, d)
	text, markup := renderSetup(d, t.service.Chapters())
	editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, text)
	editMsg.ReplyMarkup = &markup
	sendMessage(t.bot, editMsg, t.log)
}

func nextCount(n int) int {
	for i, c := range practiceCounts {
		if c == n {
			return practiceCounts[(i+1)%len(practiceCounts)]
		}
	}
	return practiceCounts[0]
}

func (t *QuizT) startTest(chatID int64) {
	t.start(chatID, t.service.StartTest)
}

func (t *QuizT) startReview(chatID int64) {
	t.start(chatID, func() (models.QuizSession, error) {
		return t.service.StartReview(0)
	})
}

func (t *QuizT) startBookmarked(chatID int64, mode models.QuizMode) {
	t.start(chatID, func() (models.QuizSession, error) {
		return t.service.StartBookmarked(mode)
	})
}

func (t *QuizT) start(chatID int64, start func() (models.QuizSession, error)) {
	session, err := start()
	if err != nil {
		t.sendError(chatID, err)
		return
	}

	t.log.Debug("session started", zap.Int64("chat_id", chatID), zap.String("session_id", session.ID))
	t.sendScreen(chatID)
}

// resume shows the active session again as a fresh message.
func (t *QuizT) resume(chatID int64) {
	if t.service.View().Phase == quiz.PhaseSetup {
		return
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "⏯ You have a session in progress:"), t.log)
	t.sendScreen(chatID)
}

func (t *QuizT) quit(chatID int64) {
	t.service.Reset()
	t.cache.DeleteMessage(chatID)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Session closed. Pick a mode from the menu."), t.log)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if strings.HasPrefix(query.Data, prefixSetup) {
		t.handleSetup(query)
		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	if id, ok := t.cache.GetMessage(chatID); ok && id != messageID {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "⌛ This screen is outdated. Use /resume to get the current one."), t.log)
		return
	}

	cmd := strings.TrimPrefix(query.Data, prefixQuiz)
	var err error
	switch {
	case strings.HasPrefix(cmd, "opt_"):
		err = t.choose(strings.TrimPrefix(cmd, "opt_"))
	case strings.HasPrefix(cmd, "goto_"):
		i, convErr := strconv.Atoi(strings.TrimPrefix(cmd, "goto_"))
		if convErr != nil {
			t.log.Warn("bad index in callback", zap.String("data", query.Data))
			return
		}
		err = t.service.GoTo(i)
	case cmd == "submit":
		_, err = t.service.Submit()
	case cmd == "advance":
		err = t.service.Advance()
	case cmd == "prev":
		err = t.service.Previous()
	case cmd == "next":
		err = t.service.Next()
	case cmd == "review":
		err = t.service.OpenReview()
	case cmd == "back":
		err = t.service.CloseReview()
	case cmd == "finish_test":
		err = t.service.SubmitSession()
	case cmd == "studied":
		_, err = t.service.ToggleStudied()
	case cmd == "shuffle":
		err = t.service.Shuffle()
	case cmd == "finish":
		err = t.service.Finish()
	case cmd == "bm":
		err = t.toggleBookmark()
	case cmd == "missed":
		_, err = t.service.ReviewIncorrect()
	case cmd == "retry":
		t.retry(chatID)
		return
	default:
		t.log.Warn("unknown quiz callback", zap.String("data", query.Data))
		return
	}

	if err != nil {
		t.sendError(chatID, err)
		return
	}
	t.editScreen(chatID, messageID)
}

// choose answers the current question: a test records the answer and moves
// on, the other modes keep it as a selection until it is submitted.
func (t *QuizT) choose(optionID string) error {
	v := t.service.View()
	if v.Mode != models.ModeTest {
		return t.service.Select(optionID)
	}

	if _, err := t.service.Record(optionID); err != nil {
		return err
	}
	if v.IsLast {
		return nil
	}
	return t.service.Next()
}

func (t *QuizT) toggleBookmark() error {
	v := t.service.View()
	if v.Question == nil {
		return quiz.ErrNoSession
	}
	_, err := t.service.ToggleBookmark(v.Question.ID)
	return err
}

func (t *QuizT) retry(chatID int64) {
	mode := t.service.View().Mode
	t.service.Retry()
	t.cache.DeleteMessage(chatID)

	switch mode {
	case models.ModeTest:
		t.startTest(chatID)
	case models.ModeReview:
		t.startReview(chatID)
	case models.ModeStudy, models.ModePractice:
		t.showSetup(chatID, mode)
	}
}

func (t *QuizT) screen() (string, *tgbotapi.InlineKeyboardMarkup) {
	v := t.service.View()
	bookmarked := v.Question != nil && t.service.IsBookmarked(v.Question.ID)

	var summary string
	if v.Phase == quiz.PhaseResults {
		summary = t.service.ResultsSummary()
	}
	return renderScreen(v, bookmarked, summary)
}

func (t *QuizT) sendScreen(chatID int64) {
	text, markup := t.screen()
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if sent, ok := sendMessage(t.bot, msg, t.log); ok {
		t.cache.SetMessage(chatID, sent.MessageID)
	}
}

func (t *QuizT) editScreen(chatID int64, messageID int) {
	text, markup := t.screen()
	editMsg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if markup == nil {
		markup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	}
	editMsg.ReplyMarkup = markup

	sendMessage(t.bot, editMsg, t.log)
	t.cache.SetMessage(chatID, messageID)
}

func (t *QuizT) sendError(chatID int64, err error) {
	var (
		incomplete *quiz.IncompleteSubmissionError
		transition *quiz.TransitionError
		text       string
	)

	switch {
	case errors.As(err, &incomplete):
		text = fmt.Sprintf("📋 %d question(s) still unanswered: %s", incomplete.Count(), questionNumbers(incomplete.Unanswered, 10))
	case errors.As(err, &transition):
		text = "⌛ That button is no longer active. Use /resume to get the current screen."
	case errors.Is(err, quiz.ErrInsufficientQuestions):
		text = "😕 No questions match. Pick other chapters, or answer a few questions first."
	case errors.Is(err, quiz.ErrNoSession):
		text = "No session in progress. Pick a mode from the menu."
	case errors.Is(err, quiz.ErrNoSelection):
		text = "Pick an answer first."
	case errors.Is(err, quiz.ErrNoIncorrectAnswers):
		text = "🎉 Nothing to review, every answer was right."
	case errors.Is(err, service.ErrUnknownQuestion):
		text = "❌ That question is no longer in the catalog."
	default:
		t.log.Error("quiz action failed", zap.Int64("chat_id", chatID), zap.Error(err))
		text = "❌ Something went wrong. Try again."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text), t.log)
}

func questionNumbers(idx []int, limit int) string {
	parts := make([]string, 0, limit+1)
	for i, n := range idx {
		if i == limit {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, strconv.Itoa(n+1))
	}
	return strings.Join(parts, ", ")
}
