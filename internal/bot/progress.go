package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"go.uber.org/zap"
)

const (
	prefixBookmarks = "bm_"
	prefixProgress  = "progress_"

	maxListedBookmarks = 15
)

type ProgressSI interface {
	Bookmarks() []models.Question
	ClearBookmarks()
	ProgressSummary() string
	ResetProgress() error
}

type ProgressT struct {
	bot     BotSender
	quiz    *QuizT
	service ProgressSI
	log     *zap.Logger
}

func NewProgressTAPI(bot BotSender, quiz *QuizT, service ProgressSI, log *zap.Logger) *ProgressT {
	return &ProgressT{
		bot:     bot,
		quiz:    quiz,
		service: service,
		log:     log,
	}
}

func (t *ProgressT) showBookmarks(chatID int64) {
	qs := t.service.Bookmarks()
	if len(qs) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🔖 No bookmarks yet. Tap \"Bookmark\" on any question to save it here.")
		sendMessage(t.bot, msg, t.log)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔖 Bookmarked questions (%d):\n\n", len(qs))
	for i, q := range qs {
		if i == maxListedBookmarks {
			fmt.Fprintf(&b, "…and %d more\n", len(qs)-maxListedBookmarks)
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			button("📖 Study them", prefixBookmarks+"study"),
			button("✍️ Practice them", prefixBookmarks+"practice"),
		),
		tgbotapi.NewInlineKeyboardRow(button("🗑 Clear all", prefixBookmarks+"clear")),
	)

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *ProgressT) showProgress(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("♻️ Reset progress", prefixProgress+"reset")),
	)

	msg := tgbotapi.NewMessage(chatID, t.service.ProgressSummary())
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, msg, t.log)
}

func (t *ProgressT) handleProgressCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	switch query.Data {
	case prefixBookmarks + "study":
		t.quiz.startBookmarked(chatID, models.ModeStudy)
	case prefixBookmarks + "practice":
		t.quiz.startBookmarked(chatID, models.ModePractice)
	case prefixBookmarks + "clear":
		t.service.ClearBookmarks()
		t.edit(query, "🗑 Bookmarks cleared.")
	case prefixProgress + "reset":
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				button("Yes, reset", prefixProgress+"reset_confirm"),
				button("Cancel", prefixProgress+"reset_cancel"),
			),
		)
		editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID,
			"♻️ Reset all statistics? Bookmarks are kept.")
		editMsg.ReplyMarkup = &keyboard
		sendMessage(t.bot, editMsg, t.log)
	case prefixProgress + "reset_confirm":
		if err := t.service.ResetProgress(); err != nil {
			t.log.Error("failed to reset progress", zap.Error(err))
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not reset progress."), t.log)
			return
		}
		t.edit(query, "♻️ Progress reset. Fresh start!")
	case prefixProgress + "reset_cancel":
		t.edit(query, t.service.ProgressSummary())
	default:
		t.log.Warn("unknown progress callback", zap.String("data", query.Data))
	}
}

func (t *ProgressT) edit(query *tgbotapi.CallbackQuery, text string) {
	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	sendMessage(t.bot, editMsg, t.log)
}
