package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/cache"
	"go.uber.org/zap"
)

type ServiceI interface {
	QuizSI
	ProgressSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot      *tgbotapi.BotAPI
	ownerID  int64
	quiz     *QuizT
	progress *ProgressT
	log      *zap.Logger
}

// NewTelegramAPI connects to the Bot API. Only ownerID may use the bot; the
// study state behind it belongs to one learner.
func NewTelegramAPI(botToken string, ownerID int64, debug bool, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = debug
	log.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	quiz := NewQuizTAPI(bot, cache, service, log)
	return &TelegramAPI{
		bot:      bot,
		ownerID:  ownerID,
		quiz:     quiz,
		progress: NewProgressTAPI(bot, quiz, service, log),
		log:      log,
	}, nil
}

// Start handles updates one at a time until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if !t.authorized(update.Message.From, update.Message.Chat.ID) {
			return
		}
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if q := update.CallbackQuery; q != nil && q.Message != nil {
		if !t.authorized(q.From, q.Message.Chat.ID) {
			return
		}
		t.handleCallbackQuery(q)
	}
}

func (t *TelegramAPI) authorized(from *tgbotapi.User, chatID int64) bool {
	if from != nil && from.ID == t.ownerID {
		return true
	}

	var userID int64
	if from != nil {
		userID = from.ID
	}
	t.log.Warn("rejected update from stranger", zap.Int64("user_id", userID), zap.Int64("chat_id", chatID))
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🔒 This bot is private."), t.log)
	return false
}

// sendMessage sends msg and returns the sent message. Failures are logged
// only.
func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) (tgbotapi.Message, bool) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return tgbotapi.Message{}, false
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID), zap.Int("message_id", sentMsg.MessageID))
	}
	return sentMsg, true
}
