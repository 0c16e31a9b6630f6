package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"go.uber.org/zap"
)

const (
	ButtonStudy     = "📖 Study"
	ButtonPractice  = "✍️ Practice"
	ButtonTest      = "🏁 Practice test"
	ButtonReview    = "🔁 Review mistakes"
	ButtonBookmarks = "🔖 Bookmarks"
	ButtonProgress  = "📊 My progress"
	ButtonMainMenu  = "🏠 Main menu"
	ButtonHelp      = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "resume":
		t.quiz.resume(message.Chat.ID)
	case "quit":
		t.quiz.quit(message.Chat.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🚗 Hi! I will help you get ready for the driver knowledge test.\n\n" +
		"✨ What I can do:\n" +
		"• 📖 Flashcards to study the handbook\n" +
		"• ✍️ Practice quizzes with explanations\n" +
		"• 🏁 A 40-question test, 80% to pass\n" +
		"• 🔁 Drill the questions you got wrong\n\n" +
		"Pick something below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()
	sendMessage(t.bot, msg, t.log)

	t.quiz.resume(message.Chat.ID)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = t.generateMenuKeyboard()
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStudy),
			tgbotapi.NewKeyboardButton(ButtonPractice),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonTest),
			tgbotapi.NewKeyboardButton(ButtonReview),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonBookmarks),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start - open the menu
/resume - show the session in progress
/quit - abandon the session in progress
/help - this message

🎯 Buttons:
• "Study" - flip through flashcards, nothing is scored
• "Practice" - answer and see the explanation right away
• "Practice test" - 40 questions, results at the end, 80% passes
• "Review mistakes" - questions you have missed before
• "Bookmarks" - questions you saved with 🔖
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Text {
	case ButtonStudy:
		t.quiz.showSetup(chatID, models.ModeStudy)
	case ButtonPractice:
		t.quiz.showSetup(chatID, models.ModePractice)
	case ButtonTest:
		t.quiz.startTest(chatID)
	case ButtonReview:
		t.quiz.startReview(chatID)
	case ButtonBookmarks:
		t.progress.showBookmarks(chatID)
	case ButtonProgress:
		t.progress.showProgress(chatID)
	case ButtonMainMenu:
		t.showMainMenu(chatID)
	case ButtonHelp:
		t.handleHelpCommand(message)

	default:
		msg := tgbotapi.NewMessage(chatID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, prefixSetup), strings.HasPrefix(data, prefixQuiz):
		t.quiz.handleQuizCallbackQuery(query)

	case strings.HasPrefix(data, prefixBookmarks), strings.HasPrefix(data, prefixProgress):
		t.progress.handleProgressCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message.Chat.ID)

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
