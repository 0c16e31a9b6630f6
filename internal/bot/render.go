package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/cache"
)

const reviewGridWidth = 5

var modeIcons = map[models.QuizMode]string{
	models.ModeStudy:    "📖 Study",
	models.ModePractice: "✍️ Practice",
	models.ModeTest:     "🏁 Practice test",
	models.ModeReview:   "🔁 Review",
}

func letter(i int) string {
	return string(rune('A' + i))
}

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func renderSetup(d cache.Draft, chapters []int) (string, tgbotapi.InlineKeyboardMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s setup\n\nPick the chapters to include.", modeIcons[d.Mode])
	if d.Mode != models.ModeStudy {
		fmt.Fprintf(&b, "\nQuestions: %d", d.Count)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 4)
	for _, ch := range chapters {
		mark := "⬜"
		if d.Chapters[ch] {
			mark = "✅"
		}
		row = append(row, button(fmt.Sprintf("%s Ch %d", mark, ch), fmt.Sprintf("%sch_%d", prefixSetup, ch)))
		if len(row) == 4 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 4)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if d.Mode != models.ModeStudy {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button(fmt.Sprintf("🔢 %d questions", d.Count), prefixSetup+"count")))
	}
	shuffle := "off"
	if d.Shuffle {
		shuffle = "on"
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(button("🔀 Shuffle: "+shuffle, prefixSetup+"shuffle")),
		tgbotapi.NewInlineKeyboardRow(button("▶️ Start", prefixSetup+"start")),
	)

	return b.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// renderScreen draws the active session. The markup is nil when the screen
// has no buttons.
func renderScreen(v quiz.View, bookmarked bool, summary string) (string, *tgbotapi.InlineKeyboardMarkup) {
	var (
		text string
		rows [][]tgbotapi.InlineKeyboardButton
	)

	switch v.Phase {
	case quiz.PhaseSetup:
		return "No session in progress. Pick a mode from the menu.", nil
	case quiz.PhaseQuestion:
		text, rows = renderQuestion(v, bookmarked)
	case quiz.PhaseFeedback:
		text, rows = renderFeedback(v, bookmarked)
	case quiz.PhaseReview:
		text, rows = renderReview(v)
	case quiz.PhaseResults:
		text, rows = renderResults(v, summary)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return text, &markup
}

func header(v quiz.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %d/%d", modeIcons[v.Mode], v.Index+1, v.Total)
	if v.Mode.Graded() {
		fmt.Fprintf(&b, " · answered %d", v.AnsweredCount)
	} else {
		fmt.Fprintf(&b, " · studied %d", v.Studied)
	}
	q := v.Question
	fmt.Fprintf(&b, "\nChapter %d · %s\n\n%s\n", q.Chapter, strings.ReplaceAll(string(q.Category), "_", " "), q.Prompt)
	if q.ImageURL != "" {
		fmt.Fprintf(&b, "🖼 %s\n", q.ImageURL)
	}
	b.WriteString("\n")
	for i, o := range q.Options {
		fmt.Fprintf(&b, "%s) %s\n", letter(i), o.Text)
	}
	return b.String()
}

func correctOption(q *models.Question) string {
	for i, o := range q.Options {
		if o.ID == q.CorrectAnswerID {
			return fmt.Sprintf("%s) %s", letter(i), o.Text)
		}
	}
	return ""
}

func bookmarkRow(bookmarked bool) []tgbotapi.InlineKeyboardButton {
	text := "🔖 Bookmark"
	if bookmarked {
		text = "🔖 Bookmarked ✓"
	}
	return tgbotapi.NewInlineKeyboardRow(button(text, prefixQuiz+"bm"))
}

func navRow(v quiz.View, middle ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if v.Index > 0 {
		row = append(row, button("⬅️", prefixQuiz+"prev"))
	}
	row = append(row, middle...)
	if !v.IsLast {
		row = append(row, button("➡️", prefixQuiz+"next"))
	}
	return row
}

func renderQuestion(v quiz.View, bookmarked bool) (string, [][]tgbotapi.InlineKeyboardButton) {
	var b strings.Builder
	b.WriteString(header(v))
	q := v.Question

	if v.Mode == models.ModeStudy {
		fmt.Fprintf(&b, "\n✔️ Answer: %s\n", correctOption(q))
		if q.Explanation != "" {
			fmt.Fprintf(&b, "💡 %s\n", q.Explanation)
		}

		studied := "☑️ Mark studied"
		if v.IsStudied {
			studied = "✅ Studied"
		}
		rows := [][]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardRow(button(studied, prefixQuiz+"studied")),
			bookmarkRow(bookmarked),
			tgbotapi.NewInlineKeyboardRow(
				button("🔀 Shuffle", prefixQuiz+"shuffle"),
				button("🏁 Finish", prefixQuiz+"finish"),
			),
		}
		if nav := navRow(v); len(nav) > 0 {
			rows = append([][]tgbotapi.InlineKeyboardButton{nav}, rows...)
		}
		return b.String(), rows
	}

	chosen := v.Selected
	options := make([]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i, o := range q.Options {
		text := letter(i)
		if o.ID == chosen {
			text = "• " + text + " •"
		}
		options = append(options, button(text, prefixQuiz+"opt_"+o.ID))
	}
	rows := [][]tgbotapi.InlineKeyboardButton{options}

	if v.Mode == models.ModeTest {
		rows = append(rows, navRow(v, button("📋 Review", prefixQuiz+"review")))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("📨 Submit", prefixQuiz+"submit")))
	}
	rows = append(rows, bookmarkRow(bookmarked))
	return b.String(), rows
}

func renderFeedback(v quiz.View, bookmarked bool) (string, [][]tgbotapi.InlineKeyboardButton) {
	var b strings.Builder
	b.WriteString(header(v))
	q := v.Question

	b.WriteString("\n")
	if v.Answer != nil && v.Answer.IsCorrect {
		b.WriteString("✅ Correct!\n")
	} else {
		fmt.Fprintf(&b, "❌ Not quite. The answer is %s\n", correctOption(q))
		if v.Answer != nil {
			if o, ok := q.Option(v.Answer.SelectedOptionID); ok {
				fmt.Fprintf(&b, "You picked: %s\n", o.Text)
			}
		}
	}
	if v.ShowExplanations && q.Explanation != "" {
		fmt.Fprintf(&b, "💡 %s\n", q.Explanation)
	}

	next := "➡️ Next question"
	if v.IsLast {
		next = "🏁 See results"
	}
	return b.String(), [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(button(next, prefixQuiz+"advance")),
		bookmarkRow(bookmarked),
	}
}

func renderReview(v quiz.View) (string, [][]tgbotapi.InlineKeyboardButton) {
	var (
		b       strings.Builder
		missing []int
	)
	for i, done := range v.Answered {
		if !done {
			missing = append(missing, i)
		}
	}

	fmt.Fprintf(&b, "📋 Review · answered %d of %d\n", v.AnsweredCount, v.Total)
	if len(missing) > 0 {
		fmt.Fprintf(&b, "Unanswered: %s\n", questionNumbers(missing, 20))
	} else {
		b.WriteString("Every question has an answer. Submit when ready.\n")
	}
	b.WriteString("Tap a number to jump to it.")

	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, reviewGridWidth)
	for i, done := range v.Answered {
		mark := "⬜"
		if done {
			mark = "✅"
		}
		row = append(row, button(mark+" "+strconv.Itoa(i+1), prefixQuiz+"goto_"+strconv.Itoa(i)))
		if len(row) == reviewGridWidth {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, reviewGridWidth)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		button("⬅️ Back", prefixQuiz+"back"),
		button("📨 Submit test", prefixQuiz+"finish_test"),
	))
	return b.String(), rows
}

func renderResults(v quiz.View, summary string) (string, [][]tgbotapi.InlineKeyboardButton) {
	text := summary
	if v.Mode == models.ModeStudy || text == "" {
		text = fmt.Sprintf("📖 Deck finished: %d of %d cards marked studied.", v.Studied, v.Total)
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(button("🔁 Try again", prefixQuiz+"retry")),
	}
	if (v.Mode == models.ModePractice || v.Mode == models.ModeReview) && v.Incorrect > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("❌ Review my mistakes", prefixQuiz+"missed")))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button(ButtonMainMenu, "main_menu")))
	return text, rows
}
