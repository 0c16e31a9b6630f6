package bot

import (
	"errors"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	mock_bot "github.com/simplysrv/WA-Driving-Test-Prep/internal/bot/mock"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProgressTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *ProgressT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	quizT := NewQuizTAPI(mockBot, cache.NewCache(), mockService, zap.NewNop())
	return NewProgressTAPI(mockBot, quizT, mockService, zap.NewNop())
}

func TestProgressT_showBookmarks(t *testing.T) {
	t.Parallel()

	many := make([]models.Question, 17)
	for i := range many {
		many[i] = models.Question{ID: fmt.Sprintf("q%d", i), Prompt: fmt.Sprintf("prompt %d", i)}
	}

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "no bookmarks",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Bookmarks().Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "No bookmarks yet")
				assert.Nil(t, msg.ReplyMarkup)
			},
		},
		{
			name: "long list is cut",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Bookmarks().Return(many)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Bookmarked questions (17)")
				assert.Contains(t, msg.Text, "15. prompt 14")
				assert.Contains(t, msg.Text, "…and 2 more")
				assert.NotContains(t, msg.Text, "prompt 15")
				_, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
				assert.True(t, ok)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressT := newProgressTMock(t, ctrl, tt.f)
			mb, _ := progressT.bot.(*mock_bot.MockBot)

			progressT.showBookmarks(chatID)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestProgressT_handleProgressCallbackQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "practice bookmarks",
			data: "bm_practice",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartBookmarked(models.ModePractice).Return(models.QuizSession{ID: "s1"}, nil)
				ms.EXPECT().View().Return(questionView(models.ModePractice))
				ms.EXPECT().IsBookmarked("q1").Return(true)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "red octagon")
			},
		},
		{
			name: "study bookmarks with none saved",
			data: "bm_study",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartBookmarked(models.ModeStudy).Return(models.QuizSession{}, quiz.ErrInsufficientQuestions)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "No questions match")
			},
		},
		{
			name: "clear bookmarks",
			data: "bm_clear",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().ClearBookmarks()
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, "🗑 Bookmarks cleared.", editMsg.Text)
			},
		},
		{
			name: "reset asks first",
			data: "progress_reset",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, editMsg.Text, "Bookmarks are kept")
				require.NotNil(t, editMsg.ReplyMarkup)
				assert.Len(t, editMsg.ReplyMarkup.InlineKeyboard[0], 2)
			},
		},
		{
			name: "reset confirmed",
			data: "progress_reset_confirm",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().ResetProgress().Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, editMsg.Text, "Progress reset")
			},
		},
		{
			name: "reset fails",
			data: "progress_reset_confirm",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().ResetProgress().Return(errors.New("not initialized"))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Could not reset progress.", msg.Text)
			},
		},
		{
			name: "reset cancelled",
			data: "progress_reset_cancel",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().ProgressSummary().Return("📊 Your progress")
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, "📊 Your progress", editMsg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			progressT := newProgressTMock(t, ctrl, tt.f)
			mb, _ := progressT.bot.(*mock_bot.MockBot)

			progressT.handleProgressCallbackQuery(query(tt.data, 5))

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestProgressT_showProgress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	progressT := newProgressTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().ProgressSummary().Return("📊 Your progress\n\n✅ Correct: 8 / 10 (80.0%)")
	})
	mb, _ := progressT.bot.(*mock_bot.MockBot)

	progressT.showProgress(chatID)

	require.Equal(t, 1, len(mb.SentMessages))
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, msg.Text, "80.0%")
	kb := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.Equal(t, "progress_reset", *kb.InlineKeyboard[0][0].CallbackData)
}
