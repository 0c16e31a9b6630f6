package cache

import (
	"sort"
	"sync"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
)

// Draft is a quiz setup the user is still editing.
type Draft struct {
	Mode     models.QuizMode
	Chapters map[int]bool
	Count    int
	Shuffle  bool
}

func (d Draft) Config() models.QuizConfig {
	cfg := models.QuizConfig{
		Mode:             d.Mode,
		QuestionCount:    d.Count,
		ShuffleQuestions: d.Shuffle,
		ShowExplanations: true,
	}
	for ch, on := range d.Chapters {
		if on {
			cfg.Chapters = append(cfg.Chapters, ch)
		}
	}
	sort.Ints(cfg.Chapters)
	return cfg
}

// Cache holds per-chat presentation state: setup drafts and the id of the
// message that shows the active screen.
type Cache struct {
	mu       sync.Mutex
	drafts   map[int64]Draft
	messages map[int64]int
}

func NewCache() *Cache {
	return &Cache{
		drafts:   make(map[int64]Draft),
		messages: make(map[int64]int),
	}
}

func (c *Cache) SetDraft(chatID int64, d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	chapters := make(map[int]bool, len(d.Chapters))
	for k, v := range d.Chapters {
		chapters[k] = v
	}
	d.Chapters = chapters
	c.drafts[chatID] = d
}

func (c *Cache) GetDraft(chatID int64) (Draft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, exists := c.drafts[chatID]
	if !exists {
		return Draft{}, false
	}
	chapters := make(map[int]bool, len(d.Chapters))
	for k, v := range d.Chapters {
		chapters[k] = v
	}
	d.Chapters = chapters
	return d, true
}

func (c *Cache) DeleteDraft(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, chatID)
}

func (c *Cache) SetMessage(chatID int64, messageID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages[chatID] = messageID
}

func (c *Cache) GetMessage(chatID int64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, exists := c.messages[chatID]
	return id, exists
}

func (c *Cache) DeleteMessage(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.messages, chatID)
}
