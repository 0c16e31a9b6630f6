package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/pkg/validator"
)

var ErrEmpty = errors.New("catalog contains no questions")

// Catalog is an immutable, in-memory question set indexed by chapter,
// category and difficulty.
type Catalog struct {
	questions    []models.Question
	byID         map[string]int
	byChapter    map[int][]int
	byCategory   map[models.Category][]int
	byDifficulty map[models.Difficulty][]int
}

func New(questions []models.Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{
		questions:    make([]models.Question, 0, len(questions)),
		byID:         make(map[string]int, len(questions)),
		byChapter:    make(map[int][]int),
		byCategory:   make(map[models.Category][]int),
		byDifficulty: make(map[models.Difficulty][]int),
	}

	for _, q := range questions {
		if err := Validate(q); err != nil {
			return nil, err
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}

		idx := len(c.questions)
		c.questions = append(c.questions, q.Clone())
		c.byID[q.ID] = idx
		c.byChapter[q.Chapter] = append(c.byChapter[q.Chapter], idx)
		c.byCategory[q.Category] = append(c.byCategory[q.Category], idx)
		c.byDifficulty[q.Difficulty] = append(c.byDifficulty[q.Difficulty], idx)
	}

	return c, nil
}

// Validate checks a single record: struct tags, unique option ids and that
// the correct answer references one of the options.
func Validate(q models.Question) error {
	if err := validator.ValidateStruct(q); err != nil {
		return fmt.Errorf("question %q: %w", q.ID, err)
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("question %q: duplicate option id %q", q.ID, o.ID)
		}
		seen[o.ID] = struct{}{}
	}

	if _, ok := seen[q.CorrectAnswerID]; !ok {
		return fmt.Errorf("question %q: correct answer %q is not an option", q.ID, q.CorrectAnswerID)
	}

	return nil
}

// Load reads one or more JSON files, each holding an array of questions.
func Load(paths ...string) (*Catalog, error) {
	var all []models.Question
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var qs []models.Question
		if err := json.Unmarshal(data, &qs); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		all = append(all, qs...)
	}

	c, err := New(all)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// LoadDir loads every *.json file in dir in lexical order.
func LoadDir(dir string) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no question files in %s: %w", dir, ErrEmpty)
	}
	sort.Strings(paths)

	return Load(paths...)
}

func (c *Catalog) All() []models.Question {
	out := make([]models.Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.Clone()
	}
	return out
}

func (c *Catalog) ByChapter(n int) []models.Question {
	return c.pick(c.byChapter[n])
}

func (c *Catalog) ByCategory(cat models.Category) []models.Question {
	return c.pick(c.byCategory[cat])
}

func (c *Catalog) ByDifficulty(d models.Difficulty) []models.Question {
	return c.pick(c.byDifficulty[d])
}

func (c *Catalog) ByID(id string) (models.Question, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Question{}, false
	}
	return c.questions[idx].Clone(), true
}

// Chapters returns the chapter numbers present, ascending.
func (c *Catalog) Chapters() []int {
	out := make([]int, 0, len(c.byChapter))
	for ch := range c.byChapter {
		out = append(out, ch)
	}
	sort.Ints(out)
	return out
}

func (c *Catalog) Count() int {
	return len(c.questions)
}

func (c *Catalog) pick(idxs []int) []models.Question {
	out := make([]models.Question, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.questions[i].Clone())
	}
	return out
}
