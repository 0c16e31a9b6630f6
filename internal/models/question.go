package models

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionImageBased     QuestionType = "image_based"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

type Category string

const (
	CategoryLicenses       Category = "licenses"
	CategoryVehicles       Category = "vehicles"
	CategoryDrivers        Category = "drivers"
	CategoryRoads          Category = "roads"
	CategoryTrafficSigns   Category = "traffic_signs"
	CategoryTrafficSignals Category = "traffic_signals"
	CategoryRightOfWay     Category = "right_of_way"
	CategoryParking        Category = "parking"
	CategoryEmergencies    Category = "emergencies"
	CategoryMixed          Category = "mixed"
)

func Categories() []Category {
	return []Category{
		CategoryLicenses, CategoryVehicles, CategoryDrivers, CategoryRoads,
		CategoryTrafficSigns, CategoryTrafficSignals, CategoryRightOfWay,
		CategoryParking, CategoryEmergencies, CategoryMixed,
	}
}

type Option struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Question is a catalog record. Instances handed out by the catalog are
// copies; nothing downstream mutates the catalog.
type Question struct {
	ID              string       `json:"id" validate:"required"`
	Type            QuestionType `json:"type,omitempty" validate:"omitempty,oneof=multiple_choice true_false image_based"`
	Category        Category     `json:"category" validate:"required,category"`
	Difficulty      Difficulty   `json:"difficulty" validate:"required,difficulty"`
	Chapter         int          `json:"chapter" validate:"min=1"`
	Section         string       `json:"section,omitempty"`
	Prompt          string       `json:"question" validate:"required"`
	Options         []Option     `json:"options" validate:"min=2,dive"`
	CorrectAnswerID string       `json:"correctAnswerId" validate:"required"`
	Explanation     string       `json:"explanation"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	RelatedTopics   []string     `json:"relatedTopics,omitempty"`
	Source          string       `json:"source,omitempty"`
}

func (q Question) HasOption(id string) bool {
	for _, o := range q.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Clone copies the slices so the result can be reordered freely.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]Option(nil), q.Options...)
	c.Tags = append([]string(nil), q.Tags...)
	c.RelatedTopics = append([]string(nil), q.RelatedTopics...)
	return c
}
