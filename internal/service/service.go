package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/models"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/quiz"
	"go.uber.org/zap"
)

// RepositoryI is a keyed store for the persisted records. Both the SQL
// repository and the Redis snapshot store implement it.
type RepositoryI interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

type CatalogI interface {
	quiz.Catalog
	ByID(id string) (models.Question, bool)
	Chapters() []int
	Count() int
}

type Options struct {
	UserID       string
	Buffer       int
	WriteTimeout time.Duration

	// Rand and Clock are for tests; nil means a time-seeded source and
	// time.Now.
	Rand  *rand.Rand
	Clock func() time.Time
}

type Service struct {
	*StudyS
}

// InitServices wires the study service. snapshots may be the same store as
// repo when Redis is disabled.
func InitServices(catalog CatalogI, repo, snapshots RepositoryI, opts Options, log *zap.Logger) *Service {
	return &Service{
		StudyS: NewStudyService(catalog, repo, snapshots, opts, log),
	}
}
