package poems

import (
	"context"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Poem, error)
	Get(ctx context.Context, id string) (*models.Poem, error)
	Create(ctx context.Context, poem *models.Poem) (*models.Poem, error)
	Update(ctx context.Context, poem *models.Poem) (*models.Poem, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
