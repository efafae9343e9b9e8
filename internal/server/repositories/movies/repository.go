package movies

import (
	"context"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Movie, error)
	Get(ctx context.Context, id string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
