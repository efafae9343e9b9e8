package books

import (
	"context"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	Update(ctx context.Context, book *models.Book) (*models.Book, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
