package admins

import (
	"context"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
}
