package personalinfo

import (
	"context"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]*models.PersonalInfoEntry, error)
	Upsert(ctx context.Context, key, value string) (*models.PersonalInfoEntry, error)
	DeleteAll(ctx context.Context) error
}
