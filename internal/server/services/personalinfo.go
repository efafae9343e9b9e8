package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/models"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/repomanager"
)

// PersonalInfoService exposes the profile key/value pairs as a flat map and
// applies multi-key writes atomically.
type PersonalInfoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPersonalInfoService(db *sql.DB, m repomanager.RepositoryManager) *PersonalInfoService {
	return &PersonalInfoService{db: db, repomanager: m}
}

// GetAll returns every stored pair. An empty store yields an empty map, not nil.
func (s *PersonalInfoService) GetAll(ctx context.Context) (map[string]string, error) {
	repo := s.repomanager.PersonalInfo(s.db)

	entries, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing personal info: %w", err)
	}

	info := make(map[string]string, len(entries))
	for _, e := range entries {
		info[e.Key] = e.Value
	}
	return info, nil
}

// Set upserts a single pair.
func (s *PersonalInfoService) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return models.ValidationErrors{{Field: "key", Message: "is required"}}
	}
	if _, err := s.repomanager.PersonalInfo(s.db).Upsert(ctx, key, value); err != nil {
		return fmt.Errorf("error upserting %q: %w", key, err)
	}
	return nil
}

// SetAll upserts every pair in data inside a single transaction, so a partial
// failure leaves the stored profile untouched. Keys must be non-blank.
func (s *PersonalInfoService) SetAll(ctx context.Context, data map[string]string) error {
	for key := range data {
		if strings.TrimSpace(key) == "" {
			return models.ValidationErrors{{Field: "key", Message: "is required"}}
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.PersonalInfo(tx)
		for key, value := range data {
			if _, err := repo.Upsert(ctx, key, value); err != nil {
				return fmt.Errorf("error upserting %q: %w", key, err)
			}
		}
		return nil
	})
}
