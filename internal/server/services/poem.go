package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/server/models"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/repomanager"
)

// PoemService implements CRUD over the poem collection. Create assigns a
// timestamp-based id when the caller does not provide one; Update merges the
// requested changes into the stored record before revalidating.
type PoemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPoemService(db *sql.DB, m repomanager.RepositoryManager) *PoemService {
	return &PoemService{db: db, repomanager: m}
}

func (s *PoemService) List(ctx context.Context) ([]*models.Poem, error) {
	repo := s.repomanager.Poems(s.db)
	items, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing poems: %w", err)
	}
	return items, nil
}

func (s *PoemService) Get(ctx context.Context, id string) (*models.Poem, error) {
	repo := s.repomanager.Poems(s.db)
	item, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PoemService) Create(ctx context.Context, poem *models.Poem) (*models.Poem, error) {
	if err := poem.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Poems(s.db)

	if poem.ID != "" {
		return repo.Create(ctx, poem)
	}

	// Generated ids are millisecond timestamps, so two creates in the same
	// millisecond collide. Retry once with the next millisecond.
	poem.ID = newContentID("poem")
	created, err := repo.Create(ctx, poem)
	if errors.Is(err, common.ErrorAlreadyExists) {
		poem.ID = fmt.Sprintf("poem%d", nowMillis()+1)
		return repo.Create(ctx, poem)
	}
	return created, err
}

func (s *PoemService) Update(ctx context.Context, id string, upd *models.PoemUpdate) (*models.Poem, error) {
	repo := s.repomanager.Poems(s.db)

	poem, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(poem)
	if err := poem.Validate(); err != nil {
		return nil, err
	}

	return repo.Update(ctx, poem)
}

func (s *PoemService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Poems(s.db)
	return repo.Delete(ctx, id)
}
