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

// MovieService implements CRUD over the movie collection.
type MovieService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMovieService(db *sql.DB, m repomanager.RepositoryManager) *MovieService {
	return &MovieService{db: db, repomanager: m}
}

func (s *MovieService) List(ctx context.Context) ([]*models.Movie, error) {
	repo := s.repomanager.Movies(s.db)
	items, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing movies: %w", err)
	}
	return items, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	repo := s.repomanager.Movies(s.db)
	item, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MovieService) Create(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Movies(s.db)

	if movie.ID != "" {
		return repo.Create(ctx, movie)
	}

	movie.ID = newContentID("movie")
	created, err := repo.Create(ctx, movie)
	if errors.Is(err, common.ErrorAlreadyExists) {
		movie.ID = fmt.Sprintf("movie%d", nowMillis()+1)
		return repo.Create(ctx, movie)
	}
	return created, err
}

func (s *MovieService) Update(ctx context.Context, id string, upd *models.MovieUpdate) (*models.Movie, error) {
	repo := s.repomanager.Movies(s.db)

	movie, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(movie)
	if err := movie.Validate(); err != nil {
		return nil, err
	}

	return repo.Update(ctx, movie)
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Movies(s.db)
	return repo.Delete(ctx, id)
}
