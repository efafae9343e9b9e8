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

// BookService implements CRUD over the book collection.
type BookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBookService(db *sql.DB, m repomanager.RepositoryManager) *BookService {
	return &BookService{db: db, repomanager: m}
}

func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	repo := s.repomanager.Books(s.db)
	items, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}
	return items, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*models.Book, error) {
	repo := s.repomanager.Books(s.db)
	item, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BookService) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Books(s.db)

	if book.ID != "" {
		return repo.Create(ctx, book)
	}

	book.ID = newContentID("book")
	created, err := repo.Create(ctx, book)
	if errors.Is(err, common.ErrorAlreadyExists) {
		book.ID = fmt.Sprintf("book%d", nowMillis()+1)
		return repo.Create(ctx, book)
	}
	return created, err
}

func (s *BookService) Update(ctx context.Context, id string, upd *models.BookUpdate) (*models.Book, error) {
	repo := s.repomanager.Books(s.db)

	book, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(book)
	if err := book.Validate(); err != nil {
		return nil, err
	}

	return repo.Update(ctx, book)
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Books(s.db)
	return repo.Delete(ctx, id)
}
