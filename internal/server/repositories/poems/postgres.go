// Package poems provides the PostgreSQL-backed repository for poem records.
package poems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// PostgresRepository implements poem storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all poems, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Poem, error) {
	query := `
		SELECT id, title, content, poem_date, tags, created_at, updated_at FROM poems
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Poem{}
	for rows.Next() {
		var item models.Poem
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.Date,
			&item.Tags, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Poem, error) {
	query := `
		SELECT id, title, content, poem_date, tags, created_at, updated_at FROM poems
		WHERE id = $1
	`
	poem := &models.Poem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&poem.ID, &poem.Title, &poem.Content,
		&poem.Date, &poem.Tags, &poem.CreatedAt, &poem.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return poem, nil
}

// Create inserts the poem. A duplicate id yields ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, poem *models.Poem) (*models.Poem, error) {
	query := `
		INSERT INTO poems (id, title, content, poem_date, tags)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		poem.ID, poem.Title, poem.Content, poem.Date, poem.Tags).
		Scan(&poem.CreatedAt, &poem.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return poem, nil
}

// Update replaces the stored row with the (already merged) record.
func (r *PostgresRepository) Update(ctx context.Context, poem *models.Poem) (*models.Poem, error) {
	query := `
		UPDATE poems SET title = $2, content = $3, poem_date = $4, tags = $5, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		poem.ID, poem.Title, poem.Content, poem.Date, poem.Tags).
		Scan(&poem.CreatedAt, &poem.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return poem, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM poems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM poems`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
