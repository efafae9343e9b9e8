// Package movies provides the PostgreSQL-backed repository for movie records.
package movies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// PostgresRepository implements movie storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const movieColumns = `id, title, poster, year, director, actors, genres, rating, description, created_at, updated_at`

func scanMovie(row interface{ Scan(dest ...any) error }) (*models.Movie, error) {
	m := &models.Movie{}
	err := row.Scan(&m.ID, &m.Title, &m.Poster, &m.Year, &m.Director,
		&m.Actors, &m.Genres, &m.Rating, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all movies, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	m, err := scanMovie(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// Create inserts the movie. A duplicate id yields ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	query := `
		INSERT INTO movies (id, title, poster, year, director, actors, genres, rating, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		movie.ID, movie.Title, movie.Poster, movie.Year, movie.Director,
		movie.Actors, movie.Genres, movie.Rating, movie.Description).
		Scan(&movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return movie, nil
}

// Update replaces the stored row with the (already merged) record.
func (r *PostgresRepository) Update(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	query := `
		UPDATE movies SET title = $2, poster = $3, year = $4, director = $5,
			actors = $6, genres = $7, rating = $8, description = $9, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		movie.ID, movie.Title, movie.Poster, movie.Year, movie.Director,
		movie.Actors, movie.Genres, movie.Rating, movie.Description).
		Scan(&movie.CreatedAt, &movie.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return movie, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
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
	if _, err := r.db.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
