// Package personalinfo provides the PostgreSQL-backed repository for the
// owner-profile key→value records.
package personalinfo

import (
	"context"
	"fmt"

	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// PostgresRepository implements profile storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.PersonalInfoEntry, error) {
	query := `SELECT key, value, created_at, updated_at FROM personal_info ORDER BY key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.PersonalInfoEntry{}
	for rows.Next() {
		var item models.PersonalInfoEntry
		if err := rows.Scan(&item.Key, &item.Value, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert creates the pair if the key is absent, otherwise overwrites the value.
func (r *PostgresRepository) Upsert(ctx context.Context, key, value string) (*models.PersonalInfoEntry, error) {
	query := `
		INSERT INTO personal_info (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING key, value, created_at, updated_at
	`
	entry := &models.PersonalInfoEntry{}
	err := r.db.QueryRowContext(ctx, query, key, value).
		Scan(&entry.Key, &entry.Value, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM personal_info`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
