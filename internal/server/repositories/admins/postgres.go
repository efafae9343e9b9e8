// Package admins provides the PostgreSQL-backed repository for the owner
// account.
package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

// PostgresRepository implements admin storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, username, password_hash, email, role, is_active, created_at FROM admins
		WHERE username = $1
	`
	admin := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&admin.ID, &admin.Username,
		&admin.PasswordHash, &admin.Email, &admin.Role, &admin.IsActive, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}

// Create inserts the admin. A duplicate username yields ErrorAlreadyExists,
// keeping provisioning idempotent under concurrent first logins.
func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	query := `
		INSERT INTO admins (username, password_hash, email, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		admin.Username, admin.PasswordHash, admin.Email, admin.Role, admin.IsActive).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}
