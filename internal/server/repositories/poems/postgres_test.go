package poems

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_OrdersNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "content", "poem_date", "tags", "created_at", "updated_at"}).
		AddRow("poem2", "Ocean's Embrace", "Waves...", "2023-07-22", []byte(`["ocean"]`), now, now).
		AddRow("poem1", "Whispers of the Stars", "In the silence...", "2023-05-15", []byte(`["night","stars"]`), now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, title, content, poem_date, tags, created_at, updated_at FROM poems\s+ORDER BY created_at DESC, id DESC`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 poems, got %d", len(got))
	}
	if got[0].ID != "poem2" {
		t.Fatalf("expected newest poem first, got %s", got[0].ID)
	}
	if len(got[1].Tags) != 2 || got[1].Tags[0] != "night" {
		t.Fatalf("tags not restored from JSON: %v", got[1].Tags)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, content, poem_date, tags, created_at, updated_at FROM poems\s+WHERE id = \$1`).
		WithArgs("poem404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "poem404")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCreate_DuplicateIDIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`INSERT INTO poems .* ON CONFLICT \(id\) DO NOTHING\s+RETURNING created_at, updated_at`)

	// DO NOTHING swallows the row on conflict, so RETURNING yields no rows.
	mock.ExpectQuery(q.String()).
		WithArgs("poem1", "t", "c", "", []byte(`[]`)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Create(context.Background(), &models.Poem{ID: "poem1", Title: "t", Content: "c"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_ReturnsServerAssignedTimestamps(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	q := regexp.MustCompile(`INSERT INTO poems .* RETURNING created_at, updated_at`)
	mock.ExpectQuery(q.String()).
		WithArgs("poem1", "t", "c", "2024-01-05", []byte(`["night"]`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	poem, err := repo.Create(context.Background(), &models.Poem{
		ID: "poem1", Title: "t", Content: "c", Date: "2024-01-05", Tags: models.StringList{"night"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !poem.CreatedAt.Equal(now) {
		t.Fatalf("expected server-assigned created_at")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE poems SET .* WHERE id = \$1\s+RETURNING created_at, updated_at`)
	mock.ExpectQuery(q.String()).
		WithArgs("poem404", "t", "c", "", []byte(`[]`)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Poem{ID: "poem404", Title: "t", Content: "c"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete_RowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM poems WHERE id = \$1`).
		WithArgs("poem1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "poem1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(`DELETE FROM poems WHERE id = \$1`).
		WithArgs("poem404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "poem404"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM poems`).WillReturnResult(sqlmock.NewResult(0, 6))
	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
