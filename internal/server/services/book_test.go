package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/server/models"
)

func TestBookCreate_GeneratesIDAndValidates(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{b: &fakeBooksRepo{}}
	s := NewBookService(db, rm)

	created, err := s.Create(context.Background(), &models.Book{
		Title: "Dune", Author: "Frank Herbert", ReadDate: "2022", Rating: 5,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !strings.HasPrefix(created.ID, "book") {
		t.Fatalf("expected generated book id, got %q", created.ID)
	}

	_, err = s.Create(context.Background(), &models.Book{Title: "no author"})
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
}

func TestBookGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{b: &fakeBooksRepo{getErr: common.ErrorNotFound}}
	s := NewBookService(db, rm)

	if _, err := s.Get(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestBookUpdate_ClearsOptionalField(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	stored := &models.Book{
		ID: "book1", Title: "t", Author: "a", ReadDate: "2022", Quote: "old quote",
	}
	rm := &fakeRepoManager{b: &fakeBooksRepo{getOut: stored}}
	s := NewBookService(db, rm)

	empty := ""
	got, err := s.Update(context.Background(), "book1", &models.BookUpdate{Quote: &empty})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Quote != "" {
		t.Fatalf("quote should be cleared, got %q", got.Quote)
	}
	if got.Title != "t" {
		t.Fatalf("untouched field changed: %+v", got)
	}
}
