package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soniwriter/dreamdiary/internal/server/models"
)

func TestPersonalInfoGetAll(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeInfoRepo{
		getAllOut: []*models.PersonalInfoEntry{
			{Key: "Full Name", Value: "Jane Doe"},
			{Key: "Location", Value: "San Francisco, CA"},
		},
	}}
	s := NewPersonalInfoService(db, rm)

	info, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(info) != 2 || info["Full Name"] != "Jane Doe" {
		t.Fatalf("unexpected map: %v", info)
	}
}

func TestPersonalInfoGetAll_Empty(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeInfoRepo{}}
	s := NewPersonalInfoService(db, rm)

	info, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if info == nil || len(info) != 0 {
		t.Fatalf("want empty non-nil map, got %v", info)
	}
}

func TestPersonalInfoSetAll_Transactional(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeInfoRepo{}
	rm := &fakeRepoManager{i: repo}
	s := NewPersonalInfoService(db, rm)

	err := s.SetAll(context.Background(), map[string]string{
		"Full Name": "Jane Doe",
		"Location":  "San Francisco, CA",
	})
	if err != nil {
		t.Fatalf("SetAll error: %v", err)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(repo.upserted))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPersonalInfoSetAll_RollsBackOnError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{i: &fakeInfoRepo{upsertErr: errBoom{}}}
	s := NewPersonalInfoService(db, rm)

	err := s.SetAll(context.Background(), map[string]string{"k": "v"})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped upsert error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPersonalInfoSetAll_BlankKey(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeInfoRepo{}}
	s := NewPersonalInfoService(db, rm)

	err := s.SetAll(context.Background(), map[string]string{"  ": "v"})
	var verrs models.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
}
