package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/models"
	adminsrepo "github.com/soniwriter/dreamdiary/internal/server/repositories/admins"
	booksrepo "github.com/soniwriter/dreamdiary/internal/server/repositories/books"
	moviesrepo "github.com/soniwriter/dreamdiary/internal/server/repositories/movies"
	inforepo "github.com/soniwriter/dreamdiary/internal/server/repositories/personalinfo"
	poemsrepo "github.com/soniwriter/dreamdiary/internal/server/repositories/poems"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/repomanager"
	sessionsrepo "github.com/soniwriter/dreamdiary/internal/server/repositories/sessions"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// popErr consumes the head of an error queue; an empty queue means success.
func popErr(q *[]error) error {
	if len(*q) == 0 {
		return nil
	}
	err := (*q)[0]
	*q = (*q)[1:]
	return err
}

type fakePoemsRepo struct {
	listOut []*models.Poem
	listErr error

	getOut *models.Poem
	getErr error

	created      []*models.Poem
	createErrs   []error
	updateErr    error
	deleteErr    error
	deleteAllErr error
}

func (f *fakePoemsRepo) List(context.Context) ([]*models.Poem, error) {
	return f.listOut, f.listErr
}
func (f *fakePoemsRepo) Get(context.Context, string) (*models.Poem, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakePoemsRepo) Create(_ context.Context, p *models.Poem) (*models.Poem, error) {
	if err := popErr(&f.createErrs); err != nil {
		return nil, err
	}
	f.created = append(f.created, p)
	return p, nil
}
func (f *fakePoemsRepo) Update(_ context.Context, p *models.Poem) (*models.Poem, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return p, nil
}
func (f *fakePoemsRepo) Delete(context.Context, string) error { return f.deleteErr }
func (f *fakePoemsRepo) DeleteAll(context.Context) error      { return f.deleteAllErr }

type fakeMoviesRepo struct {
	listOut []*models.Movie
	listErr error

	getOut *models.Movie
	getErr error

	created      []*models.Movie
	createErrs   []error
	updateErr    error
	deleteErr    error
	deleteAllErr error
}

func (f *fakeMoviesRepo) List(context.Context) ([]*models.Movie, error) {
	return f.listOut, f.listErr
}
func (f *fakeMoviesRepo) Get(context.Context, string) (*models.Movie, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeMoviesRepo) Create(_ context.Context, m *models.Movie) (*models.Movie, error) {
	if err := popErr(&f.createErrs); err != nil {
		return nil, err
	}
	f.created = append(f.created, m)
	return m, nil
}
func (f *fakeMoviesRepo) Update(_ context.Context, m *models.Movie) (*models.Movie, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return m, nil
}
func (f *fakeMoviesRepo) Delete(context.Context, string) error { return f.deleteErr }
func (f *fakeMoviesRepo) DeleteAll(context.Context) error      { return f.deleteAllErr }

type fakeBooksRepo struct {
	listOut []*models.Book
	listErr error

	getOut *models.Book
	getErr error

	created      []*models.Book
	createErrs   []error
	updateErr    error
	deleteErr    error
	deleteAllErr error
}

func (f *fakeBooksRepo) List(context.Context) ([]*models.Book, error) {
	return f.listOut, f.listErr
}
func (f *fakeBooksRepo) Get(context.Context, string) (*models.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeBooksRepo) Create(_ context.Context, b *models.Book) (*models.Book, error) {
	if err := popErr(&f.createErrs); err != nil {
		return nil, err
	}
	f.created = append(f.created, b)
	return b, nil
}
func (f *fakeBooksRepo) Update(_ context.Context, b *models.Book) (*models.Book, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return b, nil
}
func (f *fakeBooksRepo) Delete(context.Context, string) error { return f.deleteErr }
func (f *fakeBooksRepo) DeleteAll(context.Context) error      { return f.deleteAllErr }

type fakeInfoRepo struct {
	getAllOut    []*models.PersonalInfoEntry
	getAllErr    error
	upserted     map[string]string
	upsertErr    error
	deleteAllErr error
}

func (f *fakeInfoRepo) GetAll(context.Context) ([]*models.PersonalInfoEntry, error) {
	return f.getAllOut, f.getAllErr
}
func (f *fakeInfoRepo) Upsert(_ context.Context, key, value string) (*models.PersonalInfoEntry, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if f.upserted == nil {
		f.upserted = map[string]string{}
	}
	f.upserted[key] = value
	return &models.PersonalInfoEntry{Key: key, Value: value}, nil
}
func (f *fakeInfoRepo) DeleteAll(context.Context) error { return f.deleteAllErr }

type fakeAdminsRepo struct {
	getOut  *models.Admin
	getErrs []error

	created   *models.Admin
	createErr error
}

func (f *fakeAdminsRepo) GetByUsername(context.Context, string) (*models.Admin, error) {
	if err := popErr(&f.getErrs); err != nil {
		return nil, err
	}
	return f.getOut, nil
}
func (f *fakeAdminsRepo) Create(_ context.Context, a *models.Admin) (*models.Admin, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = "admin-1"
	a.CreatedAt = time.Now()
	f.created = a
	f.getOut = a
	return a, nil
}

type fakeSessionsRepo struct {
	createErr  error
	lastToken  string
	lastAdmin  string
	findOut    *models.Session
	findErr    error
	delErr     error
	deletedTok string
}

func (f *fakeSessionsRepo) Create(_ context.Context, adminID, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.lastAdmin = adminID
	f.lastToken = token
	return nil
}
func (f *fakeSessionsRepo) Find(context.Context, string) (*models.Session, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}
func (f *fakeSessionsRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deletedTok = token
	return nil
}

type fakeRepoManager struct {
	p *fakePoemsRepo
	m *fakeMoviesRepo
	b *fakeBooksRepo
	i *fakeInfoRepo
	a *fakeAdminsRepo
	s *fakeSessionsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Poems(dbx.DBTX) poemsrepo.Repository              { return m.p }
func (m *fakeRepoManager) Movies(dbx.DBTX) moviesrepo.Repository            { return m.m }
func (m *fakeRepoManager) Books(dbx.DBTX) booksrepo.Repository              { return m.b }
func (m *fakeRepoManager) PersonalInfo(dbx.DBTX) inforepo.Repository        { return m.i }
func (m *fakeRepoManager) Admins(dbx.DBTX) adminsrepo.Repository            { return m.a }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessionsrepo.Repository        { return m.s }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
