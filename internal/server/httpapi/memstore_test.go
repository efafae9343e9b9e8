package httpapi

import (
	"context"
	"database/sql"
	"time"

	"github.com/soniwriter/dreamdiary/internal/common"
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

// In-memory repositories with the same error semantics as the postgres ones,
// so handler tests can run a full request/response cycle without a database.

type memPoems struct{ items []*models.Poem }

func (m *memPoems) List(context.Context) ([]*models.Poem, error) {
	out := make([]*models.Poem, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}
func (m *memPoems) Get(_ context.Context, id string) (*models.Poem, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (m *memPoems) Create(_ context.Context, p *models.Poem) (*models.Poem, error) {
	if _, err := m.Get(context.Background(), p.ID); err == nil {
		return nil, common.ErrorAlreadyExists
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.items = append(m.items, p)
	return p, nil
}
func (m *memPoems) Update(_ context.Context, p *models.Poem) (*models.Poem, error) {
	for i, old := range m.items {
		if old.ID == p.ID {
			p.UpdatedAt = time.Now()
			m.items[i] = p
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (m *memPoems) Delete(_ context.Context, id string) error {
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
func (m *memPoems) DeleteAll(context.Context) error {
	m.items = nil
	return nil
}

type memMovies struct{ items []*models.Movie }

func (m *memMovies) List(context.Context) ([]*models.Movie, error) {
	out := make([]*models.Movie, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}
func (m *memMovies) Get(_ context.Context, id string) (*models.Movie, error) {
	for _, v := range m.items {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (m *memMovies) Create(_ context.Context, v *models.Movie) (*models.Movie, error) {
	if _, err := m.Get(context.Background(), v.ID); err == nil {
		return nil, common.ErrorAlreadyExists
	}
	m.items = append(m.items, v)
	return v, nil
}
func (m *memMovies) Update(_ context.Context, v *models.Movie) (*models.Movie, error) {
	for i, old := range m.items {
		if old.ID == v.ID {
			m.items[i] = v
			return v, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (m *memMovies) Delete(_ context.Context, id string) error {
	for i, v := range m.items {
		if v.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
func (m *memMovies) DeleteAll(context.Context) error {
	m.items = nil
	return nil
}

type memBooks struct{ items []*models.Book }

func (m *memBooks) List(context.Context) ([]*models.Book, error) {
	out := make([]*models.Book, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}
func (m *memBooks) Get(_ context.Context, id string) (*models.Book, error) {
	for _, b := range m.items {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (m *memBooks) Create(_ context.Context, b *models.Book) (*models.Book, error) {
	if _, err := m.Get(context.Background(), b.ID); err == nil {
		return nil, common.ErrorAlreadyExists
	}
	m.items = append(m.items, b)
	return b, nil
}
func (m *memBooks) Update(_ context.Context, b *models.Book) (*models.Book, error) {
	for i, old := range m.items {
		if old.ID == b.ID {
			m.items[i] = b
			return b, nil
		}
	}
	return nil, common.ErrorNotFound
}
func (m *memBooks) Delete(_ context.Context, id string) error {
	for i, b := range m.items {
		if b.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}
func (m *memBooks) DeleteAll(context.Context) error {
	m.items = nil
	return nil
}

type memInfo struct{ pairs map[string]string }

func (m *memInfo) GetAll(context.Context) ([]*models.PersonalInfoEntry, error) {
	out := make([]*models.PersonalInfoEntry, 0, len(m.pairs))
	for k, v := range m.pairs {
		out = append(out, &models.PersonalInfoEntry{Key: k, Value: v})
	}
	return out, nil
}
func (m *memInfo) Upsert(_ context.Context, key, value string) (*models.PersonalInfoEntry, error) {
	if m.pairs == nil {
		m.pairs = map[string]string{}
	}
	m.pairs[key] = value
	return &models.PersonalInfoEntry{Key: key, Value: value}, nil
}
func (m *memInfo) DeleteAll(context.Context) error {
	m.pairs = nil
	return nil
}

type memAdmins struct{ admin *models.Admin }

func (m *memAdmins) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	if m.admin == nil || m.admin.Username != username {
		return nil, common.ErrorNotFound
	}
	return m.admin, nil
}
func (m *memAdmins) Create(_ context.Context, a *models.Admin) (*models.Admin, error) {
	if m.admin != nil && m.admin.Username == a.Username {
		return nil, common.ErrorAlreadyExists
	}
	a.ID = "admin-1"
	a.CreatedAt = time.Now()
	m.admin = a
	return a, nil
}

type memSessions struct{ sessions map[string]*models.Session }

func (m *memSessions) Create(_ context.Context, adminID, token string, validity time.Duration) error {
	if m.sessions == nil {
		m.sessions = map[string]*models.Session{}
	}
	m.sessions[token] = &models.Session{Token: token, AdminID: adminID, Expires: time.Now().Add(validity)}
	return nil
}
func (m *memSessions) Find(_ context.Context, token string) (*models.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}
func (m *memSessions) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

type memManager struct {
	poems    *memPoems
	movies   *memMovies
	books    *memBooks
	info     *memInfo
	admins   *memAdmins
	sessions *memSessions
}

func newMemManager() *memManager {
	return &memManager{
		poems:    &memPoems{},
		movies:   &memMovies{},
		books:    &memBooks{},
		info:     &memInfo{},
		admins:   &memAdmins{},
		sessions: &memSessions{},
	}
}

func (m *memManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memManager) Poems(dbx.DBTX) poemsrepo.Repository          { return m.poems }
func (m *memManager) Movies(dbx.DBTX) moviesrepo.Repository        { return m.movies }
func (m *memManager) Books(dbx.DBTX) booksrepo.Repository          { return m.books }
func (m *memManager) PersonalInfo(dbx.DBTX) inforepo.Repository    { return m.info }
func (m *memManager) Admins(dbx.DBTX) adminsrepo.Repository        { return m.admins }
func (m *memManager) Sessions(dbx.DBTX) sessionsrepo.Repository    { return m.sessions }

var _ repomanager.RepositoryManager = (*memManager)(nil)
