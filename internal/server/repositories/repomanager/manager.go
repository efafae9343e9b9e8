package repomanager

import (
	"context"
	"database/sql"

	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/admins"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/books"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/movies"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/personalinfo"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/poems"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/sessions"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run any repository against either the shared pool or an open
// transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Poems(db dbx.DBTX) poems.Repository
	Movies(db dbx.DBTX) movies.Repository
	Books(db dbx.DBTX) books.Repository
	PersonalInfo(db dbx.DBTX) personalinfo.Repository
	Admins(db dbx.DBTX) admins.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
