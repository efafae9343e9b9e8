// Package gateway owns the process-wide connection to the document store.
// A single pool is established on first use and reused for every request;
// opening a fresh connection per request is prohibitively slow and can
// exhaust the server's connection limits.
package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNoDSN is returned when constructing a Gateway without a connection
// string. Misconfiguration is not recoverable at runtime, so the composition
// root treats this as fatal.
var ErrNoDSN = errors.New("database DSN is not configured: set DATABASE_DSN (or the -d flag)")

// sqlOpen is a seam for testing the connection path without a live database.
var sqlOpen = func(driverName, dsn string) (*sql.DB, error) {
	return sql.Open(driverName, dsn)
}

// Gateway hands out the shared *sql.DB pool. The first caller establishes
// it; concurrent callers block on the same attempt instead of racing to open
// parallel pools. A failed attempt is cleared so the next call retries
// cleanly.
type Gateway struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

// New constructs a Gateway. The DSN is required; an empty value fails fast.
func New(dsn string) (*Gateway, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}
	return &Gateway{dsn: dsn}, nil
}

// DB returns the live pool, establishing it on first call. The connection is
// verified with a ping before being cached.
func (g *Gateway) DB(ctx context.Context) (*sql.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return g.db, nil
	}

	db, err := sqlOpen("pgx", g.dsn)
	if err != nil {
		return nil, classifyConnError(err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, classifyConnError(err)
	}

	g.db = db
	return g.db, nil
}

// Shutdown closes the pool if one was established.
func (g *Gateway) Shutdown() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}

// classifyConnError maps low-level connection failures to actionable
// messages, distinguishing hostname resolution, authentication, and
// network/allowlist problems.
func classifyConnError(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("database connection failed: cannot resolve hostname %q, check the DSN and network connectivity: %w", dnsErr.Name, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "28" {
		// SQLSTATE class 28 = invalid authorization specification.
		return fmt.Errorf("database connection failed: authentication failed, check the username and password in the DSN: %w", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("database connection failed: host unreachable, check that the server is up and this address is allowed to connect: %w", err)
	}

	return fmt.Errorf("database connection failed: %w", err)
}
