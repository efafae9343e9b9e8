package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/soniwriter/dreamdiary/internal/common"
	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/auth"
	"github.com/soniwriter/dreamdiary/internal/server/config"
	"github.com/soniwriter/dreamdiary/internal/server/models"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/repomanager"
)

// Default owner account, provisioned lazily on first login or via the
// create-admin endpoint.
const (
	DefaultAdminUsername = "Soniwriter"
	DefaultAdminPassword = "Sharaz-123"
	DefaultAdminEmail    = "admin@dreamdiary.com"
	DefaultAdminRole     = "admin"

	bcryptCost       = 12
	sessionTokenSize = 32
)

// TokenPair bundles a short-lived access token and a long-lived server-stored
// session token.
type TokenPair struct {
	AccessToken  string
	SessionToken string
}

// AuthService handles the owner account: lazy provisioning, credential
// verification, token issuance, and session rotation.
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	sessionTokenValidityDuration time.Duration
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// Login verifies the credentials against the stored admin, provisioning the
// default account first if none exists. Wrong username, wrong password, and a
// deactivated account all yield ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Admin, *TokenPair, error) {
	admin, _, err := s.EnsureAdmin(ctx)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	if username != admin.Username || !admin.IsActive {
		return nil, nil, common.ErrorUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, admin, s.db)
	if err != nil {
		return nil, nil, err
	}
	return admin, pair, nil
}

// Refresh validates a session token, rotates it transactionally, and returns
// a fresh TokenPair. Expired sessions yield ErrSessionTokenExpired.
func (s *AuthService) Refresh(ctx context.Context, sessionToken string) (*TokenPair, error) {
	repo := s.repomanager.Sessions(s.db)

	session, err := repo.Find(ctx, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("error searching session: %w", err)
	}
	if session.Expires.Before(time.Now()) {
		return nil, common.ErrSessionTokenExpired
	}

	admin, err := s.repomanager.Admins(s.db).GetByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Sessions(tx).Delete(ctx, sessionToken); err != nil {
			return fmt.Errorf("error deleting session: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, admin, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// ValidateAccessToken verifies a bearer token and returns the username inside.
func (s *AuthService) ValidateAccessToken(token string) (string, error) {
	return auth.GetUsernameFromToken(token, s.jwtSecret)
}

// EnsureAdmin returns the owner account, creating the default one when it is
// missing. The second return reports whether a record was created.
func (s *AuthService) EnsureAdmin(ctx context.Context) (*models.Admin, bool, error) {
	repo := s.repomanager.Admins(s.db)

	admin, err := repo.GetByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		return admin, false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, false, fmt.Errorf("error fetching admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcryptCost)
	if err != nil {
		return nil, false, common.ErrorInternal
	}

	created, err := repo.Create(ctx, &models.Admin{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		Email:        DefaultAdminEmail,
		Role:         DefaultAdminRole,
		IsActive:     true,
	})
	if err != nil {
		// A concurrent login may have provisioned the account first.
		if errors.Is(err, common.ErrorAlreadyExists) {
			admin, getErr := repo.GetByUsername(ctx, DefaultAdminUsername)
			return admin, false, getErr
		}
		return nil, false, fmt.Errorf("error creating admin: %w", err)
	}
	return created, true, nil
}

// AdminStatus reports whether the owner account exists and returns it when it
// does. A missing account is not an error.
func (s *AuthService) AdminStatus(ctx context.Context) (*models.Admin, bool, error) {
	admin, err := s.repomanager.Admins(s.db).GetByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error fetching admin: %w", err)
	}
	return admin, true, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, admin *models.Admin, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(admin.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	session, err := common.MakeRandHexString(sessionTokenSize)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.Sessions(tx).Create(ctx, admin.ID, session, s.sessionTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, SessionToken: session}, nil
}
