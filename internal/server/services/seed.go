package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soniwriter/dreamdiary/internal/dbx"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/repomanager"
	"github.com/soniwriter/dreamdiary/internal/server/seed"
)

// SeedResult reports what a reseed run wrote.
type SeedResult struct {
	Poems        int    `json:"poems"`
	Movies       int    `json:"movies"`
	Books        int    `json:"books"`
	PersonalInfo int    `json:"personalInfo"`
	Admin        string `json:"admin"`
}

// SeedService wipes the content collections and reloads the fixture data.
// The admin account is never wiped, only provisioned when missing.
type SeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	auth        *AuthService
}

func NewSeedService(db *sql.DB, m repomanager.RepositoryManager, auth *AuthService) *SeedService {
	return &SeedService{db: db, repomanager: m, auth: auth}
}

// Reseed deletes every poem, movie, book, and personal-info pair and inserts
// the fixtures, all inside one transaction. A failure midway leaves the
// previous content intact.
func (s *SeedService) Reseed(ctx context.Context) (*SeedResult, error) {
	_, created, err := s.auth.EnsureAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error ensuring admin: %w", err)
	}

	result := &SeedResult{Admin: "existed"}
	if created {
		result.Admin = "created"
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		poemRepo := s.repomanager.Poems(tx)
		movieRepo := s.repomanager.Movies(tx)
		bookRepo := s.repomanager.Books(tx)
		infoRepo := s.repomanager.PersonalInfo(tx)

		for _, deleteAll := range []func(context.Context) error{
			poemRepo.DeleteAll, movieRepo.DeleteAll, bookRepo.DeleteAll, infoRepo.DeleteAll,
		} {
			if err := deleteAll(ctx); err != nil {
				return fmt.Errorf("error clearing collection: %w", err)
			}
		}

		for _, p := range seed.Poems() {
			if _, err := poemRepo.Create(ctx, p); err != nil {
				return fmt.Errorf("error seeding poem %s: %w", p.ID, err)
			}
			result.Poems++
		}
		for _, m := range seed.Movies() {
			if _, err := movieRepo.Create(ctx, m); err != nil {
				return fmt.Errorf("error seeding movie %s: %w", m.ID, err)
			}
			result.Movies++
		}
		for _, b := range seed.Books() {
			if _, err := bookRepo.Create(ctx, b); err != nil {
				return fmt.Errorf("error seeding book %s: %w", b.ID, err)
			}
			result.Books++
		}
		for key, value := range seed.PersonalInfo() {
			if _, err := infoRepo.Upsert(ctx, key, value); err != nil {
				return fmt.Errorf("error seeding personal info %q: %w", key, err)
			}
			result.PersonalInfo++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
