// Package store keeps the local snapshot in sync with the remote API.
//
// Mutations are sent to the remote API first. Only the canonical resource
// it returns is merged into the snapshot cache, a failed call leaves the
// snapshot untouched.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Remote is the API holding the persistent state.
type Remote interface {
	State(ctx context.Context) (models.Snapshot, error)
	CreateCategory(ctx context.Context, in remote.CategoryCreate) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch remote.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	UpsertBudget(ctx context.Context, in remote.BudgetUpsert) (models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	CreateTransaction(ctx context.Context, in remote.TransactionCreate) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, patch remote.TransactionPatch) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// Status describes the state of the local snapshot.
type Status struct {
	Loaded    bool
	LoadedAt  time.Time
	LastError error
}

type Store struct {
	db     *gorm.DB
	remote Remote
	now    func() time.Time
	loads  singleflight.Group

	mu        sync.RWMutex
	lastError error
}

// New returns a Store that caches the state of r in db.
func New(db *gorm.DB, r Remote) *Store {
	return &Store{
		db:     db,
		remote: r,
		now:    time.Now,
	}
}

// Load replaces the cached snapshot with the current state of the remote API.
func (s *Store) Load(ctx context.Context) error {
	// The load is shared by all concurrent callers, so it must not end
	// when the first caller's request is canceled
	shared := context.WithoutCancel(ctx)

	_, err, _ := s.loads.Do("load", func() (any, error) {
		snapshot, err := s.remote.State(shared)
		if err != nil {
			return nil, s.fail(fmt.Errorf("could not load the state: %w", err))
		}

		err = models.ReplaceSnapshot(s.db, snapshot, s.now())
		if err != nil {
			return nil, s.fail(err)
		}

		s.ClearError()
		log.Info().
			Int("categories", len(snapshot.Categories)).
			Int("budgets", len(snapshot.Budgets)).
			Int("transactions", len(snapshot.Transactions)).
			Msg("Snapshot loaded")

		return nil, nil
	})

	return err
}

// Snapshot returns the cached snapshot. If nothing is cached yet, it is
// loaded from the remote API first.
func (s *Store) Snapshot(ctx context.Context) (models.Snapshot, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return models.Snapshot{}, err
	}

	snapshot, _, err := models.LoadSnapshot(s.db)
	return snapshot, err
}

// Status returns the load state and the last error.
func (s *Store) Status() Status {
	s.mu.RLock()
	status := Status{LastError: s.lastError}
	s.mu.RUnlock()

	meta, err := models.LoadMeta(s.db)
	if err == nil {
		status.Loaded = true
		status.LoadedAt = meta.LoadedAt
	}

	return status
}

// ClearError resets the last error.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = nil
}

// Category returns the cached category with the ID.
func (s *Store) Category(ctx context.Context, id string) (models.Category, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return models.Category{}, err
	}

	return models.Find[models.Category](s.db, id)
}

// Transaction returns the cached transaction with the ID.
func (s *Store) Transaction(ctx context.Context, id string) (models.Transaction, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return models.Transaction{}, err
	}

	return models.Find[models.Transaction](s.db, id)
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	_, err := models.LoadMeta(s.db)
	if errors.Is(err, models.ErrNoSnapshot) {
		return s.Load(ctx)
	}

	return err
}

// fail records err as the last error and returns it.
func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()

	log.Error().Err(err).Msg("Store")
	return err
}
