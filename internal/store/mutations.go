package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/types"
)

func (s *Store) CreateCategory(ctx context.Context, in remote.CategoryCreate) (models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return models.Category{}, ErrNameEmpty
	}

	if !in.Type.Valid() {
		return models.Category{}, ErrInvalidKind
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Category{}, err
	}

	category, err := s.remote.CreateCategory(ctx, in)
	if err != nil {
		return models.Category{}, s.fail(err)
	}

	merge(s, &category)
	return category, nil
}

// UpdateCategory changes name and description. The type of a category
// cannot be changed.
func (s *Store) UpdateCategory(ctx context.Context, id string, patch remote.CategoryPatch) (models.Category, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.Category{}, ErrNameEmpty
		}
		patch.Name = &name
	}

	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Category{}, err
	}

	category, err := s.remote.UpdateCategory(ctx, id, patch)
	if err != nil {
		return models.Category{}, s.fail(err)
	}

	merge(s, &category)
	return category, nil
}

// DeleteCategory deletes a category that no budget or transaction uses.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	references, err := models.CountReferences(s.db, id)
	if err != nil {
		return err
	}

	if references > 0 {
		return ErrCategoryInUse
	}

	if err := s.remote.DeleteCategory(ctx, id); err != nil {
		return s.fail(err)
	}

	s.check(models.Delete[models.Category](s.db, id))
	return nil
}

// UpsertBudget sets the budget of an expense category for a month.
func (s *Store) UpsertBudget(ctx context.Context, in remote.BudgetUpsert) (models.Budget, error) {
	month, err := types.ParseMonth(in.Month)
	if err != nil {
		return models.Budget{}, err
	}
	in.Month = month.String()
	in.CategoryID = strings.TrimSpace(in.CategoryID)

	if in.CategoryID == "" {
		return models.Budget{}, ErrCategoryIDEmpty
	}

	if in.AmountCents < 0 {
		return models.Budget{}, ErrAmountNegative
	}

	category, err := s.Category(ctx, in.CategoryID)
	if err != nil {
		return models.Budget{}, err
	}

	if category.Type != models.KindExpense {
		return models.Budget{}, ErrCategoryNotExpense
	}

	budget, err := s.remote.UpsertBudget(ctx, in)
	if err != nil {
		return models.Budget{}, s.fail(err)
	}

	merge(s, &budget)
	return budget, nil
}

func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := s.remote.DeleteBudget(ctx, id); err != nil {
		return s.fail(err)
	}

	s.check(models.Delete[models.Budget](s.db, id))
	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, in remote.TransactionCreate) (models.Transaction, error) {
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.Note = strings.TrimSpace(in.Note)

	date, err := types.ParseDate(in.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	in.Date = date

	err = s.validateTransaction(ctx, in.Kind, in.CategoryID, in.AmountCents)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction, err := s.remote.CreateTransaction(ctx, in)
	if err != nil {
		return models.Transaction{}, s.fail(err)
	}

	merge(s, &transaction)
	return transaction, nil
}

// UpdateTransaction applies the patch. The patched transaction must be
// valid as a whole, e.g. a new kind requires a category of that type.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch remote.TransactionPatch) (models.Transaction, error) {
	existing, err := s.Transaction(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}

	if patch.Kind != nil {
		existing.Kind = *patch.Kind
	}

	if patch.Date != nil {
		date, err := types.ParseDate(*patch.Date)
		if err != nil {
			return models.Transaction{}, err
		}
		patch.Date = &date
	}

	if patch.CategoryID != nil {
		categoryID := strings.TrimSpace(*patch.CategoryID)
		patch.CategoryID = &categoryID
		existing.CategoryID = categoryID
	}

	if patch.AmountCents != nil {
		existing.AmountCents = *patch.AmountCents
	}

	if patch.Note != nil {
		note := strings.TrimSpace(*patch.Note)
		patch.Note = &note
	}

	err = s.validateTransaction(ctx, existing.Kind, existing.CategoryID, existing.AmountCents)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction, err := s.remote.UpdateTransaction(ctx, id, patch)
	if err != nil {
		return models.Transaction{}, s.fail(err)
	}

	merge(s, &transaction)
	return transaction, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := s.remote.DeleteTransaction(ctx, id); err != nil {
		return s.fail(err)
	}

	s.check(models.Delete[models.Transaction](s.db, id))
	return nil
}

// validateTransaction checks the rules the remote API enforces for
// transactions before sending the request.
func (s *Store) validateTransaction(ctx context.Context, kind models.Kind, categoryID string, amountCents int64) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	if categoryID == "" {
		return ErrCategoryIDEmpty
	}

	if amountCents <= 0 {
		return ErrAmountNotPositive
	}

	category, err := s.Category(ctx, categoryID)
	if err != nil {
		return err
	}

	if category.Type != kind {
		return ErrKindMismatch
	}

	return nil
}

// merge stores the canonical resource returned by the remote API.
//
// The remote API has applied the change at this point. A failed cache
// update is recorded as the last error but does not fail the mutation.
func merge[T models.Entity, PT interface {
	*T
	models.Model
}](s *Store, resource PT) {
	s.check(models.Merge(s.db, resource))
}

// check records a failed cache update after a successful remote call.
func (s *Store) check(err error) {
	if err != nil {
		_ = s.fail(fmt.Errorf("could not update the cache: %w", err))
	}
}
