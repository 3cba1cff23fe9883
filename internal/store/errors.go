package store

import (
	"errors"
)

var (
	ErrCategoryInUse      = errors.New("the category is still used by budgets or transactions")
	ErrCategoryNotExpense = errors.New("budgets can only be set for expense categories")
	ErrKindMismatch       = errors.New("the transaction kind must match the type of its category")
	ErrInvalidKind        = errors.New("the type must be either income or expense")
	ErrNameEmpty          = errors.New("the name must not be empty")
	ErrAmountNotPositive  = errors.New("the amount must be greater than zero")
	ErrAmountNegative     = errors.New("the amount must not be negative")
	ErrCategoryIDEmpty    = errors.New("the categoryId must be set")
)
