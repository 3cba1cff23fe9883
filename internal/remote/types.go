package remote

import (
	"github.com/personal-budgeting/budgeting/internal/models"
)

// CategoryCreate is the body for creating a category.
type CategoryCreate struct {
	Type        models.Kind `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
}

// CategoryPatch changes name and description of a category. Nil fields
// are left unchanged.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BudgetUpsert sets the budget for a category and month.
type BudgetUpsert struct {
	Month       string `json:"month"`
	CategoryID  string `json:"categoryId"`
	AmountCents int64  `json:"amountCents"`
}

// TransactionCreate is the body for creating a transaction.
type TransactionCreate struct {
	Kind        models.Kind `json:"kind"`
	Date        string      `json:"date"`
	CategoryID  string      `json:"categoryId"`
	AmountCents int64       `json:"amountCents"`
	Note        string      `json:"note,omitempty"`
}

// TransactionPatch changes a transaction. Nil fields are left unchanged.
type TransactionPatch struct {
	Kind        *models.Kind `json:"kind,omitempty"`
	Date        *string      `json:"date,omitempty"`
	CategoryID  *string      `json:"categoryId,omitempty"`
	AmountCents *int64       `json:"amountCents,omitempty"`
	Note        *string      `json:"note,omitempty"`
}
