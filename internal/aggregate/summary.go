// Package aggregate derives the monthly views from a snapshot.
//
// All functions are pure. Amounts are summed as integer cents.
package aggregate

import (
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/types"
)

// Summary is the income and expense total of a set of transactions.
type Summary struct {
	IncomeCents  int64 `json:"incomeCents" example:"200000"` // Sum of all income
	ExpenseCents int64 `json:"expenseCents" example:"50000"` // Sum of all expenses
	NetCents     int64 `json:"netCents" example:"150000"`    // Income minus expenses
}

// MonthlySummary sums the transactions dated within the month.
func MonthlySummary(transactions []models.Transaction, month types.Month) Summary {
	var s Summary
	for _, t := range transactions {
		if month.Contains(t.Date) {
			s.add(t)
		}
	}

	s.NetCents = s.IncomeCents - s.ExpenseCents
	return s
}

// Totals sums all transactions regardless of their date.
func Totals(transactions []models.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		s.add(t)
	}

	s.NetCents = s.IncomeCents - s.ExpenseCents
	return s
}

func (s *Summary) add(t models.Transaction) {
	switch t.Kind {
	case models.KindIncome:
		s.IncomeCents += t.AmountCents
	case models.KindExpense:
		s.ExpenseCents += t.AmountCents
	}
}

// ExpensesByCategory sums the expenses within the month per category ID.
func ExpensesByCategory(transactions []models.Transaction, month types.Month) map[string]int64 {
	sums := make(map[string]int64)
	for _, t := range transactions {
		if t.Kind == models.KindExpense && month.Contains(t.Date) {
			sums[t.CategoryID] += t.AmountCents
		}
	}

	return sums
}
