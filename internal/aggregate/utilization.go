package aggregate

import (
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/types"
)

type Status string

const (
	StatusNoBudget   Status = "no_budget"
	StatusOverBudget Status = "over_budget"
	StatusOnTrack    Status = "on_track"
)

// Row compares budget and actual spending of one expense category.
type Row struct {
	Category         models.Category
	Budget           *models.Budget // nil if no budget is set for the month
	BudgetedCents    int64
	ActualCents      int64
	UtilizationRatio float64 // actual / budgeted, capped at 1. 0 without a budget
	Status           Status
}

// Utilization is the budget utilization of all expense categories in a month.
type Utilization struct {
	Rows               []Row
	TotalBudgetedCents int64
}

// BudgetUtilization builds one row per expense category, in the order of
// the categories.
func BudgetUtilization(categories []models.Category, budgets []models.Budget, transactions []models.Transaction, month types.Month) Utilization {
	monthKey := month.String()

	budgetByCategory := make(map[string]models.Budget)
	for _, b := range budgets {
		if b.Month != monthKey {
			continue
		}

		if _, ok := budgetByCategory[b.CategoryID]; !ok {
			budgetByCategory[b.CategoryID] = b
		}
	}

	actual := ExpensesByCategory(transactions, month)

	u := Utilization{Rows: []Row{}}
	for _, c := range categories {
		if c.Type != models.KindExpense {
			continue
		}

		row := Row{
			Category:    c,
			ActualCents: actual[c.ID],
		}

		if b, ok := budgetByCategory[c.ID]; ok {
			row.Budget = &b
			row.BudgetedCents = b.AmountCents
		}

		row.UtilizationRatio, row.Status = utilization(row.BudgetedCents, row.ActualCents)

		u.TotalBudgetedCents += row.BudgetedCents
		u.Rows = append(u.Rows, row)
	}

	return u
}

func utilization(budgeted, actual int64) (float64, Status) {
	if budgeted <= 0 {
		return 0, StatusNoBudget
	}

	ratio := min(1, float64(actual)/float64(budgeted))
	if actual > budgeted {
		return ratio, StatusOverBudget
	}

	return ratio, StatusOnTrack
}
