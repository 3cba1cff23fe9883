package v1

import (
	"cmp"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/aggregate"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/types"
	"golang.org/x/exp/slices"
)

// CategoryExpense is the sum of the expenses of one category in a month.
type CategoryExpense struct {
	CategoryID string `json:"categoryId" example:"cat-groceries"` // ID of the category
	Name       string `json:"name" example:"Groceries"`           // Name of the category
	Amount     Amount `json:"amount"`                             // Sum of the expenses
}

type DashboardLinks struct {
	Previous     string `json:"previous" example:"https://example.com/api/v1/dashboard?month=2024-02"`        // Dashboard of the previous month
	Next         string `json:"next" example:"https://example.com/api/v1/dashboard?month=2024-04"`            // Dashboard of the next month
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets?month=2024-03"`           // Budget overview of the month
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?month=2024-03"` // Transactions of the month
}

// Dashboard summarizes a month.
type Dashboard struct {
	Month              types.Month       `json:"month" swaggertype:"string" example:"2024-03"` // The month
	Label              string            `json:"label" example:"Mar 2024"`                     // The month for display
	Income             Amount            `json:"income"`                                       // Sum of all income
	Expense            Amount            `json:"expense"`                                      // Sum of all expenses
	Net                Amount            `json:"net"`                                          // Income minus expenses
	ExpensesByCategory []CategoryExpense `json:"expensesByCategory"`                           // Expenses per category, highest first
	Links              DashboardLinks    `json:"links"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                // The dashboard for the month
	Error *string    `json:"error" example:"the month must be in YYYY-MM format"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// OptionsDashboard returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Dashboard
//	@Success		204
//	@Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetDashboard returns the summary of a month
//
//	@Summary		Get dashboard
//	@Description	Returns income, expenses and net of a month and the expenses per category
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200		{object}	DashboardResponse
//	@Failure		400		{object}	DashboardResponse
//	@Failure		502		{object}	DashboardResponse
//	@Param			month	query		string	false	"Month in YYYY-MM format, defaults to the current month"
//	@Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	m, err := month(c)
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, DashboardResponse{Error: e})
		return
	}

	snapshot, err := co.Store.Snapshot(requestContext(c))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, DashboardResponse{Error: e})
		return
	}

	summary := aggregate.MonthlySummary(snapshot.Transactions, m)
	index := aggregate.NewCategoryIndex(snapshot.Categories)

	expenses := make([]CategoryExpense, 0)
	for id, cents := range aggregate.ExpensesByCategory(snapshot.Transactions, m) {
		expenses = append(expenses, CategoryExpense{
			CategoryID: id,
			Name:       index.Name(id),
			Amount:     co.amount(cents),
		})
	}

	slices.SortFunc(expenses, func(a, b CategoryExpense) int {
		if n := cmp.Compare(b.Amount.Cents, a.Amount.Cents); n != 0 {
			return n
		}
		return cmp.Compare(a.Name, b.Name)
	})

	c.JSON(http.StatusOK, DashboardResponse{Data: &Dashboard{
		Month:              m,
		Label:              m.Label(),
		Income:             co.amount(summary.IncomeCents),
		Expense:            co.amount(summary.ExpenseCents),
		Net:                co.amount(summary.NetCents),
		ExpensesByCategory: expenses,
		Links: DashboardLinks{
			Previous:     link(c, "/v1/dashboard?month=%s", m.AddDate(0, -1)),
			Next:         link(c, "/v1/dashboard?month=%s", m.AddDate(0, 1)),
			Budgets:      link(c, "/v1/budgets?month=%s", m),
			Transactions: link(c, "/v1/transactions?month=%s", m),
		},
	}})
}
