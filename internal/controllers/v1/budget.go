package v1

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/aggregate"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/types"
)

// BudgetEditable sets the budget of an expense category for a month.
type BudgetEditable struct {
	Month      string `json:"month" example:"2024-03"`            // Month in YYYY-MM format
	CategoryID string `json:"categoryId" example:"cat-groceries"` // ID of the expense category
	Amount     string `json:"amount" example:"1.500.000"`         // Amount as entered by the user, in the format of the configured locale
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/bud-groceries-2024-03"` // The budget itself
}

type Budget struct {
	models.Budget
	Amount Amount      `json:"amount"` // Budgeted amount
	Links  BudgetLinks `json:"links"`
}

func (co Controller) newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		Budget: model,
		Amount: co.amount(model.AmountCents),
		Links: BudgetLinks{
			Self: link(c, "/v1/budgets/%s", url.PathEscape(model.ID)),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                      // Data for the budget
	Error *string `json:"error" example:"amount cannot be negative"` // The error, if any occurred
}

// BudgetRow is the utilization of one expense category.
type BudgetRow struct {
	Category         Category         `json:"category"`                                 // The expense category
	BudgetID         *string          `json:"budgetId" example:"bud-groceries-2024-03"` // ID of the budget, null if none is set
	Budgeted         Amount           `json:"budgeted"`                                 // Budgeted amount
	Actual           Amount           `json:"actual"`                                   // Sum of the expenses of the month
	UtilizationRatio float64          `json:"utilizationRatio" example:"0.75"`          // Actual divided by budgeted, at most 1
	Status           aggregate.Status `json:"status" example:"on_track"`                // no_budget, over_budget or on_track
}

// BudgetOverview is the budget utilization of a month.
type BudgetOverview struct {
	Month         types.Month `json:"month" swaggertype:"string" example:"2024-03"` // The month
	Label         string      `json:"label" example:"Mar 2024"`                     // The month for display
	Rows          []BudgetRow `json:"rows"`                                         // One row per expense category
	TotalBudgeted Amount      `json:"totalBudgeted"`                                // Sum of all budgets of the month
}

type BudgetOverviewResponse struct {
	Data  *BudgetOverview `json:"data"`                                                // Budget overview for the month
	Error *string         `json:"error" example:"the month must be in YYYY-MM format"` // The error, if any occurred
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
		r.PUT("", co.UpsertBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// OptionsBudgetList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// OptionsBudgetDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budgets
//	@Success		204
//	@Param			id	path	string	true	"ID of the budget"
//	@Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetBudgets returns the budget utilization of a month
//
//	@Summary		Get budget overview
//	@Description	Returns budgeted and actual amounts for every expense category in the month
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetOverviewResponse
//	@Failure		400		{object}	BudgetOverviewResponse
//	@Failure		502		{object}	BudgetOverviewResponse
//	@Param			month	query		string	false	"Month in YYYY-MM format, defaults to the current month"
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	m, err := month(c)
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, BudgetOverviewResponse{Error: e})
		return
	}

	snapshot, err := co.Store.Snapshot(requestContext(c))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, BudgetOverviewResponse{Error: e})
		return
	}

	utilization := aggregate.BudgetUtilization(snapshot.Categories, snapshot.Budgets, snapshot.Transactions, m)

	rows := make([]BudgetRow, 0, len(utilization.Rows))
	for _, row := range utilization.Rows {
		var budgetID *string
		if row.Budget != nil {
			budgetID = &row.Budget.ID
		}

		rows = append(rows, BudgetRow{
			Category:         newCategory(c, row.Category),
			BudgetID:         budgetID,
			Budgeted:         co.amount(row.BudgetedCents),
			Actual:           co.amount(row.ActualCents),
			UtilizationRatio: row.UtilizationRatio,
			Status:           row.Status,
		})
	}

	c.JSON(http.StatusOK, BudgetOverviewResponse{Data: &BudgetOverview{
		Month:         m,
		Label:         m.Label(),
		Rows:          rows,
		TotalBudgeted: co.amount(utilization.TotalBudgetedCents),
	}})
}

// UpsertBudget sets the budget of a category for a month
//
//	@Summary		Set budget
//	@Description	Creates or replaces the budget of an expense category for a month
//	@Tags			Budgets
//	@Produce		json
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	BudgetResponse
//	@Failure		404		{object}	BudgetResponse
//	@Failure		502		{object}	BudgetResponse
//	@Param			budget	body		BudgetEditable	true	"Budget"
//	@Router			/v1/budgets [put]
func (co Controller) UpsertBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	cents, err := co.Codec.Parse(editable.Amount)
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	budget, err := co.Store.UpsertBudget(requestContext(c), remote.BudgetUpsert{
		Month:       editable.Month,
		CategoryID:  editable.CategoryID,
		AmountCents: cents,
	})
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, BudgetResponse{Error: e})
		return
	}

	data := co.newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// DeleteBudget deletes a specific budget
//
//	@Summary		Delete budget
//	@Description	Deletes a budget
//	@Tags			Budgets
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the budget"
//	@Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	err := co.Store.DeleteBudget(requestContext(c), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
