package v1_test

import (
	"net/http"
	"testing"

	"github.com/personal-budgeting/budgeting/internal/aggregate"
	v1 "github.com/personal-budgeting/budgeting/internal/controllers/v1"
	"github.com/personal-budgeting/budgeting/internal/test"
	"github.com/personal-budgeting/budgeting/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetsGet() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/budgets?month=2024-03", nil)

	var response v1.BudgetOverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)

	overview := response.Data
	suite.Require().NotNil(overview)
	suite.Assert().Equal(types.NewMonth(2024, 3), overview.Month)
	suite.Assert().Equal("Mar 2024", overview.Label)
	suite.Assert().Equal(int64(51000), overview.TotalBudgeted.Cents)
	suite.Assert().Equal("Rp\u00a0510,00", overview.TotalBudgeted.Formatted)

	suite.Require().Len(overview.Rows, 3, "there is one row per expense category")

	groceries := overview.Rows[0]
	suite.Assert().Equal(test.GroceriesID, groceries.Category.ID)
	suite.Assert().Equal(test.GroceriesMarchID, *groceries.BudgetID)
	suite.Assert().Equal(int64(1000), groceries.Budgeted.Cents)
	suite.Assert().Equal(int64(1500), groceries.Actual.Cents)
	suite.Assert().Equal(1.0, groceries.UtilizationRatio)
	suite.Assert().Equal(aggregate.StatusOverBudget, groceries.Status)

	rent := overview.Rows[1]
	suite.Assert().Equal(aggregate.StatusOnTrack, rent.Status)
	suite.Assert().Equal(1.0, rent.UtilizationRatio)

	unused := overview.Rows[2]
	suite.Assert().Nil(unused.BudgetID)
	suite.Assert().Equal(int64(0), unused.Budgeted.Cents)
	suite.Assert().Equal(aggregate.StatusNoBudget, unused.Status)
}

func (suite *TestSuiteStandard) TestBudgetsGetMonths() {
	tests := []struct {
		name     string
		query    string
		status   int
		budgeted int64
	}{
		{"February", "?month=2024-02", http.StatusOK, 800},
		{"Without budgets", "?month=2023-12", http.StatusOK, 0},
		{"Invalid month", "?month=2024-13", http.StatusBadRequest, 0},
		{"Wrong format", "?month=March", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/v1/budgets"+tt.query, nil, tt.status)

			var response v1.BudgetOverviewResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				require.NotNil(t, response.Error)
				assert.Contains(t, *response.Error, types.ErrInvalidMonth.Error())
				return
			}

			assert.Equal(t, tt.budgeted, response.Data.TotalBudgeted.Cents)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetDefaultsToCurrentMonth() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/budgets", nil)

	var response v1.BudgetOverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The fixtures only have budgets before the current month
	suite.Assert().Equal(int64(0), response.Data.TotalBudgeted.Cents)
	suite.Assert().False(response.Data.Month.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "/v1/budgets", nil, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodOptions, "/v1/budgets/"+test.RentMarchID, nil, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetsUpsert() {
	tests := []struct {
		name   string
		budget v1.BudgetEditable
		cents  int64
		id     string
	}{
		{"Replaces existing budget", v1.BudgetEditable{Month: "2024-03", CategoryID: test.GroceriesID, Amount: "20.000"}, 2000000, test.GroceriesMarchID},
		{"Zero amount", v1.BudgetEditable{Month: "2024-03", CategoryID: test.RentID, Amount: "0"}, 0, test.RentMarchID},
		{"Creates new budget", v1.BudgetEditable{Month: "2024-04", CategoryID: test.UnusedID, Amount: "Rp\u00a01.500,50"}, 150050, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, "/v1/budgets", tt.budget)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Data)
			assert.Equal(t, tt.cents, response.Data.AmountCents)
			assert.Equal(t, tt.cents, response.Data.Amount.Cents)
			assert.Equal(t, tt.budget.Month, response.Data.Month)

			if tt.id != "" {
				assert.Equal(t, tt.id, response.Data.ID)
			} else {
				assert.NotEmpty(t, response.Data.ID)
			}
		})
	}

	suite.Assert().Len(suite.fake.Snapshot().Budgets, 4)
}

func (suite *TestSuiteStandard) TestBudgetsUpsertFails() {
	tests := []struct {
		name    string
		budget  any
		status  int
		message string
	}{
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Invalid amount", v1.BudgetEditable{Month: "2024-03", CategoryID: test.RentID, Amount: "1,234"}, http.StatusBadRequest, "enter a valid amount (up to 2 decimals)"},
		{"Negative amount", v1.BudgetEditable{Month: "2024-03", CategoryID: test.RentID, Amount: "-5"}, http.StatusBadRequest, "amount cannot be negative"},
		{"Empty amount", v1.BudgetEditable{Month: "2024-03", CategoryID: test.RentID}, http.StatusBadRequest, "amount required"},
		{"Invalid month", v1.BudgetEditable{Month: "03/2024", CategoryID: test.RentID, Amount: "5"}, http.StatusBadRequest, "the month must be in YYYY-MM format"},
		{"No category", v1.BudgetEditable{Month: "2024-03", Amount: "5"}, http.StatusBadRequest, "the categoryId must be set"},
		{"Income category", v1.BudgetEditable{Month: "2024-03", CategoryID: test.SalaryID, Amount: "5"}, http.StatusBadRequest, "budgets can only be set for expense categories"},
		{"Unknown category", v1.BudgetEditable{Month: "2024-03", CategoryID: "cat-missing", Amount: "5"}, http.StatusNotFound, "there is no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPut, "/v1/budgets", tt.budget, tt.status)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}

	suite.Assert().Equal(test.Snapshot().Budgets, suite.fake.Snapshot().Budgets)
}

func (suite *TestSuiteStandard) TestBudgetsUpsertRejectedByRemote() {
	suite.fake.Fail(http.MethodPut, "/api/v1/budgets", http.StatusBadRequest, "validation")

	r := suite.request(suite.T(), http.MethodPut, "/v1/budgets", v1.BudgetEditable{Month: "2024-03", CategoryID: test.RentID, Amount: "5"}, http.StatusBadRequest)
	suite.Assert().Equal("Validation error. Please check your input.", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	var state v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &state)
	suite.Require().NotNil(state.Data.LastError)
	suite.Assert().Equal("Validation error. Please check your input.", *state.Data.LastError)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	suite.request(suite.T(), http.MethodDelete, "/v1/budgets/"+test.GroceriesFebID, nil, http.StatusNoContent)

	r := suite.request(suite.T(), http.MethodGet, "/v1/budgets?month=2024-02", nil)
	var response v1.BudgetOverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(int64(0), response.Data.TotalBudgeted.Cents)

	r = suite.request(suite.T(), http.MethodDelete, "/v1/budgets/bud-missing", nil, http.StatusNotFound)
	suite.Assert().Equal("Not found. It may have been deleted already.", test.DecodeError(suite.T(), r.Body.Bytes()))
}
