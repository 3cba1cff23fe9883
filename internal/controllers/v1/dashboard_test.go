package v1_test

import (
	"net/http"

	v1 "github.com/personal-budgeting/budgeting/internal/controllers/v1"
	"github.com/personal-budgeting/budgeting/internal/test"
	"github.com/personal-budgeting/budgeting/internal/types"
)

func (suite *TestSuiteStandard) TestDashboard() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/dashboard?month=2024-03", nil)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	d := response.Data
	suite.Require().NotNil(d)
	suite.Assert().Equal(types.NewMonth(2024, 3), d.Month)
	suite.Assert().Equal("Mar 2024", d.Label)
	suite.Assert().Equal(int64(200000), d.Income.Cents)
	suite.Assert().Equal(int64(51500), d.Expense.Cents)
	suite.Assert().Equal(int64(148500), d.Net.Cents)
	suite.Assert().Equal("Rp\u00a01.485,00", d.Net.Formatted)

	suite.Assert().Equal([]v1.CategoryExpense{
		{CategoryID: test.RentID, Name: "Rent", Amount: v1.Amount{Cents: 50000, Formatted: "Rp\u00a0500,00"}},
		{CategoryID: test.GroceriesID, Name: "Groceries", Amount: v1.Amount{Cents: 1500, Formatted: "Rp\u00a015,00"}},
	}, d.ExpensesByCategory)

	suite.Assert().Equal("http://example.com/v1/dashboard?month=2024-02", d.Links.Previous)
	suite.Assert().Equal("http://example.com/v1/dashboard?month=2024-04", d.Links.Next)
	suite.Assert().Equal("http://example.com/v1/budgets?month=2024-03", d.Links.Budgets)
	suite.Assert().Equal("http://example.com/v1/transactions?month=2024-03", d.Links.Transactions)
}

func (suite *TestSuiteStandard) TestDashboardEqualAmountsSortedByName() {
	s := test.Snapshot()
	s.Transactions[4].AmountCents = 1500
	suite.fake.SetSnapshot(s)

	r := suite.request(suite.T(), http.MethodGet, "/v1/dashboard?month=2024-03", nil)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.ExpensesByCategory, 2)
	suite.Assert().Equal("Groceries", response.Data.ExpensesByCategory[0].Name)
	suite.Assert().Equal("Rent", response.Data.ExpensesByCategory[1].Name)
}

func (suite *TestSuiteStandard) TestDashboardEmptyMonth() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/dashboard?month=2025-01", nil)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(int64(0), response.Data.Net.Cents)
	suite.Assert().NotNil(response.Data.ExpensesByCategory)
	suite.Assert().Empty(response.Data.ExpensesByCategory)
	suite.Assert().Equal("http://example.com/v1/dashboard?month=2024-12", response.Data.Links.Previous)
}

func (suite *TestSuiteStandard) TestDashboardDefaultsToCurrentMonth() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/dashboard", nil)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Month.IsZero())
}

func (suite *TestSuiteStandard) TestDashboardFails() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/dashboard?month=2024-3", nil, http.StatusBadRequest)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data)
	suite.Assert().Contains(*response.Error, "the month must be in YYYY-MM format")

	suite.remoteDown()
	suite.request(suite.T(), http.MethodGet, "/v1/dashboard?month=2024-03", nil, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "/v1/dashboard", nil, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
