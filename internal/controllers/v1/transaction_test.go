package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/personal-budgeting/budgeting/internal/controllers/v1"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsGet() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/transactions", nil)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 5)
	suite.Assert().Equal(test.SalaryTxnID, response.Data[0].ID)
	suite.Assert().Equal("Salary", response.Data[0].CategoryName)
	suite.Assert().Equal("Rp\u00a02.000,00", response.Data[0].Amount.Formatted)
	suite.Assert().Equal("http://example.com/v1/transactions/txn-salary", response.Data[0].Links.Self)
	suite.Assert().Equal("http://example.com/v1/categories/cat-salary", response.Data[0].Links.Category)

	suite.Require().NotNil(response.Totals)
	suite.Assert().Equal(int64(200000), response.Totals.Income.Cents)
	suite.Assert().Equal(int64(52499), response.Totals.Expense.Cents)
	suite.Assert().Equal(int64(147501), response.Totals.Net.Cents)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	tests := []struct {
		name    string
		query   string
		ids     []string
		expense int64
	}{
		{"Month", "month=2024-03", []string{test.SalaryTxnID, test.MarketTxnID, test.BakeryTxnID, test.RentTxnID}, 51500},
		{"Kind", "kind=income", []string{test.SalaryTxnID}, 0},
		{"Category", "category=cat-groceries", []string{test.MarketTxnID, test.BakeryTxnID, test.FebTxnID}, 2499},
		{"Date range", "fromDate=2024-03-02&toDate=2024-03-31", []string{test.MarketTxnID, test.BakeryTxnID}, 1500},
		{"Note", "note=BAK", []string{test.BakeryTxnID}, 1000},
		{"Note with wildcard", "note=*market", []string{test.MarketTxnID}, 500},
		{"Combined", "month=2024-03&category=cat-groceries&note=weekly", []string{test.MarketTxnID}, 500},
		{"No match", "month=2023-01", []string{}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/v1/transactions?"+tt.query, nil)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]string, 0, len(response.Data))
			for _, transaction := range response.Data {
				ids = append(ids, transaction.ID)
			}

			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, tt.expense, response.Totals.Expense.Cents)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidFilter() {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"Month", "month=2024-1", "the month must be in YYYY-MM format"},
		{"Kind", "kind=transfer", "the type must be either income or expense"},
		{"From date", "fromDate=2024-3-1", "the date must be in YYYY-MM-DD format"},
		{"To date", "toDate=2024-02-30", "the date must be in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/v1/transactions?"+tt.query, nil, http.StatusBadRequest)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
			assert.Nil(t, response.Totals)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUnknownCategory() {
	s := test.Snapshot()
	s.Transactions[0].CategoryID = "cat-deleted"
	suite.fake.SetSnapshot(s)

	r := suite.request(suite.T(), http.MethodGet, "/v1/transactions/"+test.SalaryTxnID, nil)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Unknown category", response.Data.CategoryName)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "/v1/transactions", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Existing transaction", "/v1/transactions/" + test.RentTxnID, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Unknown transaction", "/v1/transactions/txn-missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, nil, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	r := suite.request(suite.T(), http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Kind:       models.KindExpense,
		Date:       "2024-03-20",
		CategoryID: test.GroceriesID,
		Amount:     "12.500",
		Note:       " Coffee beans ",
	}, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int64(1250000), response.Data.AmountCents)
	suite.Assert().Equal("Rp\u00a012.500,00", response.Data.Amount.Formatted)
	suite.Assert().Equal("Coffee beans", response.Data.Note)
	suite.Assert().Equal("Groceries", response.Data.CategoryName)

	r = suite.request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-03", nil)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 5)
	suite.Assert().Equal(response.Data.ID, list.Data[0].ID, "new transactions are listed first")
	suite.Assert().Equal(int64(1301500), list.Totals.Expense.Cents)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	valid := func(modify func(*v1.TransactionEditable)) v1.TransactionEditable {
		t := v1.TransactionEditable{
			Kind:       models.KindExpense,
			Date:       "2024-03-20",
			CategoryID: test.GroceriesID,
			Amount:     "5",
		}
		modify(&t)
		return t
	}

	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{ "amount": 5 }`, http.StatusBadRequest, "amount must be of type string"},
		{"Empty amount", valid(func(t *v1.TransactionEditable) { t.Amount = "" }), http.StatusBadRequest, "amount required"},
		{"Zero amount", valid(func(t *v1.TransactionEditable) { t.Amount = "0,00" }), http.StatusBadRequest, "the amount must be greater than zero"},
		{"Too many decimals", valid(func(t *v1.TransactionEditable) { t.Amount = "5,123" }), http.StatusBadRequest, "enter a valid amount (up to 2 decimals)"},
		{"Invalid date", valid(func(t *v1.TransactionEditable) { t.Date = "20.03.2024" }), http.StatusBadRequest, "the date must be in YYYY-MM-DD format"},
		{"Invalid kind", valid(func(t *v1.TransactionEditable) { t.Kind = "transfer" }), http.StatusBadRequest, "the type must be either income or expense"},
		{"Kind mismatch", valid(func(t *v1.TransactionEditable) { t.Kind = models.KindIncome }), http.StatusBadRequest, "the transaction kind must match the type of its category"},
		{"No category", valid(func(t *v1.TransactionEditable) { t.CategoryID = " " }), http.StatusBadRequest, "the categoryId must be set"},
		{"Unknown category", valid(func(t *v1.TransactionEditable) { t.CategoryID = "cat-missing" }), http.StatusNotFound, "there is no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "/v1/transactions", tt.body, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}

	suite.Assert().Len(suite.fake.Snapshot().Transactions, 5)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	amount := "2.000"
	category := test.RentID

	r := suite.request(suite.T(), http.MethodPatch, "/v1/transactions/"+test.MarketTxnID, v1.TransactionPatch{
		Amount:     &amount,
		CategoryID: &category,
	})

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(int64(200000), response.Data.AmountCents)
	suite.Assert().Equal("Rent", response.Data.CategoryName)
	suite.Assert().Equal("Weekly market", response.Data.Note, "omitted fields are kept")
	suite.Assert().Equal("2024-03-05", response.Data.Date)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	income := models.KindIncome
	invalid := "abc"
	date := "yesterday"

	tests := []struct {
		name    string
		id      string
		body    any
		status  int
		message string
	}{
		{"Kind mismatch", test.MarketTxnID, v1.TransactionPatch{Kind: &income}, http.StatusBadRequest, "the transaction kind must match the type of its category"},
		{"Invalid amount", test.MarketTxnID, v1.TransactionPatch{Amount: &invalid}, http.StatusBadRequest, "enter a valid amount (up to 2 decimals)"},
		{"Invalid date", test.MarketTxnID, v1.TransactionPatch{Date: &date}, http.StatusBadRequest, "the date must be in YYYY-MM-DD format"},
		{"Broken JSON", test.MarketTxnID, `{ "note": 1 }`, http.StatusBadRequest, "note must be of type string"},
		{"Unknown transaction", "txn-missing", v1.TransactionPatch{}, http.StatusNotFound, "there is no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, "/v1/transactions/"+tt.id, tt.body, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	suite.request(suite.T(), http.MethodDelete, "/v1/transactions/"+test.BakeryTxnID, nil, http.StatusNoContent)
	suite.request(suite.T(), http.MethodGet, "/v1/transactions/"+test.BakeryTxnID, nil, http.StatusNotFound)

	r := suite.request(suite.T(), http.MethodDelete, "/v1/transactions/"+test.BakeryTxnID, nil, http.StatusNotFound)
	suite.Assert().Equal("Not found. It may have been deleted already.", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsRemoteDown() {
	// Load the snapshot, then lose the connection
	suite.request(suite.T(), http.MethodGet, "/v1/transactions", nil)
	suite.remoteDown()

	suite.request(suite.T(), http.MethodGet, "/v1/transactions", nil, http.StatusOK)
	r := suite.request(suite.T(), http.MethodDelete, "/v1/transactions/"+test.BakeryTxnID, nil, http.StatusBadGateway)
	suite.Assert().Equal("Request failed. Please try again.", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(suite.T(), http.MethodGet, "/v1/transactions/"+test.BakeryTxnID, nil)
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(test.BakeryTxnID, response.Data.ID, "a failed deletion keeps the cached transaction")
}

func (suite *TestSuiteStandard) TestTransactionsCacheFailure() {
	suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	suite.failCacheWrites()

	r := suite.request(suite.T(), http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Kind:       models.KindExpense,
		Date:       "2024-03-20",
		CategoryID: test.GroceriesID,
		Amount:     "5",
	}, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data, "the remote API has stored the transaction")
	suite.Assert().Equal(int64(500), response.Data.AmountCents)
	suite.Assert().Equal("Groceries", response.Data.CategoryName)

	suite.request(suite.T(), http.MethodDelete, "/v1/transactions/"+test.SalaryTxnID, nil, http.StatusNoContent)
	suite.Assert().Len(suite.fake.Snapshot().Transactions, 5)

	r = suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	var state v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &state)
	suite.Require().NotNil(state.Data.LastError)
	suite.Assert().Contains(*state.Data.LastError, "could not update the cache")
}
