package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/personal-budgeting/budgeting/internal/controllers/v1"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/store"
	"github.com/personal-budgeting/budgeting/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/categories", nil)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 4)
	suite.Assert().Equal(test.SalaryID, response.Data[0].ID, "the order of the remote API is kept")
	suite.Assert().Equal("Groceries", response.Data[1].Name)
	suite.Assert().Equal("Food and household", response.Data[1].Description)
	suite.Assert().Equal("http://example.com/v1/categories/cat-groceries", response.Data[1].Links.Self)
	suite.Assert().Equal("http://example.com/v1/transactions?category=cat-groceries", response.Data[1].Links.Transactions)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"Income", "?type=income", 1, http.StatusOK},
		{"Expense", "?type=expense", 3, http.StatusOK},
		{"No filter", "", 4, http.StatusOK},
		{"Invalid type", "?type=transfer", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/v1/categories"+tt.query, nil, tt.status)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)

			if tt.status == http.StatusBadRequest {
				assert.Equal(t, "the type must be either income or expense", *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing category", test.GroceriesID, http.StatusOK},
		{"Unknown category", "cat-missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "/v1/categories/"+tt.id, nil, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Groceries", response.Data.Name)
				assert.Nil(t, response.Error)
			} else {
				assert.Nil(t, response.Data)
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "/v1/categories", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Existing category", "/v1/categories/" + test.RentID, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Unknown category", "/v1/categories/cat-missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, tt.path, nil, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	r := suite.request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Type:        models.KindExpense,
		Name:        "  Travel ",
		Description: "Trains and planes",
	}, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Travel", response.Data.Name)
	suite.Assert().Equal(models.KindExpense, response.Data.Type)
	suite.Assert().NotEmpty(response.Data.CreatedAt, "timestamps are set by the remote API")

	// The new category is listed first
	r = suite.request(suite.T(), http.MethodGet, "/v1/categories", nil)
	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 5)
	suite.Assert().Equal(response.Data.ID, list.Data[0].ID)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{ "name": 2 }`, http.StatusBadRequest, "name must be of type string"},
		{"Empty name", v1.CategoryEditable{Type: models.KindIncome, Name: " "}, http.StatusBadRequest, "the name must not be empty"},
		{"Invalid type", v1.CategoryEditable{Type: "transfer", Name: "Gifts"}, http.StatusBadRequest, "the type must be either income or expense"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "/v1/categories", tt.body, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.message)
		})
	}

	suite.Assert().Empty(suite.fake.Requests(), "invalid input never reaches the remote API")
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	name := "Food"
	r := suite.request(suite.T(), http.MethodPatch, "/v1/categories/"+test.GroceriesID, v1.CategoryPatch{Name: &name})

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Food", response.Data.Name)
	suite.Assert().Equal("Food and household", response.Data.Description, "omitted fields are kept")

	r = suite.request(suite.T(), http.MethodGet, "/v1/transactions/"+test.MarketTxnID, nil)
	var transaction v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.Assert().Equal("Food", transaction.Data.CategoryName)
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	empty := ""

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Empty name", test.GroceriesID, v1.CategoryPatch{Name: &empty}, http.StatusBadRequest},
		{"Broken JSON", test.GroceriesID, `{ "name": false }`, http.StatusBadRequest},
		{"Unknown category", "cat-missing", v1.CategoryPatch{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.request(t, http.MethodPatch, "/v1/categories/"+tt.id, tt.body, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	suite.request(suite.T(), http.MethodDelete, "/v1/categories/"+test.UnusedID, nil, http.StatusNoContent)
	suite.request(suite.T(), http.MethodGet, "/v1/categories/"+test.UnusedID, nil, http.StatusNotFound)

	suite.Assert().Len(suite.fake.Snapshot().Categories, 3)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteFails() {
	tests := []struct {
		name    string
		id      string
		status  int
		message string
	}{
		{"Used by transactions", test.SalaryID, http.StatusConflict, "the category is still used by budgets or transactions"},
		{"Used by budgets", test.GroceriesID, http.StatusConflict, "the category is still used by budgets or transactions"},
		{"Unknown category", "cat-missing", http.StatusNotFound, "Not found. It may have been deleted already."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodDelete, "/v1/categories/"+tt.id, nil, tt.status)
			assert.Equal(t, tt.message, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	suite.Assert().Len(suite.fake.Snapshot().Categories, 4)
}

func (suite *TestSuiteStandard) TestCategoriesRemoteDown() {
	suite.remoteDown()

	r := suite.request(suite.T(), http.MethodGet, "/v1/categories", nil, http.StatusBadGateway)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Request failed. Please try again.", *response.Error)
}

func (suite *TestSuiteStandard) TestCategoriesLinksEscapeIDs() {
	snapshot := models.Empty()
	snapshot.Categories = []models.Category{{ID: "cat/travel plans", Type: models.KindExpense, Name: "Travel"}}

	suite.fake = test.NewRemote(suite.T(), snapshot)
	suite.controller.Store = store.New(models.DB, suite.fake.Client())

	r := suite.request(suite.T(), http.MethodGet, "/v1/categories", nil)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("http://example.com/v1/categories/cat%2Ftravel%20plans", response.Data[0].Links.Self)
	suite.Assert().Equal("http://example.com/v1/transactions?category=cat%2Ftravel+plans", response.Data[0].Links.Transactions)
}

func (suite *TestSuiteStandard) TestCategoriesCreateCacheFailure() {
	suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	suite.failCacheWrites()

	r := suite.request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Type: models.KindExpense, Name: "Travel"}, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Travel", response.Data.Name)
	suite.Assert().Len(suite.fake.Snapshot().Categories, 5)
}
