package v1_test

import (
	"net/http"

	v1 "github.com/personal-budgeting/budgeting/internal/controllers/v1"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/test"
)

func (suite *TestSuiteStandard) TestStateGet() {
	r := suite.request(suite.T(), http.MethodGet, "/v1/state", nil)

	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	state := response.Data
	suite.Require().NotNil(state)
	suite.Assert().Equal(models.SnapshotVersion, state.Version)
	suite.Assert().Len(state.Categories, 4)
	suite.Assert().Len(state.Budgets, 3)
	suite.Assert().Len(state.Transactions, 5)
	suite.Assert().NotNil(state.LoadedAt)
	suite.Assert().Nil(state.LastError)
}

func (suite *TestSuiteStandard) TestStateReload() {
	// Load the initial snapshot
	suite.request(suite.T(), http.MethodGet, "/v1/state", nil)

	s := test.Snapshot()
	s.Categories = append(s.Categories, models.Category{ID: "cat-gifts", Type: models.KindIncome, Name: "Gifts"})
	suite.fake.SetSnapshot(s)

	r := suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Categories, 4, "the cached snapshot is used until it is reloaded")

	r = suite.request(suite.T(), http.MethodPost, "/v1/state/reload", nil)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Categories, 5)
	suite.Assert().Equal("cat-gifts", response.Data.Categories[4].ID)
}

func (suite *TestSuiteStandard) TestStateReloadFails() {
	suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	suite.fake.Fail(http.MethodGet, "/api/v1/state", http.StatusServiceUnavailable, "")

	r := suite.request(suite.T(), http.MethodPost, "/v1/state/reload", nil, http.StatusBadGateway)
	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data)
	suite.Assert().Equal("Request failed. Please try again.", *response.Error)

	// The previous snapshot is kept and the error is reported
	r = suite.request(suite.T(), http.MethodGet, "/v1/state", nil)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Categories, 4)
	suite.Require().NotNil(response.Data.LastError)
	suite.Assert().Equal("Request failed. Please try again.", *response.Data.LastError)

	// A successful reload clears the error
	suite.fake.Respond(http.MethodGet, "/api/v1/state", http.StatusOK, `{"version":1,"categories":[],"budgets":[],"transactions":[]}`)
	r = suite.request(suite.T(), http.MethodPost, "/v1/state/reload", nil)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data.LastError)
	suite.Assert().Empty(response.Data.Categories)
}

func (suite *TestSuiteStandard) TestStateRemoteDown() {
	suite.remoteDown()

	r := suite.request(suite.T(), http.MethodGet, "/v1/state", nil, http.StatusBadGateway)
	var response v1.StateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Request failed. Please try again.", *response.Error)
}

func (suite *TestSuiteStandard) TestStateOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "/v1/state", nil, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(suite.T(), http.MethodOptions, "/v1/state/reload", nil, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}
