package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/personal-budgeting/budgeting/internal/controllers/v1"
	"github.com/personal-budgeting/budgeting/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMoneyParse() {
	tests := []struct {
		amount    string
		status    int
		cents     int64
		formatted string
		message   string
	}{
		{"10.000,50", http.StatusOK, 1000050, "Rp\u00a010.000,50", ""},
		{"Rp\u00a01.234", http.StatusOK, 123400, "Rp\u00a01.234,00", ""},
		{"IDR ,5", http.StatusOK, 50, "Rp\u00a00,50", ""},
		{"", http.StatusBadRequest, 0, "", "amount required"},
		{"-5", http.StatusBadRequest, 0, "", "amount cannot be negative"},
		{"1,234", http.StatusBadRequest, 0, "", "enter a valid amount (up to 2 decimals)"},
		{"$5", http.StatusBadRequest, 0, "", "enter a valid amount (up to 2 decimals)"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.amount, func(t *testing.T) {
			query := url.Values{"amount": []string{tt.amount}}.Encode()
			r := suite.request(t, http.MethodGet, "/v1/money/parse?"+query, nil, tt.status)

			var response v1.ParsedAmountResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				require.NotNil(t, response.Error)
				assert.Equal(t, tt.message, *response.Error)
				return
			}

			assert.Equal(t, tt.cents, response.Data.Cents)
			assert.Equal(t, tt.formatted, response.Data.Formatted)
			assert.Equal(t, "id-ID", response.Data.Locale)
		})
	}

	suite.Assert().Empty(suite.fake.Requests(), "parsing never calls the remote API")
}

func (suite *TestSuiteStandard) TestMoneyParseOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "/v1/money/parse", nil, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
