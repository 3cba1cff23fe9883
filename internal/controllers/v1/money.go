package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/httputil"
)

// ParsedAmount is the result of parsing an amount entered by a user.
type ParsedAmount struct {
	Amount
	Locale string `json:"locale" example:"id-ID"` // Locale the amount was parsed with
}

type ParsedAmountResponse struct {
	Data  *ParsedAmount `json:"data"`                                                    // The parsed amount
	Error *string       `json:"error" example:"enter a valid amount (up to 2 decimals)"` // The error, if any occurred
}

type MoneyQuery struct {
	Amount string `form:"amount"` // The amount to parse
}

// RegisterMoneyRoutes registers the routes for money handling with
// the RouterGroup that is passed.
func (co Controller) RegisterMoneyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/parse", co.OptionsParseAmount)
	r.GET("/parse", co.ParseAmount)
}

// OptionsParseAmount returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Money
//	@Success		204
//	@Router			/v1/money/parse [options]
func (co Controller) OptionsParseAmount(c *gin.Context) {
	httputil.OptionsGet(c)
}

// ParseAmount validates an amount
//
//	@Summary		Parse amount
//	@Description	Parses an amount in the format of the configured locale into cents
//	@Tags			Money
//	@Produce		json
//	@Success		200		{object}	ParsedAmountResponse
//	@Failure		400		{object}	ParsedAmountResponse
//	@Param			amount	query		string	true	"The amount, e.g. 10.000,50"
//	@Router			/v1/money/parse [get]
func (co Controller) ParseAmount(c *gin.Context) {
	var q MoneyQuery
	if err := httputil.BindQuery(c, &q); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, ParsedAmountResponse{Error: e})
		return
	}

	cents, err := co.Codec.Parse(q.Amount)
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, ParsedAmountResponse{Error: e})
		return
	}

	c.JSON(http.StatusOK, ParsedAmountResponse{Data: &ParsedAmount{
		Amount: co.amount(cents),
		Locale: co.Codec.Locale().String(),
	}})
}
