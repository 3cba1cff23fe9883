// Package v1 implements the JSON API consumed by the budgeting frontend.
package v1

import (
	"context"
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/money"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/store"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Store *store.Store
	Codec *money.Codec
}

// Amount is an amount in cents together with its display form.
type Amount struct {
	Cents     int64  `json:"cents" example:"1000050"`          // Amount in cents
	Formatted string `json:"formatted" example:"Rp 10.000,50"` // Amount formatted for the configured locale
}

func (co Controller) amount(cents int64) Amount {
	return Amount{
		Cents:     cents,
		Formatted: co.Codec.Format(cents),
	}
}

// requestContext returns the request context, carrying the request ID on
// to the remote API.
func requestContext(c *gin.Context) context.Context {
	return remote.WithRequestID(c.Request.Context(), requestid.Get(c))
}

func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}

func link(c *gin.Context, format string, a ...any) string {
	return baseURL(c) + fmt.Sprintf(format, a...)
}
