package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/money"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/store"
	"github.com/personal-budgeting/budgeting/internal/types"
	"github.com/rs/zerolog/log"
)

var badRequest = []error{
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidQuery,
	money.ErrEmptyInput,
	money.ErrInvalidFormat,
	money.ErrNegativeAmount,
	types.ErrInvalidMonth,
	types.ErrInvalidDate,
	store.ErrCategoryNotExpense,
	store.ErrKindMismatch,
	store.ErrInvalidKind,
	store.ErrNameEmpty,
	store.ErrAmountNotPositive,
	store.ErrAmountNegative,
	store.ErrCategoryIDEmpty,
	remote.ErrValidation,
}

// status returns the HTTP status for an error.
func status(err error) int {
	for _, e := range badRequest {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	var apiErr *remote.APIError

	switch {
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, remote.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrCategoryInUse), errors.Is(err, remote.ErrConflict), errors.Is(err, models.ErrBudgetNotUnique):
		return http.StatusConflict
	case errors.As(err, &apiErr), errors.Is(err, remote.ErrUnavailable), errors.Is(err, remote.ErrInvalidResponse):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// message returns the error message shown to users. Errors of the remote
// API are replaced by their user facing message.
func message(err error) string {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) || errors.Is(err, remote.ErrUnavailable) || errors.Is(err, remote.ErrInvalidResponse) {
		return remote.Message(err)
	}

	return err.Error()
}

// errorResponse maps the error to status and message.
//
// Unexpected errors are logged with the request ID.
func errorResponse(c *gin.Context, err error) (int, *string) {
	code := status(err)
	if code == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	msg := message(err)
	return code, &msg
}

// abort writes an error response without data.
func abort(c *gin.Context, err error) {
	code, msg := errorResponse(c, err)
	c.JSON(code, httputil.HTTPError{Error: *msg})
}
