package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/types"
)

// MonthQuery selects the month of a monthly view.
type MonthQuery struct {
	Month types.Month `form:"month" example:"2024-03"` // Month in YYYY-MM format. Defaults to the current month
}

// month returns the month selected in the query string, or the current
// month if none is selected.
func month(c *gin.Context) (types.Month, error) {
	var q MonthQuery
	if err := httputil.BindQuery(c, &q); err != nil {
		return types.Month{}, err
	}

	if q.Month.IsZero() {
		return types.MonthOf(time.Now()), nil
	}

	return q.Month, nil
}
