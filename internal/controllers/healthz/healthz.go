// Package healthz reports whether the service can serve requests.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/rs/zerolog/log"
)

type Response struct {
	Error *string `json:"error" example:"The database cannot be reached"` // The error, if any occurred
}

// RegisterRoutes registers the routes for the health check with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the health of the service
//
//	@Summary		Get health
//	@Description	Returns the health of the service. The remote API is not checked, the cached snapshot is served without it.
//	@Tags			General
//	@Success		200	{object}	Response
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Err(err).Msg("Healthz")
		msg := "The database cannot be reached"
		c.JSON(http.StatusInternalServerError, Response{Error: &msg})
		return
	}

	c.JSON(http.StatusOK, Response{})
}
