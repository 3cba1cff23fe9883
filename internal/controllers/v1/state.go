package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/models"
)

// State is the cached snapshot together with its load status.
type State struct {
	models.Snapshot
	LoadedAt  *time.Time `json:"loadedAt" example:"2024-03-20T08:30:00Z"`               // Time the snapshot was loaded from the remote API
	LastError *string    `json:"lastError" example:"Request failed. Please try again."` // The last error of a load or mutation, null after a successful load
}

type StateResponse struct {
	Data  *State  `json:"data"`                                              // The current state
	Error *string `json:"error" example:"Request failed. Please try again."` // The error, if any occurred
}

// RegisterStateRoutes registers the routes for the state with
// the RouterGroup that is passed.
func (co Controller) RegisterStateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsState)
	r.GET("", co.GetState)
	r.OPTIONS("/reload", co.OptionsStateReload)
	r.POST("/reload", co.ReloadState)
}

// OptionsState returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			State
//	@Success		204
//	@Router			/v1/state [options]
func (co Controller) OptionsState(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsStateReload returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			State
//	@Success		204
//	@Router			/v1/state/reload [options]
func (co Controller) OptionsStateReload(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetState returns the cached snapshot
//
//	@Summary		Get state
//	@Description	Returns the cached snapshot of the remote API. It is loaded first if nothing is cached yet.
//	@Tags			State
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Failure		502	{object}	StateResponse
//	@Router			/v1/state [get]
func (co Controller) GetState(c *gin.Context) {
	co.respondState(c)
}

// ReloadState reloads the snapshot
//
//	@Summary		Reload state
//	@Description	Replaces the cached snapshot with the current state of the remote API
//	@Tags			State
//	@Produce		json
//	@Success		200	{object}	StateResponse
//	@Failure		502	{object}	StateResponse
//	@Router			/v1/state/reload [post]
func (co Controller) ReloadState(c *gin.Context) {
	if err := co.Store.Load(requestContext(c)); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, StateResponse{Error: e})
		return
	}

	co.respondState(c)
}

func (co Controller) respondState(c *gin.Context) {
	snapshot, err := co.Store.Snapshot(requestContext(c))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, StateResponse{Error: e})
		return
	}

	state := State{Snapshot: snapshot}

	status := co.Store.Status()
	if status.Loaded {
		state.LoadedAt = &status.LoadedAt
	}

	if status.LastError != nil {
		msg := message(status.LastError)
		state.LastError = &msg
	}

	c.JSON(http.StatusOK, StateResponse{Data: &state})
}
