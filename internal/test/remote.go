package test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/types"
	"golang.org/x/exp/slices"
)

// RecordedRequest is a request received by the fake remote API.
type RecordedRequest struct {
	Method    string
	Path      string
	RequestID string
	Body      string
}

type cannedResponse struct {
	status int
	body   string
}

// Remote is an in-memory implementation of the remote budgeting API.
//
// It enforces the same rules as the real API so that handler and store
// tests can run against it.
type Remote struct {
	server *httptest.Server

	mu       sync.Mutex
	state    models.Snapshot
	canned   map[string]cannedResponse
	requests []RecordedRequest
}

// NewRemote starts a fake remote API serving the snapshot. It is shut
// down when the test finishes.
func NewRemote(t *testing.T, s models.Snapshot) *Remote {
	r := &Remote{
		state:  clone(s),
		canned: make(map[string]cannedResponse),
	}

	e := gin.New()
	e.Use(r.record)

	api := e.Group("/api/v1")
	api.GET("/state", r.getState)
	api.POST("/categories", r.createCategory)
	api.PATCH("/categories/:id", r.updateCategory)
	api.DELETE("/categories/:id", r.deleteCategory)
	api.PUT("/budgets", r.upsertBudget)
	api.DELETE("/budgets/:id", r.deleteBudget)
	api.POST("/transactions", r.createTransaction)
	api.PATCH("/transactions/:id", r.updateTransaction)
	api.DELETE("/transactions/:id", r.deleteTransaction)

	r.server = httptest.NewServer(e)
	t.Cleanup(r.server.Close)

	return r
}

// URL returns the base URL of the fake API.
func (r *Remote) URL() *url.URL {
	u, _ := url.Parse(r.server.URL)
	return u
}

// Client returns a client for the fake API.
func (r *Remote) Client() *remote.Client {
	return remote.New(r.URL(), 5*time.Second)
}

// Close shuts the server down. All further requests fail to connect.
func (r *Remote) Close() {
	r.server.Close()
}

// Snapshot returns a copy of the current state of the fake API.
func (r *Remote) Snapshot() models.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.state)
}

// SetSnapshot replaces the state of the fake API.
func (r *Remote) SetSnapshot(s models.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = clone(s)
}

// Fail makes the route respond with the status and error code. An empty
// code sends an empty body.
func (r *Remote) Fail(method, route string, status int, code string) {
	body := ""
	if code != "" {
		body = `{"error":"` + code + `"}`
	}

	r.Respond(method, route, status, body)
}

// Respond makes the route respond with the raw body. The route is the
// gin route, e.g. "/api/v1/categories/:id".
func (r *Remote) Respond(method, route string, status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.canned[method+" "+route] = cannedResponse{status: status, body: body}
}

// Requests returns all requests received so far.
func (r *Remote) Requests() []RecordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.requests)
}

func (r *Remote) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	r.mu.Lock()
	r.requests = append(r.requests, RecordedRequest{
		Method:    c.Request.Method,
		Path:      c.Request.URL.EscapedPath(),
		RequestID: c.GetHeader("X-Request-Id"),
		Body:      string(body),
	})
	canned, ok := r.canned[c.Request.Method+" "+c.FullPath()]
	r.mu.Unlock()

	if ok {
		c.Data(canned.status, "application/json", []byte(canned.body))
		c.Abort()
		return
	}

	c.Next()
}

func fail(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, gin.H{"error": code})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (r *Remote) getState(c *gin.Context) {
	c.JSON(http.StatusOK, r.Snapshot())
}

func (r *Remote) createCategory(c *gin.Context) {
	var in remote.CategoryCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "bad_json")
		return
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || !in.Type.Valid() {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	category := models.Category{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Timestamps:  models.Timestamps{CreatedAt: now(), UpdatedAt: now()},
	}

	r.mu.Lock()
	r.state.Categories = append(r.state.Categories, category)
	r.mu.Unlock()

	c.JSON(http.StatusCreated, category)
}

func (r *Remote) updateCategory(c *gin.Context) {
	var in remote.CategoryPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "bad_json")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.state.Categories, func(x models.Category) bool { return x.ID == c.Param("id") })
	if i < 0 {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	category := &r.state.Categories[i]
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			fail(c, http.StatusBadRequest, remote.CodeValidation)
			return
		}
		category.Name = name
	}

	if in.Description != nil {
		category.Description = strings.TrimSpace(*in.Description)
	}
	category.UpdatedAt = now()

	c.JSON(http.StatusOK, *category)
}

func (r *Remote) deleteCategory(c *gin.Context) {
	id := c.Param("id")

	r.mu.Lock()
	defer r.mu.Unlock()

	inUse := slices.ContainsFunc(r.state.Budgets, func(x models.Budget) bool { return x.CategoryID == id }) ||
		slices.ContainsFunc(r.state.Transactions, func(x models.Transaction) bool { return x.CategoryID == id })
	if inUse {
		fail(c, http.StatusConflict, remote.CodeConflict)
		return
	}

	i := slices.IndexFunc(r.state.Categories, func(x models.Category) bool { return x.ID == id })
	if i < 0 {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	r.state.Categories = slices.Delete(r.state.Categories, i, i+1)
	c.Status(http.StatusNoContent)
}

func (r *Remote) upsertBudget(c *gin.Context) {
	var in remote.BudgetUpsert
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "bad_json")
		return
	}

	month, err := types.ParseMonth(in.Month)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	if err != nil || in.CategoryID == "" || in.AmountCents < 0 {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.category(in.CategoryID)
	if !ok {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	if category.Type != models.KindExpense {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	i := slices.IndexFunc(r.state.Budgets, func(x models.Budget) bool {
		return x.Month == month.String() && x.CategoryID == in.CategoryID
	})
	if i >= 0 {
		r.state.Budgets[i].AmountCents = in.AmountCents
		r.state.Budgets[i].UpdatedAt = now()
		c.JSON(http.StatusOK, r.state.Budgets[i])
		return
	}

	budget := models.Budget{
		ID:          uuid.NewString(),
		Month:       month.String(),
		CategoryID:  in.CategoryID,
		AmountCents: in.AmountCents,
		Timestamps:  models.Timestamps{CreatedAt: now(), UpdatedAt: now()},
	}
	r.state.Budgets = append(r.state.Budgets, budget)
	c.JSON(http.StatusOK, budget)
}

func (r *Remote) deleteBudget(c *gin.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.state.Budgets, func(x models.Budget) bool { return x.ID == c.Param("id") })
	if i < 0 {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	r.state.Budgets = slices.Delete(r.state.Budgets, i, i+1)
	c.Status(http.StatusNoContent)
}

func (r *Remote) createTransaction(c *gin.Context) {
	var in remote.TransactionCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "bad_json")
		return
	}

	in.CategoryID = strings.TrimSpace(in.CategoryID)
	if !in.Kind.Valid() || !types.ValidDate(in.Date) || in.CategoryID == "" || in.AmountCents <= 0 {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.category(in.CategoryID)
	if !ok {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	if category.Type != in.Kind {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	transaction := models.Transaction{
		ID:          uuid.NewString(),
		Kind:        in.Kind,
		Date:        in.Date,
		CategoryID:  in.CategoryID,
		AmountCents: in.AmountCents,
		Note:        strings.TrimSpace(in.Note),
		Timestamps:  models.Timestamps{CreatedAt: now(), UpdatedAt: now()},
	}
	r.state.Transactions = append(r.state.Transactions, transaction)
	c.JSON(http.StatusCreated, transaction)
}

func (r *Remote) updateTransaction(c *gin.Context) {
	var in remote.TransactionPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "bad_json")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.state.Transactions, func(x models.Transaction) bool { return x.ID == c.Param("id") })
	if i < 0 {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	next := r.state.Transactions[i]
	if in.Kind != nil {
		next.Kind = *in.Kind
	}
	if in.Date != nil {
		next.Date = *in.Date
	}
	if in.CategoryID != nil {
		next.CategoryID = strings.TrimSpace(*in.CategoryID)
	}
	if in.AmountCents != nil {
		next.AmountCents = *in.AmountCents
	}
	if in.Note != nil {
		next.Note = strings.TrimSpace(*in.Note)
	}

	if !next.Kind.Valid() || !types.ValidDate(next.Date) || next.CategoryID == "" || next.AmountCents <= 0 {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	category, ok := r.category(next.CategoryID)
	if !ok {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	if category.Type != next.Kind {
		fail(c, http.StatusBadRequest, remote.CodeValidation)
		return
	}

	next.UpdatedAt = now()
	r.state.Transactions[i] = next
	c.JSON(http.StatusOK, next)
}

func (r *Remote) deleteTransaction(c *gin.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.state.Transactions, func(x models.Transaction) bool { return x.ID == c.Param("id") })
	if i < 0 {
		fail(c, http.StatusNotFound, remote.CodeNotFound)
		return
	}

	r.state.Transactions = slices.Delete(r.state.Transactions, i, i+1)
	c.Status(http.StatusNoContent)
}

// category must be called with r.mu held.
func (r *Remote) category(id string) (models.Category, bool) {
	i := slices.IndexFunc(r.state.Categories, func(x models.Category) bool { return x.ID == id })
	if i < 0 {
		return models.Category{}, false
	}

	return r.state.Categories[i], true
}

func clone(s models.Snapshot) models.Snapshot {
	return models.Snapshot{
		Version:      s.Version,
		Categories:   append([]models.Category{}, s.Categories...),
		Budgets:      append([]models.Budget{}, s.Budgets...),
		Transactions: append([]models.Transaction{}, s.Transactions...),
	}
}
