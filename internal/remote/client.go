// Package remote is the client for the budgeting REST API that holds all
// persistent state.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/rs/zerolog/log"
)

type contextKey string

const requestIDKey contextKey = "request-id"

// WithRequestID returns a context that makes the client forward the ID
// in the X-Request-Id header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// Client talks to the remote API.
type Client struct {
	base *url.URL
	http *http.Client
}

// New returns a client for the API at baseURL.
func New(baseURL *url.URL, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// State returns the complete current state.
func (c *Client) State(ctx context.Context) (models.Snapshot, error) {
	var s models.Snapshot
	err := c.do(ctx, "get_state", http.MethodGet, nil, &s, "state")
	return s, err
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryCreate) (models.Category, error) {
	var category models.Category
	err := c.do(ctx, "create_category", http.MethodPost, in, &category, "categories")
	return category, err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (models.Category, error) {
	var category models.Category
	err := c.do(ctx, "update_category", http.MethodPatch, patch, &category, "categories", id)
	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, "delete_category", http.MethodDelete, nil, nil, "categories", id)
}

// UpsertBudget creates or replaces the budget for the month and category.
func (c *Client) UpsertBudget(ctx context.Context, in BudgetUpsert) (models.Budget, error) {
	var budget models.Budget
	err := c.do(ctx, "upsert_budget", http.MethodPut, in, &budget, "budgets")
	return budget, err
}

func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, "delete_budget", http.MethodDelete, nil, nil, "budgets", id)
}

func (c *Client) CreateTransaction(ctx context.Context, in TransactionCreate) (models.Transaction, error) {
	var transaction models.Transaction
	err := c.do(ctx, "create_transaction", http.MethodPost, in, &transaction, "transactions")
	return transaction, err
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (models.Transaction, error) {
	var transaction models.Transaction
	err := c.do(ctx, "update_transaction", http.MethodPatch, patch, &transaction, "transactions", id)
	return transaction, err
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, "delete_transaction", http.MethodDelete, nil, nil, "transactions", id)
}

// do sends a request to /api/v1/<path...> and decodes the response into
// target. A nil target discards the response body.
func (c *Client) do(ctx context.Context, operation, method string, body, target any, path ...string) error {
	elements := []string{"api", "v1"}
	for _, p := range path {
		elements = append(elements, url.PathEscape(p))
	}
	endpoint := c.base.JoinPath(elements...)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	id := requestID(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", id)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		observe(operation, "error", start)
		log.Warn().Str("request-id", id).Str("operation", operation).Err(err).Msg("Remote API")
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	observe(operation, strconv.Itoa(res.StatusCode), start)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	log.Debug().
		Str("request-id", id).
		Str("operation", operation).
		Str("method", method).
		Str("url", endpoint.String()).
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Remote API")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res.StatusCode, data)
	}

	if target == nil {
		return nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidResponse)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return nil
}

// decodeError reads the error code from an error response. Responses
// without a code get "http_<status>".
func decodeError(status int, data []byte) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(data, &body)

	code := body.Error
	if code == "" {
		code = fmt.Sprintf("http_%d", status)
	}

	return &APIError{Status: status, Code: code}
}
