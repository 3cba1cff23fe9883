package v1

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/aggregate"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/store"
	"github.com/personal-budgeting/budgeting/internal/types"
	"github.com/rs/zerolog/log"
)

// TransactionEditable represents all parameters that can be set on creation.
type TransactionEditable struct {
	Kind       models.Kind `json:"kind" example:"expense"`                  // Kind of the transaction, must match the type of the category
	Date       string      `json:"date" example:"2024-03-15"`               // Date in YYYY-MM-DD format
	CategoryID string      `json:"categoryId" example:"cat-groceries"`      // ID of the category
	Amount     string      `json:"amount" example:"125.500"`                // Amount as entered by the user, in the format of the configured locale
	Note       string      `json:"note,omitempty" example:"Farmers market"` // Note for the transaction
}

// TransactionPatch contains the parameters that can be updated. Omitted
// parameters are left unchanged.
type TransactionPatch struct {
	Kind       *models.Kind `json:"kind,omitempty" example:"expense"`        // Kind of the transaction
	Date       *string      `json:"date,omitempty" example:"2024-03-15"`     // Date in YYYY-MM-DD format
	CategoryID *string      `json:"categoryId,omitempty" example:"cat-rent"` // ID of the category
	Amount     *string      `json:"amount,omitempty" example:"99.000"`       // Amount as entered by the user
	Note       *string      `json:"note,omitempty" example:"Farmers market"` // Note for the transaction
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/txn-market"`      // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/cat-groceries"` // The category of the transaction
}

type Transaction struct {
	models.Transaction
	CategoryName string           `json:"categoryName" example:"Groceries"` // Name of the category, "Unknown category" if it does not exist
	Amount       Amount           `json:"amount"`                           // Amount of the transaction
	Links        TransactionLinks `json:"links"`
}

func (co Controller) newTransaction(c *gin.Context, index aggregate.CategoryIndex, model models.Transaction) Transaction {
	return Transaction{
		Transaction:  model,
		CategoryName: index.Name(model.CategoryID),
		Amount:       co.amount(model.AmountCents),
		Links: TransactionLinks{
			Self:     link(c, "/v1/transactions/%s", url.PathEscape(model.ID)),
			Category: link(c, "/v1/categories/%s", url.PathEscape(model.CategoryID)),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                                     // Data for the transaction
	Error *string      `json:"error" example:"the transaction kind must match the type of its category"` // The error, if any occurred
}

// Totals are the sums of a list of transactions.
type Totals struct {
	Income  Amount `json:"income"`  // Sum of all income
	Expense Amount `json:"expense"` // Sum of all expenses
	Net     Amount `json:"net"`     // Income minus expenses
}

func (co Controller) newTotals(s aggregate.Summary) Totals {
	return Totals{
		Income:  co.amount(s.IncomeCents),
		Expense: co.amount(s.ExpenseCents),
		Net:     co.amount(s.NetCents),
	}
}

type TransactionListResponse struct {
	Data   []Transaction `json:"data"`                                                // List of transactions
	Totals *Totals       `json:"totals"`                                              // Totals of the listed transactions
	Error  *string       `json:"error" example:"the month must be in YYYY-MM format"` // The error, if any occurred
}

// TransactionQueryFilter contains the filters for the transaction list.
// All filters are combined.
type TransactionQueryFilter struct {
	Month    types.Month `form:"month"`    // Only transactions of this month
	Kind     string      `form:"kind"`     // Only transactions of this kind
	Category string      `form:"category"` // Only transactions of this category
	FromDate string      `form:"fromDate"` // Only transactions on or after this date
	ToDate   string      `form:"toDate"`   // Only transactions on or before this date
	Note     string      `form:"note"`     // Only transactions with a matching note. Supports * as wildcard
}

func (f TransactionQueryFilter) model() (aggregate.Filter, error) {
	filter := aggregate.Filter{
		Month:      f.Month,
		Kind:       models.Kind(f.Kind),
		CategoryID: strings.TrimSpace(f.Category),
		Note:       f.Note,
	}

	if filter.Kind != "" && !filter.Kind.Valid() {
		return aggregate.Filter{}, store.ErrInvalidKind
	}

	var err error
	if f.FromDate != "" {
		if filter.FromDate, err = types.ParseDate(f.FromDate); err != nil {
			return aggregate.Filter{}, err
		}
	}

	if f.ToDate != "" {
		if filter.ToDate, err = types.ParseDate(f.ToDate); err != nil {
			return aggregate.Filter{}, err
		}
	}

	return filter, nil
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// OptionsTransactionList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/v1/transactions [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	_, err := co.Store.Transaction(requestContext(c), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetTransactions returns transactions
//
//	@Summary		Get transactions
//	@Description	Returns the transactions matching all filters together with their totals
//	@Tags			Transactions
//	@Produce		json
//	@Success		200			{object}	TransactionListResponse
//	@Failure		400			{object}	TransactionListResponse
//	@Failure		502			{object}	TransactionListResponse
//	@Param			month		query		string	false	"Filter by month, YYYY-MM"
//	@Param			kind		query		string	false	"Filter by kind"	Enums(income, expense)
//	@Param			category	query		string	false	"Filter by category ID"
//	@Param			fromDate	query		string	false	"Transactions on or after this date, YYYY-MM-DD"
//	@Param			toDate		query		string	false	"Transactions on or before this date, YYYY-MM-DD"
//	@Param			note		query		string	false	"Filter by note, * matches any text"
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := httputil.BindQuery(c, &query); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionListResponse{Error: e})
		return
	}

	filter, err := query.model()
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionListResponse{Error: e})
		return
	}

	snapshot, err := co.Store.Snapshot(requestContext(c))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionListResponse{Error: e})
		return
	}

	index := aggregate.NewCategoryIndex(snapshot.Categories)
	transactions := aggregate.FilterTransactions(snapshot.Transactions, filter)

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, co.newTransaction(c, index, transaction))
	}

	totals := co.newTotals(aggregate.Totals(transactions))
	c.JSON(http.StatusOK, TransactionListResponse{Data: data, Totals: &totals})
}

// CreateTransaction creates a transaction
//
//	@Summary		Create transaction
//	@Description	Creates a new transaction through the remote API
//	@Tags			Transactions
//	@Produce		json
//	@Success		201			{object}	TransactionResponse
//	@Failure		400			{object}	TransactionResponse
//	@Failure		404			{object}	TransactionResponse
//	@Failure		502			{object}	TransactionResponse
//	@Param			transaction	body		TransactionEditable	true	"Transaction"
//	@Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionResponse{Error: e})
		return
	}

	cents, err := co.Codec.Parse(editable.Amount)
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionResponse{Error: e})
		return
	}

	transaction, err := co.Store.CreateTransaction(requestContext(c), remote.TransactionCreate{
		Kind:        editable.Kind,
		Date:        editable.Date,
		CategoryID:  editable.CategoryID,
		AmountCents: cents,
		Note:        editable.Note,
	})
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionResponse{Error: e})
		return
	}

	co.respondTransaction(c, http.StatusCreated, transaction)
}

// GetTransaction returns a specific transaction
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		404	{object}	TransactionResponse
//	@Failure		502	{object}	TransactionResponse
//	@Param			id	path		string	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, err := co.Store.Transaction(requestContext(c), c.Param("id"))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionResponse{Error: e})
		return
	}

	co.respondTransaction(c, http.StatusOK, transaction)
}

// UpdateTransaction updates a specific transaction
//
//	@Summary		Update transaction
//	@Description	Updates a transaction. The result must be a valid transaction.
//	@Tags			Transactions
//	@Produce		json
//	@Success		200			{object}	TransactionResponse
//	@Failure		400			{object}	TransactionResponse
//	@Failure		404			{object}	TransactionResponse
//	@Failure		502			{object}	TransactionResponse
//	@Param			id			path		string				true	"ID of the transaction"
//	@Param			transaction	body		TransactionPatch	true	"Transaction"
//	@Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var patch TransactionPatch
	if err := httputil.BindData(c, &patch); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionResponse{Error: e})
		return
	}

	update := remote.TransactionPatch{
		Kind:       patch.Kind,
		Date:       patch.Date,
		CategoryID: patch.CategoryID,
		Note:       patch.Note,
	}

	if patch.Amount != nil {
		cents, err := co.Codec.Parse(*patch.Amount)
		if err != nil {
			code, e := errorResponse(c, err)
			c.JSON(code, TransactionResponse{Error: e})
			return
		}
		update.AmountCents = &cents
	}

	transaction, err := co.Store.UpdateTransaction(requestContext(c), c.Param("id"), update)
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, TransactionResponse{Error: e})
		return
	}

	co.respondTransaction(c, http.StatusOK, transaction)
}

// DeleteTransaction deletes a specific transaction
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction
//	@Tags			Transactions
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	err := co.Store.DeleteTransaction(requestContext(c), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondTransaction writes the transaction with the name of its category.
func (co Controller) respondTransaction(c *gin.Context, httpStatus int, transaction models.Transaction) {
	// The transaction is already stored remotely, a failed cache read only
	// costs the category name
	snapshot, err := co.Store.Snapshot(requestContext(c))
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("could not read categories for the transaction")
	}

	data := co.newTransaction(c, aggregate.NewCategoryIndex(snapshot.Categories), transaction)
	c.JSON(httpStatus, TransactionResponse{Data: &data})
}
