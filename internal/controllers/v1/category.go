package v1

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/personal-budgeting/budgeting/internal/httputil"
	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/remote"
	"github.com/personal-budgeting/budgeting/internal/store"
)

// CategoryEditable represents all parameters that can be set on creation.
type CategoryEditable struct {
	Type        models.Kind `json:"type" example:"expense"`                          // Type of the category, income or expense. Cannot be changed later
	Name        string      `json:"name" example:"Groceries"`                        // Name of the category
	Description string      `json:"description,omitempty" example:"Weekly shopping"` // Description of the category
}

// CategoryPatch contains the parameters that can be updated. Omitted
// parameters are left unchanged.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty" example:"Food"`                      // Name of the category
	Description *string `json:"description,omitempty" example:"Food and household"` // Description of the category
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/cat-groceries"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=cat-groceries"` // Transactions of the category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         link(c, "/v1/categories/%s", url.PathEscape(model.ID)),
			Transactions: link(c, "/v1/transactions?category=%s", url.QueryEscape(model.ID)),
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                       // Data for the category
	Error *string   `json:"error" example:"the name must not be empty"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                      // List of categories
	Error *string    `json:"error" example:"the type must be either income or expense"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Type string `form:"type"` // Only list categories of this type
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the category"
//	@Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	_, err := co.Store.Category(requestContext(c), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetCategories returns all categories
//
//	@Summary		Get categories
//	@Description	Returns all categories in the order of the remote API, newest first
//	@Tags			Categories
//	@Produce		json
//	@Success		200		{object}	CategoryListResponse
//	@Failure		400		{object}	CategoryListResponse
//	@Failure		502		{object}	CategoryListResponse
//	@Param			type	query		string	false	"Filter by type"	Enums(income, expense)
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryListResponse{Error: e})
		return
	}

	kind := models.Kind(filter.Type)
	if kind != "" && !kind.Valid() {
		code, e := errorResponse(c, store.ErrInvalidKind)
		c.JSON(code, CategoryListResponse{Error: e})
		return
	}

	snapshot, err := co.Store.Snapshot(requestContext(c))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryListResponse{Error: e})
		return
	}

	data := make([]Category, 0, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		if kind != "" && category.Type != kind {
			continue
		}
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// CreateCategory creates a category
//
//	@Summary		Create category
//	@Description	Creates a new category through the remote API
//	@Tags			Categories
//	@Produce		json
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	CategoryResponse
//	@Failure		502			{object}	CategoryResponse
//	@Param			category	body		CategoryEditable	true	"Category"
//	@Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	category, err := co.Store.CreateCategory(requestContext(c), remote.CategoryCreate{
		Type:        editable.Type,
		Name:        editable.Name,
		Description: editable.Description,
	})
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// GetCategory returns a specific category
//
//	@Summary		Get category
//	@Description	Returns a specific category
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryResponse
//	@Failure		404	{object}	CategoryResponse
//	@Failure		502	{object}	CategoryResponse
//	@Param			id	path		string	true	"ID of the category"
//	@Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := co.Store.Category(requestContext(c), c.Param("id"))
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// UpdateCategory updates a specific category
//
//	@Summary		Update category
//	@Description	Updates name and description of a category. The type cannot be changed.
//	@Tags			Categories
//	@Produce		json
//	@Success		200			{object}	CategoryResponse
//	@Failure		400			{object}	CategoryResponse
//	@Failure		404			{object}	CategoryResponse
//	@Failure		502			{object}	CategoryResponse
//	@Param			id			path		string			true	"ID of the category"
//	@Param			category	body		CategoryPatch	true	"Category"
//	@Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	var patch CategoryPatch
	if err := httputil.BindData(c, &patch); err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	category, err := co.Store.UpdateCategory(requestContext(c), c.Param("id"), remote.CategoryPatch{
		Name:        patch.Name,
		Description: patch.Description,
	})
	if err != nil {
		code, e := errorResponse(c, err)
		c.JSON(code, CategoryResponse{Error: e})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// DeleteCategory deletes a specific category
//
//	@Summary		Delete category
//	@Description	Deletes a category. Categories used by budgets or transactions cannot be deleted.
//	@Tags			Categories
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		409	{object}	httputil.HTTPError
//	@Failure		502	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the category"
//	@Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	err := co.Store.DeleteCategory(requestContext(c), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
