package aggregate

import (
	"github.com/personal-budgeting/budgeting/internal/models"
)

// UnknownCategory is displayed for references to categories that no longer exist.
const UnknownCategory = "Unknown category"

// CategoryIndex looks up categories by ID.
type CategoryIndex map[string]models.Category

func NewCategoryIndex(categories []models.Category) CategoryIndex {
	index := make(CategoryIndex, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}

	return index
}

// Lookup returns the category with the ID, if it exists.
func (i CategoryIndex) Lookup(id string) (models.Category, bool) {
	c, ok := i[id]
	return c, ok
}

// Name returns the category name or UnknownCategory for dangling references.
func (i CategoryIndex) Name(id string) string {
	if c, ok := i[id]; ok {
		return c.Name
	}

	return UnknownCategory
}
