package models

// Category groups transactions and budgets. Its type cannot change after
// creation.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey" example:"c2b1b9ce-3bde-4a8b-a2a4-8d1c1e0d2b11"` // ID of the category
	Type        Kind   `json:"type" example:"expense"`                                              // Type of the category
	Name        string `json:"name" example:"Groceries"`                                            // Name of the category
	Description string `json:"description,omitempty" example:"Weekly shopping"`                     // Description of the category
	Timestamps
	Ordering
}

func (Category) Self() string {
	return "Category"
}

func (c Category) Identifier() string {
	return c.ID
}
