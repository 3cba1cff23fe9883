package models

import (
	"gorm.io/gorm"
)

// Budget is the planned spending for one expense category in one month.
type Budget struct {
	ID          string `json:"id" gorm:"primaryKey" example:"9a3c7f6e-0b0e-4a51-8f55-2b7f9b0e6d21"`                                // ID of the budget
	Month       string `json:"month" gorm:"uniqueIndex:budget_month_category" example:"2024-03"`                                   // Month the budget applies to, YYYY-MM
	CategoryID  string `json:"categoryId" gorm:"uniqueIndex:budget_month_category" example:"c2b1b9ce-3bde-4a8b-a2a4-8d1c1e0d2b11"` // ID of the expense category
	AmountCents int64  `json:"amountCents" example:"150000"`                                                                       // Budgeted amount in cents
	Timestamps
	Ordering
}

func (Budget) Self() string {
	return "Budget"
}

func (b Budget) Identifier() string {
	return b.ID
}

// replaceSiblings removes any other budget for the same month and category
// so that the upserted budget is the only one for that pair.
func (b Budget) replaceSiblings(tx *gorm.DB) error {
	return tx.
		Where("month = ? AND category_id = ? AND id <> ?", b.Month, b.CategoryID, b.ID).
		Delete(&Budget{}).Error
}
