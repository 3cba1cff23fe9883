package models

// Transaction is a single income or expense.
type Transaction struct {
	ID          string `json:"id" gorm:"primaryKey" example:"5e0f3c8a-7d4b-4d3e-9a61-0c7e2f1b8a90"`    // ID of the transaction
	Kind        Kind   `json:"kind" example:"expense"`                                                 // Kind of the transaction
	Date        string `json:"date" gorm:"index" example:"2024-03-15"`                                 // Date of the transaction, YYYY-MM-DD
	CategoryID  string `json:"categoryId" gorm:"index" example:"c2b1b9ce-3bde-4a8b-a2a4-8d1c1e0d2b11"` // ID of the category
	AmountCents int64  `json:"amountCents" example:"12550"`                                            // Amount in cents
	Note        string `json:"note,omitempty" example:"Farmers market"`                                // Note for the transaction
	Timestamps
	Ordering
}

func (Transaction) Self() string {
	return "Transaction"
}

func (t Transaction) Identifier() string {
	return t.ID
}
