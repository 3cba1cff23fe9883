package models

// Kind is the direction of money flow. Categories and transactions
// share it: a transaction's kind must equal its category's type.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether the kind is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Model is implemented by all entities held in the snapshot cache.
type Model interface {
	// Self returns the human readable name of the resource type
	Self() string
	Identifier() string

	position() int64
	setPosition(int64)
}

// Timestamps are the creation and update times as reported by the remote
// API. They are opaque ISO-8601 strings and never set locally.
type Timestamps struct {
	CreatedAt string `json:"createdAt" gorm:"autoCreateTime:false" example:"2024-03-01T09:12:44Z"` // Time the resource was created
	UpdatedAt string `json:"updatedAt" gorm:"autoUpdateTime:false" example:"2024-03-04T18:01:02Z"` // Last time the resource was updated
}

// Ordering keeps the order in which the remote API listed the entities.
// New entities are placed in front of all others.
type Ordering struct {
	Position int64 `json:"-" gorm:"index"`
}

func (o Ordering) position() int64 {
	return o.Position
}

func (o *Ordering) setPosition(p int64) {
	o.Position = p
}
