package test

import (
	"time"

	"github.com/personal-budgeting/budgeting/internal/models"
)

const (
	SalaryID    = "cat-salary"
	GroceriesID = "cat-groceries"
	RentID      = "cat-rent"
	UnusedID    = "cat-unused"

	GroceriesMarchID = "bud-groceries-2024-03"
	GroceriesFebID   = "bud-groceries-2024-02"
	RentMarchID      = "bud-rent-2024-03"

	SalaryTxnID = "txn-salary"
	MarketTxnID = "txn-market"
	BakeryTxnID = "txn-bakery"
	FebTxnID    = "txn-feb"
	RentTxnID   = "txn-rent"
)

// LoadedAt is the load time used for snapshots saved in tests.
var LoadedAt = time.Date(2024, time.March, 20, 8, 30, 0, 0, time.UTC)

const created = "2024-03-01T09:00:00Z"

var stamps = models.Timestamps{CreatedAt: created, UpdatedAt: created}

// Snapshot returns a fresh copy of the snapshot used throughout the tests.
//
// For March 2024, income is 200000, expenses are 51500. Groceries are over
// budget, rent is on track and the unused category has neither budget nor
// transactions.
func Snapshot() models.Snapshot {
	return models.Snapshot{
		Version: models.SnapshotVersion,
		Categories: []models.Category{
			{ID: SalaryID, Type: models.KindIncome, Name: "Salary", Timestamps: stamps},
			{ID: GroceriesID, Type: models.KindExpense, Name: "Groceries", Description: "Food and household", Timestamps: stamps},
			{ID: RentID, Type: models.KindExpense, Name: "Rent", Timestamps: stamps},
			{ID: UnusedID, Type: models.KindExpense, Name: "Unused", Timestamps: stamps},
		},
		Budgets: []models.Budget{
			{ID: GroceriesMarchID, Month: "2024-03", CategoryID: GroceriesID, AmountCents: 1000, Timestamps: stamps},
			{ID: GroceriesFebID, Month: "2024-02", CategoryID: GroceriesID, AmountCents: 800, Timestamps: stamps},
			{ID: RentMarchID, Month: "2024-03", CategoryID: RentID, AmountCents: 50000, Timestamps: stamps},
		},
		Transactions: []models.Transaction{
			{ID: SalaryTxnID, Kind: models.KindIncome, Date: "2024-03-01", CategoryID: SalaryID, AmountCents: 200000, Timestamps: stamps},
			{ID: MarketTxnID, Kind: models.KindExpense, Date: "2024-03-05", CategoryID: GroceriesID, AmountCents: 500, Note: "Weekly market", Timestamps: stamps},
			{ID: BakeryTxnID, Kind: models.KindExpense, Date: "2024-03-15", CategoryID: GroceriesID, AmountCents: 1000, Note: "Bakery", Timestamps: stamps},
			{ID: FebTxnID, Kind: models.KindExpense, Date: "2024-02-01", CategoryID: GroceriesID, AmountCents: 999, Timestamps: stamps},
			{ID: RentTxnID, Kind: models.KindExpense, Date: "2024-03-01", CategoryID: RentID, AmountCents: 50000, Note: "March rent", Timestamps: stamps},
		},
	}
}
