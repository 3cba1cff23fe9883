package models

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// SnapshotVersion is the only snapshot format this app understands.
const SnapshotVersion = 1

// Snapshot is the complete state of the remote API at one point in time.
type Snapshot struct {
	Version      int           `json:"version" example:"1"` // Format version of the snapshot
	Categories   []Category    `json:"categories"`          // All categories
	Budgets      []Budget      `json:"budgets"`             // All budgets
	Transactions []Transaction `json:"transactions"`        // All transactions
}

// SnapshotMeta records when the cached snapshot was loaded.
type SnapshotMeta struct {
	ID       uint `gorm:"primaryKey"`
	Version  int
	LoadedAt time.Time
}

const snapshotMetaID = 1

// Empty returns a snapshot without any entities.
func Empty() Snapshot {
	return Snapshot{
		Version:      SnapshotVersion,
		Categories:   []Category{},
		Budgets:      []Budget{},
		Transactions: []Transaction{},
	}
}

// ReplaceSnapshot replaces the whole cache with the snapshot.
func ReplaceSnapshot(db *gorm.DB, s Snapshot, loadedAt time.Time) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}

	categories := slices.Clone(s.Categories)
	for i := range categories {
		if categories[i].ID == "" {
			return fmt.Errorf("%w: %s at index %d", ErrInvalidIdentifier, Category{}.Self(), i)
		}
		categories[i].Position = int64(i)
	}

	budgets := slices.Clone(s.Budgets)
	for i := range budgets {
		if budgets[i].ID == "" {
			return fmt.Errorf("%w: %s at index %d", ErrInvalidIdentifier, Budget{}.Self(), i)
		}
		budgets[i].Position = int64(i)
	}

	transactions := slices.Clone(s.Transactions)
	for i := range transactions {
		if transactions[i].ID == "" {
			return fmt.Errorf("%w: %s at index %d", ErrInvalidIdentifier, Transaction{}.Self(), i)
		}
		transactions[i].Position = int64(i)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&Category{}, &Budget{}, &Transaction{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}

		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
		}

		if len(budgets) > 0 {
			if err := tx.Create(&budgets).Error; err != nil {
				return err
			}
		}

		if len(transactions) > 0 {
			if err := tx.Create(&transactions).Error; err != nil {
				return err
			}
		}

		return tx.Save(&SnapshotMeta{
			ID:       snapshotMetaID,
			Version:  s.Version,
			LoadedAt: loadedAt.UTC(),
		}).Error
	})
}

// LoadSnapshot reads the cached snapshot.
//
// ErrNoSnapshot is returned when nothing has been cached yet or the cached
// snapshot has an unsupported version.
func LoadSnapshot(db *gorm.DB) (Snapshot, SnapshotMeta, error) {
	meta, err := LoadMeta(db)
	if err != nil {
		return Snapshot{}, SnapshotMeta{}, err
	}

	s := Empty()
	if err := db.Order("position").Find(&s.Categories).Error; err != nil {
		return Snapshot{}, SnapshotMeta{}, err
	}

	if err := db.Order("position").Find(&s.Budgets).Error; err != nil {
		return Snapshot{}, SnapshotMeta{}, err
	}

	if err := db.Order("position").Find(&s.Transactions).Error; err != nil {
		return Snapshot{}, SnapshotMeta{}, err
	}

	return s.normalize(), meta, nil
}

// LoadMeta returns the metadata of the cached snapshot, or ErrNoSnapshot
// if there is no usable one.
func LoadMeta(db *gorm.DB) (SnapshotMeta, error) {
	var meta SnapshotMeta
	err := db.Take(&meta, snapshotMetaID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return SnapshotMeta{}, ErrNoSnapshot
	} else if err != nil {
		return SnapshotMeta{}, err
	}

	if meta.Version != SnapshotVersion {
		return SnapshotMeta{}, ErrNoSnapshot
	}

	return meta, nil
}

// normalize makes sure that all lists encode as JSON arrays.
func (s Snapshot) normalize() Snapshot {
	if s.Categories == nil {
		s.Categories = []Category{}
	}

	if s.Budgets == nil {
		s.Budgets = []Budget{}
	}

	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}

	return s
}
