package models

import (
	"errors"

	"gorm.io/gorm"
)

// Entity is any type of resource held in the snapshot cache.
type Entity interface {
	Category | Budget | Transaction
}

// Find returns the cached resource with the given ID.
func Find[T Entity](db *gorm.DB, id string) (T, error) {
	var resource T
	err := db.Where("id = ?", id).Take(&resource).Error
	return resource, err
}

// Merge stores the canonical version of a resource returned by the remote API.
//
// A known resource is replaced in place, a new one is placed in front of
// all others of its type.
func Merge[T Entity, PT interface {
	*T
	Model
}](db *gorm.DB, resource PT) error {
	if resource.Identifier() == "" {
		return ErrInvalidIdentifier
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing T
		err := tx.Where("id = ?", resource.Identifier()).Take(&existing).Error

		switch {
		case err == nil:
			resource.setPosition(PT(&existing).position())
		case errors.Is(err, ErrResourceNotFound):
			var first int64
			err = tx.Model(new(T)).Select("COALESCE(MIN(position), 0)").Scan(&first).Error
			if err != nil {
				return err
			}
			resource.setPosition(first - 1)
		default:
			return err
		}

		if r, ok := any(resource).(interface{ replaceSiblings(*gorm.DB) error }); ok {
			if err := r.replaceSiblings(tx); err != nil {
				return err
			}
		}

		return tx.Save(resource).Error
	})
}

// Delete removes a resource from the cache. Deleting an unknown resource
// is not an error.
func Delete[T Entity](db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(new(T)).Error
}

// CountReferences returns how many budgets and transactions use the category.
func CountReferences(db *gorm.DB, categoryID string) (int64, error) {
	var budgets, transactions int64

	err := db.Model(&Budget{}).Where("category_id = ?", categoryID).Count(&budgets).Error
	if err != nil {
		return 0, err
	}

	err = db.Model(&Transaction{}).Where("category_id = ?", categoryID).Count(&transactions).Error
	if err != nil {
		return 0, err
	}

	return budgets + transactions, nil
}
