package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrBudgetNotUnique   = errors.New("there is already a budget for this category and month")
	ErrNoSnapshot        = errors.New("no snapshot has been loaded yet")
	ErrSnapshotVersion   = errors.New("unsupported snapshot version")
	ErrInvalidIdentifier = errors.New("every resource needs an id")
)
