package usecase

import (
	"errors"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
)

var (
	ErrProductNotFound = errors.New("Unexpected Product found in Order by user.")
)

// ProductNotFoundError reports the order that could not be priced.
// Its message is always the one of ErrProductNotFound.
type ProductNotFoundError struct {
	User  entity.UserID
	Drink string
	Size  string
}

func (e *ProductNotFoundError) Error() string {
	return ErrProductNotFound.Error()
}

func (e *ProductNotFoundError) Unwrap() error {
	return ErrProductNotFound
}
