package repository

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrInvalidSortField is returned for sort fields outside name/address/phone
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrNoReferenceRows is returned when purchases are generated against an
	// empty products or customers table
	ErrNoReferenceRows = errors.New("generating purchases requires at least one product and one customer")
)

// ValidationError reports a missing or malformed request field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for field %q", e.Field)
}

// IsNotFound reports whether err is one of the entity not-found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrPurchaseNotFound)
}
