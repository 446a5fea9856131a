package order

import (
	"errors"
	"strings"
)

var (
	// -- Order start --
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrSessionActive   = errors.New("order session already active")

	// -- Step input --
	ErrInvalidSelection    = errors.New("invalid variant selection")
	ErrVariantOutOfStock   = errors.New("variant out of stock")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrExceedsStock        = errors.New("quantity exceeds stock")
	ErrExceedsMaxOrder     = errors.New("quantity exceeds max order")
	ErrInvalidConfirmation = errors.New("invalid confirmation choice")

	// -- Session state --
	ErrNoActiveSession = errors.New("no active order session")
	ErrSessionExpired  = errors.New("order session expired")
)

// IncompleteInfoError lists the required delivery fields missing from a
// customer-info submission.
type IncompleteInfoError struct {
	Missing []string
}

func (e *IncompleteInfoError) Error() string {
	return "incomplete customer info: " + strings.Join(e.Missing, ", ")
}
