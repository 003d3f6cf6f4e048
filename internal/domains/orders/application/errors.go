package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrInvalidEntryType signals a line item referenced a type missing from the catalog.
	ErrInvalidEntryType = errors.New("invalid entry type")
	// ErrOrderAlreadyInProgress signals the in-progress slot is already taken.
	ErrOrderAlreadyInProgress = errors.New("an order is already in progress")
	// ErrOrderAlreadyProcessed signals a start was requested for an order that left WAITING.
	ErrOrderAlreadyProcessed = errors.New("order already processed")
	// ErrOrderNotInProgress signals a completion was requested for an order that is not being prepared.
	ErrOrderNotInProgress = errors.New("order is not in progress")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCustomerName) ||
		errors.Is(err, domain.ErrNoLineItems) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrEmptyOrderID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, domain.ErrUnresolvedEntry) {
		return fmt.Errorf("%w: %w", ErrInvalidEntryType, err)
	}
	return err
}
