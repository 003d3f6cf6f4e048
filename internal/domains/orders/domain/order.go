package domain

import (
	"errors"
	"strings"
	"time"

	catalogdomain "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/domain"
)

var (
	ErrEmptyOrderID      = errors.New("order id must not be empty")
	ErrEmptyCustomerName = errors.New("customer name must not be empty")
	ErrNoLineItems       = errors.New("order must contain at least one line item")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrUnresolvedEntry   = errors.New("line item references no catalog entry")
)

// LineItem is one ordered quantity of a catalog entry with optional extra toppings.
type LineItem struct {
	Entry                 catalogdomain.Entry
	Quantity              int
	AdditionalIngredients []string
}

// NewLineItem validates and constructs a line item for an already resolved entry.
func NewLineItem(entry catalogdomain.Entry, quantity int, additional []string) (LineItem, error) {
	if entry.ID == "" {
		return LineItem{}, ErrUnresolvedEntry
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		Entry:                 entry,
		Quantity:              quantity,
		AdditionalIngredients: append([]string(nil), additional...),
	}, nil
}

func (li LineItem) clone() LineItem {
	li.Entry = li.Entry.Clone()
	li.AdditionalIngredients = append([]string(nil), li.AdditionalIngredients...)
	return li
}

// Order models a customer order. Status is the only field that changes after creation.
type Order struct {
	ID           string
	CustomerName string
	LineItems    []LineItem
	CreatedAt    time.Time
	Status       Status
}

// NewOrder validates and constructs a WAITING order.
func NewOrder(id, customerName string, items []LineItem, createdAt time.Time) (*Order, error) {
	order := &Order{
		ID:           id,
		CustomerName: strings.TrimSpace(customerName),
		LineItems:    make([]LineItem, 0, len(items)),
		CreatedAt:    createdAt,
		Status:       StatusWaiting,
	}
	for _, item := range items {
		order.LineItems = append(order.LineItems, item.clone())
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrEmptyOrderID
	}
	if o.CustomerName == "" {
		return ErrEmptyCustomerName
	}
	if len(o.LineItems) == 0 {
		return ErrNoLineItems
	}
	for _, item := range o.LineItems {
		if item.Entry.ID == "" {
			return ErrUnresolvedEntry
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.LineItems = make([]LineItem, len(o.LineItems))
	for i, item := range o.LineItems {
		clone.LineItems[i] = item.clone()
	}
	return &clone
}
