package mapper

import (
	"time"

	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application/types"
	ordersdomain "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
)

// OrderEntry is the transport shape of one line item.
type OrderEntry struct {
	Type                  string   `json:"type" binding:"required"`
	Quantity              int      `json:"quantity" binding:"required,gt=0"`
	AdditionalIngredients []string `json:"additionalIngredients"`
}

// CreateOrderRequest is the customer payload for a new order.
type CreateOrderRequest struct {
	Username string       `json:"username" binding:"required"`
	Entries  []OrderEntry `json:"entries" binding:"required,min=1,dive"`
}

// CreateOrderResponse carries the identifier of a freshly created order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// OrderStatus is the payload of the status endpoint.
type OrderStatus struct {
	Status string `json:"status"`
}

// OrderDetails is the full transport representation of an order.
type OrderDetails struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Entries   []OrderEntry `json:"entries"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ToCreateOrderInput converts the transport request into service input.
func ToCreateOrderInput(req CreateOrderRequest) types.CreateOrderInput {
	items := make([]types.LineItemInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		items = append(items, types.LineItemInput{
			TypeID:                entry.Type,
			Quantity:              entry.Quantity,
			AdditionalIngredients: append([]string(nil), entry.AdditionalIngredients...),
		})
	}
	return types.CreateOrderInput{CustomerName: req.Username, LineItems: items}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) OrderDetails {
	if order == nil {
		return OrderDetails{}
	}
	entries := make([]OrderEntry, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		additional := item.AdditionalIngredients
		if additional == nil {
			additional = []string{}
		}
		entries = append(entries, OrderEntry{
			Type:                  item.Entry.ID,
			Quantity:              item.Quantity,
			AdditionalIngredients: additional,
		})
	}
	return OrderDetails{
		ID:        order.ID,
		Username:  order.CustomerName,
		Entries:   entries,
		Status:    order.Status.String(),
		CreatedAt: order.CreatedAt,
	}
}

// FromDomainOrders converts a list preserving order.
func FromDomainOrders(orders []*ordersdomain.Order) []OrderDetails {
	out := make([]OrderDetails, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
