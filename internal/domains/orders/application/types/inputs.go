package types

// LineItemInput is one requested line of a new order, before catalog resolution.
type LineItemInput struct {
	TypeID                string
	Quantity              int
	AdditionalIngredients []string
}

// CreateOrderInput carries the customer request for a new order.
type CreateOrderInput struct {
	CustomerName string
	LineItems    []LineItemInput
}
