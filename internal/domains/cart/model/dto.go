package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate validates AddItemRequest
func (req AddItemRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// CartLineResponse is one cart line with its computed subtotal
type CartLineResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// CartResponse is the full cart view returned to the client
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	ItemsCount int                `json:"items_count"`
	Total      string             `json:"total"`
}

// ToResponse maps the aggregate to its API representation
func (c *Cart) ToResponse() *CartResponse {
	lines := c.Lines()
	resp := &CartResponse{
		Lines:      make([]CartLineResponse, len(lines)),
		ItemsCount: c.ItemsCount(),
		Total:      c.ComputeTotalValue().StringFixed(2),
	}

	for i, line := range lines {
		resp.Lines[i] = CartLineResponse{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Category:    line.Product.Category,
			UnitPrice:   line.Product.Price.StringFixed(2),
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal().StringFixed(2),
		}
	}

	return resp
}
