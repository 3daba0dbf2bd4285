package request

import "github.com/google/uuid"

// QuoteItemRequest represents a line item in a quote request. UnitPrice
// overrides the catalog price when set.
type QuoteItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
	UnitPrice *float64  `json:"unit_price" binding:"omitempty,min=0"`
}

// CreateQuoteRequest represents a quote creation request
type CreateQuoteRequest struct {
	ClientID       uuid.UUID          `json:"client_id" binding:"required"`
	Items          []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
	LaborCost      float64            `json:"labor_cost" binding:"min=0"`
	MonthlyService string             `json:"monthly_service" binding:"omitempty,oneof=0.5 1 1.5 2 2.5 3"`
}

// UpdateQuoteRequest represents a quote update request. Updates are
// wholesale: the item list replaces the previous one.
type UpdateQuoteRequest struct {
	ClientID       uuid.UUID          `json:"client_id" binding:"required"`
	Items          []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
	LaborCost      float64            `json:"labor_cost" binding:"min=0"`
	MonthlyService string             `json:"monthly_service" binding:"omitempty,oneof=0.5 1 1.5 2 2.5 3"`
}

// QuoteFilterRequest represents quote filter parameters
type QuoteFilterRequest struct {
	Search   string `form:"search"`
	ClientID string `form:"client_id"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
