package request

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// ClientFilterRequest represents client filter parameters
type ClientFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Limit   int    `form:"limit"` // For cursor-based pagination
}
