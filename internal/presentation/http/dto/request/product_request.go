package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageURL    *string `json:"image_url"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Description *string  `json:"description" binding:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
