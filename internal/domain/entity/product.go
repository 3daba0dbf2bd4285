package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog item that can be quoted. Price is the
// current catalog price; quotes snapshot their own unit price at the
// moment a line is added, so later catalog edits never rewrite history.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Price       float64        `gorm:"type:decimal(15,2);not null;default:0" json:"price"`
	ImageURL    *string        `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
