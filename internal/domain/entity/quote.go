package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quote represents a priced proposal for a single client: an ordered
// list of product lines, a one-time labor charge and an optional
// recurring monthly-service tier.
type Quote struct {
	ID             uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	ClientID       uuid.UUID               `gorm:"type:uuid;not null;index" json:"client_id"`
	ClientName     string                  `gorm:"size:255" json:"client_name"`
	LaborCost      float64                 `gorm:"type:decimal(15,2);default:0" json:"labor_cost"`
	MonthlyService enum.MonthlyServiceTier `gorm:"size:10;default:''" json:"monthly_service"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	DeletedAt      gorm.DeletedAt          `gorm:"index" json:"-"`

	// Relationships
	Client *Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []QuoteItem `gorm:"foreignKey:QuoteID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// ProductsTotal sums every line total of the quote.
func (q *Quote) ProductsTotal() float64 {
	var total float64
	for i := range q.Items {
		total += q.Items[i].LineTotal()
	}
	return total
}

// GrandTotal is the products subtotal plus the one-time labor cost.
// The monthly-service fee is a recurring charge and is intentionally
// not part of the one-time total.
func (q *Quote) GrandTotal() float64 {
	return q.ProductsTotal() + q.LaborCost
}

// AddItem adds one unit of a product to the quote. A quote holds at
// most one line per product: if the product is already present its
// quantity is incremented instead of appending a duplicate row.
func (q *Quote) AddItem(product Product) {
	for i := range q.Items {
		if q.Items[i].ProductID == product.ID {
			q.Items[i].Quantity++
			return
		}
	}
	q.Items = append(q.Items, QuoteItem{
		ProductID:   product.ID,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Quantity:    1,
		UnitPrice:   product.Price,
		Position:    len(q.Items),
	})
}

// QuoteItem is one product line within a quote. Description, image and
// unit price are snapshots captured when the line was added; the unit
// price may be overridden afterwards without touching the catalog.
type QuoteItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"quote_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Description string         `gorm:"size:255" json:"description"`
	ImageURL    *string        `gorm:"type:text" json:"image_url,omitempty"`
	Quantity    int            `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quote item
func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}

// LineTotal is quantity times the (possibly overridden) unit price.
func (qi *QuoteItem) LineTotal() float64 {
	return float64(qi.Quantity) * qi.UnitPrice
}

// SetQuantity updates the line quantity, clamping values below 1 up to 1.
func (qi *QuoteItem) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	qi.Quantity = quantity
}
