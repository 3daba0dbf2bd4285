package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/pkg/pagination"
)

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// QuoteRepository defines the interface for quote data operations.
// A quote and its line items always travel as one unit: creation and
// item replacement are transactional.
type QuoteRepository interface {
	// CreateWithItems persists a quote and all of its line items
	// atomically; on any item failure nothing is stored.
	CreateWithItems(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	// GetWithItems loads a quote with client and ordered line items.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	// UpdateWithItems replaces the mutable quote fields and its whole
	// item list atomically, preserving id and created_at.
	UpdateWithItems(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuoteFilterParams) ([]entity.Quote, int64, error)
	// CountByClient reports how many quotes reference a client.
	CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
	// CountItemsByProduct reports how many quote lines reference a product.
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
