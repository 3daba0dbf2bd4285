package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/internal/domain/enum"
	"github.com/konnekit/orcamentos-api/internal/domain/repository"
	"github.com/konnekit/orcamentos-api/pkg/apperror"
	"github.com/konnekit/orcamentos-api/pkg/pagination"
)

// QuoteService handles quote-related operations
type QuoteService struct {
	quoteRepo   repository.QuoteRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
) *QuoteService {
	return &QuoteService{
		quoteRepo:   quoteRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
	}
}

// QuoteItemInput represents a line item input. UnitPrice overrides the
// catalog price when provided; otherwise the current catalog price is
// snapshotted into the line.
type QuoteItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *float64
}

// CreateQuoteInput represents the input for creating a quote
type CreateQuoteInput struct {
	ClientID       uuid.UUID
	Items          []QuoteItemInput
	LaborCost      float64
	MonthlyService enum.MonthlyServiceTier
}

func validateQuoteInput(items []QuoteItemInput, laborCost float64, tier enum.MonthlyServiceTier) error {
	var fieldErrors []apperror.FieldError
	if len(items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "A quote needs at least one item"})
	}
	if laborCost < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "labor_cost", Message: "Labor cost cannot be negative"})
	}
	if !tier.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "monthly_service", Message: "Monthly service must be one of 0.5, 1, 1.5, 2, 2.5, 3 or empty"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// buildItems resolves line inputs against the catalog, snapshotting
// description, image and unit price. Duplicate product ids merge into a
// single line (quantities summed) so a quote never carries two rows for
// the same product, and quantities below 1 are clamped up to 1.
func (s *QuoteService) buildItems(ctx context.Context, inputs []QuoteItemInput) ([]entity.QuoteItem, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	seen := make(map[uuid.UUID]bool, len(inputs))
	for _, in := range inputs {
		if !seen[in.ProductID] {
			seen[in.ProductID] = true
			ids = append(ids, in.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entity.QuoteItem, 0, len(ids))
	lineFor := make(map[uuid.UUID]int, len(ids))

	for _, in := range inputs {
		product, ok := byID[in.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}

		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}

		if idx, exists := lineFor[in.ProductID]; exists {
			items[idx].Quantity += quantity
			continue
		}

		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}

		lineFor[in.ProductID] = len(items)
		items = append(items, entity.QuoteItem{
			ProductID:   product.ID,
			Description: product.Description,
			ImageURL:    product.ImageURL,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Position:    len(items),
		})
	}

	return items, nil
}

// CreateQuote creates a new quote. The quote and its line items are
// persisted atomically.
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	if err := validateQuoteInput(input.Items, input.LaborCost, input.MonthlyService); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		ClientID:       client.ID,
		ClientName:     client.Name,
		LaborCost:      input.LaborCost,
		MonthlyService: input.MonthlyService,
		Items:          items,
	}

	if err := s.quoteRepo.CreateWithItems(ctx, quote); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithItems(ctx, quote.ID)
}

// GetQuote retrieves a quote with its items by ID
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotesInput represents the input for listing quotes
type ListQuotesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
}

// ListQuotes lists quotes with filtering
func (s *QuoteService) ListQuotes(ctx context.Context, input *ListQuotesInput) (*pagination.PaginatedResult[entity.Quote], error) {
	params := &repository.QuoteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		ClientID:   input.ClientID,
	}

	quotes, total, err := s.quoteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// UpdateQuoteInput represents the input for updating a quote
type UpdateQuoteInput struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	Items          []QuoteItemInput
	LaborCost      float64
	MonthlyService enum.MonthlyServiceTier
}

// UpdateQuote replaces all mutable quote fields wholesale. The quote id
// and created_at are preserved.
func (s *QuoteService) UpdateQuote(ctx context.Context, input *UpdateQuoteInput) (*entity.Quote, error) {
	if err := validateQuoteInput(input.Items, input.LaborCost, input.MonthlyService); err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	quote.ClientID = client.ID
	quote.ClientName = client.Name
	quote.LaborCost = input.LaborCost
	quote.MonthlyService = input.MonthlyService
	quote.Items = items

	if err := s.quoteRepo.UpdateWithItems(ctx, quote); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetWithItems(ctx, quote.ID)
}

// DeleteQuote deletes a quote and its line items
func (s *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return apperror.NewNotFoundError("Quote")
	}

	return s.quoteRepo.Delete(ctx, id)
}
