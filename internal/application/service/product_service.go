package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/internal/domain/repository"
	"github.com/konnekit/orcamentos-api/pkg/apperror"
	"github.com/konnekit/orcamentos-api/pkg/pagination"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
	quoteRepo   repository.QuoteRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, quoteRepo repository.QuoteRepository) *ProductService {
	return &ProductService{productRepo: productRepo, quoteRepo: quoteRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Description string
	Price       float64
	ImageURL    *string
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	var fieldErrors []apperror.FieldError
	if input.Description == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "Description is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	product := &entity.Product{
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists catalog products
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	params.Validate()
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID          uuid.UUID
	Description *string
	Price       *float64
	ImageURL    *string
}

// UpdateProduct updates an existing product. Catalog price edits do not
// touch the snapshot prices of quote lines that already reference it.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Description != nil {
		if *input.Description == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "description", Message: "Description cannot be empty"},
			})
		}
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "Price cannot be negative"},
			})
		}
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product. A product referenced by any quote
// line cannot be removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	count, err := s.quoteRepo.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewReferentialIntegrityError("Product is referenced by existing quotes and cannot be deleted")
	}

	return s.productRepo.Delete(ctx, id)
}
