package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	domainRepo "github.com/konnekit/orcamentos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

// CreateWithItems inserts the quote and all of its line items in a
// single transaction; if any item fails, the whole quote is rolled back.
func (r *quoteRepository) CreateWithItems(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := quote.Items
		quote.Items = nil

		if err := tx.Create(quote).Error; err != nil {
			quote.Items = items
			return err
		}

		for i := range items {
			items[i].QuoteID = quote.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				quote.Items = items
				return err
			}
		}

		quote.Items = items
		return nil
	})
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("quote_items.position ASC")
		}).
		First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

// UpdateWithItems saves the quote and replaces its entire item list in
// one transaction, keeping the quote id and created_at untouched.
func (r *quoteRepository) UpdateWithItems(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := quote.Items
		quote.Items = nil

		if err := tx.Omit("CreatedAt").Save(quote).Error; err != nil {
			quote.Items = items
			return err
		}

		if err := tx.Unscoped().
			Where("quote_id = ?", quote.ID).
			Delete(&entity.QuoteItem{}).Error; err != nil {
			quote.Items = items
			return err
		}

		for i := range items {
			items[i].ID = uuid.Nil
			items[i].QuoteID = quote.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				quote.Items = items
				return err
			}
		}

		quote.Items = items
		return nil
	})
}

func (r *quoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&entity.QuoteItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Quote{}, "id = ?", id).Error
	})
}

func (r *quoteRepository) List(ctx context.Context, params *domainRepo.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var quotes []entity.Quote
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quote{})

	if params.Search != "" {
		query = query.Where("client_name ILIKE ?", "%"+params.Search+"%")
	}

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order(sortBy + " " + sortOrder).
		Find(&quotes).Error

	return quotes, total, err
}

func (r *quoteRepository) CountByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Quote{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.QuoteItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
