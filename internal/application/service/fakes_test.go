package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/internal/domain/repository"
	"github.com/konnekit/orcamentos-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests.

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now()
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *client
	return &cp, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Client, int64, error) {
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeClientRepo) ListWithCursor(_ context.Context, _ *pagination.CursorParams, _ string) ([]entity.Client, error) {
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeQuoteRepo struct {
	quotes map[uuid.UUID]*entity.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]*entity.Quote)}
}

func (r *fakeQuoteRepo) CreateWithItems(_ context.Context, quote *entity.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	quote.CreatedAt = time.Now()
	for i := range quote.Items {
		if quote.Items[i].ID == uuid.Nil {
			quote.Items[i].ID = uuid.New()
		}
		quote.Items[i].QuoteID = quote.ID
	}
	cp := *quote
	cp.Items = append([]entity.QuoteItem(nil), quote.Items...)
	r.quotes[quote.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *quote
	return &cp, nil
}

func (r *fakeQuoteRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *quote
	cp.Items = append([]entity.QuoteItem(nil), quote.Items...)
	return &cp, nil
}

func (r *fakeQuoteRepo) UpdateWithItems(_ context.Context, quote *entity.Quote) error {
	existing, ok := r.quotes[quote.ID]
	if ok {
		quote.CreatedAt = existing.CreatedAt
	}
	for i := range quote.Items {
		if quote.Items[i].ID == uuid.Nil {
			quote.Items[i].ID = uuid.New()
		}
		quote.Items[i].QuoteID = quote.ID
	}
	cp := *quote
	cp.Items = append([]entity.QuoteItem(nil), quote.Items...)
	r.quotes[quote.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.quotes, id)
	return nil
}

func (r *fakeQuoteRepo) List(_ context.Context, params *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	out := make([]entity.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		if params.ClientID != nil && q.ClientID != *params.ClientID {
			continue
		}
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuoteRepo) CountByClient(_ context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	for _, q := range r.quotes {
		if q.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

func (r *fakeQuoteRepo) CountItemsByProduct(_ context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	for _, q := range r.quotes {
		for _, item := range q.Items {
			if item.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}
