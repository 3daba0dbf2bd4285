package service

import (
	"context"
	"testing"

	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/pkg/apperror"
)

func TestCreateProduct(t *testing.T) {
	productRepo := newFakeProductRepo()
	svc := NewProductService(productRepo, newFakeQuoteRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Description: "Switch 24 portas",
		Price:       105,
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if product.Description != "Switch 24 portas" || product.Price != 105 {
		t.Errorf("product not stored as given: %+v", product)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeQuoteRepo())

	tests := []struct {
		name  string
		input *CreateProductInput
	}{
		{"empty description", &CreateProductInput{Price: 10}},
		{"negative price", &CreateProductInput{Description: "Cabo", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tt.input)
			if err == nil {
				t.Fatal("CreateProduct() expected validation error, got nil")
			}
			if appErr := apperror.GetAppError(err); appErr.Code != 422 {
				t.Errorf("error code = %d, want 422", appErr.Code)
			}
		})
	}
}

func TestUpdateProduct_DoesNotTouchQuoteSnapshots(t *testing.T) {
	productRepo := newFakeProductRepo()
	quoteRepo := newFakeQuoteRepo()
	svc := NewProductService(productRepo, quoteRepo)
	product := seedProduct(t, productRepo, "Firewall", 2920)

	quote := &entity.Quote{
		ClientName: "ACME",
		Items: []entity.QuoteItem{
			{ProductID: product.ID, Description: product.Description, Quantity: 1, UnitPrice: product.Price},
		},
	}
	if err := quoteRepo.CreateWithItems(context.Background(), quote); err != nil {
		t.Fatalf("seeding quote: %v", err)
	}

	newPrice := 3200.0
	if _, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{ID: product.ID, Price: &newPrice}); err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}

	stored, err := quoteRepo.GetWithItems(context.Background(), quote.ID)
	if err != nil {
		t.Fatalf("reloading quote: %v", err)
	}
	if stored.Items[0].UnitPrice != 2920 {
		t.Errorf("quote line price = %v, want snapshot 2920 untouched by catalog edit", stored.Items[0].UnitPrice)
	}
}

func TestDeleteProduct_BlockedByQuoteLines(t *testing.T) {
	productRepo := newFakeProductRepo()
	quoteRepo := newFakeQuoteRepo()
	svc := NewProductService(productRepo, quoteRepo)
	product := seedProduct(t, productRepo, "Access Point", 450)

	quote := &entity.Quote{
		ClientName: "ACME",
		Items: []entity.QuoteItem{
			{ProductID: product.ID, Description: product.Description, Quantity: 1, UnitPrice: product.Price},
		},
	}
	if err := quoteRepo.CreateWithItems(context.Background(), quote); err != nil {
		t.Fatalf("seeding quote: %v", err)
	}

	err := svc.DeleteProduct(context.Background(), product.ID)
	if err == nil {
		t.Fatal("DeleteProduct() expected conflict error, got nil")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 409 {
		t.Errorf("error code = %d, want 409", appErr.Code)
	}

	if err := quoteRepo.Delete(context.Background(), quote.ID); err != nil {
		t.Fatalf("deleting quote: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), product.ID); err != nil {
		t.Fatalf("DeleteProduct() after quote removal error = %v", err)
	}
}
