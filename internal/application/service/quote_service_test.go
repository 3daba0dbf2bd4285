package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/internal/domain/enum"
	"github.com/konnekit/orcamentos-api/pkg/apperror"
)

func newQuoteServiceFixture(t *testing.T) (*QuoteService, *fakeClientRepo, *fakeProductRepo, *fakeQuoteRepo) {
	t.Helper()
	clientRepo := newFakeClientRepo()
	productRepo := newFakeProductRepo()
	quoteRepo := newFakeQuoteRepo()
	return NewQuoteService(quoteRepo, clientRepo, productRepo), clientRepo, productRepo, quoteRepo
}

func seedClient(t *testing.T, repo *fakeClientRepo, name string) *entity.Client {
	t.Helper()
	client := &entity.Client{Name: name}
	if err := repo.Create(context.Background(), client); err != nil {
		t.Fatalf("seeding client: %v", err)
	}
	return client
}

func seedProduct(t *testing.T, repo *fakeProductRepo, description string, price float64) *entity.Product {
	t.Helper()
	product := &entity.Product{Description: description, Price: price}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("seeding product: %v", err)
	}
	return product
}

func TestCreateQuote(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "PANCINI")
	switchP := seedProduct(t, productRepo, "Switch 24 portas", 105)
	firewall := seedProduct(t, productRepo, "Firewall", 2920)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items: []QuoteItemInput{
			{ProductID: switchP.ID, Quantity: 2},
			{ProductID: firewall.ID, Quantity: 1},
		},
		LaborCost:      500,
		MonthlyService: enum.MonthlyServiceOne,
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}

	if quote.ClientName != "PANCINI" {
		t.Errorf("ClientName = %q, want snapshot of client name", quote.ClientName)
	}
	if len(quote.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(quote.Items))
	}
	if quote.Items[0].Description != "Switch 24 portas" {
		t.Errorf("Items[0].Description = %q, want catalog snapshot", quote.Items[0].Description)
	}
	if quote.Items[0].UnitPrice != 105 {
		t.Errorf("Items[0].UnitPrice = %v, want catalog price 105", quote.Items[0].UnitPrice)
	}
	if got := quote.GrandTotal(); got != 3630 {
		t.Errorf("GrandTotal() = %v, want 3630", got)
	}
}

func TestCreateQuote_MergesDuplicateProducts(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	product := seedProduct(t, productRepo, "Access Point", 450)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items: []QuoteItemInput{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: product.ID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}

	if len(quote.Items) != 1 {
		t.Fatalf("len(Items) = %d, want duplicates merged into 1", len(quote.Items))
	}
	if quote.Items[0].Quantity != 5 {
		t.Errorf("Quantity = %d, want quantities summed to 5", quote.Items[0].Quantity)
	}
}

func TestCreateQuote_ClampsQuantity(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	product := seedProduct(t, productRepo, "Roteador", 350)

	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 0}},
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}

	if quote.Items[0].Quantity != 1 {
		t.Errorf("Quantity = %d, want clamped to 1", quote.Items[0].Quantity)
	}
}

func TestCreateQuote_PriceOverride(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	product := seedProduct(t, productRepo, "Patch Panel", 200)

	override := 180.0
	quote, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1, UnitPrice: &override}},
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}

	if quote.Items[0].UnitPrice != 180 {
		t.Errorf("UnitPrice = %v, want override 180", quote.Items[0].UnitPrice)
	}
}

func TestCreateQuote_Validation(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	product := seedProduct(t, productRepo, "Cabo", 10)

	tests := []struct {
		name  string
		input *CreateQuoteInput
	}{
		{
			"no items",
			&CreateQuoteInput{ClientID: client.ID},
		},
		{
			"negative labor cost",
			&CreateQuoteInput{
				ClientID:  client.ID,
				Items:     []QuoteItemInput{{ProductID: product.ID, Quantity: 1}},
				LaborCost: -1,
			},
		},
		{
			"invalid monthly service tier",
			&CreateQuoteInput{
				ClientID:       client.ID,
				Items:          []QuoteItemInput{{ProductID: product.ID, Quantity: 1}},
				MonthlyService: enum.MonthlyServiceTier("4"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuote(context.Background(), tt.input)
			if err == nil {
				t.Fatal("CreateQuote() expected validation error, got nil")
			}
			appErr := apperror.GetAppError(err)
			if appErr.Code != 422 {
				t.Errorf("error code = %d, want 422", appErr.Code)
			}
		})
	}
}

func TestCreateQuote_UnknownClient(t *testing.T) {
	svc, _, productRepo, _ := newQuoteServiceFixture(t)
	product := seedProduct(t, productRepo, "Cabo", 10)

	_, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: uuid.New(),
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("CreateQuote() expected not found error, got nil")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("error code = %d, want 404", appErr.Code)
	}
}

func TestCreateQuote_UnknownProduct(t *testing.T) {
	svc, clientRepo, _, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")

	_, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("CreateQuote() expected not found error, got nil")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("error code = %d, want 404", appErr.Code)
	}
}

func TestUpdateQuote_ReplacesItemsKeepsIdentity(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	first := seedProduct(t, productRepo, "Switch", 105)
	second := seedProduct(t, productRepo, "Firewall", 2920)

	created, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: first.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}

	updated, err := svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		ID:             created.ID,
		ClientID:       client.ID,
		Items:          []QuoteItemInput{{ProductID: second.ID, Quantity: 2}},
		LaborCost:      100,
		MonthlyService: enum.MonthlyServiceHalf,
	})
	if err != nil {
		t.Fatalf("UpdateQuote() error = %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("ID changed on update: %s -> %s", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed on update")
	}
	if len(updated.Items) != 1 || updated.Items[0].ProductID != second.ID {
		t.Errorf("item list was not replaced wholesale")
	}
	if updated.LaborCost != 100 {
		t.Errorf("LaborCost = %v, want 100", updated.LaborCost)
	}
	if updated.MonthlyService != enum.MonthlyServiceHalf {
		t.Errorf("MonthlyService = %q, want %q", updated.MonthlyService, enum.MonthlyServiceHalf)
	}
}

func TestUpdateQuote_NotFound(t *testing.T) {
	svc, clientRepo, productRepo, _ := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	product := seedProduct(t, productRepo, "Cabo", 10)

	_, err := svc.UpdateQuote(context.Background(), &UpdateQuoteInput{
		ID:       uuid.New(),
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("UpdateQuote() expected not found error, got nil")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("error code = %d, want 404", appErr.Code)
	}
}

func TestDeleteQuote(t *testing.T) {
	svc, clientRepo, productRepo, quoteRepo := newQuoteServiceFixture(t)
	client := seedClient(t, clientRepo, "ACME")
	product := seedProduct(t, productRepo, "Cabo", 10)

	created, err := svc.CreateQuote(context.Background(), &CreateQuoteInput{
		ClientID: client.ID,
		Items:    []QuoteItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateQuote() error = %v", err)
	}

	if err := svc.DeleteQuote(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteQuote() error = %v", err)
	}
	if _, ok := quoteRepo.quotes[created.ID]; ok {
		t.Error("quote still present after delete")
	}

	if err := svc.DeleteQuote(context.Background(), created.ID); err == nil {
		t.Fatal("DeleteQuote() on missing quote expected error, got nil")
	}
}
