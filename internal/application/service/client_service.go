package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/internal/domain/repository"
	"github.com/konnekit/orcamentos-api/pkg/apperror"
	"github.com/konnekit/orcamentos-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
	quoteRepo  repository.QuoteRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository, quoteRepo repository.QuoteRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo, quoteRepo: quoteRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name  string
	Phone *string
	Email *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	client := &entity.Client{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists clients with page-based pagination
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	params.Validate()
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// ListClientsWithCursor lists clients with cursor-based pagination
func (s *ClientService) ListClientsWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Client], error) {
	params.Validate()
	clients, err := s.clientRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag, clients := pagination.NewCursorPagination(clients, params.Limit,
		func(c entity.Client) string { return c.ID.String() },
		func(c entity.Client) time.Time { return c.CreatedAt },
	)
	pag.HasPrev = params.Cursor != ""

	return pagination.NewCursorPaginatedResult(clients, pag), nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	ID    uuid.UUID
	Name  *string
	Phone *string
	Email *string
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name cannot be empty"},
			})
		}
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Email != nil {
		client.Email = input.Email
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client. A client referenced by any quote
// cannot be removed.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	count, err := s.quoteRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewReferentialIntegrityError("Client is referenced by existing quotes and cannot be deleted")
	}

	return s.clientRepo.Delete(ctx, id)
}
