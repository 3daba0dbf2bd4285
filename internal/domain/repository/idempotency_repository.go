package repository

import (
	"context"

	"github.com/konnekit/orcamentos-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key record, nil if absent.
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	// Create stores a new idempotency key with its cached response.
	Create(ctx context.Context, record *entity.IdempotencyKey) error
	// DeleteExpired removes expired keys, returning the number deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
