package ledger

import (
	"context"

	"moneta/internal/models"

	"github.com/google/uuid"
)

// Service exposes the four ledger operations. Every operation is scoped to a
// session token; there is no cross-session read path.
type Service interface {
	Create(ctx context.Context, sessionID string, req CreateRequest) error
	List(ctx context.Context, sessionID string) ([]models.Transaction, error)
	Get(ctx context.Context, sessionID string, id uuid.UUID) (*models.Transaction, error)
	Summary(ctx context.Context, sessionID string) (Summary, error)
}

// SummaryCache is the subset of cache operations the service needs. A nil
// cache is valid and means every summary is computed from the store.
type SummaryCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}
