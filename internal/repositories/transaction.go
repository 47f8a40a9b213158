package repositories

import (
	"context"

	"moneta/internal/models"

	"github.com/google/uuid"
)

// TransactionRepository is the persistence interface for ledger entries.
// Every query is filtered by session token; there is no way to read another
// session's rows through this interface.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetForSession(ctx context.Context, sessionID string, id uuid.UUID) (*models.Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (float64, error)
}
