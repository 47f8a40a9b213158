// Package ledger implements the session-scoped transaction ledger: create,
// list, get-by-id, and summary over an append-only set of entries.
package ledger

import (
	"context"
	"fmt"
	"log"

	"moneta/internal/models"
	"moneta/internal/repositories"
	"moneta/internal/repositories/cache"
	"moneta/internal/validation"

	"github.com/google/uuid"
)

type service struct {
	repo  repositories.TransactionRepository
	cache SummaryCache
}

// NewService creates a new ledger service. The cache may be nil.
func NewService(repo repositories.TransactionRepository, summaryCache SummaryCache) Service {
	if repo == nil {
		panic("repo is required")
	}

	return &service{
		repo:  repo,
		cache: summaryCache,
	}
}

func (s *service) Create(ctx context.Context, sessionID string, req CreateRequest) error {
	if err := validateCreate(req); err != nil {
		return err
	}

	amount := *req.Amount
	if req.Type == models.TransactionTypeDebit {
		amount = -amount
	}

	tx := &models.Transaction{
		ID:        uuid.New(),
		Title:     req.Title,
		Amount:    amount,
		SessionID: sessionID,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	// Best effort: on failure the stale entry expires with its TTL.
	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.SummaryKey(sessionID)); err != nil {
			log.Printf("Failed to invalidate summary cache: %v", err)
		}
	}

	return nil
}

func (s *service) List(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	transactions, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Get returns (nil, nil) when no entry matches. Entries owned by other
// sessions are reported the same way as nonexistent ids.
func (s *service) Get(ctx context.Context, sessionID string, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.repo.GetForSession(ctx, sessionID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	key := cache.SummaryKey(sessionID)

	if s.cache != nil {
		var cached Summary
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("Failed to read summary cache: %v", err)
		} else if found {
			return cached, nil
		}
	}

	total, err := s.repo.SumBySession(ctx, sessionID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	summary := Summary{Amount: total}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary); err != nil {
			log.Printf("Failed to write summary cache: %v", err)
		}
	}

	return summary, nil
}

func validateCreate(req CreateRequest) error {
	v := validation.New()
	v.Check(req.Title != "", "title", "is required")
	v.Check(req.Amount != nil, "amount", "is required")
	v.Check(req.Type == models.TransactionTypeCredit || req.Type == models.TransactionTypeDebit,
		"type", "must be credit or debit")
	return v.Err()
}
