package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types accepted at creation time. The type only determines the
// sign of Amount and is never persisted.
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Transaction is a single ledger entry. Rows are append-only: no update or
// delete operation exists anywhere in the application.
//
// SessionID is deliberately a plain string with no session table behind it: a
// session exists only as the set of transactions sharing the same token.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Amount    float64   `gorm:"not null" json:"amount"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}
