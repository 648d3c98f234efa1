package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordType string

const (
	RecordIncome  RecordType = "INCOME"
	RecordExpense RecordType = "EXPENSE"
)

// FinancialRecord is a ledger entry. Amount is always positive; the sign is
// implied by Type. Records are immutable once created.
type FinancialRecord struct {
	ID             uuid.UUID       `json:"id"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Type           RecordType      `json:"type"`
	Category       string          `json:"category"`
	ProfessionalID *uuid.UUID      `json:"professionalId,omitempty"`
}
