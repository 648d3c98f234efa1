package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	DurationMinutes int              `json:"durationMinutes"`
	Price           decimal.Decimal  `json:"price"`
	Category        string           `json:"category"`
	Commission      *decimal.Decimal `json:"commissionPercentage,omitempty"` // 0-100
}
