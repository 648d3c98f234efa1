package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Price          decimal.Decimal  `json:"price"`
	Stock          int              `json:"stock"`
	Category       string           `json:"category"`
	Commission     *decimal.Decimal `json:"commissionPercentage,omitempty"`
	RecommendedFor []string         `json:"recommendedFor,omitempty"` // visagism trait tags
}
