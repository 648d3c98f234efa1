package store

import (
	"alphaflow-backend/models"
	"alphaflow-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seed data mirrors the stock dataset the console ships with: one admin
// account and a small retail catalog. Clients, appointments and the ledger
// start empty.

func (s *Store) seed() {
	hash, err := utils.HashPassword("admin")
	if err != nil {
		panic("seed: hashing admin password: " + err.Error())
	}
	admin := models.User{
		ID:        uuid.New(),
		Name:      "Admin Master",
		Email:     "admin@alphaflow.com",
		Password:  hash,
		Role:      models.RoleAdmin,
		AvatarURL: "https://ui-avatars.com/api/?name=Admin+Master&background=10b981&color=fff",
		IsActive:  true,
	}
	s.users[admin.ID] = admin

	for _, p := range seedProducts() {
		s.products[p.ID] = p
	}
	for _, sv := range seedServices(s.mode) {
		s.services[sv.ID] = sv
	}
}

func pct(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:         uuid.New(),
			Name:       "Matte Styling Pomade",
			Price:      decimal.NewFromFloat(35.00),
			Stock:      15,
			Category:   "Hair",
			Commission: pct(10),
		},
		{
			ID:         uuid.New(),
			Name:       "Premium Beard Oil",
			Price:      decimal.NewFromFloat(45.00),
			Stock:      8,
			Category:   "Beard",
			Commission: pct(15),
		},
		{
			ID:         uuid.New(),
			Name:       "Anti Hair-Loss Shampoo",
			Price:      decimal.NewFromFloat(55.00),
			Stock:      12,
			Category:   "Hair",
			Commission: pct(10),
		},
		{
			ID:         uuid.New(),
			Name:       "Extra Strong Styling Gel",
			Price:      decimal.NewFromFloat(25.00),
			Stock:      20,
			Category:   "Hair",
			Commission: pct(5),
		},
		{
			ID:         uuid.New(),
			Name:       "Moisturizing Beard Balm",
			Price:      decimal.NewFromFloat(30.00),
			Stock:      10,
			Category:   "Beard",
			Commission: pct(10),
		},
	}
}

// Both modes currently start with an empty catalog; services are created
// through catalog management. The split is kept so barber and clinic defaults
// can diverge.
func seedServices(mode models.AppMode) []models.Service {
	switch mode {
	case models.ModeClinic:
		return nil
	default:
		return nil
	}
}
