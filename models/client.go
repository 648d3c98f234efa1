package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// VisagismProfile stores the traits used to match products via their
// RecommendedFor tags.
type VisagismProfile struct {
	FaceShape  string `json:"faceShape"`
	HairType   string `json:"hairType"`
	BeardStyle string `json:"beardStyle"`
	Notes      string `json:"notes"`
}

func (p VisagismProfile) Traits() []string {
	var traits []string
	for _, t := range []string{p.FaceShape, p.HairType, p.BeardStyle} {
		if t != "" {
			traits = append(traits, t)
		}
	}
	return traits
}

type Client struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email,omitempty"`
	Address       *Address         `json:"address,omitempty"`
	TotalSpent    decimal.Decimal  `json:"totalSpent"`
	LastVisit     *time.Time       `json:"lastVisit,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	MedicalRecord string           `json:"medicalRecord,omitempty"` // clinic mode only
	Visagism      *VisagismProfile `json:"visagismProfile,omitempty"`
}
