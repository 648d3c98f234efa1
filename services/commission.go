package services

import (
	"alphaflow-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// IndexServices builds the id lookup the engines resolve snapshots against.
func IndexServices(list []models.Service) map[uuid.UUID]models.Service {
	idx := make(map[uuid.UUID]models.Service, len(list))
	for _, sv := range list {
		idx[sv.ID] = sv
	}
	return idx
}

// CommissionFor returns the professional's share of an appointment's price.
// An unresolved service or a service without a configured percentage yields
// zero rather than an error: dangling references are tolerated everywhere in
// this domain.
func CommissionFor(appt models.Appointment, services map[uuid.UUID]models.Service) decimal.Decimal {
	if appt.ServiceID == nil {
		return decimal.Zero
	}
	sv, ok := services[*appt.ServiceID]
	if !ok || sv.Commission == nil {
		return decimal.Zero
	}
	return appt.Price.Mul(*sv.Commission).Div(hundred)
}

// TotalFor is the single role switch governing every revenue-facing view:
// a professional sees the sum of their commissions, every other role sees the
// sum of raw prices. All money displays must go through this function.
func TotalFor(appts []models.Appointment, role models.UserRole, services map[uuid.UUID]models.Service) decimal.Decimal {
	total := decimal.Zero
	for _, a := range appts {
		if role == models.RoleProfessional {
			total = total.Add(CommissionFor(a, services))
		} else {
			total = total.Add(a.Price)
		}
	}
	return total
}
