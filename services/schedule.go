package services

import (
	"errors"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business hours rendered by the day grid: 08:00 through 20:00, 13 slots.
const (
	DayStartHour = 8
	DayEndHour   = 20
	daySlots     = DayEndHour - DayStartHour + 1
)

// Placeholder identities for blocks and unresolved references.
const (
	BlockClientName   = "Schedule Block"
	BlockServiceName  = "Unavailable"
	WalkInClientName  = "Walk-in Client"
	CustomServiceName = "Custom Service"
)

// ErrBlockedTransition is returned when a status change would move an
// appointment onto or off the blocked track.
var ErrBlockedTransition = errors.New("blocked entries cannot change status")

// FilterByProfessional keeps appointments belonging to the given professional.
// A nil id is the "all" sentinel and passes everything through.
func FilterByProfessional(appts []models.Appointment, professionalID *uuid.UUID) []models.Appointment {
	if professionalID == nil {
		return appts
	}
	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.ProfessionalID == *professionalID {
			out = append(out, a)
		}
	}
	return out
}

// ForDate keeps appointments starting on the same calendar day as date,
// compared in local time.
func ForDate(appts []models.Appointment, date time.Time) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, a := range appts {
		if utils.SameCalendarDay(a.StartTime, date) {
			out = append(out, a)
		}
	}
	return out
}

// ForRange keeps appointments whose start falls on a day within [from, to],
// both inclusive.
func ForRange(appts []models.Appointment, from, to time.Time) []models.Appointment {
	start := utils.BeginningOfDay(from)
	end := utils.BeginningOfDay(to)
	out := make([]models.Appointment, 0)
	for _, a := range appts {
		d := utils.BeginningOfDay(a.StartTime)
		if !d.Before(start) && !d.After(end) {
			out = append(out, a)
		}
	}
	return out
}

// GroupByHour buckets a day's appointments by start hour (0-23).
func GroupByHour(dayAppts []models.Appointment) map[int][]models.Appointment {
	groups := make(map[int][]models.Appointment)
	for _, a := range dayAppts {
		h := a.StartTime.Hour()
		groups[h] = append(groups[h], a)
	}
	return groups
}

// OccupancyRate is the fraction of business-hour slots holding at least one
// entry (blocks count as occupied).
func OccupancyRate(dayAppts []models.Appointment) float64 {
	occupied := make(map[int]bool)
	for _, a := range dayAppts {
		h := a.StartTime.Hour()
		if h >= DayStartHour && h <= DayEndHour {
			occupied[h] = true
		}
	}
	return float64(len(occupied)) / float64(daySlots)
}

// AppointmentInput is the schedule form as submitted. Status is advisory:
// blocking forces BLOCKED, and a stray BLOCKED status outside blocking mode is
// coerced back to SCHEDULED.
type AppointmentInput struct {
	ClientID        *uuid.UUID
	ServiceID       *uuid.UUID
	ProfessionalID  uuid.UUID
	Start           time.Time
	DurationMinutes int
	Notes           string
	Blocking        bool
	Status          models.AppointmentStatus
}

// BuildFromForm synthesizes an appointment from a form submission. Unresolved
// client/service references fall back to walk-in placeholders; the service
// price is snapshotted onto the appointment and never recomputed. Overlapping
// bookings for the same professional are intentionally not rejected.
func BuildFromForm(in AppointmentInput, clients map[uuid.UUID]models.Client, services map[uuid.UUID]models.Service) models.Appointment {
	end := in.Start.Add(time.Duration(in.DurationMinutes) * time.Minute)

	if in.Blocking {
		return models.Appointment{
			ID:             uuid.New(),
			ClientName:     BlockClientName,
			ProfessionalID: in.ProfessionalID,
			ServiceName:    BlockServiceName,
			StartTime:      in.Start,
			EndTime:        end,
			Status:         models.StatusBlocked,
			Price:          decimal.Zero,
			Notes:          in.Notes,
		}
	}

	appt := models.Appointment{
		ID:             uuid.New(),
		ClientName:     WalkInClientName,
		ProfessionalID: in.ProfessionalID,
		ServiceName:    CustomServiceName,
		StartTime:      in.Start,
		EndTime:        end,
		Status:         in.Status,
		Price:          decimal.Zero,
		Notes:          in.Notes,
	}
	if appt.Status == "" || appt.Status == models.StatusBlocked {
		appt.Status = models.StatusScheduled
	}
	if in.ClientID != nil {
		if cl, ok := clients[*in.ClientID]; ok {
			id := cl.ID
			appt.ClientID = &id
			appt.ClientName = cl.Name
		}
	}
	if in.ServiceID != nil {
		if sv, ok := services[*in.ServiceID]; ok {
			id := sv.ID
			appt.ServiceID = &id
			appt.ServiceName = sv.Name
			appt.Price = sv.Price
		}
	}
	return appt
}

// CanTransition enforces the blocked track: a block never becomes a booking
// and a booking never becomes a block. Everything else follows the form.
func CanTransition(from, to models.AppointmentStatus) bool {
	if from == to {
		return true
	}
	if from == models.StatusBlocked || to == models.StatusBlocked {
		return false
	}
	return true
}
