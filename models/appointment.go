package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusBlocked   AppointmentStatus = "BLOCKED"
)

// Appointment is either a client booking or a schedule block. Blocks carry no
// client/service identity and always have price 0. ClientName, ServiceName and
// Price are snapshots taken when the appointment is created or edited; later
// catalog changes do not propagate.
type Appointment struct {
	ID             uuid.UUID         `json:"id"`
	ClientID       *uuid.UUID        `json:"clientId,omitempty"`
	ClientName     string            `json:"clientName"`
	ProfessionalID uuid.UUID         `json:"professionalId"`
	ServiceID      *uuid.UUID        `json:"serviceId,omitempty"`
	ServiceName    string            `json:"serviceName"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        time.Time         `json:"endTime"`
	Status         AppointmentStatus `json:"status"`
	Price          decimal.Decimal   `json:"price"`
	Notes          string            `json:"notes,omitempty"`
}

func (a Appointment) IsBlock() bool {
	return a.Status == StatusBlocked
}
