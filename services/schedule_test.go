package services

import (
	"testing"
	"time"

	"alphaflow-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func TestBuildFromForm(t *testing.T) {
	pro := uuid.New()
	client := models.Client{ID: uuid.New(), Name: "Carlos Mendes"}
	svc := models.Service{
		ID:         uuid.New(),
		Name:       "Fade Cut",
		Price:      decimal.NewFromInt(60),
		Commission: decPtr(10),
	}
	clients := map[uuid.UUID]models.Client{client.ID: client}
	services := map[uuid.UUID]models.Service{svc.ID: svc}

	t.Run("resolves client and snapshots the service price", func(t *testing.T) {
		cid, sid := client.ID, svc.ID
		appt := BuildFromForm(AppointmentInput{
			ClientID:        &cid,
			ServiceID:       &sid,
			ProfessionalID:  pro,
			Start:           localDate(2026, time.March, 10, 9, 0),
			DurationMinutes: 45,
		}, clients, services)

		require.NotNil(t, appt.ClientID)
		assert.Equal(t, "Carlos Mendes", appt.ClientName)
		assert.Equal(t, "Fade Cut", appt.ServiceName)
		assert.True(t, decimal.NewFromInt(60).Equal(appt.Price))
		assert.Equal(t, models.StatusScheduled, appt.Status)
		assert.Equal(t, localDate(2026, time.March, 10, 9, 45), appt.EndTime)
	})

	t.Run("unresolved references fall back to walk-in placeholders", func(t *testing.T) {
		gone := uuid.New()
		appt := BuildFromForm(AppointmentInput{
			ClientID:        &gone,
			ServiceID:       &gone,
			ProfessionalID:  pro,
			Start:           localDate(2026, time.March, 10, 10, 0),
			DurationMinutes: 30,
		}, clients, services)

		assert.Nil(t, appt.ClientID)
		assert.Equal(t, WalkInClientName, appt.ClientName)
		assert.Equal(t, CustomServiceName, appt.ServiceName)
		assert.True(t, appt.Price.IsZero())
	})

	t.Run("blocking overrides client and service with block placeholders", func(t *testing.T) {
		cid, sid := client.ID, svc.ID
		appt := BuildFromForm(AppointmentInput{
			ClientID:        &cid,
			ServiceID:       &sid,
			ProfessionalID:  pro,
			Start:           localDate(2026, time.March, 10, 12, 0),
			DurationMinutes: 60,
			Blocking:        true,
			Status:          models.StatusCompleted, // ignored when blocking
		}, clients, services)

		assert.Equal(t, models.StatusBlocked, appt.Status)
		assert.True(t, appt.IsBlock())
		assert.Nil(t, appt.ClientID)
		assert.Nil(t, appt.ServiceID)
		assert.Equal(t, BlockClientName, appt.ClientName)
		assert.Equal(t, BlockServiceName, appt.ServiceName)
		assert.True(t, appt.Price.IsZero())
	})

	t.Run("stray BLOCKED status without blocking is coerced to SCHEDULED", func(t *testing.T) {
		appt := BuildFromForm(AppointmentInput{
			ProfessionalID:  pro,
			Start:           localDate(2026, time.March, 10, 14, 0),
			DurationMinutes: 30,
			Status:          models.StatusBlocked,
		}, clients, services)

		assert.Equal(t, models.StatusScheduled, appt.Status)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		appt := BuildFromForm(AppointmentInput{
			ProfessionalID:  pro,
			Start:           localDate(2026, time.March, 10, 15, 0),
			DurationMinutes: 30,
			Status:          models.StatusCompleted,
		}, clients, services)

		assert.Equal(t, models.StatusCompleted, appt.Status)
	})
}

func TestCanTransition(t *testing.T) {
	bookings := []models.AppointmentStatus{
		models.StatusScheduled, models.StatusCompleted, models.StatusCancelled,
	}

	t.Run("bookings move freely between booking statuses", func(t *testing.T) {
		for _, from := range bookings {
			for _, to := range bookings {
				assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("blocked is a dead end in both directions", func(t *testing.T) {
		for _, st := range bookings {
			assert.False(t, CanTransition(models.StatusBlocked, st))
			assert.False(t, CanTransition(st, models.StatusBlocked))
		}
		assert.True(t, CanTransition(models.StatusBlocked, models.StatusBlocked))
	})
}

func TestScheduleFilters(t *testing.T) {
	proA := uuid.New()
	proB := uuid.New()
	appts := []models.Appointment{
		{ID: uuid.New(), ProfessionalID: proA, StartTime: localDate(2026, time.March, 10, 9, 0)},
		{ID: uuid.New(), ProfessionalID: proA, StartTime: localDate(2026, time.March, 10, 9, 30)},
		{ID: uuid.New(), ProfessionalID: proB, StartTime: localDate(2026, time.March, 11, 10, 0)},
	}

	t.Run("nil professional is the all sentinel", func(t *testing.T) {
		assert.Len(t, FilterByProfessional(appts, nil), 3)
	})

	t.Run("filters to the selected professional", func(t *testing.T) {
		got := FilterByProfessional(appts, &proA)
		require.Len(t, got, 2)
		for _, a := range got {
			assert.Equal(t, proA, a.ProfessionalID)
		}
	})

	t.Run("ForDate matches the calendar day", func(t *testing.T) {
		got := ForDate(appts, localDate(2026, time.March, 10, 23, 59))
		assert.Len(t, got, 2)
	})

	t.Run("ForRange is inclusive on both ends", func(t *testing.T) {
		got := ForRange(appts, localDate(2026, time.March, 10, 12, 0), localDate(2026, time.March, 11, 0, 0))
		assert.Len(t, got, 3)
	})

	t.Run("GroupByHour buckets same-hour entries together", func(t *testing.T) {
		day := ForDate(appts, localDate(2026, time.March, 10, 0, 0))
		groups := GroupByHour(day)
		assert.Len(t, groups[9], 2)
	})
}

func TestOccupancyRate(t *testing.T) {
	pro := uuid.New()

	t.Run("empty day is zero", func(t *testing.T) {
		assert.Zero(t, OccupancyRate(nil))
	})

	t.Run("two same-hour entries occupy one slot", func(t *testing.T) {
		day := []models.Appointment{
			{ID: uuid.New(), ProfessionalID: pro, StartTime: localDate(2026, time.March, 10, 9, 0)},
			{ID: uuid.New(), ProfessionalID: pro, StartTime: localDate(2026, time.March, 10, 9, 30)},
		}
		assert.InDelta(t, 1.0/13.0, OccupancyRate(day), 1e-9)
	})

	t.Run("blocks count as occupied, off-hours entries do not", func(t *testing.T) {
		day := []models.Appointment{
			{ID: uuid.New(), ProfessionalID: pro, Status: models.StatusBlocked, StartTime: localDate(2026, time.March, 10, 12, 0)},
			{ID: uuid.New(), ProfessionalID: pro, StartTime: localDate(2026, time.March, 10, 6, 0)}, // before opening
		}
		assert.InDelta(t, 1.0/13.0, OccupancyRate(day), 1e-9)
	})
}
