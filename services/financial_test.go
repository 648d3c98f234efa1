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

func record(rt models.RecordType, amount int64, date time.Time, pro *uuid.UUID) models.FinancialRecord {
	return models.FinancialRecord{
		ID:             uuid.New(),
		Date:           date,
		Description:    "test entry",
		Amount:         decimal.NewFromInt(amount),
		Type:           rt,
		Category:       "Test",
		ProfessionalID: pro,
	}
}

func TestWindowAt(t *testing.T) {
	// Tuesday, March 10 2026.
	today := localDate(2026, time.March, 10, 15, 30)

	t.Run("day window is just today", func(t *testing.T) {
		w := PeriodDay.WindowAt(today)
		assert.Equal(t, localDate(2026, time.March, 10, 0, 0), w.Start)
		assert.Equal(t, localDate(2026, time.March, 10, 0, 0), w.End)
	})

	t.Run("week window runs Sunday through Saturday", func(t *testing.T) {
		w := PeriodWeek.WindowAt(today)
		assert.Equal(t, localDate(2026, time.March, 8, 0, 0), w.Start)
		assert.Equal(t, localDate(2026, time.March, 14, 0, 0), w.End)
	})

	t.Run("month window covers the calendar month", func(t *testing.T) {
		w := PeriodMonth.WindowAt(today)
		assert.Equal(t, localDate(2026, time.March, 1, 0, 0), w.Start)
		assert.Equal(t, localDate(2026, time.March, 31, 0, 0), w.End)
	})

	t.Run("both window boundaries are inclusive", func(t *testing.T) {
		w := PeriodWeek.WindowAt(today)
		assert.True(t, w.Contains(localDate(2026, time.March, 14, 23, 59)))
		assert.False(t, w.Contains(localDate(2026, time.March, 15, 0, 0)))
		assert.True(t, w.Contains(localDate(2026, time.March, 8, 0, 0)))
		assert.False(t, w.Contains(localDate(2026, time.March, 7, 23, 59)))
	})
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodDay, ParsePeriod("day"))
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodMonth, ParsePeriod("month"))
	// Anything unrecognized defaults to month.
	assert.Equal(t, PeriodMonth, ParsePeriod(""))
	assert.Equal(t, PeriodMonth, ParsePeriod("year"))
}

func TestVisibleRecords(t *testing.T) {
	today := localDate(2026, time.March, 10, 12, 0)
	proA := uuid.New()
	proB := uuid.New()

	income := record(models.RecordIncome, 100, today, nil)
	incomeA := record(models.RecordIncome, 200, today, &proA)
	incomeB := record(models.RecordIncome, 300, today, &proB)
	expense := record(models.RecordExpense, 50, today, nil)
	expenseA := record(models.RecordExpense, 80, today, &proA)
	all := []models.FinancialRecord{income, incomeA, incomeB, expense, expenseA}

	t.Run("professionals never see expenses", func(t *testing.T) {
		got := VisibleRecords(all, models.RoleProfessional, PeriodMonth, today, nil)
		for _, r := range got {
			assert.Equal(t, models.RecordIncome, r.Type)
		}
		assert.Len(t, got, 3)
	})

	t.Run("admin with no selection sees everything in window", func(t *testing.T) {
		got := VisibleRecords(all, models.RoleAdmin, PeriodMonth, today, nil)
		assert.Len(t, got, 5)
	})

	t.Run("selecting a professional: attributed records must match", func(t *testing.T) {
		got := VisibleRecords(all, models.RoleAdmin, PeriodMonth, today, &proA)
		ids := make([]uuid.UUID, 0)
		for _, r := range got {
			ids = append(ids, r.ID)
		}
		assert.Contains(t, ids, incomeA.ID)
		assert.Contains(t, ids, expenseA.ID)
		assert.NotContains(t, ids, incomeB.ID)
	})

	t.Run("unattributed income is excluded under a selection, unattributed expense is not", func(t *testing.T) {
		got := VisibleRecords(all, models.RoleAdmin, PeriodMonth, today, &proA)
		ids := make([]uuid.UUID, 0)
		for _, r := range got {
			ids = append(ids, r.ID)
		}
		assert.NotContains(t, ids, income.ID, "general income must not inflate a professional's view")
		assert.Contains(t, ids, expense.ID, "shared overhead stays visible")
	})

	t.Run("records outside the window are filtered", func(t *testing.T) {
		old := record(models.RecordIncome, 999, localDate(2026, time.February, 28, 12, 0), nil)
		got := VisibleRecords([]models.FinancialRecord{old}, models.RoleAdmin, PeriodMonth, today, nil)
		assert.Empty(t, got)
	})

	t.Run("day period keeps only today's records", func(t *testing.T) {
		yesterday := record(models.RecordIncome, 10, today.AddDate(0, 0, -1), nil)
		got := VisibleRecords([]models.FinancialRecord{income, yesterday}, models.RoleAdmin, PeriodDay, today, nil)
		require.Len(t, got, 1)
		assert.Equal(t, income.ID, got[0].ID)
	})
}

func TestSummarize(t *testing.T) {
	today := localDate(2026, time.March, 10, 12, 0)
	records := []models.FinancialRecord{
		record(models.RecordIncome, 150, today, nil),
		record(models.RecordIncome, 50, today, nil),
		record(models.RecordExpense, 70, today, nil),
	}
	s := Summarize(records)
	assert.True(t, decimal.NewFromInt(200).Equal(s.TotalIncome))
	assert.True(t, decimal.NewFromInt(70).Equal(s.TotalExpense))
	assert.True(t, decimal.NewFromInt(130).Equal(s.Balance))
}

func TestCommissionReport(t *testing.T) {
	today := localDate(2026, time.March, 10, 12, 0)
	svc := models.Service{
		ID:         uuid.New(),
		Name:       "Haircut",
		Price:      decimal.NewFromInt(100),
		Commission: decPtr(10),
	}
	idx := IndexServices([]models.Service{svc})
	sid := svc.ID

	barber := models.User{ID: uuid.New(), Name: "Joao", Role: models.RoleProfessional, IsActive: true}
	admin := models.User{ID: uuid.New(), Name: "Boss", Role: models.RoleAdmin, IsActive: true}
	desk := models.User{ID: uuid.New(), Name: "Front Desk", Role: models.RoleReceptionist, IsActive: true}
	users := []models.User{barber, admin, desk}

	appts := []models.Appointment{
		{ID: uuid.New(), ProfessionalID: barber.ID, ServiceID: &sid, Price: svc.Price, Status: models.StatusCompleted, StartTime: today},
		{ID: uuid.New(), ProfessionalID: barber.ID, ServiceID: &sid, Price: svc.Price, Status: models.StatusCompleted, StartTime: today},
		{ID: uuid.New(), ProfessionalID: barber.ID, ServiceID: &sid, Price: svc.Price, Status: models.StatusScheduled, StartTime: today},
		{ID: uuid.New(), ProfessionalID: barber.ID, ServiceID: &sid, Price: svc.Price, Status: models.StatusCompleted, StartTime: today.AddDate(0, -1, 0)},
	}

	t.Run("counts only completed appointments inside the window", func(t *testing.T) {
		lines := CommissionReport(users, appts, idx, PeriodMonth, today, nil)
		var barberLine *CommissionLine
		for i := range lines {
			if lines[i].ProfessionalID == barber.ID {
				barberLine = &lines[i]
			}
		}
		require.NotNil(t, barberLine)
		assert.Equal(t, 2, barberLine.ServicesDone)
		assert.True(t, decimal.NewFromInt(20).Equal(barberLine.TotalCommission), "got %s", barberLine.TotalCommission)
	})

	t.Run("receptionists do not get a line", func(t *testing.T) {
		lines := CommissionReport(users, appts, idx, PeriodMonth, today, nil)
		for _, l := range lines {
			assert.NotEqual(t, desk.ID, l.ProfessionalID)
		}
		// Admins perform services too and keep a line even at zero.
		found := false
		for _, l := range lines {
			if l.ProfessionalID == admin.ID {
				found = true
				assert.Zero(t, l.ServicesDone)
			}
		}
		assert.True(t, found)
	})

	t.Run("selection narrows the report to one staff member", func(t *testing.T) {
		id := barber.ID
		lines := CommissionReport(users, appts, idx, PeriodMonth, today, &id)
		require.Len(t, lines, 1)
		assert.Equal(t, barber.ID, lines[0].ProfessionalID)
	})
}
