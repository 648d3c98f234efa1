package services

import (
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period is the rolling filter window applied to financial and commission
// views, anchored to the current date.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek:
		return Period(s)
	default:
		return PeriodMonth
	}
}

// Window is an inclusive calendar-day range in local time.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowAt resolves the period relative to today: the same calendar day, the
// Sunday-to-Saturday week containing today, or the calendar month.
func (p Period) WindowAt(today time.Time) Window {
	day := utils.BeginningOfDay(today)
	switch p {
	case PeriodDay:
		return Window{Start: day, End: day}
	case PeriodWeek:
		start, end := utils.WeekBounds(day)
		return Window{Start: start, End: end}
	default:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 1, -1)
		return Window{Start: start, End: end}
	}
}

// Contains truncates t to its calendar day and tests it against both
// boundaries inclusively.
func (w Window) Contains(t time.Time) bool {
	d := utils.BeginningOfDay(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// VisibleRecords applies the three ledger visibility gates; a record must pass
// all of them.
//
// Role gate: professionals never see expense records, regardless of
// attribution. Period gate: the record's calendar day must fall inside the
// window. Attribution gate, active only when a specific professional is
// selected: attributed records must match the selected id exactly;
// unattributed INCOME is presumed general and excluded, while unattributed
// EXPENSE passes as shared overhead. The asymmetry is a business rule, not an
// accident.
func VisibleRecords(records []models.FinancialRecord, role models.UserRole, period Period, today time.Time, selectedPro *uuid.UUID) []models.FinancialRecord {
	window := period.WindowAt(today)
	out := make([]models.FinancialRecord, 0, len(records))
	for _, r := range records {
		if role == models.RoleProfessional && r.Type == models.RecordExpense {
			continue
		}
		if !window.Contains(r.Date) {
			continue
		}
		if selectedPro != nil {
			if r.ProfessionalID == nil {
				if r.Type == models.RecordIncome {
					continue
				}
			} else if *r.ProfessionalID != *selectedPro {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

func Summarize(records []models.FinancialRecord) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, r := range records {
		switch r.Type {
		case models.RecordIncome:
			income = income.Add(r.Amount)
		case models.RecordExpense:
			expense = expense.Add(r.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// CommissionLine is one row of the commission report.
type CommissionLine struct {
	ProfessionalID   uuid.UUID       `json:"professionalId"`
	ProfessionalName string          `json:"professionalName"`
	ServicesDone     int             `json:"servicesDone"`
	TotalCommission  decimal.Decimal `json:"totalCommission"`
}

// CommissionReport computes, per staff member, the commission earned on
// completed appointments inside the period window. It is derived from the
// schedule, not the ledger: commissions are never ledger entries here.
func CommissionReport(users []models.User, appts []models.Appointment, services map[uuid.UUID]models.Service, period Period, today time.Time, selectedPro *uuid.UUID) []CommissionLine {
	window := period.WindowAt(today)
	lines := make([]CommissionLine, 0)
	for _, u := range users {
		if !u.Role.IsStaff() {
			continue
		}
		if selectedPro != nil && u.ID != *selectedPro {
			continue
		}
		total := decimal.Zero
		count := 0
		for _, a := range appts {
			if a.ProfessionalID != u.ID || a.Status != models.StatusCompleted {
				continue
			}
			if !window.Contains(a.StartTime) {
				continue
			}
			total = total.Add(CommissionFor(a, services))
			count++
		}
		lines = append(lines, CommissionLine{
			ProfessionalID:   u.ID,
			ProfessionalName: u.Name,
			ServicesDone:     count,
			TotalCommission:  total,
		})
	}
	return lines
}
