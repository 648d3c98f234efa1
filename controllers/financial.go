package controllers

import (
	"net/http"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FinancialController struct {
	Store *store.Store
}

func NewFinancialController(s *store.Store) *FinancialController {
	return &FinancialController{Store: s}
}

// List returns the ledger view for the actor: the visible records after the
// role/period/attribution gates, plus income, expense and balance totals.
// Professionals are scoped to themselves and never see expenses.
func (fc *FinancialController) List(c *gin.Context) {
	actorID, role, err := currentActor(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	proFilter, err := professionalFilter(c, actorID, role)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	period := services.ParsePeriod(c.DefaultQuery("period", "month"))
	visible := services.VisibleRecords(fc.Store.FinancialRecords(), role, period, time.Now(), proFilter)

	c.JSON(http.StatusOK, gin.H{
		"records": visible,
		"summary": services.Summarize(visible),
		"period":  period,
	})
}

type RecordInput struct {
	Date           string            `json:"date" binding:"required"` // YYYY-MM-DD
	Description    string            `json:"description" binding:"required"`
	Amount         decimal.Decimal   `json:"amount" binding:"required"`
	Type           models.RecordType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category       string            `json:"category" binding:"required"`
	ProfessionalID *uuid.UUID        `json:"professionalId"`
}

// CreateRecord appends a manual ledger entry. Records are immutable once
// created; there is no update or delete route.
func (fc *FinancialController) CreateRecord(c *gin.Context) {
	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Amount.IsPositive() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be positive")
		return
	}
	date, err := parseLocalDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	record := models.FinancialRecord{
		ID:             uuid.New(),
		Date:           date,
		Description:    input.Description,
		Amount:         input.Amount,
		Type:           input.Type,
		Category:       input.Category,
		ProfessionalID: input.ProfessionalID,
	}
	fc.Store.AddFinancialRecord(record)

	c.JSON(http.StatusCreated, record)
}

// Commissions reports the per-professional commission totals over completed
// appointments in the period window. Parallel to the ledger, not derived
// from it.
func (fc *FinancialController) Commissions(c *gin.Context) {
	actorID, role, err := currentActor(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	proFilter, err := professionalFilter(c, actorID, role)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	period := services.ParsePeriod(c.DefaultQuery("period", "month"))
	report := services.CommissionReport(
		fc.Store.Users(),
		fc.Store.Appointments(),
		services.IndexServices(fc.Store.Services()),
		period,
		time.Now(),
		proFilter,
	)

	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"period": period,
	})
}
