package controllers

import (
	"net/http"
	"time"

	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
)

// AssistantController fronts the external generative-text collaborator. Every
// handler answers 200 with a tri-state result payload: a degraded collaborator
// yields status "failed" and fallback text, never an error response.
type AssistantController struct {
	Store  *store.Store
	Client *services.AssistantClient
}

func NewAssistantController(s *store.Store, client *services.AssistantClient) *AssistantController {
	return &AssistantController{Store: s, Client: client}
}

// FinancialAnalysis summarizes the actor's visible ledger window.
func (ac *AssistantController) FinancialAnalysis(c *gin.Context) {
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
	visible := services.VisibleRecords(ac.Store.FinancialRecords(), role, period, time.Now(), proFilter)

	c.JSON(http.StatusOK, ac.Client.AnalyzeFinancials(c.Request.Context(), visible))
}

// SchedulingSuggestion asks for gap-filling advice over a day's agenda.
func (ac *AssistantController) SchedulingSuggestion(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	day, err := parseLocalDate(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	appts := services.ForDate(ac.Store.Appointments(), day)
	c.JSON(http.StatusOK, ac.Client.SuggestScheduling(c.Request.Context(), appts, date))
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}

func (ac *AssistantController) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, ac.Client.Chat(c.Request.Context(), input.Message, input.Context))
}
