package controllers

import (
	"errors"
	"net/http"

	"alphaflow-backend/models"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceController struct {
	Store *store.Store
}

func NewServiceController(s *store.Store) *ServiceController {
	return &ServiceController{Store: s}
}

type ServiceInput struct {
	Name            string           `json:"name" binding:"required"`
	DurationMinutes int              `json:"durationMinutes" binding:"required,gt=0"`
	Price           decimal.Decimal  `json:"price" binding:"required"`
	Category        string           `json:"category"`
	Commission      *decimal.Decimal `json:"commissionPercentage"`
}

func (in ServiceInput) validate() error {
	if in.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if in.Commission != nil && (in.Commission.IsNegative() || in.Commission.GreaterThan(decimal.NewFromInt(100))) {
		return errors.New("commission percentage must be between 0 and 100")
	}
	return nil
}

func (sc *ServiceController) Create(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	service := models.Service{
		ID:              uuid.New(),
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Category:        input.Category,
		Commission:      input.Commission,
	}
	if service.Category == "" {
		service.Category = "General"
	}
	sc.Store.AddService(service)

	c.JSON(http.StatusCreated, service)
}

func (sc *ServiceController) List(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Store.Services())
}

func (sc *ServiceController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	service, err := sc.Store.ServiceByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	service, err := sc.Store.ServiceByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	service.Name = input.Name
	service.DurationMinutes = input.DurationMinutes
	service.Price = input.Price
	service.Commission = input.Commission
	if input.Category != "" {
		service.Category = input.Category
	}

	if err := sc.Store.UpdateService(service); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (sc *ServiceController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	if err := sc.Store.DeleteService(id); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
