package controllers

import (
	"errors"
	"net/http"

	"alphaflow-backend/models"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientController struct {
	Store *store.Store
}

func NewClientController(s *store.Store) *ClientController {
	return &ClientController{Store: s}
}

// CreateClientInput defines the intake form.
type CreateClientInput struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	Email         string          `json:"email"`
	Address       *models.Address `json:"address"`
	Notes         string          `json:"notes"`
	MedicalRecord string          `json:"medicalRecord"`
}

type UpdateClientInput struct {
	Name          *string         `json:"name"`
	Phone         *string         `json:"phone"`
	Email         *string         `json:"email"`
	Address       *models.Address `json:"address"`
	Notes         *string         `json:"notes"`
	MedicalRecord *string         `json:"medicalRecord"`
}

func (cc *ClientController) Create(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client := models.Client{
		ID:            uuid.New(),
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Notes:         input.Notes,
		MedicalRecord: input.MedicalRecord,
		TotalSpent:    decimal.Zero,
	}
	cc.Store.AddClient(client)

	c.JSON(http.StatusCreated, client)
}

func (cc *ClientController) List(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Clients())
}

func (cc *ClientController) Get(c *gin.Context) {
	client, ok := cc.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) Update(c *gin.Context) {
	client, ok := cc.lookup(c)
	if !ok {
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.MedicalRecord != nil {
		client.MedicalRecord = *input.MedicalRecord
	}

	if err := cc.Store.UpdateClient(client); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateVisagism stores the client's visagism profile.
func (cc *ClientController) UpdateVisagism(c *gin.Context) {
	client, ok := cc.lookup(c)
	if !ok {
		return
	}

	var profile models.VisagismProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client.Visagism = &profile
	if err := cc.Store.UpdateClient(client); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Recommendations matches the client's visagism traits against the product
// catalog tags.
func (cc *ClientController) Recommendations(c *gin.Context) {
	client, ok := cc.lookup(c)
	if !ok {
		return
	}
	if client.Visagism == nil {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}
	recs := services.RecommendProducts(cc.Store.Products(), *client.Visagism)
	if recs == nil {
		recs = []models.Product{}
	}
	c.JSON(http.StatusOK, recs)
}

func (cc *ClientController) lookup(c *gin.Context) (models.Client, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return models.Client{}, false
	}
	client, err := cc.Store.ClientByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Lookup failed")
		}
		return models.Client{}, false
	}
	return client, true
}
