package controllers

import (
	"errors"
	"net/http"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type POSController struct {
	Store *store.Store
}

func NewPOSController(s *store.Store) *POSController {
	return &POSController{Store: s}
}

type CheckoutLine struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Type     string    `json:"type" binding:"required,oneof=PRODUCT SERVICE"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type CheckoutInput struct {
	Items         []CheckoutLine `json:"items" binding:"required,min=1,dive"`
	ClientID      *uuid.UUID     `json:"clientId"`
	PaymentMethod string         `json:"paymentMethod" binding:"required"`
}

// Checkout rebuilds the cart server-side, re-running the add-time stock
// precondition per unit, then finalizes the sale atomically: stock decrement,
// one INCOME ledger record, and the client spend update land together.
func (pc *POSController) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	products := pc.Store.Products()
	productIdx := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		productIdx[p.ID] = p
	}
	serviceIdx := services.IndexServices(pc.Store.Services())

	var cart services.Cart
	for _, line := range input.Items {
		switch services.ItemType(line.Type) {
		case services.ItemProduct:
			p, ok := productIdx[line.ID]
			if !ok {
				utils.RespondWithError(c, http.StatusNotFound, "Product not found: "+line.ID.String())
				return
			}
			for i := 0; i < line.Quantity; i++ {
				if err := cart.AddProduct(p); err != nil {
					if errors.Is(err, services.ErrInsufficientStock) {
						utils.RespondWithError(c, http.StatusConflict, "Insufficient stock for "+p.Name)
						return
					}
					utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build cart")
					return
				}
			}
		case services.ItemService:
			sv, ok := serviceIdx[line.ID]
			if !ok {
				utils.RespondWithError(c, http.StatusNotFound, "Service not found: "+line.ID.String())
				return
			}
			for i := 0; i < line.Quantity; i++ {
				cart.AddService(sv)
			}
		}
	}

	// Unresolved client ids fall back to a walk-in sale rather than failing.
	var client *models.Client
	if input.ClientID != nil {
		if cl, err := pc.Store.ClientByID(*input.ClientID); err == nil {
			client = &cl
		}
	}

	result := services.FinalizeSale(cart, client, input.PaymentMethod, productIdx, time.Now())
	pc.Store.ApplySale(result)

	receipt := gin.H{
		"items":         cart.Items,
		"total":         result.Total,
		"paymentMethod": result.PaymentMethod,
		"date":          result.Record.Date,
		"record":        result.Record,
		"client":        services.WalkInSaleLabel,
	}
	if client != nil {
		receipt["client"] = client.Name
	}
	c.JSON(http.StatusCreated, receipt)
}
