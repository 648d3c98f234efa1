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

type ProductController struct {
	Store *store.Store
}

func NewProductController(s *store.Store) *ProductController {
	return &ProductController{Store: s}
}

type ProductInput struct {
	Name           string           `json:"name" binding:"required"`
	Price          decimal.Decimal  `json:"price" binding:"required"`
	Stock          int              `json:"stock" binding:"min=0"`
	Category       string           `json:"category"`
	Commission     *decimal.Decimal `json:"commissionPercentage"`
	RecommendedFor []string         `json:"recommendedFor"`
}

func (in ProductInput) validate() error {
	if in.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if in.Commission != nil && (in.Commission.IsNegative() || in.Commission.GreaterThan(decimal.NewFromInt(100))) {
		return errors.New("commission percentage must be between 0 and 100")
	}
	return nil
}

func (pc *ProductController) Create(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	product := models.Product{
		ID:             uuid.New(),
		Name:           input.Name,
		Price:          input.Price,
		Stock:          input.Stock,
		Category:       input.Category,
		Commission:     input.Commission,
		RecommendedFor: input.RecommendedFor,
	}
	pc.Store.AddProduct(product)

	c.JSON(http.StatusCreated, product)
}

func (pc *ProductController) List(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Store.Products())
}

func (pc *ProductController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	product, err := pc.Store.ProductByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	product, err := pc.Store.ProductByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := input.validate(); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Stock = input.Stock
	product.Category = input.Category
	product.Commission = input.Commission
	product.RecommendedFor = input.RecommendedFor

	if err := pc.Store.UpdateProduct(product); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	if err := pc.Store.DeleteProduct(id); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
