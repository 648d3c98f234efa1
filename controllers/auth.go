package controllers

import (
	"errors"
	"net/http"
	"time"

	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{Store: s}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the identity records and issues a JWT carrying
// the user's role. The failure reason is surfaced to the caller; the core
// never crashes on a degraded identity collaborator.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ac.Store.UserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Lookup failed")
		}
		return
	}
	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is deactivated")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	ac.Store.TouchLastLogin(user.ID, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's record.
func (ac *AuthController) Me(c *gin.Context) {
	actorID, _, err := currentActor(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := ac.Store.UserByID(actorID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
