package controllers

import (
	"net/http"

	"alphaflow-backend/models"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Store *store.Store
}

func NewSettingsController(s *store.Store) *SettingsController {
	return &SettingsController{Store: s}
}

func (sc *SettingsController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"config": sc.Store.Config(),
		"mode":   sc.Store.Mode(),
	})
}

type SettingsInput struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl"`
}

func (sc *SettingsController) Update(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	cfg := models.SystemConfig{Name: input.Name, LogoURL: input.LogoURL}
	sc.Store.SetConfig(cfg)
	c.JSON(http.StatusOK, cfg)
}

type ModeInput struct {
	Mode string `json:"mode" binding:"required,oneof=BARBER CLINIC"`
}

// UpdateMode switches between barbershop and clinic mode. The service catalog
// resets to the new mode's defaults.
func (sc *SettingsController) UpdateMode(c *gin.Context) {
	var input ModeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	sc.Store.SetMode(models.AppMode(input.Mode))
	c.JSON(http.StatusOK, gin.H{"mode": sc.Store.Mode()})
}

type ProfileInput struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Password  *string `json:"password"`
}

// UpdateProfile lets the authenticated user edit their own record.
func (sc *SettingsController) UpdateProfile(c *gin.Context) {
	actorID, _, err := currentActor(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	user, err := sc.Store.UserByID(actorID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hash
	}

	if err := sc.Store.UpdateUser(user); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
