package controllers

import (
	"net/http"

	"alphaflow-backend/models"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamController struct {
	Store *store.Store
}

func NewTeamController(s *store.Store) *TeamController {
	return &TeamController{Store: s}
}

type AddUserInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=4"`
	Role      string `json:"role" binding:"required,oneof=ADMIN PROFESSIONAL RECEPTIONIST"`
	AvatarURL string `json:"avatarUrl"`
}

type UpdateUserInput struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Role      *string `json:"role" binding:"omitempty,oneof=ADMIN PROFESSIONAL RECEPTIONIST"`
	AvatarURL *string `json:"avatarUrl"`
	IsActive  *bool   `json:"isActive"`
}

func (tc *TeamController) List(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Store.Users())
}

func (tc *TeamController) Add(c *gin.Context) {
	var input AddUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := tc.Store.UserByEmail(input.Email); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  hash,
		Role:      models.UserRole(input.Role),
		AvatarURL: input.AvatarURL,
		IsActive:  true,
	}
	tc.Store.AddUser(user)

	c.JSON(http.StatusCreated, user)
}

// Update edits a team member. Users are deactivated, never hard-deleted.
func (tc *TeamController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	user, err := tc.Store.UserByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		if existing, err := tc.Store.UserByEmail(*input.Email); err == nil && existing.ID != user.ID {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hash
	}
	if input.Role != nil {
		user.Role = models.UserRole(*input.Role)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := tc.Store.UpdateUser(user); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}
