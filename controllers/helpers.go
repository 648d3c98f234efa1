package controllers

import (
	"errors"
	"time"

	"alphaflow-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentActor reads the authenticated user's id and role set by the auth
// middleware.
func currentActor(c *gin.Context) (uuid.UUID, models.UserRole, error) {
	rawID, ok := c.Get("userId")
	if !ok {
		return uuid.Nil, "", errors.New("user id not found in context")
	}
	idStr, _ := rawID.(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", errors.New("invalid user id in context")
	}
	rawRole, _ := c.Get("role")
	roleStr, _ := rawRole.(string)
	return id, models.UserRole(roleStr), nil
}

// professionalFilter resolves the professional selector for schedule and
// financial views. Admins and receptionists may pick anyone or "all";
// professionals are always scoped to themselves.
func professionalFilter(c *gin.Context, actorID uuid.UUID, role models.UserRole) (*uuid.UUID, error) {
	if role == models.RoleProfessional {
		id := actorID
		return &id, nil
	}
	selected := c.DefaultQuery("professionalId", "all")
	if selected == "all" {
		return nil, nil
	}
	id, err := uuid.Parse(selected)
	if err != nil {
		return nil, errors.New("invalid professional id")
	}
	return &id, nil
}

// parseLocalDateTime combines a YYYY-MM-DD date and an HH:MM clock time in
// the server's local zone, matching the calendar-day semantics of the
// derivation engines.
func parseLocalDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

func parseLocalDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, time.Local)
}
