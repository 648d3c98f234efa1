package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentController struct {
	Store *store.Store
}

func NewAppointmentController(s *store.Store) *AppointmentController {
	return &AppointmentController{Store: s}
}

// AppointmentForm is the schedule form. When Blocking is set, client, service
// and status fields are ignored and a BLOCKED entry is synthesized.
type AppointmentForm struct {
	ClientID        *uuid.UUID `json:"clientId"`
	ServiceID       *uuid.UUID `json:"serviceId"`
	ProfessionalID  uuid.UUID  `json:"professionalId" binding:"required"`
	Date            string     `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime       string     `json:"startTime" binding:"required"` // HH:MM
	DurationMinutes int        `json:"durationMinutes" binding:"required,gt=0"`
	Notes           string     `json:"notes"`
	Blocking        bool       `json:"blocking"`
	Status          string     `json:"status"`
}

func (ap *AppointmentController) buildInput(form AppointmentForm) (services.AppointmentInput, error) {
	start, err := parseLocalDateTime(form.Date, form.StartTime)
	if err != nil {
		return services.AppointmentInput{}, errors.New("invalid date or start time")
	}
	return services.AppointmentInput{
		ClientID:        form.ClientID,
		ServiceID:       form.ServiceID,
		ProfessionalID:  form.ProfessionalID,
		Start:           start,
		DurationMinutes: form.DurationMinutes,
		Notes:           form.Notes,
		Blocking:        form.Blocking,
		Status:          models.AppointmentStatus(form.Status),
	}, nil
}

func (ap *AppointmentController) clientIndex() map[uuid.UUID]models.Client {
	clients := ap.Store.Clients()
	idx := make(map[uuid.UUID]models.Client, len(clients))
	for _, cl := range clients {
		idx[cl.ID] = cl
	}
	return idx
}

func (ap *AppointmentController) Create(c *gin.Context) {
	var form AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input, err := ap.buildInput(form)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	appt := services.BuildFromForm(input, ap.clientIndex(), services.IndexServices(ap.Store.Services()))
	ap.Store.AddAppointment(appt)

	c.JSON(http.StatusCreated, appt)
}

func (ap *AppointmentController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}
	existing, err := ap.Store.AppointmentByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	var form AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input, err := ap.buildInput(form)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	rebuilt := services.BuildFromForm(input, ap.clientIndex(), services.IndexServices(ap.Store.Services()))
	rebuilt.ID = existing.ID

	if !services.CanTransition(existing.Status, rebuilt.Status) {
		utils.RespondWithError(c, http.StatusConflict, services.ErrBlockedTransition.Error())
		return
	}

	if err := ap.Store.UpdateAppointment(rebuilt); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, rebuilt)
}

type StatusInput struct {
	Status string `json:"status" binding:"required,oneof=SCHEDULED COMPLETED CANCELLED"`
}

// UpdateStatus moves a booking along its lifecycle. The blocked track is not
// reachable from here, and blocks cannot leave it.
func (ap *AppointmentController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}
	appt, err := ap.Store.AppointmentByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	next := models.AppointmentStatus(input.Status)
	if !services.CanTransition(appt.Status, next) {
		utils.RespondWithError(c, http.StatusConflict, services.ErrBlockedTransition.Error())
		return
	}
	appt.Status = next

	if err := ap.Store.UpdateAppointment(appt); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (ap *AppointmentController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}
	if err := ap.Store.DeleteAppointment(id); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

type dayBucket struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

// List returns the schedule grouped by the requested view (day, week or
// month) around the anchor date, filtered by professional. Professionals only
// ever see their own agenda.
func (ap *AppointmentController) List(c *gin.Context) {
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

	anchor := time.Now()
	if raw := c.Query("date"); raw != "" {
		anchor, err = parseLocalDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	appts := services.FilterByProfessional(ap.Store.Appointments(), proFilter)

	switch c.DefaultQuery("view", "day") {
	case "week":
		start, end := utils.WeekBounds(anchor)
		days := make([]dayBucket, 0, 7)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, dayBucket{
				Date:         d.Format("2006-01-02"),
				Appointments: sortByStart(services.ForDate(appts, d)),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"start": start.Format("2006-01-02"),
			"end":   end.Format("2006-01-02"),
			"days":  days,
		})
	case "month":
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		days := make([]dayBucket, 0, last.Day())
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			days = append(days, dayBucket{
				Date:         d.Format("2006-01-02"),
				Appointments: sortByStart(services.ForDate(appts, d)),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"year":  first.Year(),
			"month": int(first.Month()),
			"days":  days,
		})
	default:
		day := sortByStart(services.ForDate(appts, anchor))
		c.JSON(http.StatusOK, gin.H{
			"date":  anchor.Format("2006-01-02"),
			"hours": services.GroupByHour(day),
		})
	}
}

func sortByStart(appts []models.Appointment) []models.Appointment {
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].StartTime.Before(appts[j].StartTime)
	})
	return appts
}
