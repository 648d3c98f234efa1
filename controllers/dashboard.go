package controllers

import (
	"net/http"
	"sort"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

type chartPoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type popularService struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Overview aggregates the landing-page numbers. Revenue figures run through
// the role switch: professionals see commissions, everyone else raw prices.
func (dc *DashboardController) Overview(c *gin.Context) {
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

	now := time.Now()
	serviceIdx := services.IndexServices(dc.Store.Services())
	appts := services.FilterByProfessional(dc.Store.Appointments(), proFilter)

	today := sortByStart(services.ForDate(appts, now))

	var completedToday []models.Appointment
	for _, a := range today {
		if a.Status == models.StatusCompleted {
			completedToday = append(completedToday, a)
		}
	}
	todayRevenue := services.TotalFor(completedToday, role, serviceIdx)

	// Sunday-to-Saturday revenue series for the current week.
	weekStart, _ := utils.WeekBounds(now)
	chart := make([]chartPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		var completed []models.Appointment
		for _, a := range services.ForDate(appts, day) {
			if a.Status == models.StatusCompleted {
				completed = append(completed, a)
			}
		}
		chart = append(chart, chartPoint{
			Name:  day.Format("Mon"),
			Value: services.TotalFor(completed, role, serviceIdx),
		})
	}

	// Top five services by scheduled/completed bookings.
	counts := make(map[string]int)
	for _, a := range appts {
		if a.Status == models.StatusCompleted || a.Status == models.StatusScheduled {
			counts[a.ServiceName]++
		}
	}
	popular := make([]popularService, 0, len(counts))
	for name, n := range counts {
		popular = append(popular, popularService{Name: name, Count: n})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Name < popular[j].Name
	})
	if len(popular) > 5 {
		popular = popular[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"todayRevenue":      todayRevenue,
		"appointmentsCount": len(today),
		"occupancyRate":     services.OccupancyRate(today),
		"todayAppointments": today,
		"weeklyChart":       chart,
		"popularServices":   popular,
	})
}
