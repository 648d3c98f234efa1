package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alphaflow-backend/models"
	"alphaflow-backend/routes"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	st := store.New(models.ModeBarber)
	assistant := services.NewAssistantClient("", "", time.Second)
	return routes.SetupRouter(st, assistant), st
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "admin@alphaflow.com",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func addStaff(t *testing.T, st *store.Store, role models.UserRole) (models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	u := models.User{
		ID:       uuid.New(),
		Name:     "Test Staff",
		Email:    fmt.Sprintf("staff-%s@alphaflow.com", uuid.NewString()[:8]),
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	st.AddUser(u)
	token, err := utils.GenerateToken(u.ID.String(), string(u.Role))
	require.NoError(t, err)
	return u, token
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("valid credentials return a token and the user without its hash", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
			"email":    "admin@alphaflow.com",
			"password": "admin",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
		assert.NotContains(t, w.Body.String(), `"password"`)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
			"email":    "admin@alphaflow.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email is rejected with the same message", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
			"email":    "ghost@alphaflow.com",
			"password": "admin",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		r2, st := newTestRouter(t)
		u, _ := addStaff(t, st, models.RoleReceptionist)
		u.IsActive = false
		require.NoError(t, st.UpdateUser(u))

		w := doJSON(t, r2, http.MethodPost, "/auth/login", "", gin.H{
			"email":    u.Email,
			"password": "secret",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthGates(t *testing.T) {
	r, st := newTestRouter(t)

	t.Run("api routes require a token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/clients", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("team management is admin-only", func(t *testing.T) {
		_, proToken := addStaff(t, st, models.RoleProfessional)
		w := doJSON(t, r, http.MethodGet, "/api/team", proToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		adminToken := loginAdmin(t, r)
		w = doJSON(t, r, http.MethodGet, "/api/team", adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("professionals cannot post ledger records", func(t *testing.T) {
		_, proToken := addStaff(t, st, models.RoleProfessional)
		w := doJSON(t, r, http.MethodPost, "/api/financials", proToken, gin.H{
			"description": "Chair repair",
			"amount":      "120",
			"type":        "EXPENSE",
			"category":    "Maintenance",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCheckout(t *testing.T) {
	r, st := newTestRouter(t)
	token := loginAdmin(t, r)

	var pomade models.Product
	for _, p := range st.Products() {
		if p.Name == "Matte Styling Pomade" {
			pomade = p
		}
	}
	require.NotEqual(t, uuid.Nil, pomade.ID)

	t.Run("a sale decrements stock and appends one income record", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/pos/checkout", token, gin.H{
			"items": []gin.H{
				{"id": pomade.ID, "type": "PRODUCT", "quantity": 2},
			},
			"paymentMethod": "CASH",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		got, err := st.ProductByID(pomade.ID)
		require.NoError(t, err)
		assert.Equal(t, pomade.Stock-2, got.Stock)

		records := st.FinancialRecords()
		require.Len(t, records, 1)
		assert.Equal(t, models.RecordIncome, records[0].Type)
		assert.True(t, decimal.NewFromFloat(70.00).Equal(records[0].Amount), "got %s", records[0].Amount)
	})

	t.Run("oversold cart is rejected with no side effects", func(t *testing.T) {
		before, err := st.ProductByID(pomade.ID)
		require.NoError(t, err)
		ledgerBefore := len(st.FinancialRecords())

		w := doJSON(t, r, http.MethodPost, "/api/pos/checkout", token, gin.H{
			"items": []gin.H{
				{"id": pomade.ID, "type": "PRODUCT", "quantity": before.Stock + 1},
			},
			"paymentMethod": "CASH",
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		after, err := st.ProductByID(pomade.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Stock, after.Stock)
		assert.Len(t, st.FinancialRecords(), ledgerBefore)
	})

	t.Run("identified client accumulates spend", func(t *testing.T) {
		client := models.Client{ID: uuid.New(), Name: "Bruno Dias", Phone: "+5511988887777"}
		st.AddClient(client)

		w := doJSON(t, r, http.MethodPost, "/api/pos/checkout", token, gin.H{
			"items": []gin.H{
				{"id": pomade.ID, "type": "PRODUCT", "quantity": 1},
			},
			"clientId":      client.ID,
			"paymentMethod": "CARD",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		got, err := st.ClientByID(client.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(35.00).Equal(got.TotalSpent))
		assert.NotNil(t, got.LastVisit)
	})

	t.Run("unresolved client id falls back to a walk-in sale", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/pos/checkout", token, gin.H{
			"items": []gin.H{
				{"id": pomade.ID, "type": "PRODUCT", "quantity": 1},
			},
			"clientId":      uuid.New(),
			"paymentMethod": "PIX",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"client":"Walk-in"`)
	})
}

func TestAppointmentLifecycle(t *testing.T) {
	r, st := newTestRouter(t)
	token := loginAdmin(t, r)
	pro, _ := addStaff(t, st, models.RoleProfessional)

	create := func(t *testing.T, body gin.H) models.Appointment {
		t.Helper()
		w := doJSON(t, r, http.MethodPost, "/api/appointments", token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var appt models.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
		return appt
	}

	t.Run("booking moves through its lifecycle", func(t *testing.T) {
		appt := create(t, gin.H{
			"professionalId":  pro.ID,
			"date":            "2026-03-10",
			"startTime":       "09:00",
			"durationMinutes": 45,
		})
		assert.Equal(t, models.StatusScheduled, appt.Status)

		w := doJSON(t, r, http.MethodPatch, "/api/appointments/"+appt.ID.String()+"/status", token, gin.H{
			"status": "COMPLETED",
		})
		require.Equal(t, http.StatusOK, w.Code)

		got, err := st.AppointmentByID(appt.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
	})

	t.Run("blocks cannot leave the blocked track", func(t *testing.T) {
		block := create(t, gin.H{
			"professionalId":  pro.ID,
			"date":            "2026-03-10",
			"startTime":       "12:00",
			"durationMinutes": 60,
			"blocking":        true,
		})
		require.Equal(t, models.StatusBlocked, block.Status)
		assert.Equal(t, "Schedule Block", block.ClientName)

		w := doJSON(t, r, http.MethodPatch, "/api/appointments/"+block.ID.String()+"/status", token, gin.H{
			"status": "CANCELLED",
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		got, err := st.AppointmentByID(block.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusBlocked, got.Status)
	})

	t.Run("BLOCKED is not a valid direct status", func(t *testing.T) {
		appt := create(t, gin.H{
			"professionalId":  pro.ID,
			"date":            "2026-03-10",
			"startTime":       "14:00",
			"durationMinutes": 30,
		})
		w := doJSON(t, r, http.MethodPatch, "/api/appointments/"+appt.ID.String()+"/status", token, gin.H{
			"status": "BLOCKED",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("professionals only see their own agenda", func(t *testing.T) {
		other, otherToken := addStaff(t, st, models.RoleProfessional)
		create(t, gin.H{
			"professionalId":  other.ID,
			"date":            "2026-03-11",
			"startTime":       "10:00",
			"durationMinutes": 30,
		})
		create(t, gin.H{
			"professionalId":  pro.ID,
			"date":            "2026-03-11",
			"startTime":       "10:00",
			"durationMinutes": 30,
		})

		w := doJSON(t, r, http.MethodGet, "/api/appointments?date=2026-03-11&view=day", otherToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Hours map[string][]models.Appointment `json:"hours"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Hours["10"], 1)
		assert.Equal(t, other.ID, resp.Hours["10"][0].ProfessionalID)
	})
}

func TestFinancialEndpoint(t *testing.T) {
	r, st := newTestRouter(t)
	token := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/financials", token, gin.H{
		"date":        time.Now().Format("2006-01-02"),
		"description": "Product restock",
		"amount":      "250.50",
		"type":        "EXPENSE",
		"category":    "Inventory",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("summary reflects the ledger", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/financials?period=month", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Summary services.Summary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, decimal.NewFromFloat(250.50).Equal(resp.Summary.TotalExpense))
	})

	t.Run("professionals never receive expenses", func(t *testing.T) {
		_, proToken := addStaff(t, st, models.RoleProfessional)
		w := doJSON(t, r, http.MethodGet, "/api/financials?period=month", proToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "EXPENSE")
	})
}
