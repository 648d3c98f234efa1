package routes

import (
	"alphaflow-backend/config"
	"alphaflow-backend/controllers"
	"alphaflow-backend/models"
	"alphaflow-backend/services"
	"alphaflow-backend/store"
	"alphaflow-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(st *store.Store, assistant *services.AssistantClient) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authCtrl := controllers.NewAuthController(st)
	clientCtrl := controllers.NewClientController(st)
	serviceCtrl := controllers.NewServiceController(st)
	productCtrl := controllers.NewProductController(st)
	apptCtrl := controllers.NewAppointmentController(st)
	finCtrl := controllers.NewFinancialController(st)
	posCtrl := controllers.NewPOSController(st)
	dashCtrl := controllers.NewDashboardController(st)
	teamCtrl := controllers.NewTeamController(st)
	settingsCtrl := controllers.NewSettingsController(st)
	assistantCtrl := controllers.NewAssistantController(st, assistant)

	adminOnly := utils.RequireRoles(string(models.RoleAdmin))
	frontDesk := utils.RequireRoles(string(models.RoleAdmin), string(models.RoleReceptionist))

	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authCtrl.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		clients := api.Group("/clients")
		{
			clients.POST("", clientCtrl.Create)
			clients.GET("", clientCtrl.List)
			clients.GET("/:id", clientCtrl.Get)
			clients.PUT("/:id", clientCtrl.Update)
			clients.PUT("/:id/visagism", clientCtrl.UpdateVisagism)
			clients.GET("/:id/recommendations", clientCtrl.Recommendations)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.POST("", serviceCtrl.Create)
			servicesGroup.GET("", serviceCtrl.List)
			servicesGroup.GET("/:id", serviceCtrl.Get)
			servicesGroup.PUT("/:id", serviceCtrl.Update)
			servicesGroup.DELETE("/:id", serviceCtrl.Delete)
		}

		products := api.Group("/products")
		{
			products.POST("", productCtrl.Create)
			products.GET("", productCtrl.List)
			products.GET("/:id", productCtrl.Get)
			products.PUT("/:id", productCtrl.Update)
			products.DELETE("/:id", productCtrl.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", apptCtrl.Create)
			appointments.GET("", apptCtrl.List)
			appointments.PUT("/:id", apptCtrl.Update)
			appointments.PATCH("/:id/status", apptCtrl.UpdateStatus)
			appointments.DELETE("/:id", apptCtrl.Delete)
		}

		financials := api.Group("/financials")
		{
			financials.GET("", finCtrl.List)
			financials.POST("", frontDesk, finCtrl.CreateRecord)
			financials.GET("/commissions", finCtrl.Commissions)
		}

		api.POST("/pos/checkout", posCtrl.Checkout)

		api.GET("/dashboard", dashCtrl.Overview)

		team := api.Group("/team", adminOnly)
		{
			team.GET("", teamCtrl.List)
			team.POST("", teamCtrl.Add)
			team.PUT("/:id", teamCtrl.Update)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingsCtrl.Get)
			settings.PUT("", adminOnly, settingsCtrl.Update)
			settings.PUT("/mode", adminOnly, settingsCtrl.UpdateMode)
			settings.PUT("/profile", settingsCtrl.UpdateProfile)
		}

		assistantGroup := api.Group("/assistant")
		{
			assistantGroup.POST("/financial-analysis", assistantCtrl.FinancialAnalysis)
			assistantGroup.POST("/scheduling-suggestion", assistantCtrl.SchedulingSuggestion)
			assistantGroup.POST("/chat", assistantCtrl.Chat)
		}
	}

	return r
}
