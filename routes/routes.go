package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(catalog *services.FoodCatalog) *gin.Engine {
	r := gin.Default()

	journalSvc := services.NewJournalService(config.DB)
	profileSvc := services.NewProfileService(config.DB)
	analysisSvc := services.NewAnalysisService(config.DB, catalog)
	reqCalc := services.NewRequirementCalculator()

	rtHub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, rtHub)

	journalCtl := controllers.NewJournalController(journalSvc)
	profileCtl := controllers.NewProfileController(profileSvc, reqCalc)
	foodCtl := controllers.NewFoodController(catalog)
	analysisCtl := controllers.NewAnalysisController(analysisSvc)
	realtimeCtl := controllers.NewRealtimeController(rtHub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/journal", journalCtl.UpsertEntry)
		api.GET("/journal", journalCtl.ListEntries)
		api.GET("/journal/:date", journalCtl.GetEntry)
		api.DELETE("/journal/:date", journalCtl.DeleteEntry)

		api.GET("/profile", profileCtl.GetProfile)
		api.PUT("/profile", profileCtl.UpsertProfile)

		api.GET("/foods", foodCtl.ListFoods)
		api.GET("/foods/search", foodCtl.SearchFoods)

		api.GET("/analysis/nutrition", analysisCtl.GetNutritionAnalysis)
		api.GET("/analysis/micronutrients", analysisCtl.GetMicronutrientAnalysis)
		api.GET("/analysis/flare-risk", analysisCtl.GetFlareRisk)
		api.GET("/analysis/trends", analysisCtl.GetWeeklyTrends)

		api.GET("/ws/alerts", realtimeCtl.AlertsWS)
	}

	return r
}
