package api

import (
	"net/http"

	"alcyxob/fitstack/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	seedDemo bool,
	authService service.AuthService,
	recordService service.RecordService,
	statsService service.StatsService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler()
	recordHandler := NewRecordHandler(recordService)
	statsHandler := NewStatsHandler(statsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login(recordService, seedDemo))
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		exerciseGroup := protected.Group("/exercises")
		{
			// GET /api/v1/exercises?part=등 - the built-in catalog
			exerciseGroup.GET("", exerciseHandler.GetCatalog)
			exerciseGroup.GET("/parts", exerciseHandler.GetParts)
		}

		recordGroup := protected.Group("/records")
		{
			recordGroup.POST("", recordHandler.CreateRecord)
			recordGroup.GET("", recordHandler.ListRecords)
			// POST /api/v1/records/photo-upload - presigned PUT URL for a progress photo
			recordGroup.POST("/photo-upload", recordHandler.RequestPhotoUpload)
		}

		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/summary", statsHandler.GetSummary)
			statsGroup.GET("/daily", statsHandler.GetDailyTotals)
			statsGroup.GET("/comparison", statsHandler.GetComparison)
			statsGroup.GET("/badges", statsHandler.GetBadges)
			statsGroup.GET("/calendar", statsHandler.GetCalendar)
		}
	}
}
