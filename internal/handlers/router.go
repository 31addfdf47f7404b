package handlers

import (
	"net/http"
	"strings"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/services"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	tutorHandler *TutorHandler
}

func NewHandlerManager(tutorService services.TutorService, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		tutorHandler: NewTutorHandler(tutorService, logger),
	}
}

// RouterConfig controls engine-wide middleware.
type RouterConfig struct {
	Environment string
	// AllowedOrigins is a comma-separated origin list; "*" allows any origin.
	AllowedOrigins string
	Logger         utils.Logger
}

// NewRouter builds the engine with middleware and all routes mounted.
func NewRouter(hm *HandlerManager, cfg RouterConfig) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		utils.RequestID(),
		utils.LoggerMiddleware(cfg.Logger),
		utils.ContextLogger(cfg.Logger),
		corsMiddleware(cfg.AllowedOrigins),
	)

	hm.SetupRoutes(router)
	return router
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Requested-With", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", utils.RequestIDHeader},
	}

	if strings.TrimSpace(allowedOrigins) == "*" || allowedOrigins == "" {
		config.AllowAllOrigins = true
	} else {
		for _, origin := range strings.Split(allowedOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.AllowOrigins = append(config.AllowOrigins, origin)
			}
		}
		config.AllowCredentials = true
	}

	return cors.New(config)
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/question", hm.tutorHandler.GetNextQuestion)
		v1.POST("/answer", hm.tutorHandler.SubmitAnswer)
		v1.GET("/insights", hm.tutorHandler.GetInsights)
		v1.GET("/insights/export", hm.tutorHandler.ExportInsights)
		v1.POST("/session/reset", hm.tutorHandler.ResetSession)

		questions := v1.Group("/questions")
		{
			questions.GET("", hm.tutorHandler.ListQuestions)
			questions.GET("/export", hm.tutorHandler.ExportQuestions)
		}
	}

	// Unversioned paths kept for older clients.
	legacy := router.Group("/api")
	{
		legacy.GET("/question", hm.tutorHandler.GetNextQuestion)
		legacy.POST("/answer", hm.tutorHandler.SubmitAnswer)
		legacy.GET("/insights", hm.tutorHandler.GetInsights)
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "adaptive-tutor-service",
	})
}
