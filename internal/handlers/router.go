package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/auth"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	quizHandler   *QuizHandler
	authHandler   *AuthHandler
	quizService   services.QuizService
	authenticator auth.Authenticator
	logger        utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	authenticator auth.Authenticator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		quizHandler:   NewQuizHandler(serviceManager.Quiz(), serviceManager.ImportExport(), logger),
		authHandler:   NewAuthHandler(serviceManager.Auth(), logger),
		quizService:   serviceManager.Quiz(),
		authenticator: authenticator,
		logger:        logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/auth/login", hm.authHandler.Login)

		admin := RequireAdmin(hm.authenticator, hm.logger)

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", hm.quizHandler.ListQuizzes)
			quizzes.GET("/:id", OptionalAuth(hm.authenticator), hm.quizHandler.GetQuiz)
			quizzes.POST("/:id/submit", hm.quizHandler.SubmitQuiz)

			quizzes.POST("", admin, hm.quizHandler.CreateQuiz)
			quizzes.POST("/import", admin, hm.quizHandler.ImportQuiz)
			quizzes.PUT("/:id", admin, hm.quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", admin, hm.quizHandler.DeleteQuiz)
			quizzes.GET("/:id/export", admin, hm.quizHandler.ExportQuiz)
		}
	}
}

// HealthCheck reports liveness together with storage reachability
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	if err := hm.quizService.Health(c.Request.Context()); err != nil {
		hm.logger.LogError(err, "Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": "quiz-service",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "quiz-service",
	})
}
