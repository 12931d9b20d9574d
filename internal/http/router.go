package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mightymouse007/genie-it-pathfinder/internal/service"
)

// HealthChecker reporta el estado de una dependencia externa.
type HealthChecker func(c *gin.Context) error

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	quizH *QuizHandler,
	resultsH *ResultsHandler,
	tokens *service.SessionTokenService,
	healthChecks map[string]HealthChecker,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", healthHandler(healthChecks))

	quiz := r.Group("/quiz")
	quiz.POST("/session", quizH.CreateSession)

	authed := quiz.Group("", SessionAuthMiddleware(tokens))
	authed.GET("/state", quizH.State)
	authed.POST("/answer", quizH.Answer)
	authed.POST("/next", quizH.Next)
	authed.POST("/previous", quizH.Previous)
	authed.POST("/reset", quizH.Reset)

	results := r.Group("/results", SessionAuthMiddleware(tokens))
	results.GET("", resultsH.Results)
	results.POST("/analysis", resultsH.Analysis)

	return r
}

func healthHandler(checks map[string]HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		deps := gin.H{}
		for name, check := range checks {
			if err := check(c); err != nil {
				deps[name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				deps[name] = "ok"
			}
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "deps": deps})
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
