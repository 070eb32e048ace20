package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/documents"
	"studybuddy-backend/internal/shared/config"
	"studybuddy-backend/internal/shared/server/middleware"
	"studybuddy-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router needs.
type RouterDeps struct {
	Config    config.Config
	Documents *documents.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.Documents.RegisterRoutes(api)

	return r
}

// rateLimitConfig throttles generation routes harder than reads; every
// generation request can cost a model round trip.
func rateLimitConfig() middleware.RateLimitConfig {
	generatePaths := map[string]struct{}{
		"/api/documents/:id/summary":    {},
		"/api/documents/:id/flashcards": {},
		"/api/documents/:id/chat":       {},
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":  {Rate: 10, Burst: 30},
			"GENERATE": {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if _, ok := generatePaths[c.FullPath()]; ok {
				return "GENERATE"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
