package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/video-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/video-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	aiController *AIController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, aiController *AIController) *Router {
	return &Router{
		cfg:          cfg,
		aiController: aiController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	rt.setupTranscriptRoutes(api)
}

// setupTranscriptRoutes configures the summarization routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	if rt.aiController != nil {
		g.GET("/transcript", rt.aiController.Summarize)
	} else {
		g.GET("/transcript", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
