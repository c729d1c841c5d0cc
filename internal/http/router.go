package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/lumenlearn/lumenlearn-backend/internal/http/handlers"
	httpMW "github.com/lumenlearn/lumenlearn-backend/internal/http/middleware"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	UploadHandler *httpH.UploadHandler
	ModuleHandler *httpH.ModuleHandler
	ResultHandler *httpH.ResultHandler
	ChatHandler   *httpH.ChatHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Upload
		if cfg.UploadHandler != nil {
			protected.POST("/upload/pdf", cfg.UploadHandler.UploadPDF)
		}

		// Modules
		if cfg.ModuleHandler != nil {
			protected.POST("/modules", cfg.ModuleHandler.Create)
			protected.GET("/modules", cfg.ModuleHandler.ListOwn)
			protected.GET("/modules/:id", cfg.ModuleHandler.Get)
			protected.POST("/modules/generate-ai", cfg.ModuleHandler.GenerateAI)
		}

		// Results
		if cfg.ResultHandler != nil {
			protected.POST("/results/submit-mcq", cfg.ResultHandler.SubmitMCQ)
			protected.GET("/results/my-results", cfg.ResultHandler.MyResults)
			protected.GET("/results/module/:id", cfg.ResultHandler.ModuleResults)
			protected.GET("/results/analytics", cfg.ResultHandler.Analytics)
		}

		// Chatbot
		if cfg.ChatHandler != nil {
			protected.POST("/chatbot/ask", cfg.ChatHandler.Ask)
		}
	}

	return r
}
