package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sefinote/sefinote/internal/api/handlers"
	"github.com/sefinote/sefinote/internal/auth"
	"github.com/sefinote/sefinote/internal/config"
	"github.com/sefinote/sefinote/internal/service"
	"github.com/sefinote/sefinote/internal/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware())
	router.Use(corsMiddleware())

	authenticator := auth.NewBasicAuthenticator(db, cfg.Auth.JWTSecret)

	authHandler := handlers.NewAuthHandler(authenticator, db)
	treeHandler := handlers.NewTreeHandler(service.NewTreeService(db))
	templateHandler := handlers.NewTemplateHandler(service.NewTemplateService(db))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", handlers.HealthCheck)
		public.GET("/layout", handlers.GetLayout)
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/signup", authHandler.Signup)
		public.POST("/auth/logout", authHandler.Logout)
	}

	// Protected routes (require authentication)
	protected := router.Group("/api/v1")
	protected.Use(authenticator.Middleware())
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.PUT("/auth/me", authHandler.UpdateCurrentUser)

		// Tree endpoints
		protected.GET("/trees", treeHandler.ListTrees)
		protected.POST("/trees", treeHandler.CreateTree)
		protected.GET("/trees/:id", treeHandler.GetTree)
		protected.PUT("/trees/:id", treeHandler.UpdateTree)
		protected.DELETE("/trees/:id", treeHandler.DeleteTree)

		// Node endpoints
		protected.PUT("/nodes/:id", treeHandler.UpdateNode)
		protected.POST("/nodes/:id/trees", treeHandler.CreateChildTree)

		// Template endpoints
		protected.GET("/templates", templateHandler.ListTemplates)
		protected.POST("/templates", templateHandler.CreateTemplate)
		protected.DELETE("/templates/:id", templateHandler.DeleteTemplate)
	}

	// Legacy template routes, kept on their original paths
	legacy := router.Group("/api/templates")
	{
		legacy.GET("", templateHandler.LegacyListTemplates)
		legacy.DELETE("/:id", authenticator.Middleware(), templateHandler.LegacyDeleteTemplate)
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Embedded web UI
	if fsys, err := web.GetFileSystem(); err == nil {
		registerFrontend(router, fsys)
	} else {
		slog.Warn("Embedded frontend unavailable", "error", err)
	}

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router
}

// registerFrontend serves the embedded single-page assets. Client-side
// routes fall back to index.html.
func registerFrontend(router *gin.Engine, fsys http.FileSystem) {
	fileServer := http.FileServer(fsys)

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if f, err := fsys.Open(path); err == nil {
			f.Close()
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.Request.URL.Path = "/"
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		slog.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
		)
	}
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
