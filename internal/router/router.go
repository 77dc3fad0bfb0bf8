package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/config"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/handler"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/middleware"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Document  *handler.DocumentHandler
	Question  *handler.QuestionHandler
	Study     *handler.StudyHandler
	Dashboard *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve stored PDFs statically with aggressive caching (1 year);
	// stored names are immutable, so stale caches are impossible.
	pdfGroup := router.Group("/pdfs")
	pdfGroup.Use(middleware.CacheControl(31536000))
	{
		pdfGroup.Static("/", cfg.PDFDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for generation routes: every hit costs a model call.
	generateLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := router.Group("/api/v1")
	{
		api.POST("/documents", handlers.Document.UploadDocument)
		api.GET("/documents", handlers.Document.ListDocuments)
		api.POST("/documents/:name/generate",
			generateLimiter.Middleware(),
			handlers.Question.GenerateQuestions,
		)
		api.GET("/documents/:name/questions", handlers.Question.ListQuestions)
		api.GET("/questions", handlers.Question.ListAllQuestions)

		api.GET("/study/recommendation", handlers.Study.GetRecommendation)
		api.POST("/study/answers", handlers.Study.SubmitAnswer)

		api.GET("/dashboard", handlers.Dashboard.GetDashboardData)
	}

	return router
}
