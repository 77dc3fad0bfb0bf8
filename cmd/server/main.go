package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/config"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/extractor"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/generator"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/handler"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/logger"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/router"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/service"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("model", cfg.ModelName).
		Msg("Starting Study Assistant Pro")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Repositories ───────────────────────────────────────
	docRepo, err := repository.NewDocumentRepository(cfg.PDFDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up PDF storage")
	}
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up question bank storage")
	}
	progressRepo := repository.NewProgressRepository(cfg.ProgressFile)

	// ─── External Collaborators ────────────────────────────────────────
	ext := extractor.NewHTTPExtractor(cfg.ExtractorURL)
	gen := generator.New(cfg, log)

	// ─── Initialize Services ──────────────────────────────────────────
	documentService := service.NewDocumentService(docRepo, questionRepo, cfg, log)
	questionService := service.NewQuestionService(questionRepo, docRepo, ext, gen, log)
	studyService := service.NewStudyService(questionRepo, progressRepo, log)
	dashboardService := service.NewDashboardService(progressRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Document:  handler.NewDocumentHandler(documentService),
		Question:  handler.NewQuestionHandler(questionService, cfg),
		Study:     handler.NewStudyHandler(studyService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
