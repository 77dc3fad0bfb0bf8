package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort     string
	GinMode        string
	LogLevel       string
	LogFormat      string
	PDFDir         string
	QuestionsDir   string
	ProgressFile   string
	MaxUploadBytes int64
	// ExtractorURL points at the PDF text-extraction service.
	ExtractorURL string
	// ModelBaseURL is an OpenAI-compatible endpoint (Ollama's /v1 by default).
	ModelBaseURL    string
	ModelName       string
	ModelAPIKey     string
	ModelTimeout    time.Duration
	DefaultNumItems int
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins
	// are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "pretty"),
		PDFDir:          getEnv("PDF_DIR", "./pdf_storage"),
		QuestionsDir:    getEnv("QUESTIONS_DIR", "./question_bank"),
		ProgressFile:    getEnv("PROGRESS_FILE", "./progress.csv"),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 20)) * 1024 * 1024,
		ExtractorURL:    getEnv("EXTRACTOR_URL", "http://localhost:9090/extract"),
		ModelBaseURL:    getEnv("MODEL_BASE_URL", "http://localhost:11434/v1"),
		ModelName:       getEnv("MODEL_NAME", "llama3:8b"),
		ModelAPIKey:     getEnv("MODEL_API_KEY", "ollama"),
		ModelTimeout:    time.Duration(getEnvInt("MODEL_TIMEOUT_SECONDS", 120)) * time.Second,
		DefaultNumItems: getEnvInt("DEFAULT_NUM_QUESTIONS", 5),
		AllowedOrigins:  parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
