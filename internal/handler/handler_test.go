package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/config"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/handler"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/router"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/service"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/validator"
)

// stubExtractor satisfies extractor.Extractor without a network call.
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ context.Context, _ string, _ io.Reader) (string, error) {
	return s.text, s.err
}

// stubGenerator satisfies service.QuestionGenerator.
type stubGenerator struct {
	questions []model.Question
	err       error
}

func (s *stubGenerator) Generate(_ context.Context, _ string, _ int) ([]model.Question, error) {
	return s.questions, s.err
}

func TestMain(m *testing.M) {
	validator.Setup()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, gen service.QuestionGenerator) *gin.Engine {
	t.Helper()

	base := t.TempDir()
	cfg := &config.Config{
		GinMode:         gin.TestMode,
		PDFDir:          filepath.Join(base, "pdf_storage"),
		QuestionsDir:    filepath.Join(base, "question_bank"),
		ProgressFile:    filepath.Join(base, "progress.csv"),
		MaxUploadBytes:  1 << 20,
		DefaultNumItems: 5,
	}

	log := zerolog.Nop()
	docRepo, err := repository.NewDocumentRepository(cfg.PDFDir)
	if err != nil {
		t.Fatalf("doc repo: %v", err)
	}
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsDir)
	if err != nil {
		t.Fatalf("question repo: %v", err)
	}
	progressRepo := repository.NewProgressRepository(cfg.ProgressFile)

	ext := &stubExtractor{text: "chapter one body text"}
	documentService := service.NewDocumentService(docRepo, questionRepo, cfg, log)
	questionService := service.NewQuestionService(questionRepo, docRepo, ext, gen, log)
	studyService := service.NewStudyService(questionRepo, progressRepo, log)
	dashboardService := service.NewDashboardService(progressRepo)

	return router.SetupRouter(&router.Handlers{
		Document:  handler.NewDocumentHandler(documentService),
		Question:  handler.NewQuestionHandler(questionService, cfg),
		Study:     handler.NewStudyHandler(studyService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}, cfg)
}

func uploadPDF(t *testing.T, r *gin.Engine, filename string) string {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 test payload")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("upload returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Document model.Document `json:"document"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	return resp.Data.Document.Name
}

func TestUploadGeneratesUniqueName(t *testing.T) {
	r := newTestServer(t, &stubGenerator{})

	name := uploadPDF(t, r, "algebra.pdf")
	if !strings.HasPrefix(name, "algebra_") || !strings.HasSuffix(name, ".pdf") {
		t.Errorf("stored name = %q, want algebra_<suffix>.pdf", name)
	}
	if name == "algebra.pdf" {
		t.Error("stored name not uniquified")
	}

	other := uploadPDF(t, r, "algebra.pdf")
	if other == name {
		t.Errorf("two uploads share the stored name %q", name)
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	r := newTestServer(t, &stubGenerator{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "notes.txt")
	_, _ = part.Write([]byte("plain text"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("txt upload returned %d, want 400", w.Code)
	}
}

func TestStudyFlow(t *testing.T) {
	gen := &stubGenerator{questions: []model.Question{
		{
			QuestionText:  "What is covered in chapter one?",
			Options:       []string{"Sets", "Rings", "Fields", "Groups"},
			CorrectOption: 0,
			Difficulty:    model.DifficultyEasy,
			Topic:         "Algebra",
			Explanation:   "Chapter one introduces sets.",
		},
		{
			QuestionText:  "Which structure has two operations?",
			Options:       []string{"Group", "Ring"},
			CorrectOption: 1,
			Difficulty:    model.DifficultyHard,
			Topic:         "Algebra",
			Explanation:   "Rings carry addition and multiplication.",
		},
	}}
	r := newTestServer(t, gen)
	doc := uploadPDF(t, r, "algebra.pdf")

	// Generate questions for the stored document.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+doc+"/generate",
		strings.NewReader(`{"num_questions": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("generate returned %d: %s", w.Code, w.Body.String())
	}

	// Difficulty filter is a linear scan of the bank.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+doc+"/questions?difficulty=easy", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", w.Code, w.Body.String())
	}
	var listResp struct {
		Data struct {
			Questions []model.Question `json:"questions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listResp.Data.Questions) != 1 {
		t.Fatalf("easy filter returned %d questions, want 1", len(listResp.Data.Questions))
	}
	q := listResp.Data.Questions[0]
	if q.ID != 1 {
		t.Errorf("first stored question has id %d, want 1", q.ID)
	}

	// Answer it correctly.
	answer := map[string]any{"document": doc, "question_id": q.ID, "selected_option": q.CorrectOption}
	payload, _ := json.Marshal(answer)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/study/answers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("answer returned %d: %s", w.Code, w.Body.String())
	}

	// The dashboard reflects exactly one logged answer.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard returned %d: %s", w.Code, w.Body.String())
	}
	var dashResp struct {
		Data service.DashboardData `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &dashResp); err != nil {
		t.Fatalf("decode dashboard response: %v", err)
	}
	if dashResp.Data.TotalAnswers != 1 || dashResp.Data.AccuracyPct != 100 {
		t.Errorf("dashboard = %+v, want 1 answer at 100%%", dashResp.Data)
	}
}

func TestGenerateForUnknownDocument(t *testing.T) {
	r := newTestServer(t, &stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/missing_00000000.pdf/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("generate for missing document returned %d, want 404", w.Code)
	}
}

func TestGenerationFailureSavesNothing(t *testing.T) {
	r := newTestServer(t, &stubGenerator{err: context.DeadlineExceeded})
	doc := uploadPDF(t, r, "algebra.pdf")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+doc+"/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("generate returned %d, want 502", w.Code)
	}

	// The bank must stay empty — no partial recovery.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+doc+"/questions", nil))
	var listResp struct {
		Data struct {
			Questions []model.Question `json:"questions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listResp.Data.Questions) != 0 {
		t.Errorf("bank has %d questions after a failed generation, want 0", len(listResp.Data.Questions))
	}
}

func TestRecommendationFallback(t *testing.T) {
	r := newTestServer(t, &stubGenerator{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/study/recommendation", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("recommendation returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data service.Recommendation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode recommendation: %v", err)
	}
	if resp.Data.Adaptive {
		t.Error("Adaptive = true without history")
	}
	want := []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
	for i, tier := range want {
		if i >= len(resp.Data.Tiers) || resp.Data.Tiers[i] != tier {
			t.Fatalf("Tiers = %v, want %v", resp.Data.Tiers, want)
		}
	}
}
