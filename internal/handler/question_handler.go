package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/config"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/response"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/service"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/validator"
)

// QuestionHandler handles question generation and listing endpoints.
type QuestionHandler struct {
	questionService *service.QuestionService
	cfg             *config.Config
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, cfg *config.Config) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, cfg: cfg}
}

// GenerateQuestions godoc
// POST /api/v1/documents/:name/generate
// Runs extraction and model generation for a stored PDF and appends the
// results to its question bank.
func (h *QuestionHandler) GenerateQuestions(c *gin.Context) {
	document := c.Param("name")

	var req model.GenerateRequest
	if c.Request.ContentLength > 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = h.cfg.DefaultNumItems
	}

	questions, err := h.questionService.GenerateForDocument(c.Request.Context(), document, req.NumQuestions)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrDocumentNotFound)
		case errors.Is(err, service.ErrExtractionFailed):
			response.Fail(c, http.StatusBadGateway, response.ErrExtraction)
		case errors.Is(err, service.ErrGenerationFailed):
			response.Fail(c, http.StatusBadGateway, response.ErrGeneration)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"questions": questions})
}

// ListQuestions godoc
// GET /api/v1/documents/:name/questions?difficulty=easy
// Lists a document's questions, optionally filtered by difficulty.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	document := c.Param("name")
	difficulty := c.Query("difficulty")

	questions, err := h.questionService.ListByDocument(document, difficulty)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrDocumentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// ListAllQuestions godoc
// GET /api/v1/questions
// Lists every question across all banks.
func (h *QuestionHandler) ListAllQuestions(c *gin.Context) {
	questions, err := h.questionService.ListAll()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}
