package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/response"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/service"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/validator"
)

// StudyHandler handles the study flow endpoints.
type StudyHandler struct {
	studyService *service.StudyService
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(studyService *service.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

// GetRecommendation godoc
// GET /api/v1/study/recommendation
// Returns difficulty tiers ordered weakest-first based on answer history.
func (h *StudyHandler) GetRecommendation(c *gin.Context) {
	rec, err := h.studyService.Recommend()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, rec)
}

// SubmitAnswer godoc
// POST /api/v1/study/answers
// Grades an answer and appends one progress record.
func (h *StudyHandler) SubmitAnswer(c *gin.Context) {
	var req model.AnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.studyService.Answer(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrQuestionNotFound)
		case errors.Is(err, service.ErrOptionOutOfRange):
			response.Fail(c, http.StatusBadRequest, response.ErrOptionOutOfRange)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}
