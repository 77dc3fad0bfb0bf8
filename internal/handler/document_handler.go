package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/response"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/service"
)

// DocumentHandler handles PDF upload and library endpoints.
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// UploadDocument godoc
// POST /api/v1/documents
// Stores an uploaded PDF under a generated unique name.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	doc, err := h.documentService.SaveUpload(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": doc})
}

// ListDocuments godoc
// GET /api/v1/documents
// Lists stored PDFs with per-document question counts.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documentService.List()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if docs == nil {
		docs = []model.Document{}
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}
