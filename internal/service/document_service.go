package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/config"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
)

// Sentinel errors for document uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrDocumentNotFound    = errors.New("document not found")
)

// DocumentService handles PDF upload and listing.
type DocumentService struct {
	docRepo      *repository.DocumentRepository
	questionRepo *repository.QuestionRepository
	cfg          *config.Config
	log          zerolog.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(
	docRepo *repository.DocumentRepository,
	questionRepo *repository.QuestionRepository,
	cfg *config.Config,
	log zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		docRepo:      docRepo,
		questionRepo: questionRepo,
		cfg:          cfg,
		log:          log.With().Str("component", "document_service").Logger(),
	}
}

// SaveUpload stores an uploaded PDF under a unique generated name
// ("<stem>_<8-char-uuid>.pdf") and returns the resulting Document.
func (s *DocumentService) SaveUpload(file multipart.File, header *multipart.FileHeader) (*model.Document, error) {
	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, header.Filename)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.cfg.MaxUploadBytes)
	}

	stem := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s_%s.pdf", stem, uuid.New().String()[:8])

	size, err := s.docRepo.Save(name, file)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("document", name).Int64("bytes", size).Msg("stored uploaded pdf")

	return &model.Document{
		Name: name,
		Size: size,
		URL:  "/pdfs/" + name,
	}, nil
}

// List returns all stored documents with their question counts.
func (s *DocumentService) List() ([]model.Document, error) {
	stored, err := s.docRepo.List()
	if err != nil {
		return nil, err
	}

	docs := make([]model.Document, 0, len(stored))
	for _, d := range stored {
		count, err := s.questionRepo.CountByDocument(d.Name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, model.Document{
			Name:          d.Name,
			Size:          d.Size,
			QuestionCount: count,
			URL:           "/pdfs/" + d.Name,
		})
	}
	return docs, nil
}
