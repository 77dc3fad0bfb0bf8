package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/extractor"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
)

// ErrExtractionFailed wraps extractor failures so handlers can map them.
var ErrExtractionFailed = errors.New("text extraction failed")

// ErrGenerationFailed wraps model/parse failures. The failure policy is
// no retry and no partial recovery: nothing is persisted on error.
var ErrGenerationFailed = errors.New("question generation failed")

// QuestionGenerator produces questions from extracted text.
type QuestionGenerator interface {
	Generate(ctx context.Context, text string, numQuestions int) ([]model.Question, error)
}

// QuestionService handles question generation and bank access.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	docRepo      *repository.DocumentRepository
	extractor    extractor.Extractor
	generator    QuestionGenerator
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	docRepo *repository.DocumentRepository,
	ext extractor.Extractor,
	gen QuestionGenerator,
	log zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		docRepo:      docRepo,
		extractor:    ext,
		generator:    gen,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// GenerateForDocument runs the full pipeline for a stored document:
// extract text, ask the model for numQuestions items, then append the
// validated results to the document's bank with sequential IDs.
func (s *QuestionService) GenerateForDocument(ctx context.Context, document string, numQuestions int) ([]model.Question, error) {
	if !s.docRepo.Exists(document) {
		return nil, ErrDocumentNotFound
	}

	pdf, err := s.docRepo.Open(document)
	if err != nil {
		return nil, err
	}
	defer pdf.Close()

	text, err := s.extractor.ExtractText(ctx, document, pdf)
	if err != nil {
		s.log.Error().Err(err).Str("document", document).Msg("extraction failed")
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	generated, err := s.generator.Generate(ctx, text, numQuestions)
	if err != nil {
		s.log.Error().Err(err).Str("document", document).Msg("generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(generated) == 0 {
		return []model.Question{}, nil
	}

	stored, err := s.questionRepo.Append(document, generated)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("document", document).Int("count", len(stored)).Msg("questions saved")
	return stored, nil
}

// ListByDocument returns a document's questions, optionally filtered by
// difficulty. The filter is a linear scan of the bank.
func (s *QuestionService) ListByDocument(document string, difficulty string) ([]model.Question, error) {
	if !s.docRepo.Exists(document) {
		return nil, ErrDocumentNotFound
	}

	questions, err := s.questionRepo.ListByDocument(document)
	if err != nil {
		return nil, err
	}
	if difficulty == "" {
		return questions, nil
	}

	want := model.ParseDifficulty(difficulty)
	filtered := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if q.Difficulty == want {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// ListAll returns every question across all banks.
func (s *QuestionService) ListAll() ([]model.Question, error) {
	return s.questionRepo.ListAll()
}
