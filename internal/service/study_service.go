package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
)

// Sentinel errors for the study flow.
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionOutOfRange = errors.New("selected option out of range")
)

// Recommendation lists difficulty tiers ordered weakest-first. Adaptive
// is false when no history exists and the fixed tier order is used.
type Recommendation struct {
	Tiers    []model.Difficulty `json:"tiers"`
	Adaptive bool               `json:"adaptive"`
}

// StudyService handles adaptive difficulty recommendation and answer
// grading with progress logging.
type StudyService struct {
	questionRepo *repository.QuestionRepository
	progressRepo *repository.ProgressRepository
	log          zerolog.Logger
	now          func() time.Time
}

// NewStudyService creates a new StudyService.
func NewStudyService(
	questionRepo *repository.QuestionRepository,
	progressRepo *repository.ProgressRepository,
	log zerolog.Logger,
) *StudyService {
	return &StudyService{
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		log:          log.With().Str("component", "study_service").Logger(),
		now:          time.Now,
	}
}

// Recommend aggregates historical correctness by difficulty tier and
// orders the observed tiers weakest-first, ties broken by the canonical
// easy→medium→hard order. With no history it falls back to the fixed
// tier list.
func (s *StudyService) Recommend() (*Recommendation, error) {
	records, err := s.progressRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Recommendation{Tiers: model.DifficultyTiers, Adaptive: false}, nil
	}

	type tally struct {
		correct int
		total   int
	}
	byTier := make(map[model.Difficulty]*tally)
	for _, rec := range records {
		t, ok := byTier[rec.Difficulty]
		if !ok {
			t = &tally{}
			byTier[rec.Difficulty] = t
		}
		t.total++
		if rec.IsCorrect {
			t.correct++
		}
	}

	canonical := make(map[model.Difficulty]int, len(model.DifficultyTiers))
	for i, d := range model.DifficultyTiers {
		canonical[d] = i
	}

	tiers := make([]model.Difficulty, 0, len(byTier))
	for d := range byTier {
		tiers = append(tiers, d)
	}
	sort.Slice(tiers, func(i, j int) bool {
		a, b := byTier[tiers[i]], byTier[tiers[j]]
		accA := float64(a.correct) / float64(a.total)
		accB := float64(b.correct) / float64(b.total)
		if accA != accB {
			return accA < accB
		}
		return canonical[tiers[i]] < canonical[tiers[j]]
	})

	return &Recommendation{Tiers: tiers, Adaptive: true}, nil
}

// Answer grades a submitted answer against the document's bank and
// appends exactly one progress record.
func (s *StudyService) Answer(req model.AnswerRequest) (*model.AnswerResult, error) {
	questions, err := s.questionRepo.ListByDocument(req.Document)
	if err != nil {
		return nil, err
	}

	var question *model.Question
	for i := range questions {
		if questions[i].ID == req.QuestionID {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if req.SelectedOption < 0 || req.SelectedOption >= len(question.Options) {
		return nil, fmt.Errorf("%w: %d of %d options", ErrOptionOutOfRange, req.SelectedOption, len(question.Options))
	}

	isCorrect := req.SelectedOption == question.CorrectOption

	rec := model.ProgressRecord{
		Timestamp:  s.now(),
		QuestionID: question.ID,
		PDFSource:  req.Document,
		Difficulty: question.Difficulty,
		IsCorrect:  isCorrect,
	}
	if err := s.progressRepo.Append(rec); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("document", req.Document).
		Int("question_id", question.ID).
		Bool("correct", isCorrect).
		Msg("answer recorded")

	return &model.AnswerResult{
		IsCorrect:     isCorrect,
		CorrectOption: question.CorrectOption,
		CorrectText:   question.Options[question.CorrectOption],
		Explanation:   question.Explanation,
	}, nil
}
