package service

import (
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
)

// TierBreakdown is correct/total for one difficulty tier.
type TierBreakdown struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// DashboardData consolidates all progress metrics. Every view recomputes
// it from a full scan of the progress log; there is no cached state.
type DashboardData struct {
	TotalAnswers    int                                `json:"total_answers"`
	AccuracyPct     float64                            `json:"accuracy_pct"`
	RecentPct       float64                            `json:"recent_accuracy_pct"`
	ByDifficulty    map[model.Difficulty]TierBreakdown `json:"by_difficulty"`
	AnswersBySource map[string]int                     `json:"answers_by_source"`
}

// recentWindow is how many trailing answers feed the recent-accuracy metric.
const recentWindow = 10

// DashboardService aggregates the progress log into dashboard metrics.
type DashboardService struct {
	progressRepo *repository.ProgressRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(progressRepo *repository.ProgressRepository) *DashboardService {
	return &DashboardService{progressRepo: progressRepo}
}

// GetDashboardData rescans the whole progress log and computes totals,
// overall and recent accuracy, the per-difficulty breakdown, and the
// per-document answer distribution.
func (s *DashboardService) GetDashboardData() (*DashboardData, error) {
	records, err := s.progressRepo.ListAll()
	if err != nil {
		return nil, err
	}

	data := &DashboardData{
		TotalAnswers:    len(records),
		ByDifficulty:    make(map[model.Difficulty]TierBreakdown),
		AnswersBySource: make(map[string]int),
	}
	if len(records) == 0 {
		return data, nil
	}

	correct := 0
	for _, rec := range records {
		tier := data.ByDifficulty[rec.Difficulty]
		tier.Total++
		if rec.IsCorrect {
			tier.Correct++
			correct++
		}
		data.ByDifficulty[rec.Difficulty] = tier
		data.AnswersBySource[rec.PDFSource]++
	}
	data.AccuracyPct = 100 * float64(correct) / float64(len(records))

	recent := records
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	recentCorrect := 0
	for _, rec := range recent {
		if rec.IsCorrect {
			recentCorrect++
		}
	}
	data.RecentPct = 100 * float64(recentCorrect) / float64(len(recent))

	return data, nil
}
