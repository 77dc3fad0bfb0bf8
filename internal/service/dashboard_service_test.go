package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/repository"
)

func TestDashboardEmptyLog(t *testing.T) {
	repo := repository.NewProgressRepository(filepath.Join(t.TempDir(), "progress.csv"))
	svc := NewDashboardService(repo)

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error = %v", err)
	}
	if data.TotalAnswers != 0 || data.AccuracyPct != 0 || data.RecentPct != 0 {
		t.Errorf("empty log produced non-zero metrics: %+v", data)
	}
}

func TestDashboardAggregates(t *testing.T) {
	repo := repository.NewProgressRepository(filepath.Join(t.TempDir(), "progress.csv"))
	svc := NewDashboardService(repo)

	type event struct {
		doc     string
		tier    model.Difficulty
		correct bool
	}
	events := []event{
		{"a_11111111.pdf", model.DifficultyEasy, true},
		{"a_11111111.pdf", model.DifficultyEasy, true},
		{"a_11111111.pdf", model.DifficultyMedium, false},
		{"b_22222222.pdf", model.DifficultyHard, false},
	}
	for i, ev := range events {
		err := repo.Append(model.ProgressRecord{
			Timestamp:  time.Now().Add(time.Duration(i) * time.Second),
			QuestionID: i + 1,
			PDFSource:  ev.doc,
			Difficulty: ev.tier,
			IsCorrect:  ev.correct,
		})
		if err != nil {
			t.Fatalf("seed progress: %v", err)
		}
	}

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error = %v", err)
	}

	if data.TotalAnswers != 4 {
		t.Errorf("TotalAnswers = %d, want 4", data.TotalAnswers)
	}
	if data.AccuracyPct != 50 {
		t.Errorf("AccuracyPct = %v, want 50", data.AccuracyPct)
	}
	if data.RecentPct != 50 {
		t.Errorf("RecentPct = %v, want 50 (fewer answers than the window)", data.RecentPct)
	}
	if got := data.ByDifficulty[model.DifficultyEasy]; got.Correct != 2 || got.Total != 2 {
		t.Errorf("easy breakdown = %+v, want 2/2", got)
	}
	if got := data.ByDifficulty[model.DifficultyHard]; got.Correct != 0 || got.Total != 1 {
		t.Errorf("hard breakdown = %+v, want 0/1", got)
	}
	if data.AnswersBySource["a_11111111.pdf"] != 3 || data.AnswersBySource["b_22222222.pdf"] != 1 {
		t.Errorf("AnswersBySource = %v, want a:3 b:1", data.AnswersBySource)
	}
}

func TestDashboardRecentWindow(t *testing.T) {
	repo := repository.NewProgressRepository(filepath.Join(t.TempDir(), "progress.csv"))
	svc := NewDashboardService(repo)

	// 15 answers: first 5 correct, last 10 incorrect. Overall accuracy is
	// 33.3%, but the trailing window is all misses.
	for i := 0; i < 15; i++ {
		err := repo.Append(model.ProgressRecord{
			Timestamp:  time.Now(),
			QuestionID: i + 1,
			PDFSource:  "c_33333333.pdf",
			Difficulty: model.DifficultyMedium,
			IsCorrect:  i < 5,
		})
		if err != nil {
			t.Fatalf("seed progress: %v", err)
		}
	}

	data, err := svc.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error = %v", err)
	}
	if data.RecentPct != 0 {
		t.Errorf("RecentPct = %v, want 0", data.RecentPct)
	}
	if data.TotalAnswers != 15 {
		t.Errorf("TotalAnswers = %d, want 15", data.TotalAnswers)
	}
}
