package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
)

var progressHeader = []string{
	"timestamp", "question_id", "pdf_source", "difficulty", "is_correct",
}

// ProgressRepository stores answer events in a single append-only CSV.
// The header is written on the first append; subsequent appends add
// exactly one row per record.
type ProgressRepository struct {
	mu   sync.Mutex
	path string
}

// NewProgressRepository creates a ProgressRepository backed by the CSV
// file at path. The file is created lazily on first append.
func NewProgressRepository(path string) *ProgressRepository {
	return &ProgressRepository{path: path}
}

// Append writes one record to the end of the progress log.
func (r *ProgressRepository) Append(rec model.ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, statErr := os.Stat(r.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open progress log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(progressHeader); err != nil {
			return err
		}
	}
	row := []string{
		rec.Timestamp.UTC().Format(time.RFC3339),
		strconv.Itoa(rec.QuestionID),
		rec.PDFSource,
		string(rec.Difficulty),
		strconv.FormatBool(rec.IsCorrect),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// ListAll rescans the whole progress log. A missing file yields an empty
// slice.
func (r *ProgressRepository) ListAll() ([]model.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open progress log: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read progress log: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]model.ProgressRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseProgressRow(row)
		if err != nil {
			return nil, fmt.Errorf("progress row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseProgressRow(row []string) (model.ProgressRecord, error) {
	var rec model.ProgressRecord
	if len(row) != len(progressHeader) {
		return rec, fmt.Errorf("malformed row: %d columns", len(row))
	}

	ts, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return rec, fmt.Errorf("bad timestamp %q: %w", row[0], err)
	}
	qid, err := strconv.Atoi(row[1])
	if err != nil {
		return rec, fmt.Errorf("bad question_id %q: %w", row[1], err)
	}
	correct, err := strconv.ParseBool(row[4])
	if err != nil {
		return rec, fmt.Errorf("bad is_correct %q: %w", row[4], err)
	}

	rec = model.ProgressRecord{
		Timestamp:  ts,
		QuestionID: qid,
		PDFSource:  row[2],
		Difficulty: model.ParseDifficulty(row[3]),
		IsCorrect:  correct,
	}
	return rec, nil
}
