package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
)

// questionHeader is the column layout of a question bank CSV. Options are
// JSON-encoded into a single field.
var questionHeader = []string{
	"id", "question", "options", "correct_option",
	"difficulty", "topic", "explanation", "pdf_source",
}

// QuestionRepository stores question banks as one CSV file per source
// document. Reads and writes are whole-file; a mutex guards concurrent
// access within the process.
type QuestionRepository struct {
	mu  sync.Mutex
	dir string
}

// NewQuestionRepository creates a QuestionRepository rooted at dir,
// creating the directory if needed.
func NewQuestionRepository(dir string) (*QuestionRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create questions dir: %w", err)
	}
	return &QuestionRepository{dir: dir}, nil
}

// BankPath returns the CSV path for a document's question bank,
// e.g. "algebra_3f2a1b9c.pdf" -> "<dir>/algebra_3f2a1b9c_questions.csv".
func (r *QuestionRepository) BankPath(document string) string {
	stem := strings.TrimSuffix(document, filepath.Ext(document))
	return filepath.Join(r.dir, stem+"_questions.csv")
}

// ListByDocument loads all questions for a document. A missing bank file
// yields an empty slice, not an error.
func (r *QuestionRepository) ListByDocument(document string) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readBank(r.BankPath(document))
}

// ListAll loads questions across every bank file in the directory.
func (r *QuestionRepository) ListAll() ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths, err := filepath.Glob(filepath.Join(r.dir, "*_questions.csv"))
	if err != nil {
		return nil, err
	}

	var all []model.Question
	for _, p := range paths {
		questions, err := r.readBank(p)
		if err != nil {
			return nil, err
		}
		all = append(all, questions...)
	}
	return all, nil
}

// CountByDocument returns the number of questions in a document's bank.
func (r *QuestionRepository) CountByDocument(document string) (int, error) {
	questions, err := r.ListByDocument(document)
	if err != nil {
		return 0, err
	}
	return len(questions), nil
}

// Append adds questions to a document's bank, assigning sequential IDs
// continuing from the existing bank, and rewrites the whole CSV.
// It returns the stored questions with their assigned IDs.
func (r *QuestionRepository) Append(document string, questions []model.Question) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.BankPath(document)
	existing, err := r.readBank(path)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		questions[i].ID = len(existing) + i + 1
		questions[i].PDFSource = document
	}

	if err := r.writeBank(path, append(existing, questions...)); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) readBank(path string) ([]model.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", filepath.Base(path), err)
	}
	if len(rows) <= 1 {
		return nil, nil // Header only or empty.
	}

	questions := make([]model.Question, 0, len(rows)-1)
	for _, row := range rows[1:] {
		q, err := parseQuestionRow(row)
		if err != nil {
			return nil, fmt.Errorf("bank %s: %w", filepath.Base(path), err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) writeBank(path string, questions []model.Question) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bank: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(questionHeader); err != nil {
		return err
	}
	for _, q := range questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		row := []string{
			strconv.Itoa(q.ID),
			q.QuestionText,
			string(opts),
			strconv.Itoa(q.CorrectOption),
			string(q.Difficulty),
			q.Topic,
			q.Explanation,
			q.PDFSource,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func parseQuestionRow(row []string) (model.Question, error) {
	var q model.Question
	if len(row) != len(questionHeader) {
		return q, fmt.Errorf("malformed row: %d columns", len(row))
	}

	id, err := strconv.Atoi(row[0])
	if err != nil {
		return q, fmt.Errorf("bad id %q: %w", row[0], err)
	}
	var options []string
	if err := json.Unmarshal([]byte(row[2]), &options); err != nil {
		return q, fmt.Errorf("bad options for question %d: %w", id, err)
	}
	correct, err := strconv.Atoi(row[3])
	if err != nil {
		return q, fmt.Errorf("bad correct_option for question %d: %w", id, err)
	}

	q = model.Question{
		ID:            id,
		QuestionText:  row[1],
		Options:       options,
		CorrectOption: correct,
		Difficulty:    model.ParseDifficulty(row[4]),
		Topic:         row[5],
		Explanation:   row[6],
		PDFSource:     row[7],
	}
	return q, nil
}
