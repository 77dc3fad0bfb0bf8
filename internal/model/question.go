package model

import "fmt"

// Difficulty is the question difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyTiers is the canonical tier order, easiest first. It doubles as
// the recommendation fallback when no answer history exists.
var DifficultyTiers = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty normalizes a raw difficulty string. Unknown or empty
// values fall back to medium.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(raw)
	default:
		return DifficultyMedium
	}
}

// Question is a single multiple-choice question derived from a document.
// IDs are sequential per document, starting at 1.
type Question struct {
	ID            int        `json:"id"`
	QuestionText  string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectOption int        `json:"correct_option"`
	Difficulty    Difficulty `json:"difficulty"`
	Topic         string     `json:"topic"`
	Explanation   string     `json:"explanation"`
	PDFSource     string     `json:"pdf_source"`
}

// Validate checks the structural invariants of a question, in particular
// that the correct option is a valid index into the options list.
func (q *Question) Validate() error {
	if q.QuestionText == "" {
		return fmt.Errorf("question %d: empty question text", q.ID)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question %d: no options", q.ID)
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return fmt.Errorf("question %d: correct_option %d out of range [0,%d)",
			q.ID, q.CorrectOption, len(q.Options))
	}
	return nil
}

// GenerateRequest is the payload for generating questions from a document.
type GenerateRequest struct {
	NumQuestions int `json:"num_questions" binding:"omitempty,min=1,max=20"`
}
