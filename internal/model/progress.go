package model

import "time"

// ProgressRecord is one logged answer event. The progress file is
// append-only: exactly one record per answered question.
type ProgressRecord struct {
	Timestamp  time.Time  `json:"timestamp"`
	QuestionID int        `json:"question_id"`
	PDFSource  string     `json:"pdf_source"`
	Difficulty Difficulty `json:"difficulty"`
	IsCorrect  bool       `json:"is_correct"`
}

// AnswerRequest is the payload for submitting an answer to a question.
type AnswerRequest struct {
	Document       string `json:"document" binding:"required"`
	QuestionID     int    `json:"question_id" binding:"required,min=1"`
	SelectedOption int    `json:"selected_option" binding:"min=0"`
}

// AnswerResult reports the outcome of grading one answer.
type AnswerResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectOption int    `json:"correct_option"`
	CorrectText   string `json:"correct_text"`
	Explanation   string `json:"explanation"`
}
