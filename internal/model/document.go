package model

// Document is an uploaded PDF and its derived question bank.
type Document struct {
	// Name is the generated unique filename, e.g. "algebra_3f2a1b9c.pdf".
	Name string `json:"name"`
	// Size is the stored file size in bytes.
	Size int64 `json:"size"`
	// QuestionCount is the number of questions in the document's bank.
	QuestionCount int `json:"question_count"`
	// URL is the static path the stored PDF is served from.
	URL string `json:"url"`
}
