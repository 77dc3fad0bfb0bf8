package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrDocumentNotFound ErrCode = "DOCUMENT_NOT_FOUND"
	ErrQuestionNotFound ErrCode = "QUESTION_NOT_FOUND"
	ErrNoQuestions      ErrCode = "NO_QUESTIONS"

	// ─── Upload ────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Generation ────────────────────────────────────────────────────
	ErrExtraction ErrCode = "EXTRACTION_FAILED"
	ErrGeneration ErrCode = "GENERATION_FAILED"

	// ─── Answers ───────────────────────────────────────────────────────
	ErrOptionOutOfRange ErrCode = "OPTION_OUT_OF_RANGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrNotFound:
		return "Resource not found."
	case ErrDocumentNotFound:
		return "No stored PDF with that name. Upload a PDF first."
	case ErrQuestionNotFound:
		return "No question with that id for this document."
	case ErrNoQuestions:
		return "No questions available for this document."
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type. Only PDF is accepted."
	case ErrFileTooLarge:
		return "The file exceeds the size limit."
	case ErrExtraction:
		return "Text extraction from the PDF failed."
	case ErrGeneration:
		return "Question generation failed. No questions were saved."
	case ErrOptionOutOfRange:
		return "The selected option is not a valid choice for this question."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
