// Package extractor talks to the external PDF text-extraction service.
// Extraction and semantic chunking happen outside this process; the
// service receives a PDF and returns plain text.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Extractor converts a stored PDF into extracted text.
type Extractor interface {
	ExtractText(ctx context.Context, name string, pdf io.Reader) (string, error)
}

// HTTPExtractor posts PDFs to an extraction service endpoint.
type HTTPExtractor struct {
	url    string
	client *http.Client
}

// NewHTTPExtractor creates an HTTPExtractor for the given endpoint URL.
func NewHTTPExtractor(url string) *HTTPExtractor {
	return &HTTPExtractor{
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// extractResponse is the service's reply: either joined text or a list of
// semantic chunks.
type extractResponse struct {
	Text   string   `json:"text"`
	Chunks []string `json:"chunks"`
}

// ExtractText uploads the PDF as multipart form data and returns the
// extracted text. Chunked replies are joined with single spaces.
func (e *HTTPExtractor) ExtractText(ctx context.Context, name string, pdf io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return "", fmt.Errorf("copy pdf: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("extractor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode extractor response: %w", err)
	}

	if parsed.Text != "" {
		return parsed.Text, nil
	}
	return strings.Join(parsed.Chunks, " "), nil
}
