// Package generator produces multiple-choice questions from extracted
// document text via an OpenAI-compatible chat endpoint (Ollama by default).
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/config"
	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
)

// Generator asks the language model for quiz questions and parses the
// semi-structured reply into validated records.
type Generator struct {
	client    *openai.Client
	modelName string
	timeout   time.Duration
	log       zerolog.Logger
}

// New creates a Generator against the configured model endpoint.
func New(cfg *config.Config, log zerolog.Logger) *Generator {
	clientCfg := openai.DefaultConfig(cfg.ModelAPIKey)
	clientCfg.BaseURL = cfg.ModelBaseURL

	return &Generator{
		client:    openai.NewClientWithConfig(clientCfg),
		modelName: cfg.ModelName,
		timeout:   cfg.ModelTimeout,
		log:       log.With().Str("component", "generator").Logger(),
	}
}

// Generate requests numQuestions items for the given text and returns the
// parsed questions that satisfy the option-index invariant. Any model or
// parse error yields an empty result; the caller surfaces the error and
// does not retry.
func (g *Generator) Generate(ctx context.Context, text string, numQuestions int) ([]model.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(text, numQuestions),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	parsed, err := ParseEnvelope(raw)
	if err != nil {
		g.log.Warn().Err(err).Int("response_len", len(raw)).Msg("failed to parse model output")
		return nil, fmt.Errorf("parse model output: %w", err)
	}

	questions := make([]model.Question, 0, len(parsed))
	for i, q := range parsed {
		if err := q.Validate(); err != nil {
			g.log.Warn().Err(err).Int("item", i).Msg("dropping invalid generated question")
			continue
		}
		questions = append(questions, q)
	}

	g.log.Info().
		Int("requested", numQuestions).
		Int("parsed", len(parsed)).
		Int("accepted", len(questions)).
		Msg("question generation finished")

	return questions, nil
}

func buildPrompt(text string, numQuestions int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate exactly %d technical multiple-choice questions in JSON format following THIS MODEL:\n\n", numQuestions)
	sb.WriteString(`{
    "questions": [
        {
            "question": "Question text",
            "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
            "correct_option": 0,
            "difficulty": "easy|medium|hard",
            "topic": "Topic",
            "explanation": "Detailed explanation"
        }
    ]
}

RULES:
1. Use double quotes only
2. Number options starting at 0
3. Difficulty: easy, medium or hard
4. Valid format with NO errors

Reference text: `)
	sb.WriteString(text)

	return sb.String()
}
