package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/MuriloSCunha0/Study-Assistence-Pro/internal/model"
)

// Local models wrap JSON replies in prose and sometimes emit single
// quotes. RepairEnvelope cuts the reply down to the outermost {...} and
// normalizes unescaped single quotes to double quotes before parsing.
var (
	envelopeRE = regexp.MustCompile(`(?s)\{.*\}`)
	quoteRE    = regexp.MustCompile(`\\'|'`)
)

// RepairEnvelope applies the pattern substitutions that fix the common
// formatting deviations of model output.
func RepairEnvelope(raw string) string {
	repaired := envelopeRE.FindString(raw)
	if repaired == "" {
		return strings.TrimSpace(raw)
	}
	return quoteRE.ReplaceAllStringFunc(repaired, func(m string) string {
		if m == `\'` {
			return m
		}
		return `"`
	})
}

type envelope struct {
	Questions []map[string]any `json:"questions"`
}

// ParseEnvelope repairs and parses a model reply into questions, coercing
// loosely-typed fields and defaulting missing ones. IDs and the source
// document are assigned later, at persistence time.
func ParseEnvelope(raw string) ([]model.Question, error) {
	repaired := RepairEnvelope(raw)

	var env envelope
	if err := json.Unmarshal([]byte(repaired), &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	questions := make([]model.Question, 0, len(env.Questions))
	for _, item := range env.Questions {
		questions = append(questions, model.Question{
			QuestionText:  coerceString(item["question"], ""),
			Options:       coerceStringSlice(item["options"]),
			CorrectOption: coerceInt(item["correct_option"], 0),
			Difficulty:    model.ParseDifficulty(strings.ToLower(coerceString(item["difficulty"], "medium"))),
			Topic:         coerceString(item["topic"], "General"),
			Explanation:   coerceString(item["explanation"], ""),
		})
	}
	return questions, nil
}

func coerceString(v any, fallback string) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

func coerceStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", it))
		}
	}
	return out
}

// coerceInt accepts the number representations models actually emit:
// JSON numbers and numeric strings.
func coerceInt(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return fallback
}
