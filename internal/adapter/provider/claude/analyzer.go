// Package claude implements contract analysis backed by the Anthropic API.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// Analyzer sends contract text to Claude and parses the returned clause-risk
// report.
type Analyzer struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a Claude-backed analyzer.
func New(apiKey, model string, timeout time.Duration, log *slog.Logger) *Analyzer {
	return &Analyzer{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

// Analyze sends one contract to Claude and returns the parsed report.
func (a *Analyzer) Analyze(ctx context.Context, name, content string) (*domain.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	started := time.Now()

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(name, content))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("analysis api call for %q: %w", name, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty response for %q", name)
	}

	responseText := msg.Content[0].Text

	// Extract JSON from the response (between first { and last }).
	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("extract json from response for %q: %w", name, err)
	}

	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("response for %q does not contain valid JSON", name)
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal([]byte(jsonStr), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report for %q: %w", name, err)
	}

	// The model sometimes omits or rewrites the full text; pin it to the
	// input so the stored report always carries the analyzed document.
	report.Contract.FullContent = content
	if report.Contract.Title == "" {
		report.Contract.Title = name
	}

	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("report for %q failed validation: %w", name, err)
	}

	a.log.Info("contract analyzed",
		slog.String("name", name),
		slog.Int("score", report.Summary.Score),
		slog.Int("clauses", len(report.Contract.Clauses)),
		slog.Duration("took", time.Since(started)),
	)
	return &report, nil
}

// buildPrompt creates the analysis prompt for a single contract.
func buildPrompt(name, content string) string {
	return fmt.Sprintf(`You are a Vietnamese contract review assistant.

Given the contract %q below, split it into clauses and classify each clause's risk for the signing party.

Contract text:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "contract": {
    "title": "<contract title>",
    "clauses": [
      {
        "id": "<clause number as string>",
        "title": "<clause heading>",
        "content": "<clause text>",
        "risk": "<safe|caution|danger>",
        "suggestion": "<concrete fix in Vietnamese, only for caution/danger clauses>"
      }
    ],
    "fullContent": ""
  },
  "summary": {
    "score": <0-100 overall safety score>,
    "status": "<short Vietnamese verdict>",
    "description": "<2-3 sentence Vietnamese summary of the main risks>",
    "risks": [
      {"level": "danger", "count": <n>},
      {"level": "caution", "count": <n>},
      {"level": "safe", "count": <n>}
    ]
  }
}

Rules:
- Write status, description and suggestions in Vietnamese
- risk must be exactly one of: safe, caution, danger
- score 0 means unsignable, 100 means fully safe
- Output ONLY the JSON, no markdown, no explanations`, name, content)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
