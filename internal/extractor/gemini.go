// Package extractor implements domain.ExpenseExtractor on top of the Gemini
// API.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/config"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model produced no text
var ErrEmptyResponse = errors.New("model returned no content")

// generateFunc sends one request to the model
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// GeminiExtractor asks a Gemini model to read an expense out of free text
type GeminiExtractor struct {
	generate generateFunc
	model    string
	timeout  time.Duration
	location *time.Location
}

// Ensure GeminiExtractor implements domain.ExpenseExtractor
var _ domain.ExpenseExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor creates a Gemini backed extractor. Dates without an
// offset in the model output are read in loc.
func NewGeminiExtractor(ctx context.Context, gcfg config.GeminiConfig, loc *time.Location) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  gcfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return newGeminiExtractor(client.Models.GenerateContent, gcfg.Model, gcfg.RequestTimeout, loc), nil
}

func newGeminiExtractor(generate generateFunc, model string, timeout time.Duration, loc *time.Location) *GeminiExtractor {
	model = strings.TrimPrefix(model, "models/")
	if loc == nil {
		loc = time.UTC
	}
	return &GeminiExtractor{
		generate: generate,
		model:    model,
		timeout:  timeout,
		location: loc,
	}
}

// Extract implements domain.ExpenseExtractor
func (g *GeminiExtractor) Extract(ctx context.Context, message string, today time.Time) (*domain.ExtractedExpense, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	started := time.Now()
	resp, err := g.generate(ctx, g.model, genai.Text(message), generateConfig(today))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("model", g.model).
		Dur("latency", time.Since(started)).
		Msg("Extraction response received")

	return parseCandidate(text, g.location)
}

func generateConfig(today time.Time) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(today), genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
}

func systemPrompt(today time.Time) string {
	var b strings.Builder
	b.WriteString("You extract a single expense from a short note written by the user.\n")
	b.WriteString("Reply with one JSON object and nothing else, using these keys:\n")
	b.WriteString(`  "amount": number in INR, no currency symbol` + "\n")
	b.WriteString(`  "category": exactly one of the categories listed below` + "\n")
	b.WriteString(`  "description": a short description of what was bought` + "\n")
	b.WriteString(`  "date": YYYY-MM-DD, resolving words like "yesterday" against today's date` + "\n")
	b.WriteString("If the note does not describe an expense, reply with {\"amount\": null}.\n")
	b.WriteString("Categories:\n")
	for _, category := range domain.CatalogCategories() {
		b.WriteString("- ")
		b.WriteString(category)
		b.WriteString("\n")
	}
	b.WriteString("Today's date: ")
	b.WriteString(today.Format("2006-01-02"))
	return b.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

type candidatePayload struct {
	Amount      *decimal.Decimal `json:"amount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

// parseCandidate reads the model output. Output that does not describe a
// usable expense yields a nil candidate and a nil error.
func parseCandidate(text string, loc *time.Location) (*domain.ExtractedExpense, error) {
	text = stripCodeFence(text)

	var payload candidatePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Debug().Err(err).Msg("Model output is not valid JSON")
		return nil, nil
	}

	if payload.Amount == nil || payload.Amount.IsNegative() {
		return nil, nil
	}
	if !domain.IsCatalogCategory(payload.Category) {
		return nil, nil
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		return nil, nil
	}

	candidate := &domain.ExtractedExpense{
		Amount:      *payload.Amount,
		Category:    payload.Category,
		Description: description,
	}
	if date, ok := util.ParseCalendarDate(payload.Date, loc); ok {
		candidate.Date = date
	}
	return candidate, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
