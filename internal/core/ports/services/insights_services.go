package services

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
)

// InsightsSvc defines the AI-backed flows. None of them fail on generation errors;
// they return canned fallbacks instead.
type InsightsSvc interface {
	SpendingInsights(ctx context.Context, userID string) (*domain.SpendingInsights, error)
	RecurringSuggestions(ctx context.Context, userID string) ([]string, error)
	Chat(ctx context.Context, userID, query string, history []domain.ChatMessage) (string, error)
	ParseReceipt(ctx context.Context, photoDataURI string) (*domain.ParsedReceipt, error)

	GoalMessage(ctx context.Context, goalName string) string
	StreakMessage(ctx context.Context, streak budgeting.StreakResult, hasContributions bool) string
}

// Prompt is one request to a text-generation model.
type Prompt struct {
	Flow     string // Name of the calling flow, used for caching and metrics
	System   string
	User     string
	ImageURL string // Optional data URI or URL of an image
	JSON     bool   // Ask for a JSON object response
}

// TextGenerator is the text-generation collaborator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
