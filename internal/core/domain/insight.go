package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryInsight is a per-category prediction.
type CategoryInsight struct {
	CategoryName string          `json:"categoryName"`
	Prediction   decimal.Decimal `json:"prediction"`
	Insight      string          `json:"insight"`
}

// SavingsRecommendation is a single actionable tip.
type SavingsRecommendation struct {
	Recommendation string `json:"recommendation"`
}

// SpendingInsights is the AI analysis of the expense history.
type SpendingInsights struct {
	PredictedNextMonthTotal decimal.Decimal         `json:"predictedNextMonthTotal"`
	OverallInsight          string                  `json:"overallInsight"`
	CategoryInsights        []CategoryInsight       `json:"categoryInsights"`
	SavingsRecommendations  []SavingsRecommendation `json:"savingsRecommendations"`
	Fallback                bool                    `json:"fallback"`
}

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a chatbot conversation.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ParsedReceipt is the structured data extracted from a receipt image.
type ParsedReceipt struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// SavingsStreak is the streak numbers with a motivational message.
type SavingsStreak struct {
	StreakMonths        int             `json:"streakMonths"`
	CurrentMonthSavings decimal.Decimal `json:"currentMonthSavings"`
	Message             string          `json:"message"`
}
