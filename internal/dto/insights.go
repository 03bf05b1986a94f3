package dto

import "github.com/SscSPs/insightbud/internal/core/domain"

// ChatRequest is a chatbot question with the conversation so far.
type ChatRequest struct {
	Query   string               `json:"query" binding:"required,max=2000"`
	History []domain.ChatMessage `json:"history" binding:"max=50"`
}

// ChatResponse is the chatbot answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// ParseReceiptRequest carries a receipt photo as a base64 data URI.
type ParseReceiptRequest struct {
	PhotoDataURI string `json:"photoDataUri" binding:"required,startswith=data:"`
}

// RecurringSuggestionsResponse lists expenses that look recurring.
type RecurringSuggestionsResponse struct {
	ExpenseIDs []string `json:"recurringExpenseIds"`
}
