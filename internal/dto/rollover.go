package dto

import (
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest moves a past month's remaining surplus into a goal.
type TransferRequest struct {
	Month  string `json:"month" binding:"required,monthkey" example:"2024-06"`
	GoalID string `json:"goalId" binding:"required"`
	Wait   bool   `json:"wait"` // Await the ledger writes before responding
}

// TransferStatus reports how far the ledger writes got.
type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferApplied   TransferStatus = "applied"
	TransferPartial   TransferStatus = "partial"
	TransferNotStored TransferStatus = "failed"
)

// TransferResponse is the outcome of a transfer.
type TransferResponse struct {
	Month          string          `json:"month"`
	TransferAmount decimal.Decimal `json:"transferAmount" swaggertype:"string"`
	Goal           GoalResponse    `json:"goal"`
	Completed      bool            `json:"completed"`
	Message        string          `json:"message,omitempty"`
	Status         TransferStatus  `json:"status"`
}

// SurplusMonthResponse is one month with untransferred surplus.
type SurplusMonthResponse struct {
	Month   string          `json:"month"`
	Surplus decimal.Decimal `json:"surplus" swaggertype:"string"`
}

// MonthSummaryResponse is one row of the monthly report.
type MonthSummaryResponse struct {
	Month       string          `json:"month"`
	TotalSpent  decimal.Decimal `json:"totalSpent" swaggertype:"string"`
	Surplus     decimal.Decimal `json:"surplus" swaggertype:"string"`
	Transferred decimal.Decimal `json:"transferred" swaggertype:"string"`
}

// RolloverResponse defines the data returned for a rollover record.
type RolloverResponse struct {
	RolloverID          string          `json:"id"`
	Month               string          `json:"month"`
	TransferredAmount   decimal.Decimal `json:"transferredAmount" swaggertype:"string"`
	TransferredToGoalID string          `json:"transferredToGoalId"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ToRolloverResponses converts a slice of domain.Rollover to []RolloverResponse.
func ToRolloverResponses(rs []domain.Rollover) []RolloverResponse {
	res := make([]RolloverResponse, len(rs))
	for i, r := range rs {
		res[i] = RolloverResponse{
			RolloverID:          r.RolloverID,
			Month:               r.Month.String(),
			TransferredAmount:   r.TransferredAmount,
			TransferredToGoalID: r.TransferredToGoalID,
			CreatedAt:           r.CreatedAt,
		}
	}
	return res
}
