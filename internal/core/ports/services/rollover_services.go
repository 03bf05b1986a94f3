package services

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/SscSPs/insightbud/internal/dto"
)

// SurplusUpdate is one recomputation of the remaining surplus list.
type SurplusUpdate struct {
	Months []budgeting.SurplusMonth
	Err    error
}

// RolloverReaderSvc defines read operations for budget rollover
type RolloverReaderSvc interface {
	// Surplus returns past months that still have untransferred surplus, newest first.
	Surplus(ctx context.Context, userID string) ([]budgeting.SurplusMonth, error)

	// MonthlyReport returns every past month with spend, surplus and transferred amount.
	MonthlyReport(ctx context.Context, userID string) ([]domain.MonthReport, error)

	ListRollovers(ctx context.Context, userID string) ([]domain.Rollover, error)

	// Watch recomputes the surplus list on every ledger change until ctx is done.
	Watch(ctx context.Context, userID string) <-chan SurplusUpdate
}

// RolloverWriterSvc defines the surplus transfer operation
type RolloverWriterSvc interface {
	Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error)
}

// RolloverSvcFacade combines all rollover-related service interfaces
type RolloverSvcFacade interface {
	RolloverReaderSvc
	RolloverWriterSvc
}
