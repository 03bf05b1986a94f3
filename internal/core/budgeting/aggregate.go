// Package budgeting holds the pure budget-rollover engine: monthly aggregation,
// rollover reconciliation, transfer planning and savings streaks.
//
// Every function takes already-fetched snapshots plus the current time and returns
// synchronously. Nothing here performs I/O; writes are described as WriteCommand
// values that the caller executes.
package budgeting

import (
	"sort"
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthSummary is the spend and budget surplus of one closed month.
type MonthSummary struct {
	Month      domain.MonthKey `json:"month"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	Surplus    decimal.Decimal `json:"surplus"`
}

// MonthlyAggregate maps every past month in the user's history to its summary.
type MonthlyAggregate map[domain.MonthKey]MonthSummary

// Months returns the summaries in ascending month order.
func (a MonthlyAggregate) Months() []MonthSummary {
	out := make([]MonthSummary, 0, len(a))
	for _, s := range a {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// Surplus returns the surplus of month, zero when the month is not in range.
func (a MonthlyAggregate) Surplus(month domain.MonthKey) decimal.Decimal {
	if s, ok := a[month]; ok {
		return s.Surplus
	}
	return decimal.Zero
}

// Aggregate computes total spend and surplus for each month from the earliest relevant
// date up to, but excluding, the month of now. Months are calendar months in now's location.
func Aggregate(expenses []domain.Expense, budget *domain.Budget, now time.Time) MonthlyAggregate {
	loc := now.Location()
	currentMonth := domain.MonthKeyOf(now)

	spentByMonth := make(map[domain.MonthKey]decimal.Decimal)
	for _, e := range expenses {
		key := domain.MonthKeyOf(e.Date.In(loc))
		spentByMonth[key] = spentByMonth[key].Add(e.Amount)
	}

	budgetAmount := decimal.Zero
	if budget != nil && budget.Amount.IsPositive() {
		budgetAmount = budget.Amount
	}

	first := domain.MonthKeyOf(EarliestRelevantDate(expenses, budget, now).In(loc))

	agg := make(MonthlyAggregate)
	for month := first; month.Before(currentMonth); month = month.Next() {
		spent := spentByMonth[month]
		surplus := budgetAmount.Sub(spent)
		if surplus.IsNegative() {
			surplus = decimal.Zero
		}
		agg[month] = MonthSummary{Month: month, TotalSpent: spent, Surplus: surplus}
	}
	return agg
}

// EarliestRelevantDate is min(budget.CreatedAt, earliest expense date) when both exist,
// whichever exists otherwise, and now when neither does.
func EarliestRelevantDate(expenses []domain.Expense, budget *domain.Budget, now time.Time) time.Time {
	var earliest time.Time
	for _, e := range expenses {
		if e.Date.IsZero() {
			continue
		}
		if earliest.IsZero() || e.Date.Before(earliest) {
			earliest = e.Date
		}
	}

	if budget != nil && !budget.CreatedAt.IsZero() {
		if earliest.IsZero() || budget.CreatedAt.Before(earliest) {
			earliest = budget.CreatedAt
		}
	}

	if earliest.IsZero() {
		return now
	}
	return earliest
}
