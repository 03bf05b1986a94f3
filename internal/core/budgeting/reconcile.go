package budgeting

import (
	"sort"
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SurplusEpsilon hides floating noise: remaining surplus must exceed one cent to be offered.
var SurplusEpsilon = decimal.New(1, -2)

// SurplusMonth is a past month that still has untransferred surplus.
type SurplusMonth struct {
	Month   domain.MonthKey `json:"month"`
	Surplus decimal.Decimal `json:"surplus"`
}

// TransferredByMonth sums rollover amounts per month key.
func TransferredByMonth(rollovers []domain.Rollover) map[domain.MonthKey]decimal.Decimal {
	out := make(map[domain.MonthKey]decimal.Decimal)
	for _, r := range rollovers {
		out[r.Month] = out[r.Month].Add(r.TransferredAmount)
	}
	return out
}

// RemainingSurplus returns, newest first, every past month whose surplus minus everything
// already transferred for it exceeds SurplusEpsilon.
//
// It always recomputes from the full rollover history, so the result depends only on the
// per-month sums of transferred amounts.
func RemainingSurplus(agg MonthlyAggregate, rollovers []domain.Rollover, now time.Time) []SurplusMonth {
	currentMonth := domain.MonthKeyOf(now)
	transferred := TransferredByMonth(rollovers)

	out := make([]SurplusMonth, 0, len(agg))
	for month, summary := range agg {
		if !month.Before(currentMonth) {
			continue
		}
		remaining := summary.Surplus.Sub(transferred[month])
		if remaining.GreaterThan(SurplusEpsilon) {
			out = append(out, SurplusMonth{Month: month, Surplus: remaining})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[j].Month.Before(out[i].Month)
	})
	return out
}

// FindSurplus returns the remaining surplus of month from a reconciled list.
func FindSurplus(months []SurplusMonth, month domain.MonthKey) (decimal.Decimal, bool) {
	for _, m := range months {
		if m.Month == month {
			return m.Surplus, true
		}
	}
	return decimal.Zero, false
}
