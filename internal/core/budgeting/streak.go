package budgeting

import (
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StreakLookbackMonths caps the streak, current month included.
const StreakLookbackMonths = 12

// StreakResult is the consecutive-month savings streak.
type StreakResult struct {
	StreakMonths        int             `json:"streakMonths"`
	CurrentMonthSavings decimal.Decimal `json:"currentMonthSavings"`
}

// Streak counts consecutive months with positive savings ending at the current month.
// Without savings in the current month the streak is zero regardless of history.
func Streak(contributions []domain.Contribution, now time.Time) StreakResult {
	loc := now.Location()
	byMonth := make(map[domain.MonthKey]decimal.Decimal)
	for _, c := range contributions {
		key := domain.MonthKeyOf(c.Date.In(loc))
		byMonth[key] = byMonth[key].Add(c.Amount)
	}

	current := domain.MonthKeyOf(now)
	result := StreakResult{CurrentMonthSavings: byMonth[current]}
	if !result.CurrentMonthSavings.IsPositive() {
		return result
	}

	result.StreakMonths = 1
	month := current.Prev()
	for result.StreakMonths < StreakLookbackMonths && byMonth[month].IsPositive() {
		result.StreakMonths++
		month = month.Prev()
	}
	return result
}
