package budgeting

import (
	"fmt"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places the ledger stores amounts with.
const AmountScale = 4

// CheckScale rejects amounts that storage would round.
func CheckScale(field string, amount decimal.Decimal) error {
	if amount.Equal(amount.Truncate(AmountScale)) {
		return nil
	}
	return fmt.Errorf("%w: %s must have at most %d decimal places", apperrors.ErrValidation, field, AmountScale)
}
