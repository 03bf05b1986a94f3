package budgeting_test

import (
	"testing"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/stretchr/testify/assert"
)

func TestCheckScale(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{amount: "249.50"},
		{amount: "0.0001"},
		{amount: "12.50000"},
		{amount: "1000"},
		{amount: "0.00004", wantErr: true},
		{amount: "10.12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := budgeting.CheckScale("amount", d(tt.amount))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
