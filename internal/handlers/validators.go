package handlers

import (
	"sync"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators adds custom binding tags to gin's validator.
func registerValidators() {
	validatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("monthkey", validateMonthKey)
		}
	})
}

// validateMonthKey accepts "YYYY-MM".
func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := domain.ParseMonthKey(fl.Field().String())
	return err == nil
}
