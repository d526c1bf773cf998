package handlers

import (
	"sync"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the domain enum tags used in request DTOs to gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("ratetype", func(fl validator.FieldLevel) bool {
			return domain.RateType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
			return domain.TransactionType(fl.Field().String()).IsValid()
		})
	})
}
