package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
// It panics when the tags cannot be registered.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected binding validator engine %T", binding.Validator.Engine()))
		}
		if err := v.RegisterValidation("currency_code", validateCurrencyCode); err != nil {
			panic(fmt.Sprintf("failed to register currency_code validation: %v", err))
		}
	})
}

// validateCurrencyCode accepts three ASCII letters in either case.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
