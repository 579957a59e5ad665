package handlers

import (
	"testing"

	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators_CurrencyCode(t *testing.T) {
	require.NotPanics(t, registerValidators)
	require.NotPanics(t, registerValidators, "registration runs once")

	tests := []struct {
		from, to string
		valid    bool
	}{
		{"USD", "pkr", true},
		{"US1", "EUR", false},
		{"USDX", "EUR", false},
		{"USD", "", false},
		{"ÜSD", "EUR", false},
	}
	for _, tc := range tests {
		err := binding.Validator.ValidateStruct(dto.ConvertCurrencyRequest{FromCurrencyCode: tc.from, ToCurrencyCode: tc.to})
		if tc.valid {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s", tc.from, tc.to)
		}
	}
}
