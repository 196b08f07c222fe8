package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestinationCurrency(t *testing.T) {
	tests := []struct {
		destination string
		want        string
	}{
		{"Japan", "JPY"},
		{"JAPAN", "JPY"},
		{"a trip across japan by rail", "JPY"},
		{"Singapore", "SGD"},
		{"United States", "USD"},
		{"London, United Kingdom", "GBP"},
		{"France", "EUR"},
		{"Dubai", "AED"},
		{"South Korea", "KRW"},
		{"Atlantis", "USD"}, // no keyword matches
		{"Antarctica", "USD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DestinationCurrency(tt.destination), "destination %q", tt.destination)
	}
}

func TestDestinationCurrencyFirstMatchWins(t *testing.T) {
	// The EUR rule precedes the SGD rule, so a destination mentioning both
	// resolves by rule order, not by position in the text.
	assert.Equal(t, "EUR", DestinationCurrency("Singapore then France"))
}

func TestExchangeRate(t *testing.T) {
	assert.Equal(t, 1.8, ExchangeRate("INR", "JPY"))
	assert.Equal(t, 0.016, ExchangeRate("INR", "SGD"))
	assert.Equal(t, 0.012, ExchangeRate("INR", "USD"))

	// Unknown destination currency falls back to the USD rate.
	assert.Equal(t, 0.012, ExchangeRate("INR", "XQZ"))

	// Only INR-sourced rates are tabled.
	assert.Equal(t, 1.0, ExchangeRate("USD", "JPY"))
}
