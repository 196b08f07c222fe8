package catalog

// DefaultCurrency is returned when no destination keyword matches.
const DefaultCurrency = "USD"

// DefaultSourceCurrency is the assumed origin currency for travelers.
const DefaultSourceCurrency = "INR"

var currencyRules = []rule{
	{key: "USD", keywords: []string{"usa", "united states"}},
	{key: "GBP", keywords: []string{"uk", "united kingdom"}},
	{key: "EUR", keywords: []string{"europe", "eu", "france", "germany", "italy", "spain"}},
	{key: "SGD", keywords: []string{"singapore"}},
	{key: "AUD", keywords: []string{"australia"}},
	{key: "JPY", keywords: []string{"japan"}},
	{key: "CAD", keywords: []string{"canada"}},
	{key: "CHF", keywords: []string{"switzerland"}},
	{key: "AED", keywords: []string{"uae", "dubai"}},
	{key: "THB", keywords: []string{"thailand"}},
	{key: "MYR", keywords: []string{"malaysia"}},
	{key: "IDR", keywords: []string{"indonesia"}},
	{key: "PHP", keywords: []string{"philippines"}},
	{key: "VND", keywords: []string{"vietnam"}},
	{key: "KRW", keywords: []string{"south korea"}},
	{key: "CNY", keywords: []string{"china"}},
	{key: "HKD", keywords: []string{"hong kong"}},
	{key: "NZD", keywords: []string{"new zealand"}},
}

// DestinationCurrency maps free-text destinations to a currency code. It
// never fails; unmatched destinations fall back to DefaultCurrency.
func DestinationCurrency(destination string) string {
	return matchKey(destination, currencyRules, DefaultCurrency)
}

// Approximate rates from INR. A production deployment would consult a live
// forex feed; the narrative part of the answer covers current rates.
var inrRates = map[string]float64{
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
	"SGD": 0.016,
	"AUD": 0.018,
	"JPY": 1.8,
	"CAD": 0.016,
	"CHF": 0.011,
	"AED": 0.044,
	"THB": 0.43,
	"MYR": 0.057,
	"IDR": 190.0,
	"PHP": 0.67,
	"VND": 290.0,
	"KRW": 16.0,
	"CNY": 0.087,
	"HKD": 0.094,
	"NZD": 0.020,
}

const defaultINRRate = 0.012

// ExchangeRate returns the approximate conversion rate from the source
// currency to the destination currency. Only INR-sourced rates are tabled;
// other sources return 1.0 and unknown destination currencies fall back to
// the USD rate.
func ExchangeRate(sourceCurrency, destinationCurrency string) float64 {
	if sourceCurrency != DefaultSourceCurrency {
		return 1.0
	}
	if rate, ok := inrRates[destinationCurrency]; ok {
		return rate
	}
	return defaultINRRate
}
