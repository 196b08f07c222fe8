package apimodels

import "fmt"

// ValidationError reports a request field that failed validation before the
// pipeline was started.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// ForexRequest asks for currency-exchange guidance for a trip.
type ForexRequest struct {
	// Destination is the free-text destination country or city
	Destination string `json:"destination"`

	// Amount is the amount to exchange, in the source currency
	Amount float64 `json:"amount"`

	// Currency is the source currency code; defaults to INR when empty
	Currency string `json:"currency,omitempty"`
}

func (r *ForexRequest) Validate() error {
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Reason: "is required"}
	}
	if r.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	return nil
}

// CardRequest asks for zero-forex card recommendations for a destination.
type CardRequest struct {
	Destination string `json:"destination"`
}

func (r *CardRequest) Validate() error {
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Reason: "is required"}
	}
	return nil
}

// VisaRequest asks for visa requirements for a trip.
type VisaRequest struct {
	Destination string `json:"destination"`

	// PurposeOfVisit is e.g. "tourism" or "business"
	PurposeOfVisit string `json:"purposeOfVisit"`

	// Nationality defaults to Indian when empty
	Nationality string `json:"nationality,omitempty"`
}

func (r *VisaRequest) Validate() error {
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Reason: "is required"}
	}
	if r.PurposeOfVisit == "" {
		return &ValidationError{Field: "purposeOfVisit", Reason: "is required"}
	}
	return nil
}

// SimRequest asks for SIM and connectivity options for a trip. The trip
// length is derived from the start and end dates.
type SimRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

func (r *SimRequest) Validate() error {
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Reason: "is required"}
	}
	return nil
}

// ItineraryRequest asks for a full structured trip itinerary.
type ItineraryRequest struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Duration        int    `json:"duration"`
	FoodPreferences string `json:"foodPreferences,omitempty"`
	Budget          string `json:"budget,omitempty"`
	TravelStyle     string `json:"travelStyle,omitempty"`
	GroupSize       int    `json:"groupSize"`
}

func (r *ItineraryRequest) Validate() error {
	if r.Origin == "" {
		return &ValidationError{Field: "origin", Reason: "is required"}
	}
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Reason: "is required"}
	}
	if r.StartDate == "" || r.EndDate == "" {
		return &ValidationError{Field: "startDate/endDate", Reason: "are required"}
	}
	if r.StartDate > r.EndDate {
		return &ValidationError{Field: "startDate", Reason: "must not be after endDate"}
	}
	if r.GroupSize < 1 {
		return &ValidationError{Field: "groupSize", Reason: "must be at least 1"}
	}
	return nil
}
