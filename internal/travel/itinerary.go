package travel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
)

// Itinerary produces a full structured itinerary. This is the one feature
// where the model is held to a JSON-only output contract; a reply that cannot
// be parsed into the schema fails with MalformedOutputError.
func (pl *Planner) Itinerary(ctx context.Context, req apimodels.ItineraryRequest) (*apimodels.ItineraryResponse, error) {
	if req.Duration == 0 {
		req.Duration = tripDays(req.StartDate, req.EndDate)
	}

	slog.Info("building itinerary", "origin", req.Origin, "destination", req.Destination, "days", req.Duration)

	resp, err := completeStructured[apimodels.ItineraryResponse](ctx, pl.provider, itineraryMessages(req))
	if err != nil {
		slog.Error("itinerary generation failed", "origin", req.Origin, "destination", req.Destination, "error", err)
		return nil, err
	}
	if resp.ItinerarySummary == "" {
		err := &MalformedOutputError{Err: errors.New("missing itinerarySummary")}
		slog.Error("itinerary generation failed", "origin", req.Origin, "destination", req.Destination, "error", err)
		return nil, err
	}

	slog.Info("generated itinerary", "origin", req.Origin, "destination", req.Destination)
	return &resp, nil
}

// tripDays is the whole-day span between two yyyy-mm-dd dates, at least 1.
func tripDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
