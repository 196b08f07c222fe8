package travel

import (
	"context"
	"log/slog"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/catalog"
)

// SimInformation answers a connectivity question. The trip length is always
// derived from the request dates before the prompt is built.
func (pl *Planner) SimInformation(ctx context.Context, req apimodels.SimRequest) (*apimodels.SimResponse, error) {
	duration := TripLength(req.StartDate, req.EndDate)

	slog.Info("building SIM answer", "destination", req.Destination, "duration", duration)

	recommendations, err := completeNarrative(ctx, pl.provider, simMessages(req.Destination, duration))
	if err != nil {
		slog.Error("SIM recommendation failed", "destination", req.Destination, "error", err)
		return nil, err
	}

	return &apimodels.SimResponse{
		AIRecommendations: recommendations,
		SimOptions:        catalog.SimOptionsForDestination(req.Destination),
	}, nil
}
