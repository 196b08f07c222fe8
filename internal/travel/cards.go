package travel

import (
	"context"
	"log/slog"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/catalog"
)

// ZeroForexCards answers a zero-forex card question with the model's
// narrative plus the destination-matched card catalog.
func (pl *Planner) ZeroForexCards(ctx context.Context, req apimodels.CardRequest) (*apimodels.CardResponse, error) {
	slog.Info("building zero-forex card answer", "destination", req.Destination)

	recommendations, err := completeNarrative(ctx, pl.provider, cardMessages(req.Destination))
	if err != nil {
		slog.Error("card recommendation failed", "destination", req.Destination, "error", err)
		return nil, err
	}

	return &apimodels.CardResponse{
		Destination:       req.Destination,
		AIRecommendations: recommendations,
		Cards: apimodels.CardData{
			Cards: catalog.CardsForDestination(req.Destination),
		},
	}, nil
}
