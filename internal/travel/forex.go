package travel

import (
	"context"
	"log/slog"
	"time"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/catalog"
)

// ForexExchange answers a currency-exchange question. The exchange rate and
// converted amount are computed from the local tables; the model contributes
// narrative guidance only and can never override the numeric fields.
func (pl *Planner) ForexExchange(ctx context.Context, req apimodels.ForexRequest) (*apimodels.ForexResponse, error) {
	sourceCurrency := req.Currency
	if sourceCurrency == "" {
		sourceCurrency = catalog.DefaultSourceCurrency
	}

	slog.Info("building forex exchange answer", "destination", req.Destination, "amount", req.Amount, "currency", sourceCurrency)

	recommendations, err := completeNarrative(ctx, pl.provider, forexMessages(req.Destination, req.Amount, sourceCurrency))
	if err != nil {
		slog.Error("forex recommendation failed", "destination", req.Destination, "error", err)
		return nil, err
	}

	destinationCurrency := catalog.DestinationCurrency(req.Destination)
	rate := catalog.ExchangeRate(sourceCurrency, destinationCurrency)

	return &apimodels.ForexResponse{
		Destination:         req.Destination,
		DestinationCurrency: destinationCurrency,
		SourceAmount:        req.Amount,
		SourceCurrency:      sourceCurrency,
		ExchangeRate:        rate,
		ConvertedAmount:     req.Amount * rate,
		LastUpdated:         time.Now().Format("2006-01-02 15:04:05"),
		AIRecommendations:   recommendations,
		ExchangeInfo:        catalog.ExchangeGuidance(),
		ExchangeWebsites:    catalog.ExchangeWebsites(),
		ExchangeTips:        catalog.ExchangeTips(),
	}, nil
}
