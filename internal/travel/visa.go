package travel

import (
	"context"
	"log/slog"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/catalog"
)

const defaultNationality = "Indian"

// VisaInformation answers a visa question with the model's narrative plus
// the static requirements reference.
func (pl *Planner) VisaInformation(ctx context.Context, req apimodels.VisaRequest) (*apimodels.VisaResponse, error) {
	nationality := req.Nationality
	if nationality == "" {
		nationality = defaultNationality
	}

	slog.Info("building visa answer", "destination", req.Destination, "purpose", req.PurposeOfVisit, "nationality", nationality)

	visaInfo, err := completeNarrative(ctx, pl.provider, visaMessages(req.Destination, req.PurposeOfVisit, nationality))
	if err != nil {
		slog.Error("visa recommendation failed", "destination", req.Destination, "error", err)
		return nil, err
	}

	return &apimodels.VisaResponse{
		Destination:          req.Destination,
		PurposeOfVisit:       req.PurposeOfVisit,
		Nationality:          nationality,
		VisaInformation:      visaInfo,
		VisaRequirementsData: catalog.VisaRequirements(req.Destination),
		Status:               "SUCCESS",
		Message:              "Visa information retrieved successfully",
	}, nil
}
