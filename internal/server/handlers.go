package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/llm"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/travel"
)

func (s *Server) handleForex(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ForexRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.planner.ForexExchange(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var req apimodels.CardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.planner.ZeroForexCards(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleVisa(w http.ResponseWriter, r *http.Request) {
	var req apimodels.VisaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.planner.VisaInformation(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleSim(w http.ResponseWriter, r *http.Request) {
	var req apimodels.SimRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.planner.SimInformation(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleItinerary(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ItineraryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.planner.Itinerary(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

type validator interface {
	Validate() error
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, req validator) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return false
	}
	defer r.Body.Close()

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError maps the pipeline's typed failures to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)

	var (
		validationErr *apimodels.ValidationError
		rejectedErr   *llm.RejectedError
		unavailErr    *llm.UnavailableError
		malformedErr  *travel.MalformedOutputError
	)
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &unavailErr):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	case errors.As(err, &rejectedErr),
		errors.As(err, &malformedErr),
		errors.Is(err, llm.ErrEmptyCompletion):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
