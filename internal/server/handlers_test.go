package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/config"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/llm"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/travel"
)

type stubProvider struct {
	reply *llm.Reply
	err   error
}

func (s *stubProvider) Complete(ctx context.Context, messages []llm.Message, opts ...llm.Option) (*llm.Reply, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reply, nil
}

func testServer(provider llm.Provider) *Server {
	cfg := config.Config{
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
	return New(cfg, travel.NewPlanner(provider))
}

func TestForexEndpoint(t *testing.T) {
	s := testServer(&stubProvider{reply: &llm.Reply{Content: "Carry some cash.", FinishReason: "stop"}})

	body := `{"destination": "Singapore", "amount": 10000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forex", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp apimodels.ForexResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SGD", resp.DestinationCurrency)
	assert.Equal(t, "INR", resp.SourceCurrency)
	assert.Equal(t, 160.0, resp.ConvertedAmount)
	assert.Equal(t, "Carry some cash.", resp.AIRecommendations)
}

func TestForexEndpointMissingDestination(t *testing.T) {
	s := testServer(&stubProvider{reply: &llm.Reply{Content: "unused"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forex", strings.NewReader(`{"amount": 100}`))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "destination")
}

func TestForexEndpointMalformedBody(t *testing.T) {
	s := testServer(&stubProvider{reply: &llm.Reply{Content: "unused"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forex", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisaEndpointUpstreamEmpty(t *testing.T) {
	s := testServer(&stubProvider{err: llm.ErrEmptyCompletion})

	body := `{"destination": "Japan", "purposeOfVisit": "tourism"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visa", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSimEndpointUpstreamUnavailable(t *testing.T) {
	s := testServer(&stubProvider{err: &llm.UnavailableError{Err: context.DeadlineExceeded}})

	body := `{"destination": "Japan", "startDate": "2024-01-01", "endDate": "2024-01-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sim", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestItineraryEndpointMalformedOutput(t *testing.T) {
	s := testServer(&stubProvider{reply: &llm.Reply{Content: "no json here", FinishReason: "stop"}})

	body := `{"origin": "Delhi", "destination": "Tokyo", "startDate": "2024-03-01", "endDate": "2024-03-05", "groupSize": 2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/itinerary", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
