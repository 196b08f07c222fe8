package travel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/llm"
)

// stubProvider returns a canned reply or error and records the messages it
// was given.
type stubProvider struct {
	reply    *llm.Reply
	err      error
	messages []llm.Message
}

func (s *stubProvider) Complete(ctx context.Context, messages []llm.Message, opts ...llm.Option) (*llm.Reply, error) {
	s.messages = messages
	if s.err != nil {
		return nil, s.err
	}
	return s.reply, nil
}

func TestForexExchangeMergesDeterministicFields(t *testing.T) {
	narrative := "The SGD is currently trading at 1 INR = 0.5 SGD, a fantastic rate!"
	provider := &stubProvider{reply: &llm.Reply{Content: narrative}}
	planner := NewPlanner(provider)

	resp, err := planner.ForexExchange(context.Background(), apimodels.ForexRequest{
		Destination: "Singapore",
		Amount:      10000,
		Currency:    "INR",
	})
	assert.NoError(t, err)

	assert.Equal(t, "SGD", resp.DestinationCurrency)
	assert.Equal(t, 0.016, resp.ExchangeRate)
	assert.Equal(t, 160.0, resp.ConvertedAmount)
	assert.Equal(t, "INR", resp.SourceCurrency)
	// The model's quoted rate is narrative only; the numeric fields stay the
	// locally computed values.
	assert.Equal(t, narrative, resp.AIRecommendations)
	assert.NotEmpty(t, resp.ExchangeWebsites)
	assert.Len(t, resp.ExchangeTips, 8)
	assert.NotEmpty(t, resp.LastUpdated)
}

func TestForexExchangeDefaultsSourceCurrency(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: "ok"}}
	planner := NewPlanner(provider)

	resp, err := planner.ForexExchange(context.Background(), apimodels.ForexRequest{
		Destination: "Japan",
		Amount:      100,
	})
	assert.NoError(t, err)
	assert.Equal(t, "INR", resp.SourceCurrency)
	assert.Equal(t, "JPY", resp.DestinationCurrency)
	assert.Equal(t, 180.0, resp.ConvertedAmount)
}

func TestForexExchangeSurfacesEmptyCompletion(t *testing.T) {
	provider := &stubProvider{err: llm.ErrEmptyCompletion}
	planner := NewPlanner(provider)

	resp, err := planner.ForexExchange(context.Background(), apimodels.ForexRequest{
		Destination: "Singapore",
		Amount:      10000,
		Currency:    "INR",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}

func TestZeroForexCardsIncludesCatalog(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: "use a zero-forex card"}}
	planner := NewPlanner(provider)

	resp, err := planner.ZeroForexCards(context.Background(), apimodels.CardRequest{Destination: "USA"})
	assert.NoError(t, err)
	assert.Equal(t, "use a zero-forex card", resp.AIRecommendations)
	assert.Len(t, resp.Cards.Cards, 3)
	assert.Equal(t, "HDFC Bank", resp.Cards.Cards[0].Bank)
}

func TestVisaInformationDefaultsNationality(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: "apply early"}}
	planner := NewPlanner(provider)

	resp, err := planner.VisaInformation(context.Background(), apimodels.VisaRequest{
		Destination:    "Germany",
		PurposeOfVisit: "tourism",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Indian", resp.Nationality)
	assert.Equal(t, "apply early", resp.VisaInformation)
	assert.Equal(t, "SUCCESS", resp.Status)
	assert.Len(t, resp.VisaRequirementsData.VisaTypes, 2)
}

func TestSimInformationDerivesDuration(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: "get an eSIM"}}
	planner := NewPlanner(provider)

	resp, err := planner.SimInformation(context.Background(), apimodels.SimRequest{
		Destination: "Japan",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-15",
	})
	assert.NoError(t, err)
	assert.Equal(t, "get an eSIM", resp.AIRecommendations)
	assert.Equal(t, "NTT Docomo", resp.SimOptions.LocalCarriers[0].Name)

	// The derived trip length is what reaches the prompt.
	assert.Contains(t, provider.messages[1].Content, "for 2 weeks")
}

func TestSimInformationWithBadDatesUsesSentinel(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: "ok"}}
	planner := NewPlanner(provider)

	_, err := planner.SimInformation(context.Background(), apimodels.SimRequest{Destination: "Japan"})
	assert.NoError(t, err)
	assert.Contains(t, provider.messages[1].Content, UnknownDuration)
}

func TestItineraryParsesStructuredReply(t *testing.T) {
	reply := `Here is your itinerary:
{"itinerarySummary":"A week in Tokyo","destinationInfo":"Tokyo blends tradition and technology.","travelTips":"Carry cash."}
Enjoy your trip!`
	provider := &stubProvider{reply: &llm.Reply{Content: reply}}
	planner := NewPlanner(provider)

	resp, err := planner.Itinerary(context.Background(), apimodels.ItineraryRequest{
		Origin:      "Mumbai",
		Destination: "Tokyo",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-08",
		GroupSize:   2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "A week in Tokyo", resp.ItinerarySummary)
	assert.Equal(t, "Carry cash.", resp.TravelTips)
}

func TestItineraryRejectsMalformedReply(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: "I could not produce an itinerary, sorry."}}
	planner := NewPlanner(provider)

	resp, err := planner.Itinerary(context.Background(), apimodels.ItineraryRequest{
		Origin:      "Mumbai",
		Destination: "Tokyo",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-08",
		GroupSize:   2,
	})
	assert.Nil(t, resp)

	var malformed *MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}

func TestItineraryRejectsEmptySummary(t *testing.T) {
	provider := &stubProvider{reply: &llm.Reply{Content: `{"destinationInfo":"somewhere"}`}}
	planner := NewPlanner(provider)

	resp, err := planner.Itinerary(context.Background(), apimodels.ItineraryRequest{
		Origin:      "Mumbai",
		Destination: "Tokyo",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-08",
		GroupSize:   2,
	})
	assert.Nil(t, resp)

	var malformed *MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}

func TestItineraryPropagatesGatewayFailure(t *testing.T) {
	provider := &stubProvider{err: &llm.UnavailableError{Err: errors.New("connection refused")}}
	planner := NewPlanner(provider)

	resp, err := planner.Itinerary(context.Background(), apimodels.ItineraryRequest{
		Origin:      "Mumbai",
		Destination: "Tokyo",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-08",
		GroupSize:   2,
	})
	assert.Nil(t, resp)

	var unavailable *llm.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}
