package apimodels

// ForexResponse combines locally computed exchange figures and reference data
// with the model's narrative guidance. The numeric fields are always the
// locally computed values; the narrative never overrides them.
type ForexResponse struct {
	Destination         string            `json:"destination"`
	DestinationCurrency string            `json:"destinationCurrency"`
	SourceAmount        float64           `json:"sourceAmount"`
	SourceCurrency      string            `json:"sourceCurrency"`
	ExchangeRate        float64           `json:"exchangeRate"`
	ConvertedAmount     float64           `json:"convertedAmount"`
	LastUpdated         string            `json:"lastUpdated"`
	AIRecommendations   string            `json:"aiRecommendations"`
	ExchangeInfo        ExchangeInfo      `json:"exchangeInfo"`
	ExchangeWebsites    []ExchangeWebsite `json:"exchangeWebsites"`
	ExchangeTips        []ExchangeTip     `json:"exchangeTips"`
}

type ExchangeInfo struct {
	BestTimeToExchange    string `json:"bestTimeToExchange"`
	ExchangeMethod        string `json:"exchangeMethod"`
	DocumentationRequired string `json:"documentationRequired"`
	Restrictions          string `json:"restrictions"`
	BestPractices         string `json:"bestPractices"`
}

type ExchangeWebsite struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	Rating       string `json:"rating"`
	Pros         string `json:"pros"`
	Cons         string `json:"cons"`
	ExchangeRate string `json:"exchangeRate"`
	Fees         string `json:"fees"`
}

type ExchangeTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CardResponse pairs the model's narrative with the destination-matched card
// catalog rows.
type CardResponse struct {
	Destination       string   `json:"destination"`
	AIRecommendations string   `json:"aiRecommendations"`
	Cards             CardData `json:"cards"`
}

type CardData struct {
	Cards []Card `json:"cards"`
}

type Card struct {
	Name               string   `json:"name"`
	Bank               string   `json:"bank"`
	AnnualFee          string   `json:"annualFee"`
	ForexMarkup        string   `json:"forexMarkup"`
	Acceptance         string   `json:"acceptance"`
	ApplicationProcess string   `json:"applicationProcess"`
	Features           []string `json:"features"`
	BestFor            string   `json:"bestFor"`
	Pros               string   `json:"pros"`
	Cons               string   `json:"cons"`
	ApplicationLink    string   `json:"applicationLink"`
	Comparison         string   `json:"comparison"`
	Recommendation     string   `json:"recommendation"`
}

// VisaResponse carries the model's narrative plus the static requirements
// reference data and a simple status envelope.
type VisaResponse struct {
	Destination          string               `json:"destination"`
	PurposeOfVisit       string               `json:"purposeOfVisit"`
	Nationality          string               `json:"nationality"`
	VisaInformation      string               `json:"visaInformation"`
	VisaRequirementsData VisaRequirementsData `json:"visaRequirementsData"`
	Status               string               `json:"status"`
	Message              string               `json:"message"`
}

type VisaRequirementsData struct {
	Destination        string     `json:"destination"`
	VisaTypes          []VisaType `json:"visaTypes"`
	RequiredDocuments  []string   `json:"requiredDocuments"`
	ApplicationProcess []string   `json:"applicationProcess"`
}

type VisaType struct {
	Type           string `json:"type"`
	Validity       string `json:"validity"`
	ProcessingTime string `json:"processingTime"`
	Fees           string `json:"fees"`
}

// SimResponse pairs the model's narrative with the carrier catalog.
type SimResponse struct {
	AIRecommendations string     `json:"aiRecommendations"`
	SimOptions        SimOptions `json:"simOptions"`
}

type SimOptions struct {
	Destination       string             `json:"destination"`
	LocalCarriers     []LocalCarrier     `json:"localCarriers"`
	InternationalSIMs []InternationalSIM `json:"internationalSIMs"`
	ESIMs             []ESIM             `json:"eSIMs"`
	ComparisonSummary ComparisonSummary  `json:"comparisonSummary"`
}

type LocalCarrier struct {
	Name            string   `json:"name"`
	Coverage        string   `json:"coverage"`
	DataPlans       []string `json:"dataPlans"`
	Price           string   `json:"price"`
	NetworkQuality  string   `json:"networkQuality"`
	CustomerSupport string   `json:"customerSupport"`
	ActivationTime  string   `json:"activationTime"`
}

type InternationalSIM struct {
	Name              string   `json:"name"`
	Coverage          string   `json:"coverage"`
	DataPlans         []string `json:"dataPlans"`
	Price             string   `json:"price"`
	Validity          string   `json:"validity"`
	ActivationProcess string   `json:"activationProcess"`
	CustomerSupport   string   `json:"customerSupport"`
}

type ESIM struct {
	Name           string   `json:"name"`
	Coverage       string   `json:"coverage"`
	DataPlans      []string `json:"dataPlans"`
	Price          string   `json:"price"`
	Compatibility  string   `json:"compatibility"`
	ActivationTime string   `json:"activationTime"`
	Validity       string   `json:"validity"`
}

type ComparisonSummary struct {
	BestOverall          string `json:"bestOverall"`
	BestForShortTrips    string `json:"bestForShortTrips"`
	BestForLongTrips     string `json:"bestForLongTrips"`
	BestForBudget        string `json:"bestForBudget"`
	BestForCoverage      string `json:"bestForCoverage"`
	CostComparison       string `json:"costComparison"`
	CoverageComparison   string `json:"coverageComparison"`
	ActivationComparison string `json:"activationComparison"`
}
