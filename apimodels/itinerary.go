package apimodels

// ItineraryResponse is the structured itinerary the model is instructed to
// return as a bare JSON object. Field names mirror the schema embedded in the
// itinerary system prompt.
type ItineraryResponse struct {
	ItinerarySummary    string                    `json:"itinerarySummary"`
	DestinationInfo     string                    `json:"destinationInfo"`
	Flights             FlightInformation         `json:"flights"`
	Hotels              HotelInformation          `json:"hotels"`
	Activities          ActivityInformation       `json:"activities"`
	FoodRecommendations FoodInformation           `json:"foodRecommendations"`
	Transportation      TransportationInformation `json:"transportation"`
	BookingLinks        BookingLinks              `json:"bookingLinks"`
	TravelTips          string                    `json:"travelTips"`
	WeatherInfo         string                    `json:"weatherInfo"`
	CurrencyInfo        string                    `json:"currencyInfo"`
	EmergencyContacts   string                    `json:"emergencyContacts"`
}

type FlightInformation struct {
	RecommendedAirlines []string       `json:"recommendedAirlines"`
	FlightOptions       []FlightOption `json:"flightOptions"`
	BookingTips         string         `json:"bookingTips"`
	AveragePrice        string         `json:"averagePrice"`
	FlightDuration      string         `json:"flightDuration"`
}

type FlightOption struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flightNumber"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Price         string `json:"price"`
	Stops         string `json:"stops"`
}

type HotelInformation struct {
	RecommendedHotels []HotelOption `json:"recommendedHotels"`
	HotelAreas        []string      `json:"hotelAreas"`
	AveragePrice      string        `json:"averagePrice"`
	BookingTips       string        `json:"bookingTips"`
	Amenities         []string      `json:"amenities"`
}

type HotelOption struct {
	Name        string   `json:"name"`
	Area        string   `json:"area"`
	Rating      string   `json:"rating"`
	Price       string   `json:"price"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	FoodOptions []string `json:"foodOptions"`
}

type ActivityInformation struct {
	MustVisitAttractions []Activity `json:"mustVisitAttractions"`
	PreBookActivities    []Activity `json:"preBookActivities"`
	FreeActivities       []Activity `json:"freeActivities"`
	ActivityTips         string     `json:"activityTips"`
}

type Activity struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Duration        string `json:"duration"`
	Price           string `json:"price"`
	BookingRequired bool   `json:"bookingRequired"`
	BookingLink     string `json:"bookingLink"`
	BestTime        string `json:"bestTime"`
	Location        string `json:"location"`
}

type FoodInformation struct {
	LocalCuisine           string       `json:"localCuisine"`
	RecommendedRestaurants []Restaurant `json:"recommendedRestaurants"`
	FoodPreferences        string       `json:"foodPreferences"`
	DietaryOptions         []string     `json:"dietaryOptions"`
	FoodSafetyTips         string       `json:"foodSafetyTips"`
	MustTryDishes          []string     `json:"mustTryDishes"`
}

type Restaurant struct {
	Name                string   `json:"name"`
	Cuisine             string   `json:"cuisine"`
	Location            string   `json:"location"`
	PriceRange          string   `json:"priceRange"`
	Rating              string   `json:"rating"`
	Specialties         []string `json:"specialties"`
	DietaryOptions      []string `json:"dietaryOptions"`
	ReservationRequired bool     `json:"reservationRequired"`
}

type TransportationInformation struct {
	AirportTransfer     string   `json:"airportTransfer"`
	LocalTransport      []string `json:"localTransport"`
	TransportationTips  string   `json:"transportationTips"`
	PublicTransport     string   `json:"publicTransport"`
	CarRental           string   `json:"carRental"`
}

type BookingLinks struct {
	CleartripFlights string `json:"cleartripFlights"`
	CleartripHotels  string `json:"cleartripHotels"`
	Trippy           string `json:"trippy"`
	BookingCom       string `json:"bookingCom"`
	Agoda            string `json:"agoda"`
	Airbnb           string `json:"airbnb"`
	Viator           string `json:"viator"`
	GetYourGuide     string `json:"getYourGuide"`
}
