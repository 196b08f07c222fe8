package travel

import (
	"fmt"

	"github.com/shikha-bhatt/ct-hackathon-2025/apimodels"
	"github.com/shikha-bhatt/ct-hackathon-2025/internal/llm"
)

// Each builder returns exactly two messages with the system message first.
// Builders are pure: identical input yields byte-identical messages.

const forexSystemPrompt = `You are a forex exchange expert specializing in international currency exchange for Indian travelers.
Provide comprehensive, accurate, and up-to-date information about currency exchange for international travel.
Include specific details about rates, fees, best practices, and provide actionable recommendations.

Format your response in a structured way with clear sections for:
1. Current exchange rate information
2. Best platforms or services for currency exchange
3. RBI regulations and documentation requirements
4. Fees, charges, and hidden costs
5. Best practices for currency exchange
6. Restrictions or limitations
7. Most secure and reliable exchange methods
8. Exchange before travel or at destination
9. Alternative payment methods
10. Links to reliable exchange services
11. Current trends in exchange rates
12. Country-specific exchange information

Be specific about the destination and provide real, actionable information.`

func forexMessages(destination string, amount float64, sourceCurrency string) []llm.Message {
	userPrompt := fmt.Sprintf(`I'm planning to travel to %s and need to exchange %v %s.
Please provide comprehensive forex exchange information including:

1. What's the current exchange rate for %s to the local currency of %s?
2. What are the best platforms or services to exchange currency?
3. What are the RBI regulations and documentation requirements?
4. What fees, charges, and hidden costs should I be aware of?
5. What are the best practices for currency exchange?
6. Are there any restrictions or limitations I should know about?
7. What are the most secure and reliable exchange methods?
8. Should I exchange before travel or at the destination?
9. What alternative payment methods are available?
10. Can you provide links to reliable exchange services?
11. What are the current trends in exchange rates?
12. Any country-specific exchange information for %s?

Please provide comprehensive, detailed information that would help a traveler make an informed decision.`,
		destination, amount, sourceCurrency, sourceCurrency, destination, destination)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: forexSystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}
}

const cardSystemPrompt = `You are a financial travel expert specializing in zero-forex credit cards.
Provide comprehensive, accurate, and up-to-date information about zero-forex cards
for international travel. Include specific details about fees, acceptance,
application processes, and provide actionable recommendations.

Format your response in a structured way with clear sections for:
1. Overview of zero-forex cards for the destination
2. Top recommended cards with detailed analysis
3. Comparison of fees and features
4. Application process and requirements
5. Tips for maximizing benefits
6. Links to official application portals
7. Price comparisons and cost analysis

Be specific about the destination and provide real, actionable information.`

func cardMessages(destination string) []llm.Message {
	userPrompt := fmt.Sprintf(`I'm planning to travel to %s and need information about zero-forex credit cards.
Please provide:

1. Which zero-forex cards are best for %s?
2. What are the fees and charges for each card?
3. How widely are these cards accepted in %s?
4. What's the application process and requirements?
5. Which card would you recommend and why?
6. How do the costs compare to traditional forex cards?
7. Any tips for getting the best deals?
8. Direct links to apply for these cards

Please provide comprehensive, detailed information that would help a traveler make an informed decision.`,
		destination, destination, destination)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: cardSystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}
}

const visaSystemPrompt = `You are a visa and immigration expert specializing in international travel visas for Indian citizens.
Provide comprehensive, accurate, and up-to-date information about visa requirements,
application processes, and travel documentation. Include specific details about processing times,
fees, required documents, and provide actionable recommendations.

Format your response in a structured way with clear sections for:
1. Visa Type and Requirements
2. Minimum Application Time (when to apply before travel)
3. Required Documents (complete list with specifications)
4. Official Application Website (authentic government portals)
5. Estimated Processing Time (realistic timelines)
6. Visa Fees (current rates in INR and USD)
7. Application Process Steps
8. Important Notes and Tips
9. Common Rejection Reasons
10. Emergency Contact Information
11. Travel Insurance Requirements
12. COVID-19 Related Requirements (if applicable)

Be specific about the destination, purpose of visit, and provide real, actionable information
that would help an Indian traveler make informed decisions. Include official government websites
and current fee structures.`

func visaMessages(destination, purposeOfVisit, nationality string) []llm.Message {
	_ = nationality // the persona already fixes Indian nationality; kept for symmetry with the request

	userPrompt := fmt.Sprintf(`I'm an Indian citizen planning to travel to %s for %s.
Please provide comprehensive visa information including:

1. What type of visa do I need for %s purpose to %s?
2. What's the minimum time I should apply before my travel date?
3. What documents are required for the visa application?
4. What's the official website to apply for the visa?
5. How long does the visa processing typically take?
6. What are the current visa fees in INR and USD?
7. What's the step-by-step application process?
8. Any important notes or tips for Indian applicants?
9. What are common reasons for visa rejection?
10. Any emergency contact information?
11. Is travel insurance required?
12. Any COVID-19 related requirements?

Please provide comprehensive, detailed information that would help an Indian traveler
successfully apply for and obtain a visa for %s.`,
		destination, purposeOfVisit, purposeOfVisit, destination, destination)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: visaSystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}
}

const simSystemPrompt = `You are a travel connectivity expert specializing in international SIM cards and mobile connectivity for Indian travelers.
Provide comprehensive, accurate, and up-to-date information about SIM card options,
network coverage, costs, and connectivity solutions. Include specific details about
local carriers, eSIM options, international SIMs, and provide actionable recommendations.

Format your response in a structured way with clear sections for:
1. **SIM Type Comparison** (Local SIM vs eSIM vs International SIM vs Roaming)
2. **Cost Analysis** (Total cost including activation, data, and hidden fees)
3. **Network Coverage** (Best carriers for different regions in the destination)
4. **Acquisition Methods** (Where and how to get each SIM type)
5. **Travel Tips** (Best practices, activation time, customer support)
6. **Risk Assessment** (Potential issues and how to avoid them)
7. **Country-Specific Information** (Local carriers, regulations, requirements)
8. **Price Comparisons** (Detailed cost breakdown for different options)
9. **Network Quality** (Speed, coverage maps, reliability)
10. **Activation Process** (Step-by-step guide for each option)
11. **Customer Support** (Language support, availability, contact methods)
12. **Best Recommendations** (Top picks based on trip duration and budget)

Be specific about the destination, duration, and provide real, actionable information
that would help an Indian traveler make informed decisions. Include current pricing,
official websites, and practical tips for getting the best connectivity.`

func simMessages(destination, duration string) []llm.Message {
	userPrompt := fmt.Sprintf(`I'm an Indian traveler planning to visit %s for %s.
Please provide comprehensive SIM card and connectivity information including:

1. What are the best SIM card options for %s?
2. How do local SIM cards compare to eSIM and international SIMs?
3. What are the costs for different SIM options for %s?
4. Which carriers have the best network coverage in %s?
5. Where can I purchase SIM cards in %s?
6. What documents do I need to get a local SIM?
7. How long does activation take for each option?
8. What are the data plans and pricing?
9. Which option would you recommend for %s trip?
10. What are the pros and cons of each option?
11. Any country-specific regulations or requirements?
12. How reliable is the network coverage in different areas?

Please provide comprehensive, detailed information that would help an Indian traveler
get the best connectivity solution for %s.`,
		destination, duration, destination, duration, destination, destination, duration, destination)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: simSystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}
}

// itinerarySystemPrompt pins the exact JSON shape the model must return. The
// "no text before or after" instruction is a hard contract the extractor
// depends on.
const itinerarySystemPrompt = `You are an expert travel planner specializing in international itineraries for Indian travelers.
You provide comprehensive, detailed, and personalized travel recommendations.

IMPORTANT: You must respond with a valid JSON object that matches the exact structure provided below.
Do not include any text before or after the JSON response.

The response should be structured as follows:
{
    "itinerarySummary": "Brief overview of the trip",
    "destinationInfo": "Information about the destination",
    "flights": {
        "recommendedAirlines": ["Airline1", "Airline2"],
        "flightOptions": [
            {
                "airline": "Airline Name",
                "flightNumber": "Flight Number",
                "departureTime": "Departure Time",
                "arrivalTime": "Arrival Time",
                "duration": "Flight Duration",
                "price": "Price Range",
                "stops": "Number of stops"
            }
        ],
        "bookingTips": "Tips for booking flights",
        "averagePrice": "Average price range",
        "flightDuration": "Typical flight duration"
    },
    "hotels": {
        "recommendedHotels": [
            {
                "name": "Hotel Name",
                "area": "Area/Location",
                "rating": "Rating",
                "price": "Price Range",
                "amenities": ["Amenity1", "Amenity2"],
                "description": "Hotel description",
                "foodOptions": ["Food option1", "Food option2"]
            }
        ],
        "hotelAreas": ["Area1", "Area2"],
        "averagePrice": "Average hotel price",
        "bookingTips": "Hotel booking tips",
        "amenities": ["Common amenities"]
    },
    "activities": {
        "mustVisitAttractions": [
            {
                "name": "Attraction Name",
                "description": "Description",
                "duration": "Time needed",
                "price": "Entry fee",
                "bookingRequired": true,
                "bookingLink": "Booking URL",
                "bestTime": "Best time to visit",
                "location": "Location"
            }
        ],
        "preBookActivities": [
            {
                "name": "Activity Name",
                "description": "Description",
                "duration": "Duration",
                "price": "Price",
                "bookingRequired": true,
                "bookingLink": "Booking URL",
                "bestTime": "Best time",
                "location": "Location"
            }
        ],
        "freeActivities": [
            {
                "name": "Free Activity",
                "description": "Description",
                "duration": "Duration",
                "price": "Free",
                "bookingRequired": false,
                "bookingLink": "",
                "bestTime": "Best time",
                "location": "Location"
            }
        ],
        "activityTips": "Tips for activities"
    },
    "foodRecommendations": {
        "localCuisine": "Local cuisine description",
        "recommendedRestaurants": [
            {
                "name": "Restaurant Name",
                "cuisine": "Cuisine type",
                "location": "Location",
                "priceRange": "Price range",
                "rating": "Rating",
                "specialties": ["Dish1", "Dish2"],
                "dietaryOptions": ["Option1", "Option2"],
                "reservationRequired": false
            }
        ],
        "foodPreferences": "Food preference recommendations",
        "dietaryOptions": ["Option1", "Option2"],
        "foodSafetyTips": "Food safety tips",
        "mustTryDishes": ["Dish1", "Dish2"]
    },
    "transportation": {
        "airportTransfer": "Airport transfer options",
        "localTransport": ["Transport option1", "Transport option2"],
        "transportationTips": "Transportation tips",
        "publicTransport": "Public transport info",
        "carRental": "Car rental information"
    },
    "bookingLinks": {
        "cleartripFlights": "Cleartrip flights URL",
        "cleartripHotels": "Cleartrip hotels URL",
        "trippy": "Trippy URL",
        "bookingCom": "Booking.com URL",
        "agoda": "Agoda URL",
        "airbnb": "Airbnb URL",
        "viator": "Viator URL",
        "getYourGuide": "GetYourGuide URL"
    },
    "travelTips": "General travel tips",
    "weatherInfo": "Weather information",
    "currencyInfo": "Currency information",
    "emergencyContacts": "Emergency contact information"
}

Provide realistic, up-to-date information with actual booking links and current prices.
Consider the traveler's food preferences, budget, and travel style.
Include specific recommendations for Indian travelers.`

func itineraryMessages(req apimodels.ItineraryRequest) []llm.Message {
	userPrompt := fmt.Sprintf(`Create a comprehensive international travel itinerary for an Indian traveler with the following details:

Origin: %s
Destination: %s
Start Date: %s
End Date: %s
Duration: %d days
Food Preferences: %s
Budget: %s
Travel Style: %s
Group Size: %d

Please provide:
1. Flight recommendations from India to %s with actual airlines and routes
2. Hotel recommendations considering food preferences and budget
3. Must-visit attractions and activities that require pre-booking
4. Food recommendations based on preferences
5. Transportation options
6. Booking links for Cleartrip, Trippy, and other platforms
7. Travel tips specific to Indian travelers
8. Weather and currency information
9. Emergency contacts

Focus on providing practical, actionable information with real booking links and current information.`,
		req.Origin, req.Destination, req.StartDate, req.EndDate, req.Duration,
		req.FoodPreferences, req.Budget, req.TravelStyle, req.GroupSize,
		req.Destination)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: itinerarySystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}
}
