package catalog

import "github.com/shikha-bhatt/ct-hackathon-2025/apimodels"

var cardRules = []rule{
	{key: "usa", keywords: []string{"usa", "united states"}},
	{key: "uk", keywords: []string{"uk", "united kingdom"}},
	{key: "europe", keywords: []string{"europe", "eu"}},
	{key: "singapore", keywords: []string{"singapore"}},
	{key: "australia", keywords: []string{"australia"}},
}

// CardsForDestination selects the zero-forex card rows for a destination,
// falling back to the generic set when no keyword matches.
func CardsForDestination(destination string) []apimodels.Card {
	switch matchKey(destination, cardRules, "generic") {
	case "usa":
		return usaCards
	case "uk":
		return ukCards
	case "europe":
		return europeCards
	case "singapore":
		return singaporeCards
	case "australia":
		return australiaCards
	default:
		return genericCards
	}
}

var usaCards = []apimodels.Card{
	{
		Name:               "HDFC Regalia Credit Card",
		Bank:               "HDFC Bank",
		AnnualFee:          "₹2,500 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Excellent",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Airport lounge access", "Travel insurance", "Reward points"},
		BestFor:            "Frequent travelers to USA",
		Pros:               "No forex charges, good rewards, lounge access",
		Cons:               "High annual fee, income requirement",
		ApplicationLink:    "https://www.hdfcbank.com/personal/pay/cards/credit-cards/regalia",
		Comparison:         "Best value for frequent travelers",
		Recommendation:     "Highly recommended for business travelers",
	},
	{
		Name:               "Axis Bank Flipkart Axis Bank Credit Card",
		Bank:               "Axis Bank",
		AnnualFee:          "₹500 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Good",
		ApplicationProcess: "Online",
		Features:           []string{"Zero forex markup", "Flipkart rewards", "No joining fee", "Welcome benefits"},
		BestFor:            "Budget-conscious travelers",
		Pros:               "Low annual fee, good rewards on Flipkart",
		Cons:               "Limited lounge access, basic features",
		ApplicationLink:    "https://www.axisbank.com/retail/cards/credit-card/flipkart-axis-bank-credit-card",
		Comparison:         "Best budget option",
		Recommendation:     "Good for occasional travelers",
	},
	{
		Name:               "ICICI Bank Sapphiro Credit Card",
		Bank:               "ICICI Bank",
		AnnualFee:          "₹3,000 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Excellent",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Premium lounge access", "Golf privileges", "Concierge services"},
		BestFor:            "Premium travelers",
		Pros:               "Premium features, excellent acceptance",
		Cons:               "High annual fee, high income requirement",
		ApplicationLink:    "https://www.icicibank.com/cards/credit-cards/sapphiro-credit-card",
		Comparison:         "Premium option with luxury benefits",
		Recommendation:     "Best for luxury travelers",
	},
}

var ukCards = []apimodels.Card{
	{
		Name:               "SBI SimplyCLICK Credit Card",
		Bank:               "State Bank of India",
		AnnualFee:          "₹999 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Good",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Online shopping rewards", "Fuel surcharge waiver", "Welcome benefits"},
		BestFor:            "Online shoppers and travelers",
		Pros:               "Good online rewards, reasonable fee",
		Cons:               "Limited lounge access",
		ApplicationLink:    "https://www.sbicard.com/en/personal/credit-cards/rewards/simplyclick.page",
		Comparison:         "Good balance of features and cost",
		Recommendation:     "Recommended for online shoppers",
	},
	{
		Name:               "Kotak Mahindra Bank Urbane Credit Card",
		Bank:               "Kotak Mahindra Bank",
		AnnualFee:          "₹1,500 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Good",
		ApplicationProcess: "Online",
		Features:           []string{"Zero forex markup", "Dining rewards", "Movie ticket discounts", "Fuel surcharge waiver"},
		BestFor:            "Food lovers and travelers",
		Pros:               "Good dining rewards, reasonable fee",
		Cons:               "Limited travel benefits",
		ApplicationLink:    "https://www.kotak.com/en/personal-banking/cards/credit-cards/urbane-credit-card.html",
		Comparison:         "Best for dining and entertainment",
		Recommendation:     "Good for food enthusiasts",
	},
}

var europeCards = []apimodels.Card{
	{
		Name:               "Yes Bank YES First Exclusive Credit Card",
		Bank:               "Yes Bank",
		AnnualFee:          "₹4,999 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Excellent",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Unlimited lounge access", "Golf privileges", "Concierge services"},
		BestFor:            "Premium European travelers",
		Pros:               "Unlimited lounge access, premium features",
		Cons:               "Very high annual fee",
		ApplicationLink:    "https://www.yesbank.in/personal-banking/yes-first/credit-cards/yes-first-exclusive",
		Comparison:         "Premium option for frequent travelers",
		Recommendation:     "Best for luxury European travel",
	},
	{
		Name:               "RBL Bank ShopRite Credit Card",
		Bank:               "RBL Bank",
		AnnualFee:          "₹500 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Good",
		ApplicationProcess: "Online",
		Features:           []string{"Zero forex markup", "Shopping rewards", "No joining fee", "Welcome benefits"},
		BestFor:            "Budget European travelers",
		Pros:               "Low fee, good shopping rewards",
		Cons:               "Basic features, limited lounge access",
		ApplicationLink:    "https://www.rblbank.com/credit-cards/shoprite-credit-card",
		Comparison:         "Best budget option for Europe",
		Recommendation:     "Good for budget-conscious travelers",
	},
}

var singaporeCards = []apimodels.Card{
	{
		Name:               "Citi PremierMiles Credit Card",
		Bank:               "Citibank",
		AnnualFee:          "₹3,000 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Excellent",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Air miles rewards", "Lounge access", "Travel insurance"},
		BestFor:            "Frequent flyers to Singapore",
		Pros:               "Air miles, good travel benefits",
		Cons:               "High annual fee",
		ApplicationLink:    "https://www.online.citibank.co.in/credit-card/citi-premiermiles",
		Comparison:         "Best for air miles collectors",
		Recommendation:     "Recommended for frequent flyers",
	},
}

var australiaCards = []apimodels.Card{
	{
		Name:               "IndusInd Bank Nexxt Credit Card",
		Bank:               "IndusInd Bank",
		AnnualFee:          "₹2,000 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Good",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Fuel surcharge waiver", "Reward points", "Welcome benefits"},
		BestFor:            "General travelers to Australia",
		Pros:               "Reasonable fee, good rewards",
		Cons:               "Limited premium features",
		ApplicationLink:    "https://www.indusind.com/in/en/personal/cards/credit-cards/nexxt-credit-card.html",
		Comparison:         "Good value for money",
		Recommendation:     "Recommended for general travel",
	},
}

var genericCards = []apimodels.Card{
	{
		Name:               "Standard Chartered Rewards+ Credit Card",
		Bank:               "Standard Chartered",
		AnnualFee:          "₹1,500 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Good",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Reward points", "Fuel surcharge waiver", "Welcome benefits"},
		BestFor:            "General international travel",
		Pros:               "Reasonable fee, good acceptance",
		Cons:               "Basic features",
		ApplicationLink:    "https://www.sc.com/in/credit-cards/rewards-plus-credit-card/",
		Comparison:         "Good all-round option",
		Recommendation:     "Recommended for general use",
	},
	{
		Name:               "HSBC Visa Signature Credit Card",
		Bank:               "HSBC",
		AnnualFee:          "₹2,500 + GST",
		ForexMarkup:        "0%",
		Acceptance:         "Excellent",
		ApplicationProcess: "Online/Offline",
		Features:           []string{"Zero forex markup", "Lounge access", "Travel insurance", "Concierge services"},
		BestFor:            "International travelers",
		Pros:               "Excellent acceptance, good travel benefits",
		Cons:               "Higher annual fee",
		ApplicationLink:    "https://www.hsbc.co.in/credit-cards/products/visa-signature/",
		Comparison:         "Premium option with good features",
		Recommendation:     "Good for frequent international travel",
	},
}
