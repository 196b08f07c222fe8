package catalog

import "github.com/shikha-bhatt/ct-hackathon-2025/apimodels"

// ExchangeGuidance returns the fixed exchange-practice summary attached to
// every forex response.
func ExchangeGuidance() apimodels.ExchangeInfo {
	return apimodels.ExchangeInfo{
		BestTimeToExchange:    "Weekdays during business hours for better rates",
		ExchangeMethod:        "Online forex services, banks, or authorized exchange centers",
		DocumentationRequired: "Valid passport, visa, and PAN card for large amounts",
		Restrictions:          "RBI regulations apply for amounts above ₹25,000",
		BestPractices:         "Compare rates from multiple sources, avoid airport exchanges",
	}
}

func ExchangeWebsites() []apimodels.ExchangeWebsite {
	return []apimodels.ExchangeWebsite{
		{
			Name:         "BookMyForex",
			URL:          "https://www.bookmyforex.com",
			Description:  "Leading online forex platform with competitive rates",
			Rating:       "4.5/5",
			Pros:         "Competitive rates, home delivery, multiple currencies",
			Cons:         "Minimum order amount, delivery time",
			ExchangeRate: "Best rates guaranteed",
			Fees:         "Low transaction fees",
		},
		{
			Name:         "Thomas Cook",
			URL:          "https://www.thomascook.in/forex",
			Description:  "Trusted travel company with forex services",
			Rating:       "4.3/5",
			Pros:         "Reliable, multiple locations, travel cards",
			Cons:         "Slightly higher rates, limited online options",
			ExchangeRate: "Competitive rates",
			Fees:         "Standard fees",
		},
		{
			Name:         "SBI Forex",
			URL:          "https://www.sbicard.com/forex",
			Description:  "State Bank of India's forex services",
			Rating:       "4.2/5",
			Pros:         "Government bank, reliable, multiple currencies",
			Cons:         "Limited online features, branch visits required",
			ExchangeRate: "Official bank rates",
			Fees:         "Bank charges apply",
		},
		{
			Name:         "HDFC Bank Forex",
			URL:          "https://www.hdfcbank.com/personal/pay/cards/forex-cards",
			Description:  "HDFC Bank's forex card and currency services",
			Rating:       "4.4/5",
			Pros:         "Forex cards, online booking, good rates",
			Cons:         "Limited to HDFC customers",
			ExchangeRate: "Competitive rates",
			Fees:         "Card issuance fees",
		},
		{
			Name:         "ICICI Bank Forex",
			URL:          "https://www.icicibank.com/forex",
			Description:  "ICICI Bank's comprehensive forex solutions",
			Rating:       "4.3/5",
			Pros:         "Multiple products, online services, good rates",
			Cons:         "Limited to ICICI customers",
			ExchangeRate: "Competitive rates",
			Fees:         "Standard bank fees",
		},
	}
}

func ExchangeTips() []apimodels.ExchangeTip {
	return []apimodels.ExchangeTip{
		{
			Title:       "Compare Rates Before Exchanging",
			Description: "Always compare rates from multiple sources including banks, online platforms, and exchange centers to get the best deal.",
			Category:    "Rate Comparison",
		},
		{
			Title:       "Avoid Airport Exchanges",
			Description: "Airport exchange centers typically offer the worst rates. Exchange currency before reaching the airport or use ATMs at your destination.",
			Category:    "Location",
		},
		{
			Title:       "Use Forex Cards for Large Amounts",
			Description: "For amounts above ₹25,000, consider using forex cards which offer better rates and security compared to cash.",
			Category:    "Payment Method",
		},
		{
			Title:       "Keep Exchange Receipts",
			Description: "Always keep exchange receipts as they may be required for re-conversion or tax purposes.",
			Category:    "Documentation",
		},
		{
			Title:       "Monitor Exchange Rates",
			Description: "Exchange rates fluctuate daily. Monitor rates for a few days before exchanging to get the best timing.",
			Category:    "Timing",
		},
		{
			Title:       "Consider Online Platforms",
			Description: "Online forex platforms often offer better rates and convenience compared to traditional banks.",
			Category:    "Platform",
		},
		{
			Title:       "Check for Hidden Fees",
			Description: "Always check for hidden fees, commissions, and charges before finalizing any forex transaction.",
			Category:    "Fees",
		},
		{
			Title:       "Use Authorized Centers Only",
			Description: "Only use RBI-authorized forex dealers and exchange centers to avoid legal issues and ensure fair rates.",
			Category:    "Security",
		},
	}
}
