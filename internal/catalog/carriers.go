package catalog

import "github.com/shikha-bhatt/ct-hackathon-2025/apimodels"

var carrierRules = []rule{
	{key: "usa", keywords: []string{"usa", "united states"}},
	{key: "uk", keywords: []string{"uk", "united kingdom"}},
	{key: "japan", keywords: []string{"japan"}},
	{key: "australia", keywords: []string{"australia"}},
}

// SimOptionsForDestination assembles the connectivity catalog for a
// destination: keyword-matched local carriers plus the destination-agnostic
// international SIM and eSIM rows and a comparison summary.
func SimOptionsForDestination(destination string) apimodels.SimOptions {
	return apimodels.SimOptions{
		Destination:       destination,
		LocalCarriers:     localCarriersForDestination(destination),
		InternationalSIMs: internationalSIMs,
		ESIMs:             eSIMs,
		ComparisonSummary: comparisonSummary,
	}
}

func localCarriersForDestination(destination string) []apimodels.LocalCarrier {
	switch matchKey(destination, carrierRules, "generic") {
	case "usa":
		return usaCarriers
	case "uk":
		return ukCarriers
	case "japan":
		return japanCarriers
	case "australia":
		return australiaCarriers
	default:
		return genericCarriers
	}
}

var usaCarriers = []apimodels.LocalCarrier{
	{Name: "Verizon", Coverage: "Nationwide", DataPlans: []string{"5GB - $30", "10GB - $40", "Unlimited - $60"}, Price: "$30-60", NetworkQuality: "Excellent", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "AT&T", Coverage: "Nationwide", DataPlans: []string{"4GB - $35", "8GB - $45", "Unlimited - $65"}, Price: "$35-65", NetworkQuality: "Very Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "T-Mobile", Coverage: "Nationwide", DataPlans: []string{"6GB - $25", "12GB - $35", "Unlimited - $50"}, Price: "$25-50", NetworkQuality: "Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
}

var ukCarriers = []apimodels.LocalCarrier{
	{Name: "EE", Coverage: "UK-wide", DataPlans: []string{"5GB - £15", "15GB - £20", "Unlimited - £30"}, Price: "£15-30", NetworkQuality: "Excellent", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "Vodafone", Coverage: "UK-wide", DataPlans: []string{"4GB - £12", "12GB - £18", "Unlimited - £25"}, Price: "£12-25", NetworkQuality: "Very Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "O2", Coverage: "UK-wide", DataPlans: []string{"6GB - £14", "16GB - £19", "Unlimited - £28"}, Price: "£14-28", NetworkQuality: "Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
}

var japanCarriers = []apimodels.LocalCarrier{
	{Name: "NTT Docomo", Coverage: "Japan-wide", DataPlans: []string{"3GB - ¥3,000", "7GB - ¥4,500", "20GB - ¥6,000"}, Price: "¥3,000-6,000", NetworkQuality: "Excellent", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "SoftBank", Coverage: "Japan-wide", DataPlans: []string{"3GB - ¥2,800", "7GB - ¥4,200", "20GB - ¥5,800"}, Price: "¥2,800-5,800", NetworkQuality: "Very Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "KDDI (au)", Coverage: "Japan-wide", DataPlans: []string{"3GB - ¥3,200", "7GB - ¥4,800", "20GB - ¥6,200"}, Price: "¥3,200-6,200", NetworkQuality: "Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
}

var australiaCarriers = []apimodels.LocalCarrier{
	{Name: "Telstra", Coverage: "Australia-wide", DataPlans: []string{"5GB - A$30", "15GB - A$40", "Unlimited - A$60"}, Price: "A$30-60", NetworkQuality: "Excellent", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "Optus", Coverage: "Australia-wide", DataPlans: []string{"5GB - A$25", "15GB - A$35", "Unlimited - A$55"}, Price: "A$25-55", NetworkQuality: "Very Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
	{Name: "Vodafone", Coverage: "Australia-wide", DataPlans: []string{"5GB - A$20", "15GB - A$30", "Unlimited - A$50"}, Price: "A$20-50", NetworkQuality: "Good", CustomerSupport: "24/7", ActivationTime: "Immediate"},
}

var genericCarriers = []apimodels.LocalCarrier{
	{Name: "Local Carrier 1", Coverage: "City-wide", DataPlans: []string{"2GB - $20", "5GB - $30", "10GB - $40"}, Price: "$20-40", NetworkQuality: "Good", CustomerSupport: "Business hours", ActivationTime: "24 hours"},
	{Name: "Local Carrier 2", Coverage: "City-wide", DataPlans: []string{"3GB - $25", "7GB - $35", "15GB - $45"}, Price: "$25-45", NetworkQuality: "Fair", CustomerSupport: "Business hours", ActivationTime: "24 hours"},
}

var internationalSIMs = []apimodels.InternationalSIM{
	{Name: "Airalo", Coverage: "Global", DataPlans: []string{"1GB - $4.50", "3GB - $11", "5GB - $16"}, Price: "$4.50-16", Validity: "7-30 days", ActivationProcess: "Instant", CustomerSupport: "Email"},
	{Name: "Truphone", Coverage: "Global", DataPlans: []string{"1GB - $5", "3GB - $12", "5GB - $18"}, Price: "$5-18", Validity: "7-30 days", ActivationProcess: "Instant", CustomerSupport: "24/7"},
	{Name: "GigSky", Coverage: "Global", DataPlans: []string{"1GB - $6", "3GB - $15", "5GB - $22"}, Price: "$6-22", Validity: "7-30 days", ActivationProcess: "Instant", CustomerSupport: "Email"},
	{Name: "Ubigi", Coverage: "Global", DataPlans: []string{"1GB - $4", "3GB - $10", "5GB - $15"}, Price: "$4-15", Validity: "7-30 days", ActivationProcess: "Instant", CustomerSupport: "Email"},
}

var eSIMs = []apimodels.ESIM{
	{Name: "Airalo eSIM", Coverage: "Global", DataPlans: []string{"1GB - $4.50", "3GB - $11", "5GB - $16"}, Price: "$4.50-16", Compatibility: "iPhone/Android", ActivationTime: "Instant", Validity: "7-30 days"},
	{Name: "Truphone eSIM", Coverage: "Global", DataPlans: []string{"1GB - $5", "3GB - $12", "5GB - $18"}, Price: "$5-18", Compatibility: "iPhone/Android", ActivationTime: "Instant", Validity: "7-30 days"},
	{Name: "GigSky eSIM", Coverage: "Global", DataPlans: []string{"1GB - $6", "3GB - $15", "5GB - $22"}, Price: "$6-22", Compatibility: "iPhone/Android", ActivationTime: "Instant", Validity: "7-30 days"},
	{Name: "Ubigi eSIM", Coverage: "Global", DataPlans: []string{"1GB - $4", "3GB - $10", "5GB - $15"}, Price: "$4-15", Compatibility: "iPhone/Android", ActivationTime: "Instant", Validity: "7-30 days"},
}

var comparisonSummary = apimodels.ComparisonSummary{
	BestOverall:          "Local SIM Card - Best coverage, value, and local support",
	BestForShortTrips:    "eSIM - Instant activation, no physical SIM needed",
	BestForLongTrips:     "Local SIM Card - Most cost-effective for extended stays",
	BestForBudget:        "International eSIM - Starting at $4 for 1GB",
	BestForCoverage:      "Local carriers - Native network priority",
	CostComparison:       "Local SIM: $10-45 | eSIM: $4.50-18 | International: $4.50-22 | Roaming: $100+",
	CoverageComparison:   "Local SIM: Best | eSIM: Good | International: Fair | Roaming: Same as home",
	ActivationComparison: "eSIM: Instant | Local SIM: 2-48 hours | International: 24-72 hours | Roaming: Instant",
}
