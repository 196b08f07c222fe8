package catalog

import "github.com/shikha-bhatt/ct-hackathon-2025/apimodels"

// VisaRequirements returns the static requirements reference attached to
// every visa response alongside the model's narrative.
func VisaRequirements(destination string) apimodels.VisaRequirementsData {
	return apimodels.VisaRequirementsData{
		Destination: destination,
		VisaTypes: []apimodels.VisaType{
			{Type: "Tourist Visa", Validity: "3-6 months", ProcessingTime: "15-30 days", Fees: "₹2,000 - ₹5,000"},
			{Type: "Business Visa", Validity: "6-12 months", ProcessingTime: "10-20 days", Fees: "₹3,000 - ₹7,000"},
		},
		RequiredDocuments: []string{
			"Valid passport (6+ months validity)",
			"Visa application form",
			"Passport-size photographs (2-4 copies)",
			"Bank statements (last 3-6 months)",
			"Income tax returns",
			"Employment letter (if employed)",
			"Flight itinerary",
			"Hotel reservations",
			"Travel insurance",
			"Cover letter explaining purpose of visit",
		},
		ApplicationProcess: []string{
			"Visit official government visa portal",
			"Fill online application form",
			"Upload required documents",
			"Pay visa fees online",
			"Schedule appointment (if required)",
			"Submit application at visa center",
			"Track application status online",
			"Collect visa from center or courier",
		},
	}
}
