package app

import (
	"strings"

	"safarnama/internal/domain"
)

// SafetyTips returns the static guidance for a city. Unknown cities
// get the general fallback rather than an error.
func SafetyTips(city string) domain.SafetyInfo {
	key := strings.ToLower(strings.TrimSpace(city))
	if info, ok := safetyByCity[key]; ok {
		return info
	}
	out := defaultSafety
	out.City = strings.TrimSpace(city)
	return out
}

var stdEmergency = map[string]string{
	"police":    "15",
	"ambulance": "1122",
	"fire":      "16",
}

var defaultSafety = domain.SafetyInfo{
	General: []string{
		"Stay in well-known areas and hotels",
		"Keep copies of your identification documents",
		"Stay informed about local conditions before traveling",
	},
	Transport: []string{
		"Use registered taxi services or ride-hailing apps",
		"Avoid traveling alone at night",
	},
	Emergency: stdEmergency,
}

var safetyByCity = map[string]domain.SafetyInfo{
	"islamabad": {
		City: "Islamabad",
		General: []string{
			"Islamabad is generally considered one of the safest cities in Pakistan",
			"The city has a well-organized grid system and good infrastructure",
			"Most areas are well-lit and patrolled by police",
		},
		Areas: []string{
			"Diplomatic Enclave and surrounding areas are highly secure",
			"Blue Area is the main commercial district and generally safe",
			"F-6, F-7, and F-8 sectors are popular residential areas with good security",
		},
		Transport: []string{
			"Use registered taxi services or ride-hailing apps",
			"Public transport is available but can be crowded during peak hours",
			"Metro bus service is safe and reliable",
		},
		Emergency: stdEmergency,
	},
	"karachi": {
		City: "Karachi",
		General: []string{
			"Exercise caution in certain areas, especially at night",
			"Stay in well-known areas and hotels",
			"Avoid displaying valuables in public",
		},
		Areas: []string{
			"Clifton and Defense Housing Authority (DHA) are generally safe",
			"Saddar area can be crowded; be mindful of your belongings",
			"Avoid isolated areas, especially after dark",
		},
		Transport: []string{
			"Use registered taxi services or ride-hailing apps",
			"Avoid traveling alone at night",
			"Keep car doors locked and windows up in traffic",
		},
		Emergency: stdEmergency,
	},
	"lahore": {
		City: "Lahore",
		General: []string{
			"Lahore is generally safe for tourists",
			"The city has a rich cultural heritage and welcoming atmosphere",
			"Most tourist areas are well-patrolled",
		},
		Areas: []string{
			"Gulberg and DHA are upscale residential areas with good security",
			"Mall Road and surrounding areas are popular tourist spots",
			"Old City areas can be crowded; be mindful of your belongings",
		},
		Transport: []string{
			"Use registered taxi services or ride-hailing apps",
			"Metro bus service is safe and efficient",
			"Avoid traveling alone at night in less-frequented areas",
		},
		Emergency: stdEmergency,
	},
	"peshawar": {
		City: "Peshawar",
		General: []string{
			"Exercise caution and stay informed about the current situation",
			"Stay in well-known hotels in central areas",
			"Avoid traveling alone, especially at night",
		},
		Areas: []string{
			"University Road area is generally safe",
			"Hayatabad is a modern residential area with good security",
			"Avoid isolated areas and outskirts",
		},
		Transport: []string{
			"Use registered taxi services",
			"Avoid public transport during late hours",
			"Travel in groups when possible",
		},
		Emergency: stdEmergency,
	},
	"quetta": {
		City: "Quetta",
		General: []string{
			"Exercise caution and stay informed about the current situation",
			"Stay in well-known hotels in central areas",
			"Avoid traveling alone, especially at night",
		},
		Areas: []string{
			"Airport Road area is generally safe",
			"Stay in central areas with good security",
			"Avoid isolated areas and outskirts",
		},
		Transport: []string{
			"Use registered taxi services",
			"Avoid public transport during late hours",
			"Travel in groups when possible",
		},
		Emergency: stdEmergency,
	},
}
