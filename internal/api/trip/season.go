package trip

import "time"

// Jharkhand travel seasons.
const (
	SeasonWinter      = "Winter"
	SeasonSummer      = "Summer"
	SeasonMonsoon     = "Monsoon"
	SeasonPostMonsoon = "Post-Monsoon"
)

// SeasonFor maps a date to the Jharkhand travel season.
// Dec-Feb Winter, Mar-May Summer, Jun-Sep Monsoon, Oct-Nov Post-Monsoon.
func SeasonFor(t time.Time) string {
	switch m := int(t.Month()); {
	case m == 12 || m <= 2:
		return SeasonWinter
	case m >= 3 && m <= 5:
		return SeasonSummer
	case m >= 6 && m <= 9:
		return SeasonMonsoon
	default:
		return SeasonPostMonsoon
	}
}

var seasonalTemperature = map[string]string{
	SeasonWinter:      "10–25°C",
	SeasonSummer:      "25–40°C",
	SeasonMonsoon:     "20–30°C",
	SeasonPostMonsoon: "15–28°C",
}

var seasonalClothing = map[string]string{
	SeasonWinter:      "Light woolens",
	SeasonSummer:      "Cotton, sunscreen",
	SeasonMonsoon:     "Raincoat, quick-dry",
	SeasonPostMonsoon: "Light layers",
}

// SeasonalTemperature returns the typical range for a season.
func SeasonalTemperature(season string) string {
	if t, ok := seasonalTemperature[season]; ok {
		return t
	}
	return "15–28°C"
}

// SeasonalClothing returns the clothing hint for a season.
func SeasonalClothing(season string) string {
	if c, ok := seasonalClothing[season]; ok {
		return c
	}
	return "Comfortable clothes"
}

// SeasonRecommendation carries packing and activity guidance per season.
type SeasonRecommendation struct {
	Clothing   []string `json:"clothing"`
	Activities []string `json:"activities"`
	Tips       []string `json:"tips"`
}

var seasonRecommendations = map[string]SeasonRecommendation{
	SeasonWinter: {
		Clothing:   []string{"Light woolens", "Warm jacket", "Comfortable shoes"},
		Activities: []string{"Sightseeing", "Trekking", "Wildlife safari", "Photography"},
		Tips:       []string{"Best time for outdoor activities", "Pack layers for temperature variation"},
	},
	SeasonSummer: {
		Clothing:   []string{"Cotton clothes", "Sun hat", "Sunglasses", "Light colors"},
		Activities: []string{"Early morning visits", "Indoor attractions", "Temple visits"},
		Tips:       []string{"Avoid midday sun", "Stay hydrated", "Plan indoor activities during peak hours"},
	},
	SeasonMonsoon: {
		Clothing:   []string{"Raincoat", "Umbrella", "Quick-dry clothes", "Non-slip footwear"},
		Activities: []string{"Waterfall visits", "Indoor cultural activities", "Photography"},
		Tips:       []string{"Check road conditions", "Carry extra clothes", "Be cautious near water bodies"},
	},
	SeasonPostMonsoon: {
		Clothing:   []string{"Light layers", "Light jacket for evening"},
		Activities: []string{"All outdoor activities", "Photography", "Trekking"},
		Tips:       []string{"Perfect weather for all activities", "Excellent visibility for photography"},
	},
}

// SeasonRecommendations returns guidance for a season, defaulting to
// Winter for unknown input.
func SeasonRecommendations(season string) SeasonRecommendation {
	if rec, ok := seasonRecommendations[season]; ok {
		return rec
	}
	return seasonRecommendations[SeasonWinter]
}
