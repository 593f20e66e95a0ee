package types

// WeatherIntelligence is the live weather block built from current
// conditions and the forecast for a destination. When the provider is
// unreachable a seasonal estimate takes its place.
type WeatherIntelligence struct {
	CurrentSeason           string            `json:"currentSeason"`
	ExpectedWeather         string            `json:"expectedWeather"`
	Temperature             string            `json:"temperature"`
	Rainfall                string            `json:"rainfall"`
	WeatherWarnings         []string          `json:"weatherWarnings"`
	ClothingRecommendations []string          `json:"clothingRecommendations"`
	WeatherBasedActivities  []WeatherActivity `json:"weatherBasedActivities"`
	SeasonalConsiderations  []string          `json:"seasonalConsiderations"`
	BestTimeToVisit         string            `json:"bestTimeToVisit"`
	WeatherAlerts           []WeatherAlert    `json:"weatherAlerts"`
}

type WeatherActivity struct {
	Activity                string `json:"activity"`
	SuitableWeather         string `json:"suitableWeather"`
	AlternativeIfBadWeather string `json:"alternativeIfBadWeather"`
	Season                  string `json:"season"`
	TimeOfDay               string `json:"timeOfDay"`
}

type WeatherAlert struct {
	Type               string   `json:"type"`
	Message            string   `json:"message"`
	Severity           string   `json:"severity"`
	ValidUntil         string   `json:"validUntil"`
	AffectedActivities []string `json:"affectedActivities"`
}

// WeatherForecast is one day of the weekly outlook.
type WeatherForecast struct {
	Date         string  `json:"date"`
	High         int     `json:"high"`
	Low          int     `json:"low"`
	Condition    string  `json:"condition"`
	Humidity     int     `json:"humidity"`
	ChanceOfRain int     `json:"chanceOfRain"`
	WindSpeed    float64 `json:"windSpeed"`
	UVIndex      int     `json:"uvIndex"`
	Sunrise      string  `json:"sunrise"`
	Sunset       string  `json:"sunset"`
}

// Coordinates locates a destination for the weather provider.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
