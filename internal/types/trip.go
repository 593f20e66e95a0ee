package types

// TripRequest is the caller-supplied description of the trip to plan.
// It is treated as immutable once handed to the generator.
type TripRequest struct {
	Destination     string           `json:"destination"`
	Days            int              `json:"days"`
	Budget          string           `json:"budget"`
	Travelers       int              `json:"travelers"`
	Preferences     *TripPreferences `json:"preferences,omitempty"`
	TravelDates     *TravelDates     `json:"travelDates,omitempty"`
	IncludeEnhanced bool             `json:"includeEnhanced,omitempty"`
}

type TravelDates struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type TripPreferences struct {
	Interests         []string `json:"interests,omitempty"`
	BudgetCategory    string   `json:"budgetCategory,omitempty"`
	AccommodationType string   `json:"accommodationType,omitempty"`
	FoodPreference    string   `json:"foodPreference,omitempty"`
	ActivityLevel     string   `json:"activityLevel,omitempty"`
	CulturalInterest  string   `json:"culturalInterest,omitempty"`
}

// BudgetAllocation is the derived split of the total budget in whole
// rupees. Invariant: the five category components sum exactly to Total.
type BudgetAllocation struct {
	Accommodation int `json:"accommodation"`
	Food          int `json:"food"`
	Transport     int `json:"transport"`
	Activities    int `json:"activities"`
	Shopping      int `json:"shopping"`
	DailyBudget   int `json:"dailyBudget"`
	Total         int `json:"total"`
}

type TripOverview struct {
	Destination     string `json:"destination"`
	State           string `json:"state"`
	Duration        string `json:"duration"`
	TotalBudget     string `json:"totalBudget"`
	BudgetCategory  string `json:"budgetCategory"`
	BestTimeToVisit string `json:"bestTimeToVisit"`
	NearestAirport  string `json:"nearestAirport"`
	NearestRailway  string `json:"nearestRailway"`
	Overview        string `json:"overview"`
}

// Activity categories: sightseeing, food, shopping, adventure, religious, cultural.
type Activity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ContactInfo string `json:"contactInfo,omitempty"`
}

type DailyItinerary struct {
	Day                   int        `json:"day"`
	Theme                 string     `json:"theme"`
	Activities            []Activity `json:"activities"`
	TotalDayCost          string     `json:"totalDayCost"`
	WeatherConsiderations string     `json:"weatherConsiderations,omitempty"`
	TravelTips            []string   `json:"travelTips,omitempty"`
}

// BudgetBreakdown is the boundary representation of a BudgetAllocation,
// every amount formatted as INR.
type BudgetBreakdown struct {
	Accommodation  string `json:"accommodation"`
	Food           string `json:"food"`
	Transportation string `json:"transportation"`
	Activities     string `json:"activities"`
	Shopping       string `json:"shopping"`
	Miscellaneous  string `json:"miscellaneous"`
	Total          string `json:"total"`
	DailyAverage   string `json:"dailyAverage"`
}

type CulturalExperience struct {
	Experience           string `json:"experience"`
	Description          string `json:"description"`
	Location             string `json:"location"`
	Cost                 string `json:"cost"`
	BestTime             string `json:"bestTime"`
	Duration             string `json:"duration"`
	Difficulty           string `json:"difficulty"`
	CulturalSignificance string `json:"culturalSignificance"`
}

type EmergencyContacts struct {
	JharkhandTourism string `json:"jharkhandTourism"`
	Police           string `json:"police"`
	Medical          string `json:"medical"`
	FireService      string `json:"fireService"`
	LocalHelpline    string `json:"localHelpline"`
}

type WeatherInfo struct {
	CurrentSeason string `json:"currentSeason"`
	Temperature   string `json:"temperature"`
	Clothing      string `json:"clothing"`
	Precautions   string `json:"precautions"`
	Humidity      string `json:"humidity,omitempty"`
	WindSpeed     string `json:"windSpeed,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
}

// Enrichment provider status keys used in RealTimeEnhancements.APIStatus.
const (
	EnrichmentSourceWeather = "weather"
	EnrichmentSourceReviews = "reviews"
	EnrichmentSourceGuides  = "guides"
	EnrichmentSourceNews    = "news"
)

// Enrichment provider status values.
const (
	APIStatusSuccess  = "success"
	APIStatusFallback = "fallback"
	APIStatusError    = "error"
)

// RealTimeEnhancements carries the live data attached after plan
// generation. APIStatus always holds one entry per provider call.
type RealTimeEnhancements struct {
	AttractionReviews []Review          `json:"attractionReviews"`
	LocalGuides       []LocalGuide      `json:"localGuides"`
	CurrentNews       []NewsItem        `json:"currentNews"`
	DataSource        string            `json:"dataSource"`
	LastUpdated       string            `json:"lastUpdated"`
	SearchesUsed      int               `json:"searchesUsed"`
	APIStatus         map[string]string `json:"apiStatus"`
}

// EnhancedPlan is the cuisine/handicrafts/season/logistics block attached
// only when the request explicitly asks for it.
type EnhancedPlan struct {
	LocalCuisine   *CuisineBlock       `json:"localCuisine,omitempty"`
	Handicrafts    *HandicraftsBlock   `json:"handicrafts,omitempty"`
	Season         *SeasonBlock        `json:"season,omitempty"`
	MicroItinerary map[string][]string `json:"microItinerary,omitempty"`
	Logistics      *LogisticsBlock     `json:"logistics,omitempty"`
}

type CuisineBlock struct {
	Highlights     []string          `json:"highlights"`
	Areas          []string          `json:"areas,omitempty"`
	SuggestedSlots map[string]string `json:"suggestedSlots,omitempty"`
}

type HandicraftsBlock struct {
	Buy     []string `json:"buy"`
	Markets []string `json:"markets,omitempty"`
	Notes   []string `json:"notes,omitempty"`
}

type SeasonBlock struct {
	Current  string   `json:"current,omitempty"`
	Advice   []string `json:"advice,omitempty"`
	BestTime string   `json:"bestTime,omitempty"`
}

type LogisticsBlock struct {
	Transport []string `json:"transport,omitempty"`
	Packing   []string `json:"packing,omitempty"`
}

// CompleteTripPlan is the aggregate returned to the caller. It is built
// once by the generator, mutated exactly once by enrichment, and then
// treated as immutable.
type CompleteTripPlan struct {
	TripOverview         TripOverview          `json:"tripOverview"`
	DailyItinerary       []DailyItinerary      `json:"dailyItinerary"`
	BudgetBreakdown      BudgetBreakdown       `json:"budgetBreakdown"`
	CulturalExperiences  []CulturalExperience  `json:"culturalExperiences"`
	EmergencyContacts    EmergencyContacts     `json:"emergencyContacts"`
	TravelTips           []string              `json:"travelTips"`
	WeatherInfo          WeatherInfo           `json:"weatherInfo"`
	RealTimeEnhancements *RealTimeEnhancements `json:"realTimeEnhancements,omitempty"`
	EnhancementStatus    string                `json:"enhancementStatus"`
	Enhanced             *EnhancedPlan         `json:"enhanced,omitempty"`
}

// PlanTripResponse is the envelope written by the trip handler.
type PlanTripResponse struct {
	Success          bool              `json:"success"`
	TripID           string            `json:"tripId"`
	TripPlan         *CompleteTripPlan `json:"tripPlan"`
	EnhancementStats EnhancementStats  `json:"enhancementStats"`
	Message          string            `json:"message"`
}

type EnhancementStats struct {
	ReviewsFound    int  `json:"reviewsFound"`
	GuidesFound     int  `json:"guidesFound"`
	NewsFound       int  `json:"newsFound"`
	WeatherEnhanced bool `json:"weatherEnhanced"`
}
