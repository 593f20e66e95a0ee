package trip

import (
	"fmt"
	"time"

	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

// Plan provenance markers.
const (
	StatusSmartFallback   = "✅ Smart fallback used"
	StatusGenericFallback = "⚠️ Generic fallback used"
	StatusEnhanced        = "✅ Enhanced with real-time intelligence from SerpAPI & OpenWeather"
)

var jharkhandEmergencyContacts = types.EmergencyContacts{
	JharkhandTourism: "0651-2331828",
	Police:           "100",
	Medical:          "108",
	FireService:      "101",
	LocalHelpline:    "112",
}

// FallbackPlanner synthesizes a complete plan without the language model.
// Destinations with a curated builder get a hand-written itinerary, the
// rest get a generic one derived from the gazetteer.
type FallbackPlanner struct {
	gazetteer destinations.Service
	now       func() time.Time
}

func NewFallbackPlanner(gazetteer destinations.Service) *FallbackPlanner {
	return &FallbackPlanner{gazetteer: gazetteer, now: time.Now}
}

type fallbackBuilder func(p *FallbackPlanner, req types.TripRequest, alloc types.BudgetAllocation) *types.CompleteTripPlan

var fallbackBuilders = map[string]fallbackBuilder{
	"ranchi":     (*FallbackPlanner).buildRanchi,
	"deoghar":    (*FallbackPlanner).buildGeneric,
	"netarhat":   (*FallbackPlanner).buildGeneric,
	"jamshedpur": (*FallbackPlanner).buildGeneric,
	"hazaribagh": (*FallbackPlanner).buildGeneric,
}

// BuildSmart picks the curated builder for the destination when one
// exists, falling back to the generic plan otherwise.
func (p *FallbackPlanner) BuildSmart(req types.TripRequest, alloc types.BudgetAllocation) *types.CompleteTripPlan {
	if key, ok := p.gazetteer.Resolve(req.Destination); ok {
		if builder, found := fallbackBuilders[key]; found {
			return builder(p, req, alloc)
		}
	}
	return p.buildGeneric(req, alloc)
}

// BuildGeneric is the exported generic builder, used as the merge base
// when parsing model output.
func (p *FallbackPlanner) BuildGeneric(req types.TripRequest, alloc types.BudgetAllocation) *types.CompleteTripPlan {
	return p.buildGeneric(req, alloc)
}

func (p *FallbackPlanner) buildRanchi(req types.TripRequest, alloc types.BudgetAllocation) *types.CompleteTripPlan {
	days := req.Days
	if days < 1 {
		days = 3
	}
	season := SeasonFor(p.now())

	return &types.CompleteTripPlan{
		TripOverview: types.TripOverview{
			Destination:     "Ranchi",
			State:           "Jharkhand",
			Duration:        fmt.Sprintf("%d days", days),
			TotalBudget:     FormatINR(alloc.Total),
			BudgetCategory:  BudgetCategory(alloc),
			BestTimeToVisit: "October–March",
			NearestAirport:  "Birsa Munda Airport (IXR)",
			NearestRailway:  "Ranchi Junction (RNC)",
			Overview:        fmt.Sprintf("Discover Ranchi, the \"City of Waterfalls\", blending cascades, gardens, culture, and food over %d days.", days),
		},
		DailyItinerary:  cycleDays(ranchiDayPattern(), days),
		BudgetBreakdown: BreakdownFromAllocation(alloc),
		CulturalExperiences: []types.CulturalExperience{
			{
				Experience:           "Tribal Art Workshop",
				Location:             "Local Art Center",
				Cost:                 "₹300",
				BestTime:             "Morning",
				Duration:             "2h",
				Description:          "Hands-on Sohrai & Kohbar motifs introduction",
				Difficulty:           "easy",
				CulturalSignificance: "Supports local artisans and preserves tribal art traditions",
			},
		},
		EmergencyContacts: jharkhandEmergencyContacts,
		TravelTips: []string{
			"Carry sufficient cash; ATMs can be sparse near waterfalls",
			"Keep sunscreen, water, and walking shoes",
		},
		WeatherInfo: types.WeatherInfo{
			CurrentSeason: season,
			Temperature:   SeasonalTemperature(season),
			Clothing:      SeasonalClothing(season),
			Precautions:   "Check rainfall before visiting falls; roads may be slippery",
		},
		EnhancementStatus: StatusSmartFallback,
	}
}

// ranchiDayPattern is the curated three-day template. Trips of other
// lengths cycle through it.
func ranchiDayPattern() []types.DailyItinerary {
	return []types.DailyItinerary{
		{
			Day:   1,
			Theme: "Arrival & City Highlights",
			Activities: []types.Activity{
				{Time: "10:00", Activity: "Check-in", Location: "Hotel", Duration: "2h", Cost: "₹0", Category: "sightseeing"},
				{Time: "12:30", Activity: "Lunch", Location: "Doranda Chowk", Duration: "1h", Cost: "₹400", Category: "food", Description: "Local thali & chaats"},
				{Time: "14:00", Activity: "Rock Garden", Location: "Kanke Road", Duration: "2.5h", Cost: "₹50", Category: "sightseeing", Description: "Lake views & sculptures"},
				{Time: "17:00", Activity: "Tagore Hill", Location: "Morabadi", Duration: "1.5h", Cost: "₹30", Category: "sightseeing", Description: "Sunset viewpoint"},
			},
			TotalDayCost: "₹1,200",
			TravelTips: []string{
				"Visit Rock Garden by late afternoon for milder sun",
				"Doranda Chowk is great for pocket-friendly street food",
			},
		},
		{
			Day:   2,
			Theme: "Waterfalls Circuit",
			Activities: []types.Activity{
				{Time: "09:30", Activity: "Hundru Falls", Location: "Approx 35 km", Duration: "4h", Cost: "₹800", Category: "sightseeing", Description: "Steep steps; excellent monsoon flow"},
				{Time: "14:00", Activity: "Lunch", Location: "Nearby eatery", Duration: "1h", Cost: "₹450", Category: "food", Description: "Simple veg meals"},
				{Time: "16:00", Activity: "Jonha Falls", Location: "Approx 40 km", Duration: "2.5h", Cost: "₹600", Category: "sightseeing", Description: "Temple nearby; scenic pool"},
			},
			TotalDayCost: "₹2,150",
			TravelTips: []string{
				"Wear non-slip shoes",
				"Keep a spare towel and water",
				"Avoid slippery edges during peak monsoon",
			},
		},
		{
			Day:   3,
			Theme: "Zoo & Market",
			Activities: []types.Activity{
				{Time: "09:00", Activity: "Birsa Munda Biological Park", Location: "Ormanjhi", Duration: "3h", Cost: "₹80", Category: "sightseeing", Description: "Green campus; kids friendly"},
				{Time: "13:00", Activity: "Lunch", Location: "Local dhaba", Duration: "1h", Cost: "₹350", Category: "food", Description: "Litti-chokha and regional fare"},
				{Time: "14:30", Activity: "Shopping", Location: "Main Road Market", Duration: "2h", Cost: "₹1,000", Category: "shopping", Description: "Handicrafts; bamboo & tribal art"},
			},
			TotalDayCost: "₹1,430",
			TravelTips: []string{
				"Carry cash for small vendors",
				"Respect local customs and temple dress codes",
			},
		},
	}
}

// cycleDays repeats or truncates the pattern so the itinerary always has
// exactly the requested number of days, renumbered 1..days.
func cycleDays(pattern []types.DailyItinerary, days int) []types.DailyItinerary {
	out := make([]types.DailyItinerary, 0, days)
	for i := 1; i <= days; i++ {
		day := pattern[(i-1)%len(pattern)]
		day.Day = i
		out = append(out, day)
	}
	return out
}

func (p *FallbackPlanner) buildGeneric(req types.TripRequest, alloc types.BudgetAllocation) *types.CompleteTripPlan {
	days := req.Days
	if days < 1 {
		days = 2
	}
	season := SeasonFor(p.now())
	info := p.gazetteer.Info(req.Destination)

	return &types.CompleteTripPlan{
		TripOverview: types.TripOverview{
			Destination:     req.Destination,
			State:           "Jharkhand",
			Duration:        fmt.Sprintf("%d days", days),
			TotalBudget:     FormatINR(alloc.Total),
			BudgetCategory:  BudgetCategory(alloc),
			BestTimeToVisit: info.BestTime,
			NearestAirport:  info.NearestAirport,
			NearestRailway:  info.NearestRailway,
			Overview:        fmt.Sprintf("Explore %s with a balanced plan covering highlights, local food, and culture.", req.Destination),
		},
		DailyItinerary:      p.basicItinerary(req),
		BudgetBreakdown:     BreakdownFromAllocation(alloc),
		CulturalExperiences: []types.CulturalExperience{},
		EmergencyContacts:   jharkhandEmergencyContacts,
		TravelTips: []string{
			"Best travel window: Oct–Mar",
			"Carry a government ID for hotel check-in",
		},
		WeatherInfo: types.WeatherInfo{
			CurrentSeason: season,
			Temperature:   SeasonalTemperature(season),
			Clothing:      SeasonalClothing(season),
			Precautions:   "Pack appropriate shoes and a light jacket",
		},
		EnhancementStatus: StatusGenericFallback,
	}
}

// basicItinerary emits one sightseeing block per day.
func (p *FallbackPlanner) basicItinerary(req types.TripRequest) []types.DailyItinerary {
	days := req.Days
	if days < 1 {
		days = 1
	}
	out := make([]types.DailyItinerary, 0, days)
	for i := 1; i <= days; i++ {
		out = append(out, types.DailyItinerary{
			Day:   i,
			Theme: fmt.Sprintf("Day %d - Explore %s", i, req.Destination),
			Activities: []types.Activity{
				{
					Time:     "09:00",
					Activity: "Sightseeing",
					Location: req.Destination,
					Duration: "4h",
					Cost:     "₹500",
					Category: "sightseeing",
				},
			},
			TotalDayCost: "₹1,500",
		})
	}
	return out
}
