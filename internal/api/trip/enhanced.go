package trip

import "github.com/planora-ai/planora-api/internal/types"

// BuildEnhancedPlan returns the curated cuisine, handicraft and logistics
// block attached when a request asks for the enhanced plan.
func BuildEnhancedPlan(season string) *types.EnhancedPlan {
	rec := SeasonRecommendations(season)
	return &types.EnhancedPlan{
		LocalCuisine: &types.CuisineBlock{
			Highlights: []string{
				"Dhuska with ghugni",
				"Litti chokha",
				"Pitha (varieties)",
				"Bamboo shoot curry",
				"Mutton curry (khassi)",
				"Thekua",
				"Tilkut",
			},
			Areas: []string{"Upper Bazar", "Firayalal Chowk", "Kanke Road"},
			SuggestedSlots: map[string]string{
				"day1_breakfast": "Dhuska at Upper Bazar",
				"day2_dinner":    "Litti chokha after waterfalls",
				"day3_snacks":    "Tilkut/Thekua for journey",
			},
		},
		Handicrafts: &types.HandicraftsBlock{
			Buy:     []string{"Dhokra brasswork", "Bamboo/cane craft", "Sohrai/Kohvar art", "Tussar silk"},
			Markets: []string{"Jharcraft outlets", "Firayalal Chowk", "Ratu Road", "Kanke Road"},
			Notes:   []string{"Prefer Jharcraft-certified", "Pack fragile brass carefully"},
		},
		Season: &types.SeasonBlock{
			Current:  season,
			Advice:   rec.Tips,
			BestTime: "Oct–Mar",
		},
		MicroItinerary: map[string][]string{
			"day1": {"Arrive, Rock Garden & Kanke Lake", "Dhuska breakfast", "Litti chokha dinner", "Market stroll"},
			"day2": {"Dassam & Hundru Falls loop", "Craft shopping evening", "Pitha/rolls tasting"},
			"day3": {"Pahari Mandir", "Museum/café", "Jharcraft pickups"},
		},
		Logistics: &types.LogisticsBlock{
			Transport: []string{"Cab for falls loop", "UPI + cash", "Confirm last-mile autos"},
			Packing:   []string{"Poncho", "Dry bag", "Spare socks"},
		},
	}
}
