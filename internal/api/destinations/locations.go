package destinations

import "github.com/planora-ai/planora-api/internal/types"

// supportedLocations is the set of recognised Jharkhand destinations,
// keyed by their normalized form.
var supportedLocations = []string{
	"ranchi", "deoghar", "netarhat", "jamshedpur", "hazaribagh",
	"betla", "dhanbad", "bokaro", "parasnath", "giridih",
	"chaibasa", "palamu", "latehar", "dumka", "godda",
	"pakur", "sahebganj", "koderma", "chatra", "garhwa",
	"ramgarh", "khunti", "simdega", "west singhbhum", "east singhbhum",
}

// locationAliases maps common alternate names onto canonical keys.
var locationAliases = map[string]string{
	"betla national park": "betla",
	"betla park":          "betla",
	"parasnath hill":      "parasnath",
	"parasnath hills":     "parasnath",
}

// locationCoordinates pins each destination for the weather provider.
// Destinations without an entry fall back to Ranchi, the state capital.
var locationCoordinates = map[string]types.Coordinates{
	"ranchi":     {Lat: 23.3441, Lon: 85.3096},
	"jamshedpur": {Lat: 22.8046, Lon: 86.2029},
	"deoghar":    {Lat: 24.4822, Lon: 86.6967},
	"dhanbad":    {Lat: 23.7957, Lon: 86.4304},
	"hazaribagh": {Lat: 23.9929, Lon: 85.3677},
	"bokaro":     {Lat: 23.6693, Lon: 86.1511},
	"netarhat":   {Lat: 23.4667, Lon: 84.25},
	"betla":      {Lat: 23.8833, Lon: 84.1833},
	"parasnath":  {Lat: 23.95, Lon: 86.15},
}

// LocationInfo carries curated travel facts used by fallback plans.
type LocationInfo struct {
	DisplayName    string
	NearestAirport string
	NearestRailway string
	BestTime       string
	Highlights     []string
}

var locationInfo = map[string]LocationInfo{
	"ranchi": {
		DisplayName:    "Ranchi",
		NearestAirport: "Birsa Munda Airport, Ranchi",
		NearestRailway: "Ranchi Junction",
		BestTime:       "October to March",
		Highlights:     []string{"Hundru Falls", "Rock Garden", "Tagore Hill", "Birsa Munda Biological Park"},
	},
	"deoghar": {
		DisplayName:    "Deoghar",
		NearestAirport: "Deoghar Airport",
		NearestRailway: "Jasidih Junction",
		BestTime:       "October to March",
		Highlights:     []string{"Baidyanath Temple", "Nandan Pahar", "Trikut Hills"},
	},
	"netarhat": {
		DisplayName:    "Netarhat",
		NearestAirport: "Birsa Munda Airport, Ranchi",
		NearestRailway: "Ranchi Junction",
		BestTime:       "October to April",
		Highlights:     []string{"Magnolia Sunset Point", "Upper Ghaghri Falls", "Pine forests"},
	},
	"jamshedpur": {
		DisplayName:    "Jamshedpur",
		NearestAirport: "Sonari Airport, Jamshedpur",
		NearestRailway: "Tatanagar Junction",
		BestTime:       "October to March",
		Highlights:     []string{"Jubilee Park", "Dalma Wildlife Sanctuary", "Dimna Lake"},
	},
	"betla": {
		DisplayName:    "Betla National Park",
		NearestAirport: "Birsa Munda Airport, Ranchi",
		NearestRailway: "Daltonganj Railway Station",
		BestTime:       "November to March",
		Highlights:     []string{"Jungle safari", "Palamu Fort", "Elephant sightings"},
	},
	"parasnath": {
		DisplayName:    "Parasnath",
		NearestAirport: "Birsa Munda Airport, Ranchi",
		NearestRailway: "Parasnath Railway Station",
		BestTime:       "October to March",
		Highlights:     []string{"Shikharji Jain temples", "Highest peak of Jharkhand", "Trekking trails"},
	},
	"hazaribagh": {
		DisplayName:    "Hazaribagh",
		NearestAirport: "Birsa Munda Airport, Ranchi",
		NearestRailway: "Hazaribagh Road Station",
		BestTime:       "October to March",
		Highlights:     []string{"Hazaribagh National Park", "Canary Hill", "Hazaribagh Lake"},
	},
}

// defaultInfo is used for supported destinations without a curated entry.
var defaultInfo = LocationInfo{
	NearestAirport: "Birsa Munda Airport, Ranchi",
	NearestRailway: "Ranchi Junction",
	BestTime:       "October to March",
}
