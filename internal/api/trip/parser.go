package trip

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/planora-ai/planora-api/internal/types"
)

var fencedJSONRe = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*\\})\\s*```")

// ExtractJSON pulls a JSON object out of raw model text. A fenced code
// block wins; otherwise the span from the first '{' to the last '}' is
// taken, and only trailing whitespace may follow the closing brace. ok is
// false when no candidate object is found.
func ExtractJSON(text string) (string, bool) {
	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start && strings.TrimSpace(text[end+1:]) == "" {
		return strings.TrimSpace(text[start : end+1]), true
	}
	return "", false
}

// Top-level array sections replace wholesale instead of merging per
// element.
var wholesaleArrayKeys = []string{"dailyItinerary", "culturalExperiences", "travelTips"}

// MergeOverFallback overlays the model's partial plan onto a complete
// fallback plan. Object sections merge key by key; the array sections
// named in wholesaleArrayKeys replace entirely when present and non-null,
// and keep the fallback's otherwise. The fallback is not mutated.
func MergeOverFallback(raw []byte, fallback *types.CompleteTripPlan) (*types.CompleteTripPlan, error) {
	// Reject non-object payloads up front so a bare string or array
	// cannot silently pass through.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	clone, err := clonePlan(fallback)
	if err != nil {
		return nil, err
	}

	// Decoding an array over a populated slice merges per element, so the
	// wholesale sections are held out of the object decode and applied
	// from the probe afterwards.
	objectKeys := make(map[string]json.RawMessage, len(probe))
	for k, v := range probe {
		objectKeys[k] = v
	}
	for _, key := range wholesaleArrayKeys {
		delete(objectKeys, key)
	}
	stripped, err := json.Marshal(objectKeys)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stripped, clone); err != nil {
		return nil, err
	}

	if v, ok := presentValue(probe, "dailyItinerary"); ok {
		var days []types.DailyItinerary
		if err := json.Unmarshal(v, &days); err != nil {
			return nil, err
		}
		clone.DailyItinerary = days
	}
	if v, ok := presentValue(probe, "culturalExperiences"); ok {
		var experiences []types.CulturalExperience
		if err := json.Unmarshal(v, &experiences); err != nil {
			return nil, err
		}
		clone.CulturalExperiences = experiences
	}
	if v, ok := presentValue(probe, "travelTips"); ok {
		var tips []string
		if err := json.Unmarshal(v, &tips); err != nil {
			return nil, err
		}
		clone.TravelTips = tips
	}
	return clone, nil
}

// presentValue reports a key that is present and not JSON null. Null and
// absent both keep the fallback section.
func presentValue(probe map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := probe[key]
	if !ok || string(bytes.TrimSpace(v)) == "null" {
		return nil, false
	}
	return v, true
}

func clonePlan(plan *types.CompleteTripPlan) (*types.CompleteTripPlan, error) {
	buf, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	var clone types.CompleteTripPlan
	if err := json.Unmarshal(buf, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// ParseModelResponse turns raw model text into a complete plan. Parseable
// output is merged over the generic fallback so gaps are always filled;
// unparseable output falls back to the smart fallback plan.
func ParseModelResponse(text string, req types.TripRequest, alloc types.BudgetAllocation, planner *FallbackPlanner) *types.CompleteTripPlan {
	raw, ok := ExtractJSON(text)
	if !ok {
		return planner.BuildSmart(req, alloc)
	}
	merged, err := MergeOverFallback([]byte(raw), planner.BuildGeneric(req, alloc))
	if err != nil {
		return planner.BuildSmart(req, alloc)
	}
	return merged
}
