package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora-ai/planora-api/internal/types"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"tripOverview\": {\"destination\": \"Ranchi\"}}\n```\nEnjoy!"
	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.Equal(t, `{"tripOverview": {"destination": "Ranchi"}}`, raw)
}

func TestExtractJSONFencedBlockWithoutLanguage(t *testing.T) {
	text := "```\n{\"a\": 1}\n```"
	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, raw)
}

func TestExtractJSONBraceSpan(t *testing.T) {
	text := "Sure! {\"days\": 3, \"notes\": {\"x\": \"y\"}}\n"
	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.Equal(t, `{"days": 3, "notes": {"x": "y"}}`, raw)
}

func TestExtractJSONBraceSpanRejectsTrailingText(t *testing.T) {
	_, ok := ExtractJSON(`Sure! {"days": 3} hope that helps`)
	assert.False(t, ok)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, ok := ExtractJSON("I could not generate a plan, sorry.")
	assert.False(t, ok)
}

func TestMergeOverFallbackPartialObject(t *testing.T) {
	planner := newTestPlanner(t)
	alloc := AllocateBudget(15000, 2)
	fallback := planner.BuildGeneric(types.TripRequest{Destination: "Deoghar", Days: 2}, alloc)

	raw := []byte(`{"tripOverview": {"destination": "Deoghar", "overview": "Temple town"}}`)
	merged, err := MergeOverFallback(raw, fallback)
	require.NoError(t, err)

	// Overlaid fields win, untouched sections survive from the fallback.
	assert.Equal(t, "Temple town", merged.TripOverview.Overview)
	assert.Equal(t, fallback.BudgetBreakdown, merged.BudgetBreakdown)
	assert.Equal(t, fallback.EmergencyContacts, merged.EmergencyContacts)
	assert.Len(t, merged.DailyItinerary, 2)

	// The fallback itself is untouched.
	assert.NotEqual(t, "Temple town", fallback.TripOverview.Overview)
}

func TestMergeOverFallbackReplacesArraysWholesale(t *testing.T) {
	planner := newTestPlanner(t)
	alloc := AllocateBudget(15000, 3)
	fallback := planner.BuildGeneric(types.TripRequest{Destination: "Netarhat", Days: 3}, alloc)

	raw := []byte(`{"dailyItinerary": [{"day": 1, "theme": "Sunrise Point", "totalDayCost": "₹900"}]}`)
	merged, err := MergeOverFallback(raw, fallback)
	require.NoError(t, err)

	require.Len(t, merged.DailyItinerary, 1)
	assert.Equal(t, "Sunrise Point", merged.DailyItinerary[0].Theme)
	// A day entry that omits activities stays empty; nothing is inherited
	// from the fallback day at the same index.
	assert.Empty(t, merged.DailyItinerary[0].Activities)
	// Sections the model omitted keep the fallback's arrays.
	assert.Equal(t, fallback.TravelTips, merged.TravelTips)
	assert.Equal(t, fallback.CulturalExperiences, merged.CulturalExperiences)
}

func TestMergeOverFallbackNullArrayKeepsFallback(t *testing.T) {
	planner := newTestPlanner(t)
	alloc := AllocateBudget(15000, 2)
	fallback := planner.BuildGeneric(types.TripRequest{Destination: "Deoghar", Days: 2}, alloc)

	raw := []byte(`{"travelTips": null, "dailyItinerary": null}`)
	merged, err := MergeOverFallback(raw, fallback)
	require.NoError(t, err)

	assert.Equal(t, fallback.TravelTips, merged.TravelTips)
	assert.Equal(t, fallback.DailyItinerary, merged.DailyItinerary)
}

func TestMergeOverFallbackRejectsNonObject(t *testing.T) {
	planner := newTestPlanner(t)
	fallback := planner.BuildGeneric(types.TripRequest{Destination: "Ranchi", Days: 2}, AllocateBudget(10000, 2))

	_, err := MergeOverFallback([]byte(`"just a string"`), fallback)
	assert.Error(t, err)

	_, err = MergeOverFallback([]byte(`[1, 2, 3]`), fallback)
	assert.Error(t, err)
}

func TestParseModelResponseUnparseableFallsBackToSmart(t *testing.T) {
	planner := newTestPlanner(t)
	req := types.TripRequest{Destination: "Ranchi", Days: 3}
	alloc := AllocateBudget(15000, 3)

	plan := ParseModelResponse("no json here at all", req, alloc, planner)
	assert.Equal(t, StatusSmartFallback, plan.EnhancementStatus)
}

func TestParseModelResponseMalformedJSONFallsBackToSmart(t *testing.T) {
	planner := newTestPlanner(t)
	req := types.TripRequest{Destination: "Ranchi", Days: 3}
	alloc := AllocateBudget(15000, 3)

	plan := ParseModelResponse(`{"tripOverview": {`, req, alloc, planner)
	assert.Equal(t, StatusSmartFallback, plan.EnhancementStatus)
}

func TestParseModelResponseMergesOverGeneric(t *testing.T) {
	planner := newTestPlanner(t)
	req := types.TripRequest{Destination: "Deoghar", Days: 2}
	alloc := AllocateBudget(12000, 2)

	text := "```json\n{\"tripOverview\": {\"destination\": \"Deoghar\", \"overview\": \"Baidyanath Dham\"}}\n```"
	plan := ParseModelResponse(text, req, alloc, planner)

	assert.Equal(t, "Baidyanath Dham", plan.TripOverview.Overview)
	// Merge base is the generic fallback, so its status survives when the
	// model omits one.
	assert.Equal(t, StatusGenericFallback, plan.EnhancementStatus)
}
