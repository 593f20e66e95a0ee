package destinations

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(logger)
}

func TestServiceImpl_Normalize(t *testing.T) {
	svc := newTestService()

	t.Run("lowercases and trims", func(t *testing.T) {
		assert.Equal(t, "ranchi", svc.Normalize("  RANCHI  "))
	})

	t.Run("collapses internal whitespace", func(t *testing.T) {
		assert.Equal(t, "west singhbhum", svc.Normalize("West   Singhbhum"))
	})

	t.Run("applies aliases", func(t *testing.T) {
		assert.Equal(t, "betla", svc.Normalize("Betla National Park"))
		assert.Equal(t, "betla", svc.Normalize("betla park"))
		assert.Equal(t, "parasnath", svc.Normalize("Parasnath Hill"))
		assert.Equal(t, "parasnath", svc.Normalize("parasnath hills"))
	})
}

func TestServiceImpl_Resolve(t *testing.T) {
	svc := newTestService()

	t.Run("exact match", func(t *testing.T) {
		canonical, ok := svc.Resolve("Ranchi")
		require.True(t, ok)
		assert.Equal(t, "ranchi", canonical)
	})

	t.Run("input containing a location", func(t *testing.T) {
		canonical, ok := svc.Resolve("Ranchi city tour")
		require.True(t, ok)
		assert.Equal(t, "ranchi", canonical)
	})

	t.Run("input contained by a location", func(t *testing.T) {
		canonical, ok := svc.Resolve("singhbhum")
		require.True(t, ok)
		assert.Equal(t, "west singhbhum", canonical)
	})

	t.Run("alias resolves to canonical key", func(t *testing.T) {
		canonical, ok := svc.Resolve("Betla National Park")
		require.True(t, ok)
		assert.Equal(t, "betla", canonical)
	})

	t.Run("out of region destination", func(t *testing.T) {
		_, ok := svc.Resolve("Goa")
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := svc.Resolve("   ")
		assert.False(t, ok)
	})
}

func TestServiceImpl_IsSupported(t *testing.T) {
	svc := newTestService()

	supported := []string{
		"ranchi", "Deoghar", "NETARHAT", "Jamshedpur", "hazaribagh",
		"Betla", "dhanbad", "bokaro", "Parasnath", "giridih",
		"chaibasa", "palamu", "latehar", "dumka", "godda",
		"pakur", "sahebganj", "koderma", "chatra", "garhwa",
		"ramgarh", "khunti", "simdega", "West Singhbhum", "East Singhbhum",
	}
	for _, dest := range supported {
		assert.True(t, svc.IsSupported(dest), "expected %q to be supported", dest)
	}

	unsupported := []string{"Goa", "Mumbai", "Kolkata", "Patna", ""}
	for _, dest := range unsupported {
		assert.False(t, svc.IsSupported(dest), "expected %q to be unsupported", dest)
	}
}

func TestServiceImpl_Coordinates(t *testing.T) {
	svc := newTestService()

	t.Run("known destination", func(t *testing.T) {
		coords := svc.Coordinates("Jamshedpur")
		assert.InDelta(t, 22.8046, coords.Lat, 0.0001)
		assert.InDelta(t, 86.2029, coords.Lon, 0.0001)
	})

	t.Run("supported destination without pinned coordinates falls back to capital", func(t *testing.T) {
		coords := svc.Coordinates("khunti")
		assert.InDelta(t, 23.3441, coords.Lat, 0.0001)
		assert.InDelta(t, 85.3096, coords.Lon, 0.0001)
	})

	t.Run("unknown destination falls back to capital", func(t *testing.T) {
		coords := svc.Coordinates("nowhere")
		assert.InDelta(t, 23.3441, coords.Lat, 0.0001)
	})
}

func TestServiceImpl_Info(t *testing.T) {
	svc := newTestService()

	t.Run("curated destination", func(t *testing.T) {
		info := svc.Info("Ranchi")
		assert.Equal(t, "Ranchi", info.DisplayName)
		assert.Equal(t, "Birsa Munda Airport, Ranchi", info.NearestAirport)
		assert.NotEmpty(t, info.Highlights)
	})

	t.Run("supported destination without curated entry gets defaults", func(t *testing.T) {
		info := svc.Info("khunti")
		assert.Equal(t, "Khunti", info.DisplayName)
		assert.Equal(t, "Birsa Munda Airport, Ranchi", info.NearestAirport)
		assert.Equal(t, "October to March", info.BestTime)
	})
}

func TestServiceImpl_List(t *testing.T) {
	svc := newTestService()

	list := svc.List()
	assert.Len(t, list, 25)
	assert.Contains(t, list, "ranchi")
	assert.Contains(t, list, "east singhbhum")

	// Returned slice is a copy, mutating it must not affect the gazetteer.
	list[0] = "mutated"
	fresh := svc.List()
	assert.Equal(t, "ranchi", fresh[0])
}
