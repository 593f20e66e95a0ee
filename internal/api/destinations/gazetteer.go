package destinations

import (
	"log/slog"
	"strings"

	"github.com/planora-ai/planora-api/internal/types"
)

// Service answers whether a free-text destination belongs to the served
// region and resolves it to a canonical key.
type Service interface {
	// Normalize lowercases, trims and collapses whitespace, then applies
	// alias resolution. It does not check membership.
	Normalize(destination string) string
	// Resolve returns the canonical location key for a destination, using
	// substring matching in both directions. ok is false when the
	// destination is outside the served region.
	Resolve(destination string) (string, bool)
	// IsSupported reports whether the destination resolves to a known location.
	IsSupported(destination string) bool
	// Coordinates returns the lat/lon used by the weather provider. Unknown
	// destinations map to the state capital.
	Coordinates(destination string) types.Coordinates
	// Info returns curated travel facts for a destination.
	Info(destination string) LocationInfo
	// List returns the canonical location keys.
	List() []string
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

func (s *ServiceImpl) Normalize(destination string) string {
	normalized := strings.ToLower(strings.TrimSpace(destination))
	normalized = strings.Join(strings.Fields(normalized), " ")
	if canonical, ok := locationAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

func (s *ServiceImpl) Resolve(destination string) (string, bool) {
	normalized := s.Normalize(destination)
	if normalized == "" {
		return "", false
	}
	for _, loc := range supportedLocations {
		if strings.Contains(normalized, loc) || strings.Contains(loc, normalized) {
			return loc, true
		}
	}
	return "", false
}

func (s *ServiceImpl) IsSupported(destination string) bool {
	_, ok := s.Resolve(destination)
	return ok
}

func (s *ServiceImpl) Coordinates(destination string) types.Coordinates {
	if key, ok := s.Resolve(destination); ok {
		if coords, found := locationCoordinates[key]; found {
			return coords
		}
	}
	return locationCoordinates["ranchi"]
}

func (s *ServiceImpl) Info(destination string) LocationInfo {
	key, ok := s.Resolve(destination)
	if !ok {
		info := defaultInfo
		info.DisplayName = titleCase(s.Normalize(destination))
		return info
	}
	if info, found := locationInfo[key]; found {
		return info
	}
	info := defaultInfo
	info.DisplayName = titleCase(key)
	return info
}

func (s *ServiceImpl) List() []string {
	out := make([]string, len(supportedLocations))
	copy(out, supportedLocations)
	return out
}

func titleCase(in string) string {
	words := strings.Fields(in)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
