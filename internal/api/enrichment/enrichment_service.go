package enrichment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	appmetrics "github.com/planora-ai/planora-api/app/observability/metrics"
	"github.com/planora-ai/planora-api/internal/api/search"
	"github.com/planora-ai/planora-api/internal/api/trip"
	"github.com/planora-ai/planora-api/internal/api/weather"
	"github.com/planora-ai/planora-api/internal/types"
)

const (
	cacheTTL        = 30 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Service attaches live weather, reviews, guides and news to a generated
// plan. Provider calls run concurrently and are all-settled: one failing
// provider never discards the others' results, and the plan is always
// returned enriched with at least fallback data.
type Service interface {
	Enrich(ctx context.Context, destination string, plan *types.CompleteTripPlan) types.EnhancementStats
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger  *slog.Logger
	weather weather.Service
	search  search.Service
	cache   *cache.Cache
	metrics *appmetrics.AppMetrics
	now     func() time.Time
}

func NewService(weatherSvc weather.Service, searchSvc search.Service, metrics *appmetrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		weather: weatherSvc,
		search:  searchSvc,
		cache:   cache.New(cacheTTL, cleanupInterval),
		metrics: metrics,
		now:     time.Now,
	}
}

// bundle holds one settled round of provider results.
type bundle struct {
	intel      *types.WeatherIntelligence
	weatherErr error
	reviews    []types.Review
	reviewsErr error
	guides     []types.LocalGuide
	guidesErr  error
	news       []types.NewsItem
	newsErr    error
}

func (s *ServiceImpl) Enrich(ctx context.Context, destination string, plan *types.CompleteTripPlan) types.EnhancementStats {
	ctx, span := otel.Tracer("EnrichmentService").Start(ctx, "Enrich")
	defer span.End()

	l := s.logger.With(slog.String("method", "Enrich"), slog.String("destination", destination))

	key := strings.ToLower(strings.TrimSpace(destination))
	var b *bundle
	if cached, found := s.cache.Get(key); found {
		b = cached.(*bundle)
		l.DebugContext(ctx, "Using cached enrichment results")
		span.SetAttributes(attribute.Bool("enrichment.cache_hit", true))
	} else {
		b = s.gather(ctx, destination)
		s.cache.Set(key, b, cache.DefaultExpiration)
		span.SetAttributes(attribute.Bool("enrichment.cache_hit", false))
	}

	status := map[string]string{
		types.EnrichmentSourceWeather: s.statusFor(ctx, l, "weather", b.weatherErr),
		types.EnrichmentSourceReviews: s.statusFor(ctx, l, "reviews", b.reviewsErr),
		types.EnrichmentSourceGuides:  s.statusFor(ctx, l, "guides", b.guidesErr),
		types.EnrichmentSourceNews:    s.statusFor(ctx, l, "news", b.newsErr),
	}

	reviews := b.reviews
	if status[types.EnrichmentSourceReviews] == types.APIStatusError {
		reviews = []types.Review{}
	}
	guides := b.guides
	if status[types.EnrichmentSourceGuides] == types.APIStatusError {
		guides = []types.LocalGuide{}
	}
	news := b.news
	if status[types.EnrichmentSourceNews] == types.APIStatusError {
		news = []types.NewsItem{}
	}
	if reviews == nil {
		reviews = []types.Review{}
	}
	if guides == nil {
		guides = []types.LocalGuide{}
	}
	if news == nil {
		news = []types.NewsItem{}
	}

	weatherEnhanced := b.intel != nil && b.weatherErr == nil
	if b.intel != nil {
		mergeWeather(plan, b.intel)
	}

	plan.RealTimeEnhancements = &types.RealTimeEnhancements{
		AttractionReviews: reviews,
		LocalGuides:       guides,
		CurrentNews:       news,
		DataSource:        "SerpAPI + OpenWeather + Gemini AI",
		LastUpdated:       s.now().Format(time.RFC3339),
		SearchesUsed:      3,
		APIStatus:         status,
	}
	plan.EnhancementStatus = trip.StatusEnhanced

	span.SetStatus(codes.Ok, "Plan enriched")
	return types.EnhancementStats{
		ReviewsFound:    len(reviews),
		GuidesFound:     len(guides),
		NewsFound:       len(news),
		WeatherEnhanced: weatherEnhanced,
	}
}

// gather runs all provider calls concurrently. Errors are captured per
// slot, never propagated, so Wait always returns nil.
func (s *ServiceImpl) gather(ctx context.Context, destination string) *bundle {
	b := &bundle{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.intel, b.weatherErr = s.weather.GetWeatherIntelligence(gctx, destination)
		return nil
	})
	g.Go(func() error {
		b.reviews, b.reviewsErr = s.search.SearchReviews(gctx, destination)
		return nil
	})
	g.Go(func() error {
		b.guides, b.guidesErr = s.search.FindGuides(gctx, destination)
		return nil
	})
	g.Go(func() error {
		b.news, b.newsErr = s.search.GetTourismNews(gctx)
		return nil
	})
	_ = g.Wait()
	return b
}

func (s *ServiceImpl) statusFor(ctx context.Context, l *slog.Logger, source string, err error) string {
	switch {
	case err == nil:
		return types.APIStatusSuccess
	case errors.Is(err, types.ErrProviderUnavailable):
		if s.metrics != nil {
			s.metrics.EnrichmentFailuresTotal.Add(ctx, 1)
		}
		l.DebugContext(ctx, "Provider degraded to fallback data", slog.String("source", source), slog.Any("error", err))
		return types.APIStatusFallback
	default:
		if s.metrics != nil {
			s.metrics.EnrichmentFailuresTotal.Add(ctx, 1)
		}
		l.WarnContext(ctx, "Provider call failed", slog.String("source", source), slog.Any("error", err))
		return types.APIStatusError
	}
}

// mergeWeather overlays live weather onto the plan, preserving the base
// plan's humidity, wind and visibility readings.
func mergeWeather(plan *types.CompleteTripPlan, intel *types.WeatherIntelligence) {
	base := plan.WeatherInfo
	plan.WeatherInfo = types.WeatherInfo{
		CurrentSeason: intel.CurrentSeason,
		Temperature:   intel.Temperature,
		Clothing:      strings.Join(intel.ClothingRecommendations, ", "),
		Precautions:   strings.Join(intel.SeasonalConsiderations, ", "),
		Humidity:      base.Humidity,
		WindSpeed:     base.WindSpeed,
		Visibility:    base.Visibility,
	}
}
