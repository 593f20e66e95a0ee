package trip

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	appmetrics "github.com/planora-ai/planora-api/app/observability/metrics"
	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/types"
)

// ModelClient is the slice of the language model client the planner needs.
type ModelClient interface {
	GenerateWithSystem(ctx context.Context, system, prompt string) (string, error)
}

// Service generates complete trip plans for supported destinations.
type Service interface {
	// GenerateTripPlan produces a plan for the request. The model path is
	// attempted first; any model or parse failure degrades to a synthesized
	// fallback plan, never to an error. The only error returned is
	// ErrUnsupportedDestination.
	GenerateTripPlan(ctx context.Context, req types.TripRequest) (*types.CompleteTripPlan, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger    *slog.Logger
	model     ModelClient
	gazetteer destinations.Service
	fallback  *FallbackPlanner
	metrics   *appmetrics.AppMetrics
	now       func() time.Time
}

func NewService(model ModelClient, gazetteer destinations.Service, metrics *appmetrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		model:     model,
		gazetteer: gazetteer,
		fallback:  NewFallbackPlanner(gazetteer),
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *ServiceImpl) GenerateTripPlan(ctx context.Context, req types.TripRequest) (*types.CompleteTripPlan, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "GenerateTripPlan")
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateTripPlan"), slog.String("destination", req.Destination))

	if !s.gazetteer.IsSupported(req.Destination) {
		span.SetStatus(codes.Error, "Unsupported destination")
		return nil, types.ErrUnsupportedDestination
	}

	if req.Days < 1 {
		req.Days = 1
	}
	total := ParseINROrDefault(req.Budget)
	alloc := AllocateBudget(total, req.Days)
	season := SeasonFor(s.now())

	span.SetAttributes(
		attribute.Int("trip.days", req.Days),
		attribute.Int("trip.budget", total),
		attribute.String("trip.season", season),
	)

	start := s.now()
	plan := s.generateWithModel(ctx, l, req, alloc, season)
	if s.metrics != nil {
		s.metrics.PlansGeneratedTotal.Add(ctx, 1)
		s.metrics.PlanDurationSeconds.Record(ctx, s.now().Sub(start).Seconds())
	}

	if req.IncludeEnhanced {
		plan.Enhanced = BuildEnhancedPlan(season)
	}

	span.SetStatus(codes.Ok, "Trip plan generated")
	return plan, nil
}

// generateWithModel runs the model call and parse, degrading to the
// fallback builder on any failure.
func (s *ServiceImpl) generateWithModel(ctx context.Context, l *slog.Logger, req types.TripRequest, alloc types.BudgetAllocation, season string) *types.CompleteTripPlan {
	systemPrompt := BuildSystemPrompt(req, alloc, season)
	userPrompt := BuildUserPrompt(req)

	modelStart := s.now()
	text, err := s.model.GenerateWithSystem(ctx, systemPrompt, userPrompt)
	if s.metrics != nil {
		s.metrics.ModelCallDurationSeconds.Record(ctx, s.now().Sub(modelStart).Seconds())
	}
	if err != nil {
		l.WarnContext(ctx, "Model call failed, using fallback plan", slog.Any("error", err))
		if s.metrics != nil {
			s.metrics.FallbackPlansTotal.Add(ctx, 1)
		}
		return s.fallback.BuildSmart(req, alloc)
	}

	plan := ParseModelResponse(text, req, alloc, s.fallback)
	if plan.EnhancementStatus == StatusSmartFallback || plan.EnhancementStatus == StatusGenericFallback {
		l.DebugContext(ctx, "Model output merged over fallback", slog.String("status", plan.EnhancementStatus))
	}
	return plan
}
