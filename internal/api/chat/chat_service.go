package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/api/trip"
	"github.com/planora-ai/planora-api/internal/types"
)

const systemPrompt = "You are PLANORA AI, a Jharkhand-only trip planner. Provide concise, " +
	"day-wise itineraries, INR budgets, hotel booking tips with contact, weather notes, " +
	"transport, and safety for Ranchi/Deoghar/Netarhat/Jamshedpur/Hazaribagh/Betla. " +
	"Be practical and structured."

// ErrOutOfScope is returned when no message mentions a served destination.
var ErrOutOfScope = errors.New("conversation does not mention a supported destination")

// ModelClient is the slice of the generative client the assistant needs.
type ModelClient interface {
	GenerateWithSystem(ctx context.Context, system, prompt string) (string, error)
}

// Service answers travel questions scoped to the served region.
type Service interface {
	Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger    *slog.Logger
	model     ModelClient
	modelName string
	gazetteer destinations.Service
	now       func() time.Time
}

func NewService(model ModelClient, modelName string, gazetteer destinations.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		model:     model,
		modelName: modelName,
		gazetteer: gazetteer,
		now:       time.Now,
	}
}

func (s *ServiceImpl) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "Chat")
	defer span.End()

	l := s.logger.With(slog.String("method", "Chat"))

	if !s.mentionsSupportedDestination(req.Messages) {
		span.SetStatus(codes.Error, "Out of scope")
		return nil, ErrOutOfScope
	}

	season := trip.SeasonFor(s.now())

	// planTrip-json skips the model entirely and returns the curated block.
	if req.Context == "planTrip-json" {
		span.SetStatus(codes.Ok, "Enhanced block returned")
		return &types.ChatResponse{
			EnhancementStatus: "ok",
			Enhanced:          trip.BuildEnhancedPlan(season),
		}, nil
	}

	prompt := buildPrompt(req.Messages)
	reply, err := s.model.GenerateWithSystem(ctx, systemPrompt, prompt)
	if err != nil {
		l.ErrorContext(ctx, "Model call failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Model call failed")
		return nil, err
	}

	resp := &types.ChatResponse{
		Reply: reply,
		Model: s.modelName,
	}
	if req.Context == "planTrip" {
		resp.Enhanced = trip.BuildEnhancedPlan(season)
		resp.EnhancementStatus = "ok"
	}

	span.SetStatus(codes.Ok, "Reply generated")
	return resp, nil
}

// mentionsSupportedDestination scans the concatenated conversation text for
// any served location.
func (s *ServiceImpl) mentionsSupportedDestination(messages []types.ChatMessage) bool {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m.Content)
		b.WriteString(" ")
	}
	text := strings.ToLower(b.String())
	for _, loc := range s.gazetteer.List() {
		if strings.Contains(text, loc) {
			return true
		}
	}
	return false
}

// buildPrompt flattens the conversation into a single completion prompt,
// keeping role labels so the model sees the turn structure.
func buildPrompt(messages []types.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		role := m.Role
		if role == "" {
			role = "user"
		}
		b.WriteString(strings.ToUpper(role[:1]) + role[1:])
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}
