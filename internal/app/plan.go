package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"tripgo_gateway/internal/adapters/observability"
	"tripgo_gateway/internal/domain"
	"tripgo_gateway/internal/planner"
)

// PlanService runs one copilot turn: grounded system instruction plus the
// caller's full transcript in, sanitized itinerary envelope out.
type PlanService struct {
	model   domain.PlannerModel
	catalog planner.Catalog
	system  string // rendered once; the catalog is fixed per process
}

func NewPlanService(m domain.PlannerModel, c planner.Catalog) *PlanService {
	return &PlanService{model: m, catalog: c, system: planner.SystemPrompt(c)}
}

func (s *PlanService) Plan(ctx context.Context, turns []domain.ChatTurn) (*domain.PlannerReply, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("%w: messages are required", domain.ErrInvalidInput)
	}

	content, err := s.model.Complete(ctx, s.system, turns)
	if err != nil {
		return nil, err
	}

	var reply domain.PlannerReply
	if jerr := json.Unmarshal([]byte(content), &reply); jerr != nil {
		// Graceful degradation: wrap the raw text in a minimal valid
		// envelope instead of failing the conversation, and leave a
		// diagnostic trail since the user never sees this.
		observability.PlannerDegraded.Inc()
		log.Warn().
			Str("component", "plan_service").
			Int("raw_len", len(content)).
			Str("snippet", truncate(content, 200)).
			Err(jerr).
			Msg("model output not parseable as JSON; degrading reply")
		return &domain.PlannerReply{
			ClarificationRequired: false,
			Message:               content,
			Itineraries:           []domain.ItineraryOption{},
			RecommendedAction:     "CLARIFY",
		}, nil
	}

	return planner.Sanitize(s.catalog, &reply), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
