package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"tripgo_gateway/internal/app"
	"tripgo_gateway/internal/domain"
)

type Handlers struct {
	Resolve *app.ResolveService
	Search  *app.SearchService
	Plan    *app.PlanService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/cities/resolve", h.resolveCity)
	s.mux.Post("/v1/stays/search", h.searchStays)
	s.mux.Post("/v1/copilot/plan", h.planTrip)
}

// gatewayError is the uniform error body: free-text message plus a stable
// machine-readable kind so callers don't pattern-match on text.
type gatewayError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), gatewayError{Error: err.Error(), Kind: domain.Kind(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, gatewayError{
			Error: "invalid input: request body must be valid JSON",
			Kind:  "invalid_input",
		})
		return false
	}
	return true
}

func (h *Handlers) resolveCity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CityName string `json:"cityName"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	payload, err := h.Resolve.Resolve(r.Context(), body.CityName)
	if err != nil {
		writeError(w, err)
		return
	}

	// intentional pass-through: the provider's mapping payload unchanged
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("failed to write resolveCity body")
	}
}

func (h *Handlers) searchStays(w http.ResponseWriter, r *http.Request) {
	var req app.SearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listings, err := h.Search.Search(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	if listings == nil {
		listings = []domain.HotelListing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *Handlers) planTrip(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []domain.ChatTurn `json:"messages"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	reply, err := h.Plan.Plan(r.Context(), body.Messages)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			// keep the conversational shape on generic failures so the UI
			// never has to special-case an errored assistant turn
			writeJSON(w, status, struct {
				gatewayError
				domain.PlannerReply
			}{
				gatewayError{Error: err.Error(), Kind: domain.Kind(err)},
				domain.PlannerReply{
					Message:           "I'm having trouble processing your request. Please try again.",
					Itineraries:       []domain.ItineraryOption{},
					RecommendedAction: "CLARIFY",
				},
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
