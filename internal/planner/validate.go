package planner

import (
	"github.com/rs/zerolog/log"

	"tripgo_gateway/internal/domain"
)

// Sanitize enforces the budget invariant and the catalog grounding on a
// model reply before it leaves the gateway. The model is instructed to
// comply but never trusted:
//
//   - budget.total is recomputed from flights+hotels+activities+misc
//   - itineraries naming a destination or hotel outside the catalog are
//     dropped
//
// The reply is modified in place and returned.
func Sanitize(c Catalog, reply *domain.PlannerReply) *domain.PlannerReply {
	kept := reply.Itineraries[:0]
	for _, it := range reply.Itineraries {
		if !c.HasDestination(it.Destination) {
			log.Warn().
				Str("itinerary", it.ID).
				Str("destination", it.Destination).
				Msg("dropping itinerary: destination not in catalog")
			continue
		}
		if it.Hotel.Name != "" && !c.HasHotel(it.Destination, it.Hotel.Name) {
			log.Warn().
				Str("itinerary", it.ID).
				Str("hotel", it.Hotel.Name).
				Msg("dropping itinerary: hotel not in catalog")
			continue
		}
		sum := it.Budget.Flights + it.Budget.Hotels + it.Budget.Activities + it.Budget.Misc
		if it.Budget.Total != sum {
			log.Warn().
				Str("itinerary", it.ID).
				Float64("claimed", it.Budget.Total).
				Float64("computed", sum).
				Msg("recomputing itinerary total")
			it.Budget.Total = sum
		}
		kept = append(kept, it)
	}
	reply.Itineraries = kept
	if reply.Itineraries == nil {
		reply.Itineraries = []domain.ItineraryOption{}
	}
	return reply
}
