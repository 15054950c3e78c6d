package planner_test

import (
	"strings"
	"testing"

	"tripgo_gateway/internal/domain"
	"tripgo_gateway/internal/planner"
)

func TestSystemPrompt_EmbedsCatalog(t *testing.T) {
	c := planner.DefaultCatalog()
	p := planner.SystemPrompt(c)

	for _, want := range []string{
		`"Taj Exotica Resort"`,
		`"Kerala Backwaters"`,
		`"trustScore": 9.5`,
		`"version": "v1"`,
		"strict JSON",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}

func TestSanitize_RecomputesTotal(t *testing.T) {
	c := planner.DefaultCatalog()
	reply := &domain.PlannerReply{
		Itineraries: []domain.ItineraryOption{{
			ID:          "opt-1",
			Destination: "Goa",
			Hotel:       domain.HotelPick{Name: "Goa Beach Resort", PricePerNight: 4500, TrustScore: 7.5},
			Budget:      domain.BudgetBreakdown{Total: 99999, Flights: 5000, Hotels: 9000, Activities: 4000, Misc: 1800},
		}},
	}

	out := planner.Sanitize(c, reply)
	if len(out.Itineraries) != 1 {
		t.Fatalf("expected 1 itinerary, got %d", len(out.Itineraries))
	}
	b := out.Itineraries[0].Budget
	want := b.Flights + b.Hotels + b.Activities + b.Misc
	if b.Total != want {
		t.Fatalf("total not recomputed: got %v want %v", b.Total, want)
	}
}

func TestSanitize_DropsOutOfCatalog(t *testing.T) {
	c := planner.DefaultCatalog()
	reply := &domain.PlannerReply{
		Itineraries: []domain.ItineraryOption{
			{ID: "bad-dest", Destination: "Paris"},
			{ID: "bad-hotel", Destination: "Jaipur", Hotel: domain.HotelPick{Name: "Invented Palace"}},
			{ID: "ok", Destination: "Jaipur", Hotel: domain.HotelPick{Name: "Pink City Hotel"}},
		},
	}

	out := planner.Sanitize(c, reply)
	if len(out.Itineraries) != 1 || out.Itineraries[0].ID != "ok" {
		t.Fatalf("expected only the catalog-grounded itinerary, got %+v", out.Itineraries)
	}
}

func TestSanitize_NilItinerariesBecomeEmpty(t *testing.T) {
	out := planner.Sanitize(planner.DefaultCatalog(), &domain.PlannerReply{})
	if out.Itineraries == nil {
		t.Fatal("itineraries should serialize as [], not null")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := planner.DefaultCatalog()
	if !c.HasDestination("goa") || !c.HasDestination("Kerala Backwaters") {
		t.Fatal("expected id and display-name lookups to match")
	}
	if c.HasDestination("Mumbai") {
		t.Fatal("Mumbai is not in the catalog")
	}
	if !c.HasHotel("Manali", "Mountain View Inn") {
		t.Fatal("expected hotel lookup via display name")
	}
	if c.HasHotel("Manali", "Rambagh Palace") {
		t.Fatal("hotel belongs to a different destination")
	}
}
