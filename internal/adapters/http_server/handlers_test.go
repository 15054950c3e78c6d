package httpserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "tripgo_gateway/internal/adapters/http_server"
	"tripgo_gateway/internal/adapters/makcorps"
	"tripgo_gateway/internal/app"
	"tripgo_gateway/internal/domain"
	"tripgo_gateway/internal/planner"
)

type stubProvider struct {
	payload  domain.RawPayload
	listings []domain.HotelListing
	err      error
	calls    int
}

func (s *stubProvider) ResolveCity(ctx context.Context, name string) (domain.RawPayload, error) {
	s.calls++
	return s.payload, s.err
}

func (s *stubProvider) SearchStays(ctx context.Context, q domain.StaySearch) ([]domain.HotelListing, error) {
	s.calls++
	return s.listings, s.err
}

type stubModel struct {
	content    string
	err        error
	lastSystem string
}

func (s *stubModel) Complete(ctx context.Context, system string, turns []domain.ChatTurn) (string, error) {
	s.lastSystem = system
	return s.content, s.err
}

func newTestServer(p domain.PriceProvider, m domain.PlannerModel) http.Handler {
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Resolve: app.NewResolveService(p, nil, time.Hour),
		Search:  app.NewSearchService(p),
		Plan:    app.NewPlanService(m, planner.DefaultCatalog()),
	})
	return srv.Mux()
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestResolve_MissingCredential(t *testing.T) {
	// real provider client with no key: must fail before any network I/O
	cl := makcorps.New("http://127.0.0.1:0", "", 100)
	h := newTestServer(cl, &stubModel{})

	rr := post(t, h, "/v1/cities/resolve", `{"cityName":"Goa"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var e struct{ Error, Kind string }
	if err := json.Unmarshal(rr.Body.Bytes(), &e); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	if e.Kind != "configuration_error" || e.Error == "" {
		t.Fatalf("unexpected error body: %+v", e)
	}
}

func TestResolve_MissingCityName(t *testing.T) {
	p := &stubProvider{}
	h := newTestServer(p, &stubModel{})

	rr := post(t, h, "/v1/cities/resolve", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if p.calls != 0 {
		t.Fatal("provider must not be called")
	}
}

func TestResolve_PassThroughBody(t *testing.T) {
	payload := `[{"document_id":"60763","details":{"name":"Goa"}}]`
	p := &stubProvider{payload: domain.RawPayload(payload)}
	h := newTestServer(p, &stubModel{})

	rr := post(t, h, "/v1/cities/resolve", `{"cityName":"Goa"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body)
	}
	if rr.Body.String() != payload {
		t.Fatalf("payload reshaped: %s", rr.Body)
	}
}

func TestSearch_TwoStubbedRowsEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"name":"Hotel A","vendor1":"Booking.com","price1":3200,"reviews":{"rating":4.1,"count":900}},
			{"name":"Hotel B","vendor1":"Agoda","price1":"$2,100","vendor2":"MMT","price2":2050}
		]`)
	}))
	defer upstream.Close()

	cl := makcorps.New(upstream.URL, "test-key", 100)
	h := newTestServer(cl, &stubModel{})

	rr := post(t, h, "/v1/stays/search",
		`{"cityId":"60763","checkIn":"2025-03-10","checkOut":"2025-03-12","adults":2,"rooms":1}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body)
	}

	var listings []domain.HotelListing
	if err := json.Unmarshal(rr.Body.Bytes(), &listings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].Name != "Hotel A" || *listings[0].ReviewScore != 4.1 {
		t.Fatalf("row 0 mangled: %+v", listings[0])
	}
	if len(listings[1].Quotes) != 2 || listings[1].Quotes[0].Nightly != 2100 {
		t.Fatalf("row 1 quotes mangled: %+v", listings[1].Quotes)
	}
}

func TestSearch_MissingFields(t *testing.T) {
	p := &stubProvider{}
	h := newTestServer(p, &stubModel{})

	rr := post(t, h, "/v1/stays/search", `{"cityId":"60763"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var e struct{ Kind string }
	_ = json.Unmarshal(rr.Body.Bytes(), &e)
	if e.Kind != "invalid_input" {
		t.Fatalf("kind = %q", e.Kind)
	}
	if p.calls != 0 {
		t.Fatal("provider must not be called")
	}
}

func TestPlan_StubRoundTrip(t *testing.T) {
	reply := domain.PlannerReply{
		Message:           "Goa sounds perfect!",
		RecommendedAction: "MODIFY",
		Itineraries: []domain.ItineraryOption{{
			ID: "goa-budget", Title: "Budget Goa Getaway", Destination: "Goa", Duration: 3,
			Hotel:  domain.HotelPick{Name: "Budget Beach Stay", PricePerNight: 1800, TrustScore: 6.5},
			Budget: domain.BudgetBreakdown{Total: 17900, Flights: 5000, Hotels: 5400, Activities: 6000, Misc: 1500},
		}},
	}
	b, _ := json.Marshal(reply)
	m := &stubModel{content: string(b)}
	h := newTestServer(&stubProvider{}, m)

	rr := post(t, h, "/v1/copilot/plan",
		`{"messages":[{"role":"assistant","content":"Where to?"},{"role":"user","content":"3 days trip to Goa under 25k"}]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body)
	}

	var got domain.PlannerReply
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RecommendedAction != "MODIFY" {
		t.Fatalf("recommended_action = %q", got.RecommendedAction)
	}
	if len(got.Itineraries) != 1 || got.Itineraries[0].Destination != "Goa" {
		t.Fatalf("itinerary lost: %+v", got.Itineraries)
	}
	if !strings.Contains(m.lastSystem, "Budget Beach Stay") {
		t.Fatal("catalog missing from outbound model instruction")
	}
}

func TestPlan_RateLimitPassThrough(t *testing.T) {
	h := newTestServer(&stubProvider{}, &stubModel{err: domain.ErrRateLimited})

	rr := post(t, h, "/v1/copilot/plan", `{"messages":[{"role":"user","content":"hi"}]}`)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rr.Code)
	}
	var e struct{ Error, Kind string }
	_ = json.Unmarshal(rr.Body.Bytes(), &e)
	if e.Kind != "rate_limited" {
		t.Fatalf("kind = %q", e.Kind)
	}
}

func TestPlan_GenericFailureKeepsConversationalShape(t *testing.T) {
	h := newTestServer(&stubProvider{}, &stubModel{err: &domain.UpstreamStatusError{Service: "ai-gateway", Status: 500}})

	rr := post(t, h, "/v1/copilot/plan", `{"messages":[{"role":"user","content":"hi"}]}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var body struct {
		Error             string                   `json:"error"`
		Message           string                   `json:"message"`
		Itineraries       []domain.ItineraryOption `json:"itineraries"`
		RecommendedAction string                   `json:"recommended_action"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error == "" || body.Message == "" || body.RecommendedAction != "CLARIFY" {
		t.Fatalf("conversational shape lost: %+v", body)
	}
	if body.Itineraries == nil || len(body.Itineraries) != 0 {
		t.Fatalf("itineraries must be empty array: %+v", body.Itineraries)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestServer(&stubProvider{}, &stubModel{})

	for _, path := range []string{"/v1/cities/resolve", "/v1/stays/search", "/v1/copilot/plan"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://tripgo.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK && rr.Code != http.StatusNoContent {
			t.Fatalf("%s preflight status = %d", path, rr.Code)
		}
		if rr.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Fatalf("%s preflight missing CORS headers", path)
		}
	}
}

func TestMalformedBody(t *testing.T) {
	h := newTestServer(&stubProvider{}, &stubModel{})
	rr := post(t, h, "/v1/stays/search", `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}
