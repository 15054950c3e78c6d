package domain

import "encoding/json"

// StaySearch is a validated, fully-defaulted hotel price query.
// All fields are request-scoped; nothing here is ever persisted.
type StaySearch struct {
	CityID     string
	CheckIn    string // YYYY-MM-DD
	CheckOut   string // YYYY-MM-DD
	Adults     int
	Rooms      int
	Currency   string
	Pagination int
}

// VendorQuote is one OTA's nightly price for a listing.
type VendorQuote struct {
	Vendor   string  `json:"vendor"`
	Nightly  float64 `json:"nightly"`
	Currency string  `json:"currency"`
}

// HotelListing is the typed view of one upstream hotel-quote row.
// A listing without at least one vendor quote is useless to the
// comparison UI and is dropped during mapping.
type HotelListing struct {
	Name        string        `json:"name"`
	Image       *string       `json:"image,omitempty"`
	ReviewScore *float64      `json:"reviewScore,omitempty"`
	ReviewCount *int          `json:"reviewCount,omitempty"`
	Quotes      []VendorQuote `json:"vendorQuotes"`
	MapLink     *string       `json:"mapLink,omitempty"`
}

// ChatTurn is one message of the caller-supplied transcript. The caller
// resends the whole transcript every turn; there is no server-side session.
type ChatTurn struct {
	Role    string `json:"role"` // user|assistant
	Content string `json:"content"`
}

type BudgetBreakdown struct {
	Total      float64 `json:"total"`
	Flights    float64 `json:"flights"`
	Hotels     float64 `json:"hotels"`
	Activities float64 `json:"activities"`
	Misc       float64 `json:"misc"`
}

type HotelPick struct {
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
	TrustScore    float64 `json:"trustScore"`
}

type ItineraryOption struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Duration    int             `json:"duration"` // nights
	Budget      BudgetBreakdown `json:"budget"`
	Hotel       HotelPick       `json:"hotel"`
	Highlights  []string        `json:"highlights"`
	Activities  []string        `json:"activities"`
}

// PlannerReply is the conversational envelope returned to the UI on every
// copilot call, including degraded and failed ones, so the front end never
// has to special-case "the assistant errored" vs "it had nothing to say".
type PlannerReply struct {
	ClarificationRequired  bool              `json:"clarification_required"`
	ClarificationQuestions []string          `json:"clarification_questions,omitempty"`
	Message                string            `json:"message"`
	Itineraries            []ItineraryOption `json:"itineraries"`
	RecommendedAction      string            `json:"recommended_action"` // BOOK|MODIFY|CLARIFY
}

// RawPayload is an upstream JSON body forwarded without reshaping
// (the city-mapping response is an intentional pass-through).
type RawPayload = json.RawMessage
