package planner

// The grounding catalog: the only destinations, hotels, and prices the
// copilot is allowed to plan with. It is embedded into the model
// instruction on every call so totals are computed from real numbers
// instead of hallucinated ones.

type Destination struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	State     string   `json:"state"`
	BasePrice float64  `json:"basePrice"`
	Tags      []string `json:"tags"`
}

type CatalogHotel struct {
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
	TrustScore    float64 `json:"trustScore"`
	Category      string  `json:"category"` // budget|standard|premium|luxury
}

type Catalog struct {
	Version      string                    `json:"version"`
	Destinations []Destination             `json:"destinations"`
	Hotels       map[string][]CatalogHotel `json:"hotels"` // keyed by destination id
}

// Budget heuristics given to the model alongside the catalog.
const (
	FlightCostMin     = 4000 // per person round trip, domestic
	FlightCostMax     = 6000
	ActivityPerDayMin = 1000
	ActivityPerDayMax = 5000
	MiscBufferPercent = 10
)

// DefaultCatalog returns the fixed v1 catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Version: "v1",
		Destinations: []Destination{
			{ID: "goa", Name: "Goa", State: "Goa", BasePrice: 8000, Tags: []string{"Beach", "Nightlife"}},
			{ID: "manali", Name: "Manali", State: "Himachal Pradesh", BasePrice: 12000, Tags: []string{"Mountains", "Adventure"}},
			{ID: "jaipur", Name: "Jaipur", State: "Rajasthan", BasePrice: 7000, Tags: []string{"Heritage", "Culture"}},
			{ID: "kerala", Name: "Kerala Backwaters", State: "Kerala", BasePrice: 15000, Tags: []string{"Backwaters", "Nature"}},
		},
		Hotels: map[string][]CatalogHotel{
			"goa": {
				{Name: "Taj Exotica Resort", PricePerNight: 12000, TrustScore: 9.2, Category: "luxury"},
				{Name: "Goa Beach Resort", PricePerNight: 4500, TrustScore: 7.5, Category: "standard"},
				{Name: "Budget Beach Stay", PricePerNight: 1800, TrustScore: 6.5, Category: "budget"},
			},
			"manali": {
				{Name: "The Himalayan Resort", PricePerNight: 8000, TrustScore: 8.8, Category: "premium"},
				{Name: "Mountain View Inn", PricePerNight: 3500, TrustScore: 7.2, Category: "standard"},
			},
			"jaipur": {
				{Name: "Rambagh Palace", PricePerNight: 25000, TrustScore: 9.5, Category: "luxury"},
				{Name: "Pink City Hotel", PricePerNight: 3000, TrustScore: 7.0, Category: "budget"},
			},
			"kerala": {
				{Name: "Kumarakom Lake Resort", PricePerNight: 15000, TrustScore: 9.0, Category: "luxury"},
			},
		},
	}
}

// HasDestination reports whether name matches a catalog destination
// (by id or display name).
func (c Catalog) HasDestination(name string) bool {
	return c.findDestID(name) != ""
}

// HasHotel reports whether hotel is listed under the given destination.
func (c Catalog) HasHotel(destination, hotel string) bool {
	id := c.findDestID(destination)
	if id == "" {
		return false
	}
	for _, h := range c.Hotels[id] {
		if h.Name == hotel {
			return true
		}
	}
	return false
}

func (c Catalog) findDestID(name string) string {
	for _, d := range c.Destinations {
		if d.ID == name || d.Name == name {
			return d.ID
		}
	}
	return ""
}
