package makcorps

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"tripgo_gateway/internal/domain"
)

// The /city endpoint returns loosely-shaped rows with up to four
// vendor/price column pairs, plus a trailing pagination object on some
// plans. Decoding is lenient per column and strict about the outcome:
// a row with no parseable price is dropped.

type rawRow struct {
	Name      string     `json:"name"`
	Thumbnail *string    `json:"thumbnail"`
	MapURL    *string    `json:"mapurl"`
	Reviews   *rawReview `json:"reviews"`

	Vendor1 *string   `json:"vendor1"`
	Vendor2 *string   `json:"vendor2"`
	Vendor3 *string   `json:"vendor3"`
	Vendor4 *string   `json:"vendor4"`
	Price1  flexPrice `json:"price1"`
	Price2  flexPrice `json:"price2"`
	Price3  flexPrice `json:"price3"`
	Price4  flexPrice `json:"price4"`
}

type rawReview struct {
	Rating *float64 `json:"rating"`
	Count  *int     `json:"count"`
}

// flexPrice tolerates the provider's mixed encodings: 1234, "1234",
// "$1,234", or null.
type flexPrice struct {
	val float64
	ok  bool
}

func (p *flexPrice) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimLeft(raw, "$€£₹ ")
		raw = strings.ReplaceAll(raw, ",", "")
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil // unparseable column, not a row-fatal error
		}
		p.val, p.ok = f, true
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	p.val, p.ok = f, true
	return nil
}

func mapRows(body []byte, currency string) ([]domain.HotelListing, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("makcorps: decode city response: %w", err)
	}

	out := make([]domain.HotelListing, 0, len(items))
	for _, item := range items {
		var r rawRow
		if err := json.Unmarshal(item, &r); err != nil || r.Name == "" {
			// pagination metadata or malformed row
			continue
		}
		quotes := collectQuotes(r, currency)
		if len(quotes) == 0 {
			log.Debug().Str("hotel", r.Name).Msg("dropping listing without vendor quotes")
			continue
		}
		l := domain.HotelListing{
			Name:    r.Name,
			Image:   r.Thumbnail,
			MapLink: r.MapURL,
			Quotes:  quotes,
		}
		if r.Reviews != nil {
			l.ReviewScore = r.Reviews.Rating
			l.ReviewCount = r.Reviews.Count
		}
		out = append(out, l)
	}
	return out, nil
}

func collectQuotes(r rawRow, currency string) []domain.VendorQuote {
	pairs := []struct {
		vendor *string
		price  flexPrice
	}{
		{r.Vendor1, r.Price1},
		{r.Vendor2, r.Price2},
		{r.Vendor3, r.Price3},
		{r.Vendor4, r.Price4},
	}
	var quotes []domain.VendorQuote
	for _, p := range pairs {
		if p.vendor == nil || *p.vendor == "" || !p.price.ok {
			continue
		}
		quotes = append(quotes, domain.VendorQuote{
			Vendor:   *p.vendor,
			Nightly:  p.price.val,
			Currency: currency,
		})
	}
	return quotes
}
