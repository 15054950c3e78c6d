package app

import (
	"context"
	"fmt"
	"time"

	"tripgo_gateway/internal/domain"
)

// SearchRequest is the inbound stay-search body before defaulting.
type SearchRequest struct {
	CityID     string `json:"cityId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Adults     int    `json:"adults"`
	Rooms      int    `json:"rooms"`
	Currency   string `json:"currency"`
	Pagination int    `json:"pagination"`
}

const dateLayout = "2006-01-02"

// SearchService validates and defaults a stay search, then forwards it to
// the provider. Ranking and budget filtering stay in the page layer; this
// service only guarantees "same inputs, same outbound query".
type SearchService struct {
	provider domain.PriceProvider
}

func NewSearchService(p domain.PriceProvider) *SearchService {
	return &SearchService{provider: p}
}

func (s *SearchService) Search(ctx context.Context, req SearchRequest) ([]domain.HotelListing, error) {
	q, err := validateSearch(req)
	if err != nil {
		return nil, err
	}
	return s.provider.SearchStays(ctx, q)
}

func validateSearch(req SearchRequest) (domain.StaySearch, error) {
	var zero domain.StaySearch
	if req.CityID == "" || req.CheckIn == "" || req.CheckOut == "" {
		return zero, fmt.Errorf("%w: cityId, checkIn and checkOut are required", domain.ErrInvalidInput)
	}
	in, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return zero, fmt.Errorf("%w: checkIn must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	out, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return zero, fmt.Errorf("%w: checkOut must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if !in.Before(out) {
		return zero, fmt.Errorf("%w: checkIn must be before checkOut", domain.ErrInvalidInput)
	}

	q := domain.StaySearch{
		CityID:     req.CityID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Adults:     req.Adults,
		Rooms:      req.Rooms,
		Currency:   req.Currency,
		Pagination: req.Pagination,
	}
	if q.Adults <= 0 {
		q.Adults = 2
	}
	if q.Rooms <= 0 {
		q.Rooms = 1
	}
	if q.Currency == "" {
		q.Currency = "INR"
	}
	if q.Pagination < 0 {
		q.Pagination = 0
	}
	return q, nil
}
