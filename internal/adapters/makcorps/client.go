package makcorps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tripgo_gateway/internal/adapters/observability"
	"tripgo_gateway/internal/domain"
)

// Client talks to the Makcorps hotel-price aggregator. One outbound call
// per gateway request, no retries: a failed upstream call becomes a failed
// response. The limiter only smooths bursts against the provider quota.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) ResolveCity(ctx context.Context, name string) (domain.RawPayload, error) {
	v := url.Values{}
	v.Set("name", name)
	body, err := c.get(ctx, "/mapping", v)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("makcorps: mapping response is not valid JSON")
	}
	return domain.RawPayload(body), nil
}

func (c *Client) SearchStays(ctx context.Context, q domain.StaySearch) ([]domain.HotelListing, error) {
	v := url.Values{}
	v.Set("cityid", q.CityID)
	v.Set("checkin", q.CheckIn)
	v.Set("checkout", q.CheckOut)
	v.Set("adults", strconv.Itoa(q.Adults))
	v.Set("rooms", strconv.Itoa(q.Rooms))
	v.Set("cur", q.Currency)
	v.Set("pagination", strconv.Itoa(q.Pagination))
	v.Set("tax", "true")

	body, err := c.get(ctx, "/city", v)
	if err != nil {
		return nil, err
	}
	return mapRows(body, q.Currency)
}

func (c *Client) get(ctx context.Context, path string, v url.Values) ([]byte, error) {
	if c.key == "" {
		return nil, fmt.Errorf("makcorps: %w: MAKCORPS_API_KEY missing", domain.ErrNotConfigured)
	}
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	v.Set("api_key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+v.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tripgo-gateway/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("makcorps", path, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("makcorps", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		// drain a small error body for the log, then surface the status
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &domain.UpstreamStatusError{Service: "makcorps", Status: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
