package prayertime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/makkamasjid/masjid-management-backend/config"
)

// Client fetches daily timings from the Aladhan API. One synchronous GET with
// a fixed 10-second timeout; no retry, no backoff.
type Client struct {
	baseURL   string
	latitude  string
	longitude string
	method    string
	location  string
	http      *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.PrayerAPIBaseURL,
		latitude:  cfg.PrayerLatitude,
		longitude: cfg.PrayerLongitude,
		method:    cfg.PrayerMethod,
		location:  cfg.PrayerLocation,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// timingsResponse mirrors the subset of the Aladhan payload we consume.
type timingsResponse struct {
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
		Date struct {
			Hijri struct {
				Date  string `json:"date"`
				Month struct {
					En string `json:"en"`
				} `json:"month"`
				Year string `json:"year"`
			} `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}

// FetchTimings calls the provider and maps its payload into a snapshot for
// the given date key.
func (c *Client) FetchTimings(ctx context.Context, dateKey string) (*PrayerTimes, error) {
	endpoint := fmt.Sprintf("%s/v1/timings?latitude=%s&longitude=%s&method=%s",
		c.baseURL,
		url.QueryEscape(c.latitude),
		url.QueryEscape(c.longitude),
		url.QueryEscape(c.method),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prayer time request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayer time provider returned status %d", resp.StatusCode)
	}

	var payload timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("prayer time response decode failed: %w", err)
	}

	hijri := payload.Data.Date.Hijri
	return &PrayerTimes{
		Date:      dateKey,
		HijriDate: fmt.Sprintf("%s %s %s", hijri.Date, hijri.Month.En, hijri.Year),
		Fajr:      payload.Data.Timings.Fajr,
		Dhuhr:     payload.Data.Timings.Dhuhr,
		Asr:       payload.Data.Timings.Asr,
		Maghrib:   payload.Data.Timings.Maghrib,
		Isha:      payload.Data.Timings.Isha,
		Location:  c.location,
	}, nil
}

// Location returns the configured location label.
func (c *Client) Location() string {
	return c.location
}
