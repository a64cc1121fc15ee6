package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the Google Maps Geocoding API endpoint.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

var (
	// ErrNoAPIKey is returned when the client was built without an API key.
	ErrNoAPIKey = errors.New("geocode: api key not configured")
	// ErrNotFound is returned when the address resolves to nothing.
	ErrNotFound = errors.New("geocode: address not found")
)

// Location is a geocoded map center.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Client resolves street addresses to coordinates. It lives entirely outside
// the measurement engine; callers geocode first, then hand coordinates in.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient builds a geocoding client. A nil httpClient falls back to
// http.DefaultClient; an empty baseURL falls back to the Google endpoint.
func NewClient(httpClient *http.Client, apiKey, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{httpClient: httpClient, apiKey: apiKey, baseURL: baseURL}
}

// Enabled reports whether the client has an API key to work with.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address to its map center.
func (c *Client) Geocode(ctx context.Context, address string) (Location, error) {
	if !c.Enabled() {
		return Location{}, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("request geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Location{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("decode payload: %w", err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return Location{}, ErrNotFound
	}
	return payload.Results[0].Geometry.Location, nil
}
