package geocoder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a free-form address or zipcode to coordinates.
type Geocoder interface {
	Geocode(address string) (Location, error)
}

// HTTP talks to a positionstack-style forward-geocoding endpoint.
type HTTP struct {
	BaseURL string
	Key     string
	Client  *http.Client
}

func NewHTTP(baseURL, key string) *HTTP {
	return &HTTP{BaseURL: baseURL, Key: key, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (g *HTTP) Geocode(address string) (Location, error) {
	q := url.Values{}
	q.Set("access_key", g.Key)
	q.Set("query", address)
	q.Set("limit", "1")

	resp, err := g.Client.Get(g.BaseURL + "?" + q.Encode())
	if err != nil {
		return Location{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocode request: status %d", resp.StatusCode)
	}

	var payload struct {
		Data []Location `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("geocode decode: %w", err)
	}
	if len(payload.Data) == 0 {
		return Location{}, fmt.Errorf("geocode: no result for %q", address)
	}
	return payload.Data[0], nil
}

// Static serves fixed coordinates, used in tests and in dev when no geocoder
// key is configured.
type Static struct {
	Locations map[string]Location
}

func (g *Static) Geocode(address string) (Location, error) {
	if loc, ok := g.Locations[address]; ok {
		return loc, nil
	}
	return Location{}, fmt.Errorf("geocode: no result for %q", address)
}
