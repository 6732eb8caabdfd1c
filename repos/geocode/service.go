package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Fallback coordinate when a city cannot be resolved: central Stockholm.
const (
	DefaultLat = 59.3293
	DefaultLng = 18.0686
)

// Service resolves free-text city names against a Nominatim-style search
// endpoint. Lookup failures never block event creation; callers fall back
// to the default coordinate.
type Service struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewService(baseURL string) *Service {
	return &Service{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup returns the best-match coordinate for a city name. The second
// return value is false when there is no usable result.
func (s *Service) Lookup(ctx context.Context, city string) (float64, float64, bool) {
	apiURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", s.BaseURL, url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		log.Printf("Failed to create geocode request: %v\n", err)
		return 0, 0, false
	}
	req.Header.Set("User-Agent", "quester-backend")

	response, err := s.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Geocode request failed: %v\n", err)
		return 0, 0, false
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		log.Printf("Geocode request returned status %d\n", response.StatusCode)
		return 0, 0, false
	}

	var results []searchResult
	if err := json.NewDecoder(response.Body).Decode(&results); err != nil {
		log.Printf("Failed to parse geocode response: %v\n", err)
		return 0, 0, false
	}
	if len(results) == 0 {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lng, errLng := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLng != nil {
		log.Printf("Failed to parse geocode coordinates for %s\n", city)
		return 0, 0, false
	}
	return lat, lng, true
}

// LookupOrDefault is Lookup with the hardcoded fallback applied.
func (s *Service) LookupOrDefault(ctx context.Context, city string) (float64, float64) {
	if lat, lng, ok := s.Lookup(ctx, city); ok {
		return lat, lng
	}
	return DefaultLat, DefaultLng
}
