package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Göteborg", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"lat":"57.7089","lon":"11.9746"}]`))
	}))
	defer server.Close()

	service := NewService(server.URL)
	lat, lng, ok := service.Lookup(context.Background(), "Göteborg")

	assert.True(t, ok)
	assert.InDelta(t, 57.7089, lat, 0.0001)
	assert.InDelta(t, 11.9746, lng, 0.0001)
}

func TestLookupNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	service := NewService(server.URL)
	_, _, ok := service.Lookup(context.Background(), "Nowhereville")
	assert.False(t, ok)
}

func TestLookupOrDefaultFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewService(server.URL)
	lat, lng := service.LookupOrDefault(context.Background(), "Stockholm")

	assert.Equal(t, DefaultLat, lat)
	assert.Equal(t, DefaultLng, lng)
}
