package carriers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipsched/internal/domain"
)

func TestMaersk_DiscoverNeedsKeyAndMappedCities(t *testing.T) {
	ctx := context.Background()

	links, err := NewMaersk("", "", 0).Discover(ctx, query("Tokyo", "Los Angeles"))
	require.NoError(t, err)
	assert.Empty(t, links)

	links, err = NewMaersk("key", "", 0).Discover(ctx, query("Tokyo", "Rotterdam"))
	require.NoError(t, err)
	assert.Empty(t, links)

	links, err = NewMaersk("key", "https://api.example.com/", 0).Discover(ctx, query("tokyo", "Long Beach"))
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Contains(t, links[0], "https://api.example.com/products/ocean-products?")
	assert.Contains(t, links[0], "collectionOriginCountryCode=JP")
	assert.Contains(t, links[0], "deliveryDestinationCityName=Long+Beach")
	assert.NotContains(t, links[0], "key")
}

func TestMaersk_ResolvePicksClosestDeparture(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/ocean-products", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Consumer-Key"))
		fmt.Fprint(w, `{"schedules":[
			{"vesselName":"MAERSK FAR","departureDate":"2025-05-20T08:00:00","arrivalDate":"2025-06-05","serviceName":"TP1"},
			{"vesselName":"MAERSK NEAR","departureDate":"2025-04-29","arrivalDate":"2025-05-12T00:00:00","serviceName":"TP6"},
			{"vesselName":"","departureDate":"2025-05-01"}
		]}`)
	}))
	defer srv.Close()

	m := NewMaersk("secret", srv.URL, time.Second)
	links, err := m.Discover(context.Background(), query("Tokyo", "Los Angeles"))
	require.NoError(t, err)

	res, err := m.Resolve(context.Background(), links[0], query("Tokyo", "Los Angeles"))
	require.NoError(t, err)
	assert.Equal(t, "Maersk", res.Company)
	assert.Equal(t, "MAERSK NEAR", res.Vessel)
	assert.Equal(t, "04/29", res.ETD)
	assert.Equal(t, "05/12", res.ETA)
	assert.Equal(t, "TP6", res.Service)
}

func TestMaersk_ResolveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("collectionOriginCityName") == "Shanghai" {
			fmt.Fprint(w, `{"schedules":[]}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewMaersk("secret", srv.URL, time.Second)

	links, _ := m.Discover(context.Background(), query("Tokyo", "Los Angeles"))
	_, err := m.Resolve(context.Background(), links[0], query("Tokyo", "Los Angeles"))
	assert.True(t, domain.IsFetch(err))

	links, _ = m.Discover(context.Background(), query("Shanghai", "Los Angeles"))
	_, err = m.Resolve(context.Background(), links[0], query("Shanghai", "Los Angeles"))
	var ee domain.ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, domain.ExtractionNoCandidates, ee.Kind)
}
