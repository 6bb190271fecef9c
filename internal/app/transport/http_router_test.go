//go:build unit

package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/config"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/endpoints"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/service"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/itinerary/viacom"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAll struct{}

func (allowAll) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{Allowed: 1}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	require.NoError(t, dto.InitValidator())

	raw, err := os.ReadFile(filepath.Join("..", "..", "pkg", "itinerary", "viacom", "testdata", "round_trip.xml"))
	require.NoError(t, err)

	dir := t.TempDir()
	baselinePath := filepath.Join(dir, "baseline.xml")
	candidatePath := filepath.Join(dir, "candidate.xml")
	require.NoError(t, os.WriteFile(baselinePath, raw, 0o600))
	require.NoError(t, os.WriteFile(candidatePath,
		[]byte(strings.ReplaceAll(string(raw), "<FlightNumber>332</FlightNumber>", "<FlightNumber>334</FlightNumber>")), 0o600))

	factory := source.NewSourceFactory()
	factory.AddSource("baseline", source.NewFileSource("baseline", baselinePath))
	factory.AddSource("candidate", source.NewFileSource("candidate", candidatePath))
	factory.AddSource("missing", source.NewFileSource("missing", filepath.Join(dir, "missing.xml")))

	endpts := endpoints.Endpoints{
		ItineraryEndpoint: endpoints.MakeItineraryEndpoint(service.NewItineraryService(factory, viacom.ParseItineraries)),
	}

	cfg := &config.Config{HTTP: config.HTTP{RateLimitRPS: 10}}

	return MakeHTTPRouter(cfg, endpts, allowAll{})
}

func TestMakeHTTPRouter_Closure(t *testing.T) {
	router := newTestRouter(t)

	routeRequest := func(method, path, body string, wantStatus int, check func(t *testing.T, body []byte)) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			if check != nil {
				check(t, rec.Body.Bytes())
			}
		}
	}

	t.Run("health", routeRequest(http.MethodGet, "/health", "", http.StatusNoContent, nil))

	t.Run("list", routeRequest(http.MethodGet, "/api/v1/itineraries/baseline", "", http.StatusOK,
		func(t *testing.T, body []byte) {
			var got dto.ListItinerariesResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, 1, got.Metadata.TotalResults)
			assert.Equal(t, "DXB-DEL-BKK", got.Itineraries[0].OnwardRoute)
		}))

	t.Run("list_unknown_route", routeRequest(http.MethodGet, "/api/v1/itineraries/baseline?route=DXB-BOM", "",
		http.StatusNotFound, nil))

	t.Run("list_unknown_source", routeRequest(http.MethodGet, "/api/v1/itineraries/amadeus", "", http.StatusNotFound, nil))

	t.Run("list_missing_file", routeRequest(http.MethodGet, "/api/v1/itineraries/missing", "", http.StatusServiceUnavailable, nil))

	t.Run("diff", routeRequest(http.MethodPost, "/api/v1/itineraries/diff",
		`{"baseline_source":"baseline","candidate_source":"candidate"}`, http.StatusOK,
		func(t *testing.T, body []byte) {
			var got dto.DiffResponse
			require.NoError(t, json.Unmarshal(body, &got))
			require.Len(t, got.NewFlights["DXB-DEL-BKK"], 1)
			assert.Equal(t, 334, got.NewFlights["DXB-DEL-BKK"][0].FlightNumber)
			assert.Empty(t, got.NewItineraries)
		}))

	t.Run("diff_invalid_request", routeRequest(http.MethodPost, "/api/v1/itineraries/diff",
		`{"baseline_source":"baseline"}`, http.StatusBadRequest, nil))
}
