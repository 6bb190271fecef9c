package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/config"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/itinerary-diff-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/itineraries", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			httptransport.RateLimit(limiter, cfg.HTTP.RateLimitRPS),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/diff", httptransport.MakeHandlerFunc(
			endpts.ItineraryEndpoint.DiffItineraries,
			httptransport.DecodeRequest[dto.DiffRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/{source}", httptransport.MakeHandlerFunc(
			endpts.ItineraryEndpoint.ListItineraries,
			decodeSourceRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

func decodeSourceRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := &dto.SourceRequest{
		Source: chi.URLParam(r, "source"),
		Route:  r.URL.Query().Get("route"),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}
