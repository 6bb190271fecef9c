package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/itinerary"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/source"
)

type SourceProvider interface {
	GetSource(name string) (source.Source, error)
}

// ItineraryParser turns a raw search response into itineraries.
type ItineraryParser func(raw string) ([]itinerary.Itinerary, error)

type ItineraryService struct {
	Sources SourceProvider
	Parse   ItineraryParser
}

func NewItineraryService(sources SourceProvider, parse ItineraryParser) *ItineraryService {
	return &ItineraryService{
		Sources: sources,
		Parse:   parse,
	}
}

// ListItineraries godoc
// @Summary      List itineraries
// @Tags         Itineraries
// @Description  Parse one source and return its itineraries
// @Param        source  path      string  true   "Source name"
// @Param        route   query     string  false  "Route key"
// @Success      200     {object}  dto.ListItinerariesResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      422     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/v1/itineraries/{source} [get]
func (s *ItineraryService) ListItineraries(
	ctx context.Context,
	req dto.SourceRequest,
) (dto.ListItinerariesResponse, error) {
	itineraries, err := s.loadItineraries(ctx, req.Source)
	if err != nil {
		return dto.ListItinerariesResponse{}, err
	}

	if req.Route != "" {
		found, ok := itinerary.FindByRoute(itineraries, req.Route)
		if !ok {
			return dto.ListItinerariesResponse{}, fmt.Errorf("route %q: %w", req.Route, ErrNoItinerariesFound)
		}

		itineraries = []itinerary.Itinerary{found}
	}

	if len(itineraries) == 0 {
		return dto.ListItinerariesResponse{}, ErrNoItinerariesFound
	}

	return dto.ListItinerariesResponse{
		Source: req.Source,
		Metadata: dto.ListMetadata{
			TotalResults: len(itineraries),
			RouteCounts:  itinerary.CountRoutes(itineraries),
		},
		Itineraries: dto.ItinerariesFromModel(itineraries),
	}, nil
}

// DiffItineraries reports the flights and routes of the candidate source that the baseline
// source does not have. New flights are only reported for routes both sources know; routes
// missing from the baseline are reported as new itineraries.
// @Summary      Diff itineraries
// @Tags         Itineraries
// @Description  Compare candidate source against baseline source
// @Param        request  body      dto.DiffRequest  true  "Diff Request"
// @Success      200      {object}  dto.DiffResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/itineraries/diff [post]
func (s *ItineraryService) DiffItineraries(
	ctx context.Context,
	req dto.DiffRequest,
) (dto.DiffResponse, error) {
	startTime := time.Now()

	baseline, err := s.loadItineraries(ctx, req.BaselineSource)
	if err != nil {
		return dto.DiffResponse{}, fmt.Errorf("baseline: %w", err)
	}

	candidate, err := s.loadItineraries(ctx, req.CandidateSource)
	if err != nil {
		return dto.DiffResponse{}, fmt.Errorf("candidate: %w", err)
	}

	newFlights := itinerary.DiffFlights(
		itinerary.GroupFlightsByRoute(baseline),
		itinerary.GroupFlightsByRoute(candidate),
	)
	newItineraries := itinerary.DiffRoutes(baseline, candidate)

	slog.InfoContext(ctx, "itineraries compared",
		slog.String("baseline", req.BaselineSource),
		slog.String("candidate", req.CandidateSource),
		slog.Int("new_flights", newFlights.Count()),
		slog.Any("routes_with_new_flights", newFlights.Routes()),
		slog.Int("new_routes", len(newItineraries)))

	return dto.DiffResponse{
		BaselineSource:  req.BaselineSource,
		CandidateSource: req.CandidateSource,
		Metadata: dto.DiffMetadata{
			BaselineItineraries:  len(baseline),
			CandidateItineraries: len(candidate),
			NewFlights:           newFlights.Count(),
			NewRoutes:            len(newItineraries),
			DiffTimeMs:           int(time.Since(startTime).Milliseconds()),
		},
		NewFlights:     dto.RouteFlightsFromModel(newFlights),
		NewItineraries: dto.ItinerariesFromModel(newItineraries),
	}, nil
}

func (s *ItineraryService) loadItineraries(ctx context.Context, name string) ([]itinerary.Itinerary, error) {
	src, err := s.Sources.GetSource(name)
	if err != nil {
		return nil, err
	}

	raw, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source: %w", err)
	}

	itineraries, err := s.Parse(raw)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse source",
			slog.String("source", name),
			slog.String("error", err.Error()))

		return nil, fmt.Errorf("failed to parse source %s: %w", name, err)
	}

	return itineraries, nil
}
