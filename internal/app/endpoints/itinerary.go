package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
)

type ItineraryService interface {
	ListItineraries(ctx context.Context, req dto.SourceRequest) (dto.ListItinerariesResponse, error)
	DiffItineraries(ctx context.Context, req dto.DiffRequest) (dto.DiffResponse, error)
}

type ItineraryEndpoint struct {
	ListItineraries endpoint.Endpoint
	DiffItineraries endpoint.Endpoint
}

func MakeItineraryEndpoint(service ItineraryService) ItineraryEndpoint {
	return ItineraryEndpoint{
		ListItineraries: makeListItinerariesEndpoint(service),
		DiffItineraries: makeDiffItinerariesEndpoint(service),
	}
}

func makeListItinerariesEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SourceRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		itineraries, err := service.ListItineraries(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return itineraries, nil
	}
}

func makeDiffItinerariesEndpoint(service ItineraryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.DiffRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		diff, err := service.DiffItineraries(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("itinerary service: %w", err)
		}

		return diff, nil
	}
}
