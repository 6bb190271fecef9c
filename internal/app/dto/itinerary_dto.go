package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/itinerary"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/utils"
)

const TimestampLayout = "2006-01-02T15:04:05"

type Flight struct {
	Airline      Airline `json:"airline"`
	FlightNumber int     `json:"flight_number"`
	Departure    Point   `json:"departure"`
	Arrival      Point   `json:"arrival"`
	CabinClass   string  `json:"cabin_class"`
	Stops        int     `json:"stops"`
	TicketType   string  `json:"ticket_type"`
	FareBasis    *string `json:"fare_basis"`
}

type Airline struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type Point struct {
	Airport  string `json:"airport"`
	Datetime string `json:"datetime"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type Price struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	FareType   string  `json:"fare_type"`
	ChargeType string  `json:"charge_type"`
	Formatted  string  `json:"formatted"`
}

type Itinerary struct {
	Route         string    `json:"route"`
	OnwardRoute   string    `json:"onward_route"`
	ReturnRoute   string    `json:"return_route"`
	Duration      *Duration `json:"duration"`
	OnwardFlights []Flight  `json:"onward_flights"`
	ReturnFlights []Flight  `json:"return_flights"`
	Prices        []Price   `json:"prices"`
	Summary       string    `json:"summary"`
}

// SourceRequest selects one configured source, optionally narrowed to one route key
// such as "DXB-DEL-BKK - BKK-DEL-DXB".
type SourceRequest struct {
	Source string `json:"source" validate:"required"`
	Route  string `json:"route"`
}

func (s *SourceRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SourceRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// DiffRequest compares the candidate source against the baseline source.
type DiffRequest struct {
	BaselineSource  string `json:"baseline_source" validate:"required"`
	CandidateSource string `json:"candidate_source" validate:"required,nefield=BaselineSource"`
}

func (d *DiffRequest) Bind(r *http.Request) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (d *DiffRequest) Validate() error {
	if err := ValidateSingleError(d); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type ListMetadata struct {
	TotalResults int            `json:"total_results"`
	RouteCounts  map[string]int `json:"route_counts"`
}

// ListItinerariesResponse is the response struct for the list itineraries endpoint
type ListItinerariesResponse struct {
	Source      string       `json:"source"`
	Metadata    ListMetadata `json:"metadata"`
	Itineraries []Itinerary  `json:"itineraries"`
}

type DiffMetadata struct {
	BaselineItineraries  int `json:"baseline_itineraries"`
	CandidateItineraries int `json:"candidate_itineraries"`
	NewFlights           int `json:"new_flights"`
	NewRoutes            int `json:"new_routes"`
	DiffTimeMs           int `json:"diff_time_ms"`
}

// DiffResponse is the response struct for the diff endpoint
type DiffResponse struct {
	BaselineSource  string              `json:"baseline_source"`
	CandidateSource string              `json:"candidate_source"`
	Metadata        DiffMetadata        `json:"metadata"`
	NewFlights      map[string][]Flight `json:"new_flights"`
	NewItineraries  []Itinerary         `json:"new_itineraries"`
}

func FlightFromModel(flight itinerary.Flight) Flight {
	var fareBasis *string
	if flight.FareBasis != "" {
		fareBasis = &flight.FareBasis
	}

	return Flight{
		Airline: Airline{
			Name: flight.CarrierName,
			Code: flight.CarrierCode,
		},
		FlightNumber: flight.FlightNumber,
		Departure: Point{
			Airport:  flight.Source,
			Datetime: flight.DepartureTime.Format(TimestampLayout),
		},
		Arrival: Point{
			Airport:  flight.Destination,
			Datetime: flight.ArrivalTime.Format(TimestampLayout),
		},
		CabinClass: flight.Class,
		Stops:      flight.NumberOfStops,
		TicketType: flight.TicketType,
		FareBasis:  fareBasis,
	}
}

func FlightsFromModel(flights []itinerary.Flight) []Flight {
	results := make([]Flight, len(flights))
	for i, flight := range flights {
		results[i] = FlightFromModel(flight)
	}

	return results
}

func ItineraryFromModel(it itinerary.Itinerary) Itinerary {
	prices := make([]Price, len(it.Prices))
	for i, price := range it.Prices {
		prices[i] = Price{
			Amount:     price.Amount,
			Currency:   price.Currency,
			FareType:   price.FareType,
			ChargeType: price.ChargeType,
			Formatted:  fmt.Sprintf("%s %s", utils.FormatAmount(price.Amount), price.Currency),
		}
	}

	var duration *Duration
	if start, end, err := it.OnwardDatetimes(); err == nil {
		minutes := int(end.Sub(start) / time.Minute)
		duration = &Duration{
			TotalMinutes: minutes,
			Formatted:    utils.ConvertMinutesToDuration(int64(minutes)),
		}
	}

	return Itinerary{
		Route:         it.Route(),
		OnwardRoute:   it.OnwardRoute(),
		ReturnRoute:   it.ReturnRoute(),
		Duration:      duration,
		OnwardFlights: FlightsFromModel(it.OnwardFlights),
		ReturnFlights: FlightsFromModel(it.ReturnFlights),
		Prices:        prices,
		Summary:       it.String(),
	}
}

func ItinerariesFromModel(itineraries []itinerary.Itinerary) []Itinerary {
	results := make([]Itinerary, len(itineraries))
	for i, it := range itineraries {
		results[i] = ItineraryFromModel(it)
	}

	return results
}

func RouteFlightsFromModel(routes itinerary.RouteFlights) map[string][]Flight {
	results := make(map[string][]Flight, len(routes))
	for route, flights := range routes {
		results[route] = FlightsFromModel(flights)
	}

	return results
}
