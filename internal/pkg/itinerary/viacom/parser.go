// Package viacom parses via.com air fare search responses into itineraries.
package viacom

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/itinerary"
)

const (
	TagPricedItineraries = "PricedItineraries"
	TagOnwardItinerary   = "OnwardPricedItinerary"
	TagReturnItinerary   = "ReturnPricedItinerary"

	tagFlights = "Flights"
	tagPricing = "Pricing"

	// TimestampLayout is the layout of DepartureTimeStamp and ArrivalTimeStamp, e.g. 2015-10-22T0005.
	TimestampLayout = "2006-01-02T1504"
)

// ParseItineraries parses a search response into one itinerary per child of PricedItineraries,
// in document order.
func ParseItineraries(raw string) ([]itinerary.Itinerary, error) {
	root, err := parseTree(strings.NewReader(raw))
	if err != nil {
		return nil, newParseError("document", "xml", err)
	}

	container := root.find(TagPricedItineraries)
	if container == nil {
		return nil, newParseError("document", TagPricedItineraries, errMissing)
	}

	elements := container.elements()
	result := make([]itinerary.Itinerary, 0, len(elements))
	for idx, data := range elements {
		onwardFlights, err := parseFlights(data, TagOnwardItinerary)
		if err != nil {
			return nil, fmt.Errorf("itinerary %d: %w", idx, err)
		}

		returnFlights, err := parseFlights(data, TagReturnItinerary)
		if err != nil {
			return nil, fmt.Errorf("itinerary %d: %w", idx, err)
		}

		prices, err := parsePrices(data)
		if err != nil {
			return nil, fmt.Errorf("itinerary %d: %w", idx, err)
		}

		result = append(result, itinerary.Itinerary{
			OnwardFlights: onwardFlights,
			ReturnFlights: returnFlights,
			Prices:        prices,
		})
	}

	slog.Debug("parsed itinerary document", slog.Int("itineraries", len(result)))

	return result, nil
}

// parseFlights returns the flights of every leg element named flightsType below data.
func parseFlights(data *node, flightsType string) ([]itinerary.Flight, error) {
	result := []itinerary.Flight{}
	for _, leg := range data.findAll(flightsType) {
		flights := leg.child(tagFlights)
		if flights == nil {
			return nil, newParseError(flightsType, tagFlights, errMissing)
		}

		for _, element := range flights.elements() {
			flight, err := parseFlight(element)
			if err != nil {
				return nil, err
			}

			result = append(result, flight)
		}
	}

	return result, nil
}

func parseFlight(element *node) (itinerary.Flight, error) {
	var (
		flight itinerary.Flight
		err    error
	)

	carrier := element.child("Carrier")
	if carrier == nil {
		return itinerary.Flight{}, newParseError(element.name, "Carrier", errMissing)
	}

	carrierCode, ok := carrier.attr("id")
	if !ok {
		return itinerary.Flight{}, newParseError(element.name, "Carrier.id", errMissing)
	}

	flight.CarrierCode = carrierCode
	flight.CarrierName = carrier.textContent()

	if flight.FlightNumber, err = intField(element, "FlightNumber"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.Source, err = textField(element, "Source"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.Destination, err = textField(element, "Destination"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.DepartureTime, err = timeField(element, "DepartureTimeStamp"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.ArrivalTime, err = timeField(element, "ArrivalTimeStamp"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.Class, err = textField(element, "Class"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.NumberOfStops, err = intField(element, "NumberOfStops"); err != nil {
		return itinerary.Flight{}, err
	}

	if flight.NumberOfStops < 0 {
		return itinerary.Flight{}, newParseError(element.name, "NumberOfStops",
			fmt.Errorf("negative value %d", flight.NumberOfStops))
	}

	if flight.TicketType, err = textField(element, "TicketType"); err != nil {
		return itinerary.Flight{}, err
	}

	if fareBasis := element.child("FareBasis"); fareBasis != nil {
		flight.FareBasis = fareBasis.textContent()
	}

	return flight, nil
}

// parsePrices returns the charge lines of every Pricing element below data.
func parsePrices(data *node) ([]itinerary.Price, error) {
	result := []itinerary.Price{}
	for _, pricing := range data.findAll(tagPricing) {
		currency, ok := pricing.attr("currency")
		if !ok {
			return nil, newParseError(tagPricing, "currency", errMissing)
		}

		for _, charge := range pricing.elements() {
			fareType, ok := charge.attr("type")
			if !ok {
				return nil, newParseError(charge.name, "type", errMissing)
			}

			chargeType, ok := charge.attr("ChargeType")
			if !ok {
				return nil, newParseError(charge.name, "ChargeType", errMissing)
			}

			amount, err := strconv.ParseFloat(charge.textContent(), 64)
			if err != nil {
				return nil, newParseError(charge.name, chargeType, err)
			}

			result = append(result, itinerary.Price{
				Currency:   currency,
				FareType:   fareType,
				ChargeType: chargeType,
				Amount:     amount,
			})
		}
	}

	return result, nil
}

func textField(element *node, name string) (string, error) {
	field := element.child(name)
	if field == nil {
		return "", newParseError(element.name, name, errMissing)
	}

	return field.textContent(), nil
}

func intField(element *node, name string) (int, error) {
	text, err := textField(element, name)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, newParseError(element.name, name, err)
	}

	return value, nil
}

func timeField(element *node, name string) (time.Time, error) {
	text, err := textField(element, name)
	if err != nil {
		return time.Time{}, err
	}

	value, err := time.Parse(TimestampLayout, text)
	if err != nil {
		return time.Time{}, newParseError(element.name, name, err)
	}

	return value, nil
}
