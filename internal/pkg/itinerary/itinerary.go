package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/utils"
)

const (
	ChargeTypeTotalAmount = "TotalAmount"

	DatetimeLayout = "2006-01-02 15:04:05"

	separator = "---------------------------"
)

// Itinerary is one priced travel option: an onward leg, an optional return leg and its prices.
type Itinerary struct {
	OnwardFlights []Flight
	ReturnFlights []Flight
	Prices        []Price
}

// OnwardRoute returns the airport codes of the onward leg joined by "-", e.g. "DXB-DEL-BKK".
func (i Itinerary) OnwardRoute() string {
	return legRoute(i.OnwardFlights)
}

// ReturnRoute returns the airport codes of the return leg, empty for one-way itineraries.
func (i Itinerary) ReturnRoute() string {
	return legRoute(i.ReturnFlights)
}

// Route returns the key of both legs: "DXB-DEL-BKK - BKK-DEL-DXB", or the onward route alone
// for one-way itineraries.
func (i Itinerary) Route() string {
	returnRoute := i.ReturnRoute()
	if returnRoute == "" {
		return i.OnwardRoute()
	}

	return i.OnwardRoute() + " - " + returnRoute
}

// OnwardDatetimes returns the departure of the first onward flight and the arrival of the last one.
func (i Itinerary) OnwardDatetimes() (time.Time, time.Time, error) {
	if len(i.OnwardFlights) == 0 {
		return time.Time{}, time.Time{}, ErrNoOnwardFlights
	}

	return i.OnwardFlights[0].DepartureTime, i.OnwardFlights[len(i.OnwardFlights)-1].ArrivalTime, nil
}

// TotalPrices returns the price lines carrying the total amount.
func (i Itinerary) TotalPrices() []Price {
	prices := make([]Price, 0, 1)
	for _, price := range i.Prices {
		if price.ChargeType == ChargeTypeTotalAmount {
			prices = append(prices, price)
		}
	}

	return prices
}

func (i Itinerary) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s | %s\n", i.OnwardRoute(), i.ReturnRoute())

	if start, end, err := i.OnwardDatetimes(); err == nil {
		fmt.Fprintf(&sb, "%s - %s", start.Format(DatetimeLayout), end.Format(DatetimeLayout))
	}

	sb.WriteString("\n" + separator + "\nFlights:\n")
	for _, flight := range i.OnwardFlights {
		fmt.Fprintf(&sb, "%s%d\n%s - %s\n%s - %s\n",
			flight.CarrierCode, flight.FlightNumber,
			flight.Source, flight.Destination,
			flight.DepartureTime.Format(DatetimeLayout), flight.ArrivalTime.Format(DatetimeLayout))
	}

	sb.WriteString(separator + "\nPrices:\n")
	for _, price := range i.TotalPrices() {
		fmt.Fprintf(&sb, "%s: %s %s\n", price.FareType, utils.FormatAmount(price.Amount), price.Currency)
	}

	sb.WriteString(separator)

	return sb.String()
}

// SameRoute reports whether a and b travel the same onward route.
// Return legs, prices and flight numbers are ignored.
func SameRoute(a, b Itinerary) bool {
	return a.OnwardRoute() == b.OnwardRoute()
}

func legRoute(flights []Flight) string {
	if len(flights) == 0 {
		return ""
	}

	codes := make([]string, 0, len(flights)+1)
	for _, flight := range flights {
		codes = append(codes, flight.Source)
	}

	codes = append(codes, flights[len(flights)-1].Destination)

	return strings.Join(codes, "-")
}
