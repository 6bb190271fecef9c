package itinerary

import "time"

// Flight is one flight segment of a leg.
type Flight struct {
	CarrierCode   string
	CarrierName   string
	FlightNumber  int
	Source        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Class         string
	NumberOfStops int
	TicketType    string
	FareBasis     string
}

// Price is one charge line of an itinerary.
type Price struct {
	Currency   string
	FareType   string
	ChargeType string
	Amount     float64
}

// SameFlight reports whether a and b are the same scheduled flight,
// i.e. they share carrier code and flight number. Other fields are ignored.
func SameFlight(a, b Flight) bool {
	return a.CarrierCode == b.CarrierCode && a.FlightNumber == b.FlightNumber
}

// ContainsFlight reports whether flights holds a flight matching f by SameFlight.
func ContainsFlight(flights []Flight, f Flight) bool {
	for _, flight := range flights {
		if SameFlight(flight, f) {
			return true
		}
	}

	return false
}
