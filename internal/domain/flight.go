package domain

import "time"

type Flight struct {
	ID                   int64
	FlightNumber         string
	OriginAirportID      int64
	DestinationAirportID int64
	DepartureTime        time.Time
	ArrivalTime          time.Time
	AircraftID           int64
	Fare                 float64
}

// FlightInfo is the listing view: a flight joined to its airports and
// aircraft, with the current non-cancelled booking count.
type FlightInfo struct {
	FlightID      int64     `json:"flight_id"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Aircraft      string    `json:"aircraft"`
	SeatCapacity  int       `json:"seat_capacity"`
	BookedSeats   int       `json:"booked_seats"`
	Fare          float64   `json:"fare"`
}

type FlightAvailability struct {
	SeatCapacity int `json:"seat_capacity"`
	BookedSeats  int `json:"booked_seats"`
}

func (a FlightAvailability) RemainingSeats() int {
	return a.SeatCapacity - a.BookedSeats
}
