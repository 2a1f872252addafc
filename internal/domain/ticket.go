package domain

import "time"

type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID          int64
	PassengerID int64
	FlightID    int64
	SeatNo      string
	Status      TicketStatus
}

// CancelOutcome distinguishes the three results of a cancellation request.
type CancelOutcome int

const (
	CancelNotFound CancelOutcome = iota
	CancelAlreadyCancelled
	CancelOK
)

// TicketInfo is the passenger-facing ticket view joined to flight data.
type TicketInfo struct {
	TicketID      int64        `json:"ticket_id"`
	FlightNumber  string       `json:"flight_number"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime time.Time    `json:"departure_time"`
	ArrivalTime   time.Time    `json:"arrival_time"`
	SeatNo        string       `json:"seat_no"`
	Status        TicketStatus `json:"status"`
}

// TicketRecord is the administrative ticket view with passenger identity.
type TicketRecord struct {
	TicketID       int64        `json:"ticket_id"`
	PassengerID    int64        `json:"passenger_id"`
	PassengerEmail string       `json:"passenger_email"`
	FlightNumber   string       `json:"flight_number"`
	Origin         string       `json:"origin"`
	Destination    string       `json:"destination"`
	DepartureTime  time.Time    `json:"departure_time"`
	SeatNo         string       `json:"seat_no"`
	Status         TicketStatus `json:"status"`
}

// PaymentCheck carries the fields the payment engine validates before
// accepting money for a ticket.
type PaymentCheck struct {
	Status      TicketStatus
	PassengerID int64
	Fare        float64
}
