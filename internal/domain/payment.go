package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodCash       PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodUPI, PaymentMethodDebitCard, PaymentMethodNetbanking, PaymentMethodCash:
		return true
	}
	return false
}

type PaymentStatus string

const PaymentStatusSuccess PaymentStatus = "success"

type Payment struct {
	ID          int64
	TicketID    int64
	Amount      float64
	Method      PaymentMethod
	Status      PaymentStatus
	Reference   string
	PaymentTime time.Time
}

// PaymentRecord is the administrative payment view with the paying
// passenger's identity.
type PaymentRecord struct {
	PaymentID      int64         `json:"payment_id"`
	TicketID       int64         `json:"ticket_id"`
	PassengerID    int64         `json:"passenger_id"`
	PassengerEmail string        `json:"passenger_email"`
	Amount         float64       `json:"amount"`
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	PaymentTime    time.Time     `json:"payment_time"`
}
