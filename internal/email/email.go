package email

import (
	"context"

	"github.com/Mehra2004/airline-booking/internal/kafka"
	"go.uber.org/zap"
)

// Sender turns ticket events into passenger notifications. The delivery
// channel is a log line for now; the worker owns the transport choice.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log.With(zap.String("service", "email"))}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	s.log.Info("notify passenger",
		zap.String("type", event.Type),
		zap.Int64("passenger_id", event.PassengerID),
		zap.Int64("ticket_id", event.TicketID),
		zap.Int64("flight_id", event.FlightID),
		zap.String("seat_no", event.SeatNo),
	)
	return nil
}
