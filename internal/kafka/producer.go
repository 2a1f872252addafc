package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TicketEvent is the wire format for every booking and payment event.
type TicketEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	TicketID    int64     `json:"ticket_id"`
	FlightID    int64     `json:"flight_id"`
	PassengerID int64     `json:"passenger_id"`
	SeatNo      string    `json:"seat_no"`
	Amount      float64   `json:"amount,omitempty"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

const (
	EventTicketBooked     = "ticket_booked"
	EventTicketCancelled  = "ticket_cancelled"
	EventPaymentConfirmed = "payment_confirmed"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
