package payment

import (
	"context"
	"errors"
	"time"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/kafka"
	"github.com/Mehra2004/airline-booking/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentUseCase interface {
	MakePayment(ctx context.Context, input MakePaymentInput) (*domain.Payment, error)
	PassengerPayments(ctx context.Context, passengerID int64) ([]domain.PaymentRecord, error)
	AllPayments(ctx context.Context) ([]domain.PaymentRecord, error)
	DeletePayment(ctx context.Context, paymentID int64) (int64, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type MakePaymentInput struct {
	TicketID    int64                `json:"ticket_id"`
	Amount      float64              `json:"amount"`
	Method      domain.PaymentMethod `json:"method"`
	PassengerID int64                `json:"passenger_id"`
}

type PaymentService struct {
	payments           repository.PaymentRepository
	tickets            repository.TicketRepository
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	log                *zap.Logger
}

type PaymentServiceOption func(*PaymentService)

func WithProducer(producer Producer, ticketTopic string) PaymentServiceOption {
	return func(s *PaymentService) {
		s.producer = producer
		s.ticketTopic = ticketTopic
	}
}

func WithNotificationsTopic(topic string) PaymentServiceOption {
	return func(s *PaymentService) {
		s.notificationsTopic = topic
	}
}

func NewPaymentService(payments repository.PaymentRepository, tickets repository.TicketRepository, log *zap.Logger, opts ...PaymentServiceOption) *PaymentService {
	service := &PaymentService{
		payments: payments,
		tickets:  tickets,
		log:      log.With(zap.String("service", "payment")),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// MakePayment validates ownership, ticket state, and the exact-fare rule,
// then records the payment and confirms the ticket together. Partial and
// over-payments are rejected; the fare must match to the paisa.
func (s *PaymentService) MakePayment(ctx context.Context, input MakePaymentInput) (*domain.Payment, error) {
	if !input.Method.Valid() {
		return nil, domain.ErrInvalidPaymentMethod
	}
	if input.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	chk, err := s.tickets.ForPayment(ctx, input.TicketID)
	if err != nil {
		return nil, err
	}

	if chk.PassengerID != input.PassengerID {
		return nil, domain.ErrNotTicketOwner
	}
	if chk.Status == domain.TicketStatusCancelled {
		return nil, domain.ErrTicketCancelled
	}
	if chk.Status == domain.TicketStatusConfirmed {
		return nil, domain.ErrAlreadyConfirmed
	}
	if input.Amount != chk.Fare {
		return nil, &domain.FareMismatchError{Expected: chk.Fare, Given: input.Amount}
	}

	pay := &domain.Payment{
		TicketID:    input.TicketID,
		Amount:      input.Amount,
		Method:      input.Method,
		Status:      domain.PaymentStatusSuccess,
		Reference:   uuid.NewString(),
		PaymentTime: time.Now(),
	}

	if err := s.payments.Record(ctx, pay); err != nil {
		return nil, err
	}

	s.log.Info("payment recorded",
		zap.Int64("ticket_id", pay.TicketID),
		zap.Float64("amount", pay.Amount),
		zap.String("method", string(pay.Method)),
		zap.String("reference", pay.Reference),
	)
	s.publish(ctx, pay, input.PassengerID)
	return pay, nil
}

func (s *PaymentService) PassengerPayments(ctx context.Context, passengerID int64) ([]domain.PaymentRecord, error) {
	return s.payments.ListByPassenger(ctx, passengerID)
}

func (s *PaymentService) AllPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	return s.payments.ListAll(ctx)
}

func (s *PaymentService) DeletePayment(ctx context.Context, paymentID int64) (int64, error) {
	return s.payments.DeleteByID(ctx, paymentID)
}

func (s *PaymentService) publish(ctx context.Context, pay *domain.Payment, passengerID int64) {
	if s.producer == nil || s.ticketTopic == "" {
		return
	}
	event := kafka.TicketEvent{
		EventID:     uuid.NewString(),
		Type:        kafka.EventPaymentConfirmed,
		TicketID:    pay.TicketID,
		PassengerID: passengerID,
		Amount:      pay.Amount,
		Status:      string(domain.TicketStatusConfirmed),
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, s.ticketTopic, event.EventID, event); err != nil {
		s.log.Warn("publish event failed", zap.String("type", event.Type), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event); err != nil {
			s.log.Warn("publish notification failed", zap.String("type", event.Type), zap.Error(err))
		}
	}
}

var _ PaymentUseCase = (*PaymentService)(nil)
