package booking

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

type BookingUseCase interface {
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.Ticket, int, error)
	CancelTicket(ctx context.Context, ticketID, passengerID int64) (domain.CancelOutcome, error)
	PassengerTickets(ctx context.Context, passengerID int64) ([]domain.TicketInfo, error)
	AllTickets(ctx context.Context) ([]domain.TicketRecord, error)
	DeleteTicket(ctx context.Context, ticketID int64) (int64, error)
}

// SeatLocker is the fast-path reject in front of the transactional
// capacity check. The acquiring passenger's id is stored as the lock value.
type SeatLocker interface {
	AcquireSeatLock(ctx context.Context, flightID int64, seatNo string, passengerID int64, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, seatNo string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookFlightInput struct {
	PassengerID int64  `json:"passenger_id"`
	FlightID    int64  `json:"flight_id"`
	SeatNo      string `json:"seat_no"`
}

type BookingService struct {
	tickets            repository.TicketRepository
	locks              SeatLocker
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	lockTTL            time.Duration
	log                *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithSeatLocker(locks SeatLocker, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.locks = locks
		s.lockTTL = ttl
	}
}

func WithProducer(producer Producer, ticketTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.ticketTopic = ticketTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(tickets repository.TicketRepository, log *zap.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		tickets: tickets,
		log:     log.With(zap.String("service", "booking")),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookFlight checks capacity and creates a pending ticket. The returned int
// is the number of seats remaining after this booking. The seat number is
// expected to be normalized (uppercase, trimmed) by the caller.
func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.Ticket, int, error) {
	if input.SeatNo == "" {
		return nil, 0, errors.New("seat number is required")
	}
	if input.PassengerID <= 0 {
		return nil, 0, errors.New("passenger id must be positive")
	}

	locked := false
	if s.locks != nil {
		ok, err := s.locks.AcquireSeatLock(ctx, input.FlightID, input.SeatNo, input.PassengerID, s.lockTTL)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, domain.ErrSeatLocked
		}
		locked = true
	}

	ticket := &domain.Ticket{
		PassengerID: input.PassengerID,
		FlightID:    input.FlightID,
		SeatNo:      input.SeatNo,
	}

	remaining, err := s.tickets.CreatePending(ctx, ticket)
	if err != nil {
		if locked {
			_ = s.locks.ReleaseSeatLock(ctx, input.FlightID, input.SeatNo)
		}
		return nil, 0, err
	}

	s.log.Info("ticket booked",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("flight_id", ticket.FlightID),
		zap.String("seat_no", ticket.SeatNo),
		zap.Int("remaining", remaining),
	)
	s.publish(ctx, kafka.EventTicketBooked, ticket, 0)
	return ticket, remaining, nil
}

// CancelTicket sets the ticket to cancelled. A ticket owned by another
// passenger reports CancelNotFound, not an ownership error. No payment
// reversal happens here; a paid ticket keeps its payment row.
func (s *BookingService) CancelTicket(ctx context.Context, ticketID, passengerID int64) (domain.CancelOutcome, error) {
	status, err := s.tickets.Status(ctx, ticketID, passengerID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return domain.CancelNotFound, nil
		}
		return domain.CancelNotFound, err
	}

	if status == domain.TicketStatusCancelled {
		return domain.CancelAlreadyCancelled, nil
	}

	rows, err := s.tickets.MarkCancelled(ctx, ticketID, passengerID)
	if err != nil {
		return domain.CancelNotFound, err
	}
	if rows == 0 {
		return domain.CancelNotFound, nil
	}

	s.log.Info("ticket cancelled", zap.Int64("ticket_id", ticketID), zap.Int64("passenger_id", passengerID))
	s.publish(ctx, kafka.EventTicketCancelled, &domain.Ticket{
		ID:          ticketID,
		PassengerID: passengerID,
		Status:      domain.TicketStatusCancelled,
	}, 0)
	return domain.CancelOK, nil
}

func (s *BookingService) PassengerTickets(ctx context.Context, passengerID int64) ([]domain.TicketInfo, error) {
	return s.tickets.ListByPassenger(ctx, passengerID)
}

func (s *BookingService) AllTickets(ctx context.Context) ([]domain.TicketRecord, error) {
	return s.tickets.ListAll(ctx)
}

func (s *BookingService) DeleteTicket(ctx context.Context, ticketID int64) (int64, error) {
	return s.tickets.DeleteByID(ctx, ticketID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, ticket *domain.Ticket, amount float64) {
	if s.producer == nil || s.ticketTopic == "" {
		return
	}
	event := kafka.TicketEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		TicketID:    ticket.ID,
		FlightID:    ticket.FlightID,
		PassengerID: ticket.PassengerID,
		SeatNo:      ticket.SeatNo,
		Amount:      amount,
		Status:      string(ticket.Status),
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, s.ticketTopic, event.EventID, event); err != nil {
		s.log.Warn("publish event failed", zap.String("type", eventType), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event); err != nil {
			s.log.Warn("publish notification failed", zap.String("type", eventType), zap.Error(err))
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
