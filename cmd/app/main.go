package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mehra2004/airline-booking/config"
	"github.com/Mehra2004/airline-booking/internal/bootstrap"
	"github.com/Mehra2004/airline-booking/internal/cache"
	"github.com/Mehra2004/airline-booking/internal/kafka"
	"github.com/Mehra2004/airline-booking/internal/repository"
	"github.com/Mehra2004/airline-booking/internal/service/auth"
	"github.com/Mehra2004/airline-booking/internal/service/booking"
	"github.com/Mehra2004/airline-booking/internal/service/catalog"
	"github.com/Mehra2004/airline-booking/internal/service/payment"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Logging.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	airlinePool, err := pgxpool.New(ctx, cfg.AirlineDB.DSN())
	if err != nil {
		logger.Fatal("connect airline postgres", zap.Error(err))
	}
	defer airlinePool.Close()

	authPool, err := pgxpool.New(ctx, cfg.AuthDB.DSN())
	if err != nil {
		logger.Fatal("connect auth postgres", zap.Error(err))
	}
	defer authPool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	catalogRepo := repository.NewCatalogRepository(airlinePool)
	ticketRepo := repository.NewTicketRepository(airlinePool)
	paymentRepo := repository.NewPaymentRepository(airlinePool)
	passengerRepo := repository.NewPassengerRepository(airlinePool)
	credentialRepo := repository.NewCredentialRepository(authPool)

	catalogService := catalog.NewCatalogService(catalogRepo, redisCache, logger)
	bookingService := booking.NewBookingService(
		ticketRepo,
		logger,
		booking.WithSeatLocker(redisCache, time.Duration(cfg.Booking.SeatLockTTLSeconds)*time.Second),
		booking.WithProducer(producer, cfg.Kafka.TicketTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	paymentService := payment.NewPaymentService(
		paymentRepo,
		ticketRepo,
		logger,
		payment.WithProducer(producer, cfg.Kafka.TicketTopic),
		payment.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	authService := auth.NewAuthService(passengerRepo, credentialRepo, logger)

	if err := bootstrap.Run(ctx, cfg, logger, bootstrap.Services{
		Catalog: catalogService,
		Booking: bookingService,
		Payment: paymentService,
		Auth:    authService,
	}); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
