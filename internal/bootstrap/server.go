package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Mehra2004/airline-booking/api"
	"github.com/Mehra2004/airline-booking/config"
	"github.com/Mehra2004/airline-booking/internal/service/auth"
	"github.com/Mehra2004/airline-booking/internal/service/booking"
	"github.com/Mehra2004/airline-booking/internal/service/catalog"
	"github.com/Mehra2004/airline-booking/internal/service/payment"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Catalog catalog.CatalogUseCase
	Booking booking.BookingUseCase
	Payment payment.PaymentUseCase
	Auth    auth.AuthUseCase
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, svcs Services) error {
	router := newRouter(cfg, svcs)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	log.Info("http server started", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	flightHandler := api.NewFlightHandler(svcs.Catalog)
	ticketHandler := api.NewTicketHandler(svcs.Booking)
	paymentHandler := api.NewPaymentHandler(svcs.Payment)
	passengerHandler := api.NewPassengerHandler(svcs.Auth, svcs.Booking, svcs.Payment)
	authHandler := api.NewAuthHandler(svcs.Auth)
	catalogHandler := api.NewCatalogHandler(svcs.Catalog)

	v1 := router.Group("/api/v1")
	flightHandler.Register(v1.Group("/flights"))
	ticketHandler.Register(v1.Group("/tickets"))
	paymentHandler.Register(v1.Group("/payments"))
	passengerHandler.Register(v1.Group("/passengers"))
	authHandler.Register(v1.Group("/auth"))

	admin := v1.Group("/admin")
	catalogHandler.RegisterAdmin(admin)
	ticketHandler.RegisterAdmin(admin.Group("/tickets"))
	paymentHandler.RegisterAdmin(admin.Group("/payments"))
	passengerHandler.RegisterAdmin(admin.Group("/passengers"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/airline.swagger.json"),
		)))
	}

	return router
}
