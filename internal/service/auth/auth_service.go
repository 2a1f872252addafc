package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/repository"
	"go.uber.org/zap"
)

type AuthUseCase interface {
	VerifyAdmin(ctx context.Context, username, password string) (bool, error)
	RegisterPassenger(ctx context.Context, input RegisterInput) (int64, error)
	VerifyUser(ctx context.Context, email, password string) (int64, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListPassengers(ctx context.Context) ([]domain.Passenger, error)
	DeletePassenger(ctx context.Context, email string) error
}

type RegisterInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Password    string `json:"password"`
}

type AuthService struct {
	passengers  repository.PassengerRepository
	credentials repository.CredentialRepository
	log         *zap.Logger
}

func NewAuthService(passengers repository.PassengerRepository, credentials repository.CredentialRepository, log *zap.Logger) *AuthService {
	return &AuthService{
		passengers:  passengers,
		credentials: credentials,
		log:         log.With(zap.String("service", "auth")),
	}
}

// HashPassword is the credential digest: sha256 hex, compared by equality.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *AuthService) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	hash, err := s.credentials.AdminHash(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return false, nil
		}
		return false, err
	}
	return hash == HashPassword(password), nil
}

// RegisterPassenger creates the passenger in the airline store, then the
// credentials in the auth store. A duplicate email fails before any write.
func (s *AuthService) RegisterPassenger(ctx context.Context, input RegisterInput) (int64, error) {
	if input.Email == "" || input.Password == "" {
		return 0, errors.New("email and password are required")
	}

	exists, err := s.credentials.EmailExists(ctx, input.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, domain.ErrEmailTaken
	}

	passenger := &domain.Passenger{
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Nationality: input.Nationality,
	}
	if err := s.passengers.Add(ctx, passenger); err != nil {
		return 0, err
	}

	if err := s.credentials.Register(ctx, passenger.ID, input.Email, HashPassword(input.Password)); err != nil {
		s.log.Error("credential registration failed after passenger insert",
			zap.Int64("passenger_id", passenger.ID), zap.Error(err))
		return 0, err
	}

	s.log.Info("passenger registered", zap.Int64("passenger_id", passenger.ID))
	return passenger.ID, nil
}

func (s *AuthService) VerifyUser(ctx context.Context, email, password string) (int64, error) {
	passengerID, hash, err := s.credentials.UserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if hash != HashPassword(password) {
		return 0, domain.ErrInvalidCredentials
	}
	return passengerID, nil
}

func (s *AuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.credentials.EmailExists(ctx, email)
}

func (s *AuthService) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	return s.passengers.List(ctx)
}

// DeletePassenger removes the passenger from the airline store and their
// credentials from the auth store. If the airline-side delete succeeds and
// the credential-side delete fails, the caller gets a CredentialCleanupError
// naming the orphaned passenger id; re-running the delete is the recovery.
func (s *AuthService) DeletePassenger(ctx context.Context, email string) error {
	passengerID, err := s.passengers.IDByEmail(ctx, email)
	if err != nil {
		return err
	}

	rows, err := s.passengers.Delete(ctx, passengerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPassengerNotFound
	}

	if err := s.credentials.Delete(ctx, passengerID); err != nil {
		s.log.Error("credential cleanup failed", zap.Int64("passenger_id", passengerID), zap.Error(err))
		return &domain.CredentialCleanupError{PassengerID: passengerID, Err: err}
	}

	s.log.Info("passenger deleted", zap.Int64("passenger_id", passengerID))
	return nil
}

var _ AuthUseCase = (*AuthService)(nil)
