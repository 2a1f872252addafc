package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound       = errors.New("flight not found")
	ErrSeatTaken            = errors.New("this seat is already booked for this flight")
	ErrSeatLocked           = errors.New("seat is currently held by another booking")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrNotTicketOwner       = errors.New("this ticket doesn't belong to you")
	ErrTicketCancelled      = errors.New("cannot pay for a cancelled ticket")
	ErrAlreadyConfirmed     = errors.New("payment already made for this ticket")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPassengerNotFound    = errors.New("passenger not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// FlightFullError reports a capacity rejection with both numbers.
type FlightFullError struct {
	Capacity int
	Booked   int
}

func (e *FlightFullError) Error() string {
	return fmt.Sprintf("flight is full: capacity %d, booked %d", e.Capacity, e.Booked)
}

// FareMismatchError reports an exact-fare violation quoting the expected
// fare and the amount offered.
type FareMismatchError struct {
	Expected float64
	Given    float64
}

func (e *FareMismatchError) Error() string {
	return fmt.Sprintf("payment amount must be exactly %.2f, you entered %.2f", e.Expected, e.Given)
}

// CredentialCleanupError reports that a passenger was removed from the
// airline store but the credential-store delete failed, leaving orphaned
// credentials that need a follow-up delete.
type CredentialCleanupError struct {
	PassengerID int64
	Err         error
}

func (e *CredentialCleanupError) Error() string {
	return fmt.Sprintf("passenger %d deleted but credential cleanup failed: %v", e.PassengerID, e.Err)
}

func (e *CredentialCleanupError) Unwrap() error { return e.Err }
