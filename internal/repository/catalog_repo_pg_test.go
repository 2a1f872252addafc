package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewCatalogRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewCatalogRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewPaymentRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewPaymentRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewPassengerRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewPassengerRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewCredentialRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewCredentialRepository(pool)
	assert.NotNil(t, repo)
}
