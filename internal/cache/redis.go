package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Mehra2004/airline-booking/config"
	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.FlightInfo, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightInfo
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.FlightInfo) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached listing after a catalog write.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatLock takes a short-lived hold on a (flight, seat) pair. The lock
// value is the holding passenger's id so a held seat can be traced to its
// booking attempt.
func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID int64, seatNo string, passengerID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(flightID, seatNo), strconv.FormatInt(passengerID, 10), ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID int64, seatNo string) error {
	return c.client.Del(ctx, seatLockKey(flightID, seatNo)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatLockKey(flightID int64, seatNo string) string {
	return fmt.Sprintf("lock:flight:%d:seat:%s", flightID, seatNo)
}
