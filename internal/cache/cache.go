// Package cache holds the portal's two ephemeral stores: short-TTL
// availability summaries per shop, and the last reservation a guest
// submitted (id/status/timestamp only, for display continuity — never
// authoritative reservation state).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrMiss is returned when the key is absent or expired. A miss is the
// normal cold path, not a failure.
var ErrMiss = errors.New("cache miss")

const (
	summaryTTL         = 60 * time.Second
	lastReservationTTL = 24 * time.Hour
)

type Store struct {
	client *redis.Client
	logger *zap.Logger
}

func New(client *redis.Client, logger *zap.Logger) *Store {
	return &Store{client: client, logger: logger}
}

func summaryKey(slug string) string {
	return fmt.Sprintf("portal:summary:%s", slug)
}

func lastReservationKey(token string) string {
	return fmt.Sprintf("portal:last_rsv:%s", token)
}

// ===============================
// Generic JSON helpers
// ===============================

func (s *Store) get(ctx context.Context, key string, dest any) error {
	if s.client == nil {
		return ErrMiss
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

func (s *Store) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// ===============================
// Availability summaries
// ===============================

func (s *Store) GetSummary(ctx context.Context, slug string, dest any) error {
	return s.get(ctx, summaryKey(slug), dest)
}

func (s *Store) SetSummary(ctx context.Context, slug string, value any) {
	if err := s.set(ctx, summaryKey(slug), value, summaryTTL); err != nil {
		s.logger.Warn("summary cache write failed", zap.String("slug", slug), zap.Error(err))
	}
}

// ===============================
// Last submitted reservation
// ===============================

// LastReservation is what a guest sees on return visits while the backend
// is still the only authority on the reservation itself.
type LastReservation struct {
	ReservationID string    `json:"reservation_id"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

func (s *Store) GetLastReservation(ctx context.Context, guestToken string) (*LastReservation, error) {
	var last LastReservation
	if err := s.get(ctx, lastReservationKey(guestToken), &last); err != nil {
		return nil, err
	}
	return &last, nil
}

func (s *Store) SetLastReservation(ctx context.Context, guestToken string, last LastReservation) {
	if err := s.set(ctx, lastReservationKey(guestToken), last, lastReservationTTL); err != nil {
		s.logger.Warn("last reservation cache write failed", zap.Error(err))
	}
}
