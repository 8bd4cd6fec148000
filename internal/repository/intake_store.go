package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

// IntakeStore records accepted reservation and contact submissions. Intake is
// append-only; the site only confirms receipt, nothing reads the records back
// over HTTP.
type IntakeStore interface {
	AddReservation(ctx context.Context, res *models.Reservation) error
	AddContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// RedisIntakeStore appends submissions to Redis lists so staff tooling can
// drain them.
type RedisIntakeStore struct {
	client *redis.Client
}

func NewRedisIntakeStore(client *redis.Client) *RedisIntakeStore {
	return &RedisIntakeStore{client: client}
}

func (s *RedisIntakeStore) AddReservation(ctx context.Context, res *models.Reservation) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode reservation: %w", err)
	}
	if err := s.client.RPush(ctx, "intake:reservations", data).Err(); err != nil {
		return fmt.Errorf("failed to store reservation: %w", err)
	}
	return nil
}

func (s *RedisIntakeStore) AddContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode contact message: %w", err)
	}
	if err := s.client.RPush(ctx, "intake:contact", data).Err(); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

var _ IntakeStore = (*RedisIntakeStore)(nil)

// MemoryIntakeStore is the Redis-less fallback.
type MemoryIntakeStore struct {
	mu           sync.Mutex
	Reservations []models.Reservation
	Messages     []models.ContactMessage
}

func NewMemoryIntakeStore() *MemoryIntakeStore {
	return &MemoryIntakeStore{}
}

func (s *MemoryIntakeStore) AddReservation(ctx context.Context, res *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reservations = append(s.Reservations, *res)
	return nil
}

func (s *MemoryIntakeStore) AddContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, *msg)
	return nil
}

var _ IntakeStore = (*MemoryIntakeStore)(nil)
