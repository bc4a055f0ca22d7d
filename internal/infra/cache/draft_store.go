package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/estetica-scheduler/internal/config"
	"github.com/BruksfildServices01/estetica-scheduler/internal/domain/booking"
)

const draftKeyPrefix = "booking:draft:"

func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// DraftStore keeps booking drafts in redis as JSON with a sliding TTL.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func (s *DraftStore) Load(ctx context.Context, id string) (booking.Draft, error) {
	raw, err := s.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return booking.Draft{}, booking.ErrDraftNotFound
	}
	if err != nil {
		return booking.Draft{}, fmt.Errorf("load draft %s: %w", id, err)
	}

	var d booking.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return booking.Draft{}, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return d, nil
}

func (s *DraftStore) Save(ctx context.Context, d booking.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", d.ID, err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+d.ID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", d.ID, err)
	}
	return nil
}

var _ booking.Store = (*DraftStore)(nil)
