package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yashrajoria/classroom-shop/models"
)

// CartRepository stores cart sessions. Get returns (nil, nil) for unknown IDs.
type CartRepository interface {
	GetCart(ctx context.Context, id string) (*models.CartSession, error)
	SaveCart(ctx context.Context, session *models.CartSession) error
	DeleteCart(ctx context.Context, id string) error
}

// RedisCartRepository keeps each session as a JSON blob with a TTL.
type RedisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartRepository(client *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisCartRepository) getKey(id string) string {
	return fmt.Sprintf("cart:session:%s", id)
}

func (r *RedisCartRepository) GetCart(ctx context.Context, id string) (*models.CartSession, error) {
	data, err := r.client.Get(ctx, r.getKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.CartSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", id, err)
	}
	return &session, nil
}

func (r *RedisCartRepository) SaveCart(ctx context.Context, session *models.CartSession) error {
	session.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.getKey(session.ID), data, r.ttl).Err()
}

func (r *RedisCartRepository) DeleteCart(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.getKey(id)).Err()
}

// MemoryCartRepository is used when no redis URL is configured. Sessions are
// copied through JSON so callers never share state with the store.
type MemoryCartRepository struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{sessions: make(map[string][]byte)}
}

func (r *MemoryCartRepository) GetCart(_ context.Context, id string) (*models.CartSession, error) {
	r.mu.Lock()
	data, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var session models.CartSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *MemoryCartRepository) SaveCart(_ context.Context, session *models.CartSession) error {
	session.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.sessions[session.ID] = data
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) DeleteCart(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}
