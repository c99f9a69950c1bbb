package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStore tracks issued refresh tokens.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

type refreshTokenRecord struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// RedisTokenStore keeps refresh tokens in redis with a TTL matching the token
// expiry.
type RedisTokenStore struct {
	cache *cache.Client
}

var _ TokenStore = (*RedisTokenStore)(nil)

// NewRedisTokenStore creates a token store over the shared cache client.
func NewRedisTokenStore(cache *cache.Client) *RedisTokenStore {
	return &RedisTokenStore{cache: cache}
}

func (s *RedisTokenStore) StoreRefreshToken(ctx context.Context, tokenID, userID, email string, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenRecord{UserID: userID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal token record: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

func (s *RedisTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, string, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return "", "", fmt.Errorf("refresh token not found")
	}
	var record refreshTokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", "", fmt.Errorf("unmarshal token record: %w", err)
	}
	return record.UserID, record.Email, nil
}

func (s *RedisTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
