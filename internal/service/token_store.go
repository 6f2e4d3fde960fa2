package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"

	// Keys deleted per round trip when revoking every token of a user
	revokeBatchSize = 100
)

// consumeTokenScript deletes a refresh token and reports whether it existed, so
// two concurrent refreshes of the same token cannot both succeed.
var consumeTokenScript = redis.NewScript(`
	return redis.call('DEL', KEYS[1])
`)

// TokenStore tracks issued token ids. A token whose id is missing from the
// store is treated as revoked.
type TokenStore interface {
	StoreAccessToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error
	StoreRefreshToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error
	IsAccessTokenValid(ctx context.Context, userID int, tokenID string) (bool, error)
	ConsumeRefreshToken(ctx context.Context, userID int, tokenID string) (bool, error)
	RevokeAccessToken(ctx context.Context, userID int, tokenID string) error
	RevokeAllUserTokens(ctx context.Context, userID int) error
}

type RedisTokenStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisTokenStore(redisClient *redis.Client, log *logrus.Logger) *RedisTokenStore {
	return &RedisTokenStore{
		redisClient: redisClient,
		log:         log,
	}
}

func accessTokenKey(userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", accessTokenKeyPrefix, userID, tokenID)
}

func refreshTokenKey(userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", refreshTokenKeyPrefix, userID, tokenID)
}

func (s *RedisTokenStore) StoreAccessToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err(); err != nil {
		return fmt.Errorf("store access token for user %d: %w", userID, err)
	}
	return nil
}

func (s *RedisTokenStore) StoreRefreshToken(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, refreshTokenKey(userID, tokenID), "valid", ttl).Err(); err != nil {
		return fmt.Errorf("store refresh token for user %d: %w", userID, err)
	}
	return nil
}

func (s *RedisTokenStore) IsAccessTokenValid(ctx context.Context, userID int, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check access token for user %d: %w", userID, err)
	}
	return exists > 0, nil
}

// ConsumeRefreshToken removes the refresh token atomically. It returns false
// when the token was already used or revoked.
func (s *RedisTokenStore) ConsumeRefreshToken(ctx context.Context, userID int, tokenID string) (bool, error) {
	deleted, err := consumeTokenScript.Run(ctx, s.redisClient, []string{refreshTokenKey(userID, tokenID)}).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("consume refresh token for user %d: %w", userID, err)
	}
	return deleted > 0, nil
}

func (s *RedisTokenStore) RevokeAccessToken(ctx context.Context, userID int, tokenID string) error {
	if err := s.redisClient.Del(ctx, accessTokenKey(userID, tokenID)).Err(); err != nil {
		return fmt.Errorf("revoke access token for user %d: %w", userID, err)
	}
	return nil
}

// RevokeAllUserTokens drops every access and refresh token of a user, e.g.
// after a password change. Keys are found with SCAN and deleted in batches.
func (s *RedisTokenStore) RevokeAllUserTokens(ctx context.Context, userID int) error {
	start := time.Now()
	var revoked int

	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s:%d:*", prefix, userID)
		iter := s.redisClient.Scan(ctx, 0, pattern, revokeBatchSize).Iterator()

		batch := make([]string, 0, revokeBatchSize)
		for iter.Next(ctx) {
			batch = append(batch, iter.Val())
			if len(batch) == revokeBatchSize {
				if err := s.redisClient.Del(ctx, batch...).Err(); err != nil {
					return fmt.Errorf("revoke tokens for user %d: %w", userID, err)
				}
				revoked += len(batch)
				batch = batch[:0]
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("scan tokens for user %d: %w", userID, err)
		}
		if len(batch) > 0 {
			if err := s.redisClient.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("revoke tokens for user %d: %w", userID, err)
			}
			revoked += len(batch)
		}
	}

	s.log.Debugf("Revoked %d tokens for user %d in %v", revoked, userID, time.Since(start))
	return nil
}
