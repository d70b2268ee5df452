package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/pkg/record"
)

// RedisStorage implements the Storage interface using Redis for saves,
// results, and users, and the filesystem for static level definitions.
type RedisStorage struct {
	client  *redis.Client
	logger  *slog.Logger
	dataDir string
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, dataDir string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if dataDir == "" {
		dataDir = "./data"
	}

	return &RedisStorage{
		client:  rdb,
		logger:  logger,
		dataDir: dataDir,
	}
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Active save operations (Redis-backed, one save per user)

func saveKey(userEmail string) string {
	return "save:" + userEmail
}

func (r *RedisStorage) SaveActive(ctx context.Context, save *record.GameSave) error {
	save.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(save)
	if err != nil {
		r.logger.Error("Failed to marshal game save", "user", save.UserEmail, "error", err)
		return fmt.Errorf("failed to marshal game save: %w", err)
	}

	cmd := r.client.Set(ctx, saveKey(save.UserEmail), string(data), 0)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to save game save", "user", save.UserEmail, "error", err)
		return fmt.Errorf("failed to save game save: %w", err)
	}

	return nil
}

func (r *RedisStorage) GetActiveSave(ctx context.Context, userEmail string) (*record.GameSave, error) {
	cmd := r.client.Get(ctx, saveKey(userEmail))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return nil, nil // Not found is not an error
		}
		r.logger.Error("Failed to load game save", "user", userEmail, "error", err)
		return nil, fmt.Errorf("failed to load game save: %w", err)
	}

	var save record.GameSave
	if err := json.Unmarshal([]byte(cmd.Val()), &save); err != nil {
		r.logger.Error("Failed to unmarshal game save", "user", userEmail, "error", err)
		return nil, fmt.Errorf("failed to unmarshal game save: %w", err)
	}

	if save.State != nil {
		save.State.RepairInvariants()
	}

	return &save, nil
}

func (r *RedisStorage) DeleteActiveSave(ctx context.Context, userEmail string) error {
	cmd := r.client.Del(ctx, saveKey(userEmail))
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to delete game save", "user", userEmail, "error", err)
		return fmt.Errorf("failed to delete game save: %w", err)
	}
	return nil
}

// Result operations (append-only; leaderboard per level, history per user)

func (r *RedisStorage) AddResult(ctx context.Context, result *record.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal game result: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, "results:"+result.LevelID, redis.Z{
		Score:  float64(result.Score),
		Member: string(data),
	})
	pipe.RPush(ctx, "history:"+result.UserEmail, string(data))

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to record game result", "user", result.UserEmail, "level", result.LevelID, "error", err)
		return fmt.Errorf("failed to record game result: %w", err)
	}

	return nil
}

func (r *RedisStorage) TopScores(ctx context.Context, levelID string, limit int) ([]*record.GameResult, error) {
	if limit <= 0 {
		limit = 10
	}

	cmd := r.client.ZRevRange(ctx, "results:"+levelID, 0, int64(limit-1))
	if err := cmd.Err(); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return unmarshalResults(cmd.Val())
}

func (r *RedisStorage) ResultsByUser(ctx context.Context, userEmail string) ([]*record.GameResult, error) {
	cmd := r.client.LRange(ctx, "history:"+userEmail, 0, -1)
	if err := cmd.Err(); err != nil {
		return nil, fmt.Errorf("failed to load user history: %w", err)
	}

	return unmarshalResults(cmd.Val())
}

func unmarshalResults(raw []string) ([]*record.GameResult, error) {
	results := make([]*record.GameResult, 0, len(raw))
	for _, item := range raw {
		var result record.GameResult
		if err := json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
		}
		results = append(results, &result)
	}
	return results, nil
}

// User operations

func userKey(email string) string {
	return "user:" + email
}

func (r *RedisStorage) CreateUser(ctx context.Context, user *auth.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	cmd := r.client.SetNX(ctx, userKey(user.Email), string(data), 0)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to create user", "email", user.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !cmd.Val() {
		return ErrUserExists
	}

	return nil
}

func (r *RedisStorage) GetUser(ctx context.Context, email string) (*auth.User, error) {
	cmd := r.client.Get(ctx, userKey(email))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user auth.User
	if err := json.Unmarshal([]byte(cmd.Val()), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}
