package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/htmlscan/batch"
	"github.com/Drolfothesgnir/htmlscan/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	BatchResultPrefix = "batch_result:"
)

var ErrNotFound = errors.New("batch result not found or expired")

// BatchResult is the serialized result of a batch kept in memory for a limited time.
type BatchResult struct {
	BatchID   string                      `json:"batch_id"`
	CreatedAt time.Time                   `json:"created_at"`
	Summary   batch.Summary               `json:"summary"`
	Outcomes  []batch.SerializableOutcome `json:"outcomes"`
}

type Store interface {
	SaveBatchResult(ctx context.Context, result BatchResult, ttl time.Duration) error
	GetBatchResult(ctx context.Context, batchID string) (*BatchResult, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// Ping checks the connection to Redis.
func (store *RedisStore) Ping(ctx context.Context) error {
	return store.client.Ping(ctx).Err()
}

// Close releases the connections of the client.
func (store *RedisStore) Close() error {
	return store.client.Close()
}

// SaveBatchResult stores the result under its batch id for ttl.
func (store *RedisStore) SaveBatchResult(ctx context.Context, result BatchResult, ttl time.Duration) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize batch result: %w", err)
	}

	key := BatchResultPrefix + result.BatchID
	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// GetBatchResult retrieves the stored result.
// Returns ErrNotFound if there is none or it is expired.
func (store *RedisStore) GetBatchResult(ctx context.Context, batchID string) (*BatchResult, error) {
	key := BatchResultPrefix + batchID

	jsonData, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get batch result: %w", err)
	}

	var result BatchResult
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("failed to parse batch result json: %w", err)
	}

	return &result, nil
}
