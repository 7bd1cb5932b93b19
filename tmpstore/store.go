package tmpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/Drolfothesgnir/m4tags/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	ScanResultPrefix = "scan:"
)

var ErrCacheMiss = errors.New("scan result not found or expired")

// ScanResult is what is cached for a scanned content.
type ScanResult struct {
	Tags      []m4.Tag  `json:"tags"`
	ScannedAt time.Time `json:"scanned_at"`
}

type Store interface {
	SaveScanResult(ctx context.Context, hash string, data ScanResult, ttl time.Duration) error
	GetScanResult(ctx context.Context, hash string) (*ScanResult, error)
	DeleteScanResult(ctx context.Context, hash string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return NewStoreWithClient(rdb)
}

// NewStoreWithClient is for callers which already have a client.
func NewStoreWithClient(client *redis.Client) Store {
	return &RedisStore{client: client}
}

func scanResultKey(hash string) string {
	return ScanResultPrefix + hash
}

// SaveScanResult caches the tags found in a content with the given hash.
// A scanned content always yields the same tags, so the hash is all the key needs.
func (store *RedisStore) SaveScanResult(
	ctx context.Context,
	hash string,
	data ScanResult,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize scan result: %w", err)
	}

	return store.client.Set(ctx, scanResultKey(hash), jsonData, ttl).Err()
}

// GetScanResult returns [ErrCacheMiss] if the result is not cached.
func (store *RedisStore) GetScanResult(ctx context.Context, hash string) (*ScanResult, error) {
	jsonData, err := store.client.Get(ctx, scanResultKey(hash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get scan result: %w", err)
	}

	var result ScanResult
	if err := json.Unmarshal([]byte(jsonData), &result); err != nil {
		return nil, fmt.Errorf("failed to parse scan result json: %w", err)
	}

	return &result, nil
}

func (store *RedisStore) DeleteScanResult(ctx context.Context, hash string) error {
	return store.client.Del(ctx, scanResultKey(hash)).Err()
}
