package utils

import (
	"citizen_registry/internal/domain" // Importing domain models
	"context"                          // Context for Redis operations
	"encoding/json"                    // JSON encoding/decoding
	"time"                             // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// CitizenCache keeps citizen records in Redis keyed by NIN. Records are never
// updated after insert, so a cached entry cannot go stale.
type CitizenCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCitizenCache creates a citizen cache with the given entry TTL
func NewCitizenCache(rdb *redis.Client, ttl time.Duration) *CitizenCache {
	return &CitizenCache{rdb: rdb, ttl: ttl}
}

// CitizenKey is the cache key of one citizen
func CitizenKey(nin string) string {
	return "citizen:nin:" + nin
}

// Get returns the cached citizen. Redis failures count as a miss.
func (c *CitizenCache) Get(ctx context.Context, nin string) (*domain.Citizen, bool) {
	var citizen domain.Citizen
	found, err := GetCache(ctx, c.rdb, CitizenKey(nin), &citizen)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"nin":   nin,
			"error": err.Error(),
		}).Warn("Citizen cache read failed")
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &citizen, true
}

// Set stores a citizen. Failures are logged and otherwise ignored.
func (c *CitizenCache) Set(ctx context.Context, citizen *domain.Citizen) {
	if err := SetCache(ctx, c.rdb, CitizenKey(citizen.NIN), citizen, c.ttl); err != nil {
		logrus.WithFields(logrus.Fields{
			"nin":   citizen.NIN,
			"error": err.Error(),
		}).Warn("Citizen cache write failed")
	}
}
