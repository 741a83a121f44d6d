// Package customdict stores user-supplied vocabulary words in a Redis set so
// they survive restarts and are shared between server replicas. Words added
// here are folded into the in-memory vocabulary with a fixed high frequency.
package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const key = "respell:custom_words"

// Frequency is the count assigned to custom words when merged into the
// vocabulary; high enough that an exact custom word always wins scoring.
const Frequency = 1_000_000_000

// CustomDict wraps a Redis client holding the custom word set.
type CustomDict struct {
	client *redis.Client
}

// New creates a CustomDict on the provided Redis client.
func New(client *redis.Client) *CustomDict {
	return &CustomDict{client: client}
}

// Add inserts a word (lower-cased) into the set.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, key, strings.ToLower(word)).Err()
}

// Remove deletes a word from the set.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, key, strings.ToLower(word)).Err()
}

// All returns every stored word.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, key).Result()
}
