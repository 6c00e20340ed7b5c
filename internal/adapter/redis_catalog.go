package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix prefixes the per-locale translation hashes.
const DefaultRedisKeyPrefix = "i18n:"

// redisCommander is the subset of the redis client used by RedisCatalog.
type redisCommander interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
}

// RedisConfig describes how to reach the translation store.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisCatalog is a LocaleCatalog backed by one Redis hash per locale:
// HSET i18n:fr greeting.hello "Bonjour".
type RedisCatalog struct {
	client  redisCommander
	prefix  string
	locales localeIndex
	cfg     catalogConfig
}

// NewRedisCatalog connects to Redis using config.
func NewRedisCatalog(config RedisConfig, options ...CatalogOption) *RedisCatalog {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return newRedisCatalog(client, config.KeyPrefix, options...)
}

func newRedisCatalog(client redisCommander, prefix string, options ...CatalogOption) *RedisCatalog {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}

	return &RedisCatalog{
		client: client,
		prefix: prefix,
		cfg:    newCatalogConfig(options),
	}
}

func (c *RedisCatalog) hashKey(locale string) string {
	return c.prefix + locale
}

// HasKey reports whether key is translated for locale.
func (c *RedisCatalog) HasKey(ctx context.Context, key, locale string) (bool, error) {
	stored, err := c.locales.resolve(ctx, locale, c.Locales)
	if err != nil {
		return false, err
	}

	hash := c.hashKey(stored)

	value, err := c.client.HGet(ctx, hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("redis hget %s %s: %w", hash, key, err)
	}

	return c.cfg.translated(key, value, true), nil
}

// Locales lists the locales that have a translation hash.
func (c *RedisCatalog) Locales(ctx context.Context) ([]string, error) {
	keys, err := c.client.Keys(ctx, c.prefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys: %w", err)
	}

	locales := make([]string, 0, len(keys))
	for _, key := range keys {
		locales = append(locales, strings.TrimPrefix(key, c.prefix))
	}

	sort.Strings(locales)

	return locales, nil
}

// Close releases the Redis connection pool.
func (c *RedisCatalog) Close() error {
	if closer, ok := c.client.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
