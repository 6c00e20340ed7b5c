package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lit/internal/model"
)

type fakeRedis struct {
	hashes map[string]map[string]string
	err    error
	closed bool
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func (f *fakeRedis) HGet(_ context.Context, key, field string) *redis.StringCmd {
	value, ok := f.hashes[key][field]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, f.err)
}

func (f *fakeRedis) Keys(_ context.Context, pattern string) *redis.StringSliceCmd {
	prefix := strings.TrimSuffix(pattern, "*")

	var keys []string

	for key := range f.hashes {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return redis.NewStringSliceResult(keys, f.err)
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{hashes: map[string]map[string]string{
		"i18n:fr":    {"greeting.hello": "Bonjour", "greeting.bye": "greeting.bye"},
		"i18n:pt-BR": {"greeting.hello": "Olá"},
		"i18n:zh_TW": {"greeting.hello": "你好"},
	}}
}

func TestRedisCatalog_HasKey(t *testing.T) {
	catalog := newRedisCatalog(newFakeRedis(), "")
	ctx := context.Background()

	ok, err := catalog.HasKey(ctx, "greeting.hello", "fr")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.HasKey(ctx, "greeting.bye", "fr")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.HasKey(ctx, "nav.home", "fr")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = catalog.HasKey(ctx, "greeting.hello", "pt_BR")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = catalog.HasKey(ctx, "greeting.hello", "de")
	require.ErrorIs(t, err, m.ErrUnknownLocale)
	assert.Contains(t, err.Error(), "fr, pt-BR, zh_TW")
}

func TestRedisCatalog_Strict(t *testing.T) {
	catalog := newRedisCatalog(newFakeRedis(), DefaultRedisKeyPrefix, WithStrict(true))

	ok, err := catalog.HasKey(context.Background(), "greeting.bye", "fr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCatalog_ConnectionError(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")

	_, err := newRedisCatalog(client, "").HasKey(context.Background(), "greeting.hello", "fr")
	require.ErrorContains(t, err, "connection refused")

	_, err = newRedisCatalog(client, "").Locales(context.Background())
	require.Error(t, err)
}

func TestRedisCatalog_Locales(t *testing.T) {
	locales, err := newRedisCatalog(newFakeRedis(), "").Locales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fr", "pt-BR", "zh_TW"}, locales)
}

func TestRedisCatalog_UnderscoreLocaleHash(t *testing.T) {
	catalog := newRedisCatalog(newFakeRedis(), "")
	ctx := context.Background()

	for _, locale := range []string{"zh_TW", "zh-TW"} {
		ok, err := catalog.HasKey(ctx, "greeting.hello", locale)
		require.NoError(t, err, locale)
		assert.True(t, ok, locale)

		ok, err = catalog.HasKey(ctx, "greeting.bye", locale)
		require.NoError(t, err, locale)
		assert.False(t, ok, locale)
	}
}

func TestRedisCatalog_Close(t *testing.T) {
	client := newFakeRedis()

	require.NoError(t, newRedisCatalog(client, "").Close())
	assert.True(t, client.closed)

	catalog := NewRedisCatalog(RedisConfig{Addr: "localhost:0"})
	require.NoError(t, catalog.Close())
}
