package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client), mr
}

type catalogEntry struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

func TestGetOrSetJSONLoadsOnceThenServesCached(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	loads := 0
	loader := func(ctx context.Context) ([]catalogEntry, error) {
		loads++
		return []catalogEntry{{ID: 1, Slug: "forum-karlin"}}, nil
	}

	first, err := GetOrSetJSON(ctx, cache, KeyVenueCatalog(), time.Minute, loader)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := GetOrSetJSON(ctx, cache, KeyVenueCatalog(), time.Minute, loader)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads)
}

func TestGetOrSetJSONPropagatesLoaderError(t *testing.T) {
	cache, _ := newTestCache(t)

	wantErr := errors.New("store down")
	_, err := GetOrSetJSON(context.Background(), cache, KeyVenueCatalog(), time.Minute,
		func(ctx context.Context) ([]catalogEntry, error) {
			return nil, wantErr
		})

	assert.ErrorIs(t, err, wantErr)
}

func TestGetOrSetJSONReloadsAfterExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	loads := 0
	loader := func(ctx context.Context) (catalogEntry, error) {
		loads++
		return catalogEntry{ID: int64(loads)}, nil
	}

	_, err := GetOrSetJSON(ctx, cache, KeyHomepageVenues(), time.Minute, loader)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	got, err := GetOrSetJSON(ctx, cache, KeyHomepageVenues(), time.Minute, loader)
	require.NoError(t, err)

	assert.Equal(t, 2, loads)
	assert.Equal(t, int64(2), got.ID)
}

func TestInvalidateVenueDropsDetailAndListingProjections(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetString(ctx, KeyVenueDetail("forum-karlin"), "{}", time.Minute))
	require.NoError(t, cache.SetString(ctx, KeyVenueDetail("la-fabrika"), "{}", time.Minute))
	require.NoError(t, cache.SetString(ctx, KeyVenueCatalog(), "[]", time.Minute))
	require.NoError(t, cache.SetString(ctx, KeyHomepageVenues(), "[]", time.Minute))

	require.NoError(t, cache.InvalidateVenue(ctx, "forum-karlin"))

	assert.False(t, mr.Exists(KeyVenueDetail("forum-karlin")))
	assert.False(t, mr.Exists(KeyVenueCatalog()))
	assert.False(t, mr.Exists(KeyHomepageVenues()))

	// Unrelated venues keep their detail entries.
	assert.True(t, mr.Exists(KeyVenueDetail("la-fabrika")))
}

func TestGetStringMissIsNotAnError(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok, err := cache.GetString(context.Background(), KeyVenueCatalog())

	require.NoError(t, err)
	assert.False(t, ok)
}
