package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/felipemarinho97/nyaa-indexer/schema"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func links(torrents []schema.Torrent) []string {
	out := make([]string, len(torrents))
	for i, t := range torrents {
		out[i] = t.Link
	}
	return out
}

func batch(ls ...string) []schema.Torrent {
	out := make([]schema.Torrent, len(ls))
	for i, l := range ls {
		out[i] = schema.Torrent{Title: l, Link: l}
	}
	return out
}

func TestUnseen(t *testing.T) {
	s, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	fresh, err := s.Unseen(ctx, "nyaa", batch("a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, links(fresh))

	fresh, err = s.Unseen(ctx, "nyaa", batch("c", "d", "a", "e"))
	require.NoError(t, err)
	require.Equal(t, []string{"d", "e"}, links(fresh))

	require.True(t, mr.Exists("seen:nyaa:d"))
	require.Equal(t, time.Hour, mr.TTL("seen:nyaa:d"))
}

func TestUnseenScopes(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, err := s.Unseen(ctx, "nyaa", batch("a"))
	require.NoError(t, err)

	fresh, err := s.Unseen(ctx, "sukebei", batch("a"))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, links(fresh))
}

func TestUnseenDuplicatesInBatch(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	fresh, err := s.Unseen(context.Background(), "nyaa", batch("a", "b", "a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, links(fresh))
}

func TestUnseenExpires(t *testing.T) {
	s, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	_, err := s.Unseen(ctx, "nyaa", batch("a"))
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	fresh, err := s.Unseen(ctx, "nyaa", batch("a"))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, links(fresh))
}

func TestUnseenEmpty(t *testing.T) {
	s, _ := newTestStore(t, 0)

	fresh, err := s.Unseen(context.Background(), "nyaa", nil)
	require.NoError(t, err)
	require.NotNil(t, fresh)
	require.Empty(t, fresh)
	require.Equal(t, DefaultSeenExpiration, s.ttl)
}

func TestUnseenUnavailable(t *testing.T) {
	s, mr := newTestStore(t, time.Hour)
	require.NoError(t, s.Ping(context.Background()))
	mr.Close()

	_, err := s.Unseen(context.Background(), "nyaa", batch("a"))
	require.Error(t, err)
	require.Error(t, s.Ping(context.Background()))
}
