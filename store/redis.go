package store

import (
	"context"
	"fmt"
	"time"

	"github.com/felipemarinho97/nyaa-indexer/schema"
	"github.com/redis/go-redis/v9"
)

var DefaultSeenExpiration = 24 * time.Hour * 7 // 7 days

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(addr string, ttl time.Duration) *Redis {
	return NewRedisFromClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
	}), ttl)
}

// NewRedisFromClient wraps an existing client. A non-positive ttl selects
// DefaultSeenExpiration.
func NewRedisFromClient(c *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultSeenExpiration
	}
	return &Redis{client: c, ttl: ttl}
}

func seenKey(scope, link string) string {
	return fmt.Sprintf("seen:%s:%s", scope, link)
}

// Unseen marks every torrent in scope as seen and returns, in order, the ones
// that had not been seen before. A link repeated within the batch counts as
// seen after its first occurrence.
func (r *Redis) Unseen(ctx context.Context, scope string, torrents []schema.Torrent) ([]schema.Torrent, error) {
	if len(torrents) == 0 {
		return []schema.Torrent{}, nil
	}

	cmds := make([]*redis.BoolCmd, len(torrents))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, t := range torrents {
			cmds[i] = pipe.SetNX(ctx, seenKey(scope, t.Link), time.Now().Unix(), r.ttl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark torrents as seen: %w", err)
	}

	fresh := make([]schema.Torrent, 0, len(torrents))
	for i, cmd := range cmds {
		if cmd.Val() {
			fresh = append(fresh, torrents[i])
		}
	}
	return fresh, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
