// Package redis publishes ADSC's decision trail to a Redis pub/sub
// channel — a cheap fan-out for dashboards or alert consumers that
// don't need the durability of the Postgres audit table. It also has
// helpers that store and clear a per-target stability deadline key;
// the engine does not call them and nothing here reads the key back,
// so a restart still loses an in-flight dwell.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/decisionlog"
	"github.com/redis/go-redis/v9"
)

// Stream wraps a Redis client used for decision fan-out and stability
// deadline persistence.
type Stream struct {
	client  *redis.Client
	channel string
}

func NewStream(url, channel string) (*Stream, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Stream{client: client, channel: channel}, nil
}

func (s *Stream) Close() error {
	return s.client.Close()
}

func (s *Stream) Client() *redis.Client {
	return s.client
}

// PublishDecision broadcasts one decision to subscribers.
func (s *Stream) PublishDecision(ctx context.Context, d decisionlog.Decision) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish decision: %w", err)
	}
	return nil
}

// stabilityDeadlineKey namespaces the deadline key per target slot so
// concurrent timers (should that ever happen) don't collide.
func stabilityDeadlineKey(target int) string {
	return fmt.Sprintf("adsc:stability:deadline:%d", target)
}

// PersistStabilityDeadline records when an armed stability timer is
// due to fire, with a TTL slightly beyond the dwell so a crashed
// process doesn't leave a stale key behind.
func (s *Stream) PersistStabilityDeadline(ctx context.Context, target int, deadline time.Time) error {
	ttl := time.Until(deadline) + time.Minute
	if ttl <= 0 {
		ttl = time.Minute
	}
	return s.client.Set(ctx, stabilityDeadlineKey(target), deadline.UTC().Format(time.RFC3339Nano), ttl).Err()
}

// ClearStabilityDeadline removes a persisted deadline, mirroring
// cancellation of the in-memory timer.
func (s *Stream) ClearStabilityDeadline(ctx context.Context, target int) error {
	return s.client.Del(ctx, stabilityDeadlineKey(target)).Err()
}
