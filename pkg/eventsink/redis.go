package eventsink

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Publisher is the subset of the go-redis client used by RedisSink.
// *redis.Client, *redis.ClusterClient and *redis.Ring all satisfy it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisSink publishes records as JSON to a Redis pub/sub channel.
type RedisSink struct {
	pub     Publisher
	channel string
}

// NewRedisSink returns a sink publishing to channel.
func NewRedisSink(pub Publisher, channel string) (*RedisSink, error) {
	if pub == nil {
		return nil, ErrNilSink
	}
	if channel == "" {
		return nil, ErrEmptyChannel
	}
	return &RedisSink{pub: pub, channel: channel}, nil
}

// Channel returns the pub/sub channel name.
func (s *RedisSink) Channel() string { return s.channel }

// Write implements Sink.
func (s *RedisSink) Write(ctx context.Context, r Record) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return errors.Join(ErrEncodeRecord, err)
	}
	if err := s.pub.Publish(ctx, s.channel, payload).Err(); err != nil {
		return errors.Join(ErrPublish, err)
	}
	return nil
}
