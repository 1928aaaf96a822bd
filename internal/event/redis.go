package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultChannel is the redis channel events are published on
const DefaultChannel = "feedback:events"

// CallRecorder records the outcome of calls to redis
type CallRecorder interface {
	RecordExternalCall(target, operation string, duration time.Duration, err error)
}

// RedisBroker publishes events to a redis channel and relays the channel into a Hub,
// so every instance's websocket clients see every instance's events
type RedisBroker struct {
	client   *redis.Client
	channel  string
	logger   *zap.Logger
	recorder CallRecorder
}

// NewRedisBroker creates a broker on the given channel
func NewRedisBroker(client *redis.Client, channel string, logger *zap.Logger, recorder CallRecorder) *RedisBroker {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBroker{
		client:   client,
		channel:  channel,
		logger:   logger,
		recorder: recorder,
	}
}

// Publish sends the event to the redis channel
func (b *RedisBroker) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	start := time.Now()
	err = b.client.Publish(ctx, b.channel, payload).Err()
	if b.recorder != nil {
		b.recorder.RecordExternalCall("redis", "publish", time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("failed to publish event to redis: %w", err)
	}
	return nil
}

// Relay subscribes to the channel and forwards every valid event to hub until ctx is cancelled
func (b *RedisBroker) Relay(ctx context.Context, hub *Hub) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	// Wait for the subscription to be confirmed before reading
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	b.logger.Info("Relaying redis events to stream hub", zap.String("channel", b.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			payload, err := decode(msg.Payload)
			if err != nil {
				b.logger.Warn("Ignoring malformed event", zap.Error(err))
				continue
			}
			if err := hub.BroadcastRaw(ctx, payload); err != nil {
				return nil
			}
		}
	}
}

// decode validates a channel message and returns the bytes to forward
func decode(raw string) ([]byte, error) {
	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, err
	}
	if e.Type == "" {
		return nil, fmt.Errorf("event has no type")
	}
	return []byte(raw), nil
}
