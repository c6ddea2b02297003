// Package redis bridges decoded referee messages to a Redis pub/sub
// channel for downstream dashboards. It deliberately never reads state
// back or persists a queue of messages: the session layer is the only
// owner of "latest value" semantics (see pkg/session's watch slots); this
// package is a one-way publish sink, in keeping with the protocol
// engine's message-persistence non-goal.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client wraps a Redis connection scoped to publishing telemetry.
type Client struct {
	client *redis.Client
	ctx    context.Context
}

// New connects to addr and verifies it with a ping.
func New(addr, password string, db int) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: connect: %w", err)
	}

	return &Client{client: client, ctx: ctx}, nil
}

// WriteAndPublishString records the latest string value for (key, field)
// and publishes a "field:value" notification on the key's channel in one
// pipelined round trip.
func (c *Client) WriteAndPublishString(key, field, value string) error {
	pipe := c.client.Pipeline()
	pipe.HSet(c.ctx, key, field, value)
	pipe.Publish(c.ctx, key, fmt.Sprintf("%s:%s", field, value))
	_, err := pipe.Exec(c.ctx)
	return err
}

// WriteAndPublishInt is WriteAndPublishString for integer telemetry.
func (c *Client) WriteAndPublishInt(key, field string, value int) error {
	pipe := c.client.Pipeline()
	pipe.HSet(c.ctx, key, field, value)
	pipe.Publish(c.ctx, key, fmt.Sprintf("%s:%d", field, value))
	_, err := pipe.Exec(c.ctx)
	return err
}

// Publish sends a message on a channel with no accompanying state write.
func (c *Client) Publish(channel, message string) error {
	return c.client.Publish(c.ctx, channel, message).Err()
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}
