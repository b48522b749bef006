// Package events publishes application lifecycle events to Redis pub/sub
// for downstream consumers (notification relays, dashboards). Publishing is
// best-effort: a nil publisher or a failed publish never affects the
// request that triggered it.
package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channel names.
const (
	ApplicationCreated       = "application.created"
	ApplicationStatusChanged = "application.status_changed"
)

// ApplicationEvent is the JSON payload published on application channels.
type ApplicationEvent struct {
	ApplicationID string `json:"applicationId"`
	SeekerID      string `json:"seekerId"`
	JobID         string `json:"jobId"`
	Status        string `json:"status"`
}

// Publisher wraps a Redis client. A nil *Publisher is valid and drops all
// events, so callers never need to branch on whether eventing is enabled.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher connects to Redis at url. An empty url returns nil,
// disabling event publishing.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("events: invalid REDIS_URL, publishing disabled: %v", err)
		return nil
	}
	return &Publisher{rdb: redis.NewClient(opts)}
}

// Publish sends the event on the given channel.
func (p *Publisher) Publish(ctx context.Context, channel string, ev ApplicationEvent) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("events: marshal failed: %v", err)
		return
	}
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("events: publish %s failed: %v", channel, err)
	}
}
