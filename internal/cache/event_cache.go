package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"event-admin-api/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	listTTL         = 5 * time.Minute
	revisionKeyName = "events:rev"
)

// EventListCache keeps listing results in Redis so the public /events
// endpoint does not hit Postgres on every read. Invalidation bumps a
// revision counter instead of scanning keys; superseded entries expire
// through their TTL.
type EventListCache interface {
	Get(ctx context.Context, filter model.EventFilter) ([]*model.Event, bool, error)
	Set(ctx context.Context, filter model.EventFilter, events []*model.Event) error
	Invalidate(ctx context.Context) error
}

type EventListCacheImpl struct {
	client *redis.Client
}

func NewEventListCache(client *redis.Client) EventListCache {
	return &EventListCacheImpl{
		client: client,
	}
}

func (c *EventListCacheImpl) listKey(ctx context.Context, filter model.EventFilter) (string, error) {
	rev, err := c.client.Get(ctx, revisionKeyName).Result()
	if err == redis.Nil {
		rev = "0"
	} else if err != nil {
		return "", err
	}
	return fmt.Sprintf("events:list:%s:search=%s:category=%s",
		rev, strings.ToLower(filter.Search), filter.Category), nil
}

func (c *EventListCacheImpl) Get(ctx context.Context, filter model.EventFilter) ([]*model.Event, bool, error) {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		return nil, false, err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	events := make([]*model.Event, 0)
	if err := json.Unmarshal(payload, &events); err != nil {
		return nil, false, err
	}
	return events, true, nil
}

func (c *EventListCacheImpl) Set(ctx context.Context, filter model.EventFilter, events []*model.Event) error {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, listTTL).Err()
}

func (c *EventListCacheImpl) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, revisionKeyName).Err()
}
