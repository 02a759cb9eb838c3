package service

import (
	"context"

	"event-admin-api/internal/cache"
	"event-admin-api/internal/model"
	"event-admin-api/internal/repository"
	"event-admin-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	UpdateByID(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type EventServiceImpl struct {
	repo      repository.EventRepository
	listCache cache.EventListCache
}

func NewEventService(repo repository.EventRepository, listCache cache.EventListCache) EventService {
	return &EventServiceImpl{repo: repo, listCache: listCache}
}

// List serves from the Redis list cache when possible. Cache failures are
// logged and fall through to the repository; reads never fail on a cache
// problem alone.
func (s *EventServiceImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	if s.listCache != nil {
		events, hit, err := s.listCache.Get(ctx, filter)
		if err != nil {
			logger.WithComponent("service").Warn("Event list cache read failed", zap.Error(err))
		} else if hit {
			return events, nil
		}
	}

	events, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.listCache != nil {
		if err := s.listCache.Set(ctx, filter, events); err != nil {
			logger.WithComponent("service").Warn("Event list cache write failed", zap.Error(err))
		}
	}
	return events, nil
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, event)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return created, nil
}

func (s *EventServiceImpl) UpdateByID(ctx context.Context, id uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateByID(ctx, id, params)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return updated, nil
}

func (s *EventServiceImpl) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *EventServiceImpl) invalidateListCache(ctx context.Context) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(ctx); err != nil {
		// Stale entries age out via TTL, so a failed bump is not fatal.
		logger.WithComponent("service").Warn("Event list cache invalidation failed", zap.Error(err))
	}
}
