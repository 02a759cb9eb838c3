package repository

import (
	"context"
	"testing"
	"time"

	"event-admin-api/internal/model"
	apperrors "event-admin-api/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(title, category string) *model.Event {
	return &model.Event{
		Title:       title,
		Category:    category,
		Location:    "Hall A",
		Price:       500,
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ImageURL:    "http://x/img.png",
		Description: "desc",
	}
}

func TestEventRepositoryInsert(t *testing.T) {
	truncateEvents(t)
	ctx := context.Background()
	repo := NewEventRepository(testDB)

	t.Run("Success - store assigns id and timestamps", func(t *testing.T) {
		created, err := repo.Insert(ctx, newEvent("Concert", "Music"))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		events, err := repo.Find(ctx, model.EventFilter{})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, created.ID, events[0].ID)
		assert.Equal(t, "Concert", events[0].Title)
	})
}

func TestEventRepositoryFind(t *testing.T) {
	truncateEvents(t)
	ctx := context.Background()
	repo := NewEventRepository(testDB)

	seed := []*model.Event{
		newEvent("Jazz Night", "Music"),
		newEvent("Tech Meetup", "Conference"),
		newEvent("Rock Concert", "Music"),
	}
	for _, e := range seed {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	t.Run("Success - no filter returns everything, newest first", func(t *testing.T) {
		events, err := repo.Find(ctx, model.EventFilter{})

		require.NoError(t, err)
		require.Len(t, events, 3)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i-1].CreatedAt.Before(events[i].CreatedAt))
		}
	})

	t.Run("Success - title search is a case-insensitive substring match", func(t *testing.T) {
		events, err := repo.Find(ctx, model.EventFilter{Search: "CONCERT"})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Rock Concert", events[0].Title)
	})

	t.Run("Success - search results are a subset of the unfiltered list", func(t *testing.T) {
		all, err := repo.Find(ctx, model.EventFilter{})
		require.NoError(t, err)

		filtered, err := repo.Find(ctx, model.EventFilter{Search: "o"})
		require.NoError(t, err)

		assert.LessOrEqual(t, len(filtered), len(all))
		ids := make(map[uuid.UUID]bool)
		for _, e := range all {
			ids[e.ID] = true
		}
		for _, e := range filtered {
			assert.True(t, ids[e.ID])
		}
	})

	t.Run("Success - category is an exact match", func(t *testing.T) {
		events, err := repo.Find(ctx, model.EventFilter{Category: "Music"})

		require.NoError(t, err)
		assert.Len(t, events, 2)

		events, err = repo.Find(ctx, model.EventFilter{Category: "music"})
		require.NoError(t, err)
		assert.Len(t, events, 0)
	})

	t.Run("Success - both filters combine", func(t *testing.T) {
		events, err := repo.Find(ctx, model.EventFilter{Search: "jazz", Category: "Music"})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Jazz Night", events[0].Title)
	})

	t.Run("Success - no match is an empty slice, not an error", func(t *testing.T) {
		events, err := repo.Find(ctx, model.EventFilter{Search: "nothing like this"})

		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Len(t, events, 0)
	})
}

func TestEventRepositoryUpdateByID(t *testing.T) {
	truncateEvents(t)
	ctx := context.Background()
	repo := NewEventRepository(testDB)

	created, err := repo.Insert(ctx, newEvent("Concert", "Music"))
	require.NoError(t, err)

	t.Run("Success - partial patch only touches submitted fields", func(t *testing.T) {
		title := "Renamed Concert"
		price := 750.0

		updated, err := repo.UpdateByID(ctx, created.ID, model.UpdateEventParams{
			Title: &title,
			Price: &price,
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed Concert", updated.Title)
		assert.Equal(t, 750.0, updated.Price)
		assert.Equal(t, "Music", updated.Category)
		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
	})

	t.Run("Failed - nonexistent id never creates an entity", func(t *testing.T) {
		title := "Ghost"
		_, err := repo.UpdateByID(ctx, uuid.New(), model.UpdateEventParams{Title: &title})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

		events, err := repo.Find(ctx, model.EventFilter{})
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("Failed - empty patch", func(t *testing.T) {
		_, err := repo.UpdateByID(ctx, created.ID, model.UpdateEventParams{})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestEventRepositoryDeleteByID(t *testing.T) {
	truncateEvents(t)
	ctx := context.Background()
	repo := NewEventRepository(testDB)

	created, err := repo.Insert(ctx, newEvent("Concert", "Music"))
	require.NoError(t, err)

	t.Run("Success - deleted id disappears from listings", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, created.ID))

		events, err := repo.Find(ctx, model.EventFilter{})
		require.NoError(t, err)
		for _, e := range events {
			assert.NotEqual(t, created.ID, e.ID)
		}
	})

	t.Run("Failed - second delete on the same id", func(t *testing.T) {
		err := repo.DeleteByID(ctx, created.ID)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}
