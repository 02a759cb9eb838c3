package model

import (
	"time"

	apperrors "event-admin-api/pkg/app_errors"

	"github.com/google/uuid"
)

// Event is a single listing shown on the public booking site. JSON field
// names are the public API contract consumed by the admin frontend.
type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Category    string    `json:"category" db:"category"`
	Location    string    `json:"location" db:"location"`
	Price       float64   `json:"price" db:"price"`
	Date        time.Time `json:"date" db:"date"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Validate checks the full set of data-model invariants before an insert.
func (e *Event) Validate() error {
	ve := apperrors.NewValidationError()

	if e.Title == "" {
		ve.Add("title", "required")
	}
	if e.Category == "" {
		ve.Add("category", "required")
	}
	if e.Location == "" {
		ve.Add("location", "required")
	}
	if e.Price < 0 {
		ve.Add("price", "must be >= 0")
	}
	if e.Date.IsZero() {
		ve.Add("date", "required")
	}
	if e.ImageURL == "" {
		ve.Add("imageUrl", "required")
	}
	if e.Description == "" {
		ve.Add("description", "required")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// UpdateEventParams carries a partial patch; nil fields are left untouched.
type UpdateEventParams struct {
	Title       *string
	Category    *string
	Location    *string
	Price       *float64
	Date        *time.Time
	ImageURL    *string
	Description *string
}

func (p *UpdateEventParams) HasChanges() bool {
	return p.Title != nil || p.Category != nil || p.Location != nil ||
		p.Price != nil || p.Date != nil || p.ImageURL != nil || p.Description != nil
}

// Validate re-checks the invariants for the fields present in the patch.
func (p *UpdateEventParams) Validate() error {
	ve := apperrors.NewValidationError()

	if p.Title != nil && *p.Title == "" {
		ve.Add("title", "must not be empty")
	}
	if p.Category != nil && *p.Category == "" {
		ve.Add("category", "must not be empty")
	}
	if p.Location != nil && *p.Location == "" {
		ve.Add("location", "must not be empty")
	}
	if p.Price != nil && *p.Price < 0 {
		ve.Add("price", "must be >= 0")
	}
	if p.Date != nil && p.Date.IsZero() {
		ve.Add("date", "must be a valid date")
	}
	if p.ImageURL != nil && *p.ImageURL == "" {
		ve.Add("imageUrl", "must not be empty")
	}
	if p.Description != nil && *p.Description == "" {
		ve.Add("description", "must not be empty")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// EventFilter narrows a listing query. Zero values impose no constraint.
type EventFilter struct {
	// Search matches the title as a case-insensitive substring.
	Search string
	// Category is an exact match.
	Category string
}
