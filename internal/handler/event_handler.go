package handler

import (
	"errors"
	"net/http"
	"strconv"

	"event-admin-api/internal/model"
	"event-admin-api/internal/service"
	"event-admin-api/internal/upload"
	apperrors "event-admin-api/pkg/app_errors"
	"event-admin-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventHandler struct {
	service  service.EventService
	resolver *upload.Resolver
}

func NewEventHandler(service service.EventService, resolver *upload.Resolver) *EventHandler {
	return &EventHandler{service: service, resolver: resolver}
}

// RegisterRoutes wires the event routes; listing stays public, writes go
// behind the token gate.
func (h *EventHandler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/events", h.List)

	protected := r.Group("", requireAuth)
	{
		protected.POST("/events", h.Create)
		protected.PUT("/events/:id", h.UpdateByID)
		protected.DELETE("/events/:id", h.DeleteByID)
	}
}

type ListEventsQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// CreateEventRequest carries the multipart admin form. Price and date
// arrive as form strings and are parsed explicitly so malformed values
// surface as field-level validation errors, not bind failures.
type CreateEventRequest struct {
	Title       string `form:"title"`
	Category    string `form:"category"`
	Location    string `form:"location"`
	Price       string `form:"price"`
	Date        string `form:"date"`
	ImageURL    string `form:"imageUrl"`
	Description string `form:"description"`
}

type UpdateEventRequest struct {
	Title       *string `form:"title"`
	Category    *string `form:"category"`
	Location    *string `form:"location"`
	Price       *string `form:"price"`
	Date        *string `form:"date"`
	ImageURL    *string `form:"imageUrl"`
	Description *string `form:"description"`
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	events, err := h.service.List(c, model.EventFilter{
		Search:   query.Search,
		Category: query.Category,
	})
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindForm(c, &req); err != nil {
		return
	}

	ve := apperrors.NewValidationError()

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil {
		ve.Add("price", "must be a number")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ve.Add("date", "must be a valid date")
	}

	if ve.HasErrors() {
		h.handleError(c, ve, "Create")
		return
	}

	imageURL, err := h.resolveImage(c, req.ImageURL)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Category:    req.Category,
		Location:    req.Location,
		Price:       price,
		Date:        date,
		ImageURL:    imageURL,
		Description: req.Description,
	}

	created, err := h.service.Create(c, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) UpdateByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}

	var req UpdateEventRequest
	if err := BindForm(c, &req); err != nil {
		return
	}

	ve := apperrors.NewValidationError()

	params := model.UpdateEventParams{
		Title:       req.Title,
		Category:    req.Category,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if req.Price != nil {
		price, err := strconv.ParseFloat(*req.Price, 64)
		if err != nil {
			ve.Add("price", "must be a number")
		} else {
			params.Price = &price
		}
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			ve.Add("date", "must be a valid date")
		} else {
			params.Date = &date
		}
	}

	if ve.HasErrors() {
		h.handleError(c, ve, "UpdateByID")
		return
	}

	// An uploaded file overrides any submitted imageUrl, on update too.
	if file, err := c.FormFile("image"); err == nil && file != nil {
		uploaded, err := h.resolver.Resolve(file, "")
		if err != nil {
			h.handleError(c, err, "UpdateByID")
			return
		}
		params.ImageURL = &uploaded
	}

	if !params.HasChanges() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	updated, err := h.service.UpdateByID(c, id, params)
	if err != nil {
		h.handleError(c, err, "UpdateByID")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid event id"})
		return
	}

	if err := h.service.DeleteByID(c, id); err != nil {
		h.handleError(c, err, "DeleteByID")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// resolveImage applies the upload-wins precedence for create requests.
func (h *EventHandler) resolveImage(c *gin.Context, submittedURL string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file part in the form; fall back to the submitted URL.
		return h.resolver.Resolve(nil, submittedURL)
	}
	return h.resolver.Resolve(file, submittedURL)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error(), "fields": ve.Fields})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
