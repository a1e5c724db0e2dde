package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventService service.EventService
	logger       *logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// CreateEventRequest is the body of POST /api/events
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	ImageBase64 string    `json:"imageBase64"`
}

// UpdateEventRequest is the body of PUT /api/events/:id
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	ImageBase64 string     `json:"imageBase64"`
}

// List handles GET /api/events
// @Summary List events
// @Description Get all events ordered by date, earliest first
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 500 {object} utils.ErrorBody
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list events")
		respondError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create handles POST /api/events
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event fields"
// @Success 200 {object} models.Event
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "title and date are required")
		return
	}

	event, err := h.eventService.Create(service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Update handles PUT /api/events/:id
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body UpdateEventRequest true "Fields to change"
// @Success 200 {object} models.Event
// @Failure 404 {object} utils.ErrorBody
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid event ID")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	event, err := h.eventService.Update(id, service.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /api/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid event ID")
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		respondError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
