package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// ContactHandler handles contact request HTTP requests
type ContactHandler struct {
	contactService service.ContactService
	logger         *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// SubmitContactRequest is the body of POST /api/contacts
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
	Type    string `json:"type" binding:"required"`
}

// Submit handles POST /api/contacts. This endpoint is public; anyone may
// leave a table or banquet request.
// @Summary Submit a contact request
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body SubmitContactRequest true "Request fields"
// @Success 200 {object} models.ContactRequest
// @Failure 400 {object} utils.ErrorBody
// @Router /api/contacts [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "name, phone and type are required")
		return
	}

	request, err := h.contactService.Submit(service.SubmitContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		respondError(c, err, "Contact request not found")
		return
	}
	c.JSON(http.StatusOK, request)
}

// List handles GET /api/contacts (admin only)
// @Summary List contact requests
// @Description Get all submitted contact requests, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactRequest
// @Failure 401 {object} utils.ErrorBody
// @Router /api/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	requests, err := h.contactService.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list contact requests")
		respondError(c, err, "Contact request not found")
		return
	}
	c.JSON(http.StatusOK, requests)
}
