package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// StaffHandler handles staff HTTP requests
type StaffHandler struct {
	staffService service.StaffService
	logger       *logger.Logger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService service.StaffService, logger *logger.Logger) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		logger:       logger,
	}
}

// CreateStaffRequest is the body of POST /api/staff
type CreateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	ImageBase64 string `json:"imageBase64"`
}

// UpdateStaffRequest is the body of PUT /api/staff/:id
type UpdateStaffRequest struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	ImageBase64 string  `json:"imageBase64"`
}

// List handles GET /api/staff
// @Summary List staff members
// @Description Get all staff members ordered by their display order
// @Tags staff
// @Produce json
// @Success 200 {array} models.Staff
// @Failure 500 {object} utils.ErrorBody
// @Router /api/staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.staffService.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list staff")
		respondError(c, err, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// Create handles POST /api/staff
// @Summary Create a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStaffRequest true "Staff fields"
// @Success 200 {object} models.Staff
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/staff [post]
func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "name and position are required")
		return
	}

	staff, err := h.staffService.Create(service.CreateStaffInput{
		Name:        req.Name,
		Position:    req.Position,
		Description: req.Description,
		Order:       req.Order,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// Update handles PUT /api/staff/:id
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Param request body UpdateStaffRequest true "Fields to change"
// @Success 200 {object} models.Staff
// @Failure 404 {object} utils.ErrorBody
// @Router /api/staff/{id} [put]
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid staff ID")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.Update(id, service.UpdateStaffInput{
		Name:        req.Name,
		Position:    req.Position,
		Description: req.Description,
		Order:       req.Order,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// Delete handles DELETE /api/staff/:id
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /api/staff/{id} [delete]
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid staff ID")
		return
	}

	if err := h.staffService.Delete(id); err != nil {
		respondError(c, err, "Staff member not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
