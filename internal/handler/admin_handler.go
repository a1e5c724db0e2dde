package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/models/response"
	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/auth"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// AdminHandler handles admin access HTTP requests
type AdminHandler struct {
	adminService service.AdminService
	jwtSecret    string
	logger       *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminService, jwtSecret string, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		jwtSecret:    jwtSecret,
		logger:       logger,
	}
}

// VerifyPasswordRequest is the body of POST /api/admin/verify
type VerifyPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// SetPasswordRequest is the body of POST /api/admin/password
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// Status handles GET /api/admin/status. An absent or invalid token is not
// an error; the caller is simply not an admin.
// @Summary Report admin status of the caller
// @Tags admin
// @Produce json
// @Success 200 {object} response.AdminStatusResponse
// @Router /api/admin/status [get]
func (h *AdminHandler) Status(c *gin.Context) {
	isAdmin := false
	if claims, err := auth.FromAuthHeader(c.GetHeader("Authorization"), h.jwtSecret); err == nil {
		isAdmin = claims.Role == auth.RoleAdmin && h.adminService.Status(claims.UserID)
	}
	c.JSON(http.StatusOK, response.AdminStatusResponse{IsAdmin: isAdmin})
}

// Verify handles POST /api/admin/verify, the admin panel login. A correct
// password yields a session token; a wrong one yields success=false.
// @Summary Verify the admin password and issue a session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body VerifyPasswordRequest true "Password"
// @Success 200 {object} response.VerifyPasswordResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /api/admin/verify [post]
func (h *AdminHandler) Verify(c *gin.Context) {
	var req VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "password is required")
		return
	}

	result, err := h.adminService.VerifyPassword(req.Password)
	if err != nil {
		respondError(c, err, "Admin credentials not found")
		return
	}
	c.JSON(http.StatusOK, result)
}

// SetPassword handles POST /api/admin/password (admin only)
// @Summary Change the admin password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetPasswordRequest true "New password"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/password [post]
func (h *AdminHandler) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "password is required")
		return
	}

	if err := h.adminService.SetPassword(req.Password); err != nil {
		respondError(c, err, "Admin credentials not found")
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Message: "Password updated"})
}
