package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// AboutHandler handles about page content HTTP requests
type AboutHandler struct {
	aboutService service.AboutService
	logger       *logger.Logger
}

// NewAboutHandler creates a new about handler
func NewAboutHandler(aboutService service.AboutService, logger *logger.Logger) *AboutHandler {
	return &AboutHandler{
		aboutService: aboutService,
		logger:       logger,
	}
}

// UpdateAboutRequest is the body of PUT /api/about. Advantages travels as
// a JSON-encoded string, not a nested array.
type UpdateAboutRequest struct {
	Title      *string `json:"title"`
	Content    string  `json:"content" binding:"required"`
	Advantages string  `json:"advantages" binding:"required"`
}

// Get handles GET /api/about
// @Summary Get about page content
// @Description Get the singleton about content, creating defaults on first access
// @Tags about
// @Produce json
// @Success 200 {object} models.AboutContent
// @Failure 500 {object} utils.ErrorBody
// @Router /api/about [get]
func (h *AboutHandler) Get(c *gin.Context) {
	content, err := h.aboutService.Get()
	if err != nil {
		respondError(c, err, "About content not found")
		return
	}
	c.JSON(http.StatusOK, content)
}

// Update handles PUT /api/about
// @Summary Update about page content
// @Tags about
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateAboutRequest true "Content fields"
// @Success 200 {object} models.AboutContent
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/about [put]
func (h *AboutHandler) Update(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "content and advantages are required")
		return
	}

	content, err := h.aboutService.Update(service.UpdateAboutInput{
		Title:      req.Title,
		Content:    req.Content,
		Advantages: req.Advantages,
	})
	if err != nil {
		respondError(c, err, "About content not found")
		return
	}
	c.JSON(http.StatusOK, content)
}
