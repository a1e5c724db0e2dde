package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// NewsHandler handles news HTTP requests
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		logger:      logger,
	}
}

// CreateNewsRequest is the body of POST /api/news
type CreateNewsRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content"`
	ImageBase64 string `json:"imageBase64"`
}

// UpdateNewsRequest is the body of PUT /api/news/:id
type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ImageBase64 string  `json:"imageBase64"`
}

// List handles GET /api/news
// @Summary List news posts
// @Description Get all news posts, newest first
// @Tags news
// @Produce json
// @Success 200 {array} models.News
// @Failure 500 {object} utils.ErrorBody
// @Router /api/news [get]
func (h *NewsHandler) List(c *gin.Context) {
	news, err := h.newsService.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list news")
		respondError(c, err, "News post not found")
		return
	}
	c.JSON(http.StatusOK, news)
}

// Create handles POST /api/news
// @Summary Create a news post
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNewsRequest true "News fields"
// @Success 200 {object} models.News
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "title is required")
		return
	}

	news, err := h.newsService.Create(service.CreateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "News post not found")
		return
	}
	c.JSON(http.StatusOK, news)
}

// Update handles PUT /api/news/:id
// @Summary Update a news post
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body UpdateNewsRequest true "Fields to change"
// @Success 200 {object} models.News
// @Failure 404 {object} utils.ErrorBody
// @Router /api/news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid news ID")
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	news, err := h.newsService.Update(id, service.UpdateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "News post not found")
		return
	}
	c.JSON(http.StatusOK, news)
}

// Delete handles DELETE /api/news/:id
// @Summary Delete a news post
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /api/news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid news ID")
		return
	}

	if err := h.newsService.Delete(id); err != nil {
		respondError(c, err, "News post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
