package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/pkg/logger"
	"bardabar-be-svc/pkg/utils"
)

// MenuHandler handles menu category and item HTTP requests
type MenuHandler struct {
	menuService service.MenuService
	logger      *logger.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService service.MenuService, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger,
	}
}

// CreateCategoryRequest is the body of POST /api/menu/categories
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Order int    `json:"order"`
}

// UpdateCategoryRequest is the body of PUT /api/menu/categories/:id
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

// CreateItemRequest is the body of POST /api/menu/items
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	ArticleCode string  `json:"articleCode"`
	ImageBase64 string  `json:"imageBase64"`
}

// UpdateItemRequest is the body of PUT /api/menu/items/:id
type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *uint    `json:"categoryId"`
	ArticleCode *string  `json:"articleCode"`
	ImageBase64 string   `json:"imageBase64"`
}

// ListCategories handles GET /api/menu/categories
// @Summary List menu categories
// @Description Get all menu categories ordered by their display order
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuCategory
// @Failure 500 {object} utils.ErrorBody
// @Router /api/menu/categories [get]
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list menu categories")
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/menu/categories
// @Summary Create a menu category
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "Category fields"
// @Success 200 {object} models.MenuCategory
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/menu/categories [post]
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "name is required")
		return
	}

	category, err := h.menuService.CreateCategory(service.CreateCategoryInput{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PUT /api/menu/categories/:id
// @Summary Update a menu category
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.MenuCategory
// @Failure 404 {object} utils.ErrorBody
// @Router /api/menu/categories/{id} [put]
func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	category, err := h.menuService.UpdateCategory(id, service.UpdateCategoryInput{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/menu/categories/:id.
// The category's items are removed with it.
// @Summary Delete a menu category and its items
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /api/menu/categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID")
		return
	}

	if err := h.menuService.DeleteCategory(id); err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListItems handles GET /api/menu/items
// @Summary List menu items
// @Description Get menu items ordered by name, optionally for one category
// @Tags menu
// @Produce json
// @Param categoryId query int false "Filter by category"
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} utils.ErrorBody
// @Router /api/menu/items [get]
func (h *MenuHandler) ListItems(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid categoryId parameter")
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	items, err := h.menuService.ListItems(categoryID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list menu items")
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles POST /api/menu/items
// @Summary Create a menu item
// @Description Create a menu item; an inline image is stored first and only its URL persisted
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item fields"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/menu/items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "name, price and categoryId are required")
		return
	}

	item, err := h.menuService.CreateItem(service.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ArticleCode: req.ArticleCode,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /api/menu/items/:id
// @Summary Update a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body UpdateItemRequest true "Fields to change"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} utils.ErrorBody
// @Router /api/menu/items/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateItem(id, service.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ArticleCode: req.ArticleCode,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/menu/items/:id
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /api/menu/items/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID")
		return
	}

	if err := h.menuService.DeleteItem(id); err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ImportItems handles POST /api/menu/items/import
// @Summary Bulk import menu items from an Excel workbook
// @Tags menu
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} response.ImportResult
// @Failure 400 {object} utils.ErrorBody
// @Router /api/menu/items/import [post]
func (h *MenuHandler) ImportItems(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Excel file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerErrorResponse(c, "Unable to open Excel file")
		return
	}
	defer file.Close()

	result, err := h.menuService.ImportItems(file)
	if err != nil {
		respondError(c, err, "Item not found")
		return
	}
	c.JSON(http.StatusOK, result)
}
