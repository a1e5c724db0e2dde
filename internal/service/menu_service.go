package service

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/models/response"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/logger"
)

// CreateCategoryInput carries fields for a new menu category
type CreateCategoryInput struct {
	Name  string
	Order int
}

// UpdateCategoryInput carries a partial category update; nil fields keep
// their stored value
type UpdateCategoryInput struct {
	Name  *string
	Order *int
}

// CreateItemInput carries fields for a new menu item. ImageBase64, when
// set, is uploaded first and never persisted itself.
type CreateItemInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	ArticleCode string
	ImageBase64 string
}

// UpdateItemInput carries a partial item update
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *uint
	ArticleCode *string
	ImageBase64 string
}

// MenuService interface defines menu business operations
type MenuService interface {
	ListCategories() ([]models.MenuCategory, error)
	CreateCategory(input CreateCategoryInput) (*models.MenuCategory, error)
	UpdateCategory(id uint, input UpdateCategoryInput) (*models.MenuCategory, error)
	DeleteCategory(id uint) error

	ListItems(categoryID *uint) ([]models.MenuItem, error)
	CreateItem(input CreateItemInput) (*models.MenuItem, error)
	UpdateItem(id uint, input UpdateItemInput) (*models.MenuItem, error)
	DeleteItem(id uint) error
	ImportItems(reader io.Reader) (*response.ImportResult, error)
}

// menuService implements MenuService interface
type menuService struct {
	menuRepo repository.MenuRepository
	uploader *upload.Uploader
	logger   *logger.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, uploader *upload.Uploader, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *menuService) ListCategories() ([]models.MenuCategory, error) {
	return s.menuRepo.ListCategories()
}

func (s *menuService) CreateCategory(input CreateCategoryInput) (*models.MenuCategory, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := &models.MenuCategory{
		Name:      input.Name,
		SortOrder: input.Order,
	}
	if err := s.menuRepo.CreateCategory(category); err != nil {
		s.logger.WithError(err).Error("Failed to create menu category")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	}).Info("Menu category created")

	return category, nil
}

func (s *menuService) UpdateCategory(id uint, input UpdateCategoryInput) (*models.MenuCategory, error) {
	category, err := s.menuRepo.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
		}
		category.Name = *input.Name
	}
	if input.Order != nil {
		category.SortOrder = *input.Order
	}

	if err := s.menuRepo.SaveCategory(category); err != nil {
		s.logger.WithError(err).WithField("category_id", id).Error("Failed to update menu category")
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category together with its items. The admin UI
// warns about the cascade before calling.
func (s *menuService) DeleteCategory(id uint) error {
	if _, err := s.menuRepo.GetCategory(id); err != nil {
		return err
	}
	if err := s.menuRepo.DeleteCategoryWithItems(id); err != nil {
		s.logger.WithError(err).WithField("category_id", id).Error("Failed to delete menu category")
		return err
	}
	s.logger.WithField("category_id", id).Info("Menu category deleted with its items")
	return nil
}

func (s *menuService) ListItems(categoryID *uint) ([]models.MenuItem, error) {
	return s.menuRepo.ListItems(categoryID)
}

func (s *menuService) CreateItem(input CreateItemInput) (*models.MenuItem, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if _, err := s.menuRepo.GetCategory(input.CategoryID); err != nil {
		return nil, fmt.Errorf("%w: category %d does not exist", ErrValidation, input.CategoryID)
	}

	item := &models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		ArticleCode: input.ArticleCode,
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("menu-items", input.Name))
		if err != nil {
			s.logger.WithError(err).Error("Failed to store menu item image")
			return nil, err
		}
		item.ImageURL = url
	}

	if err := s.menuRepo.CreateItem(item); err != nil {
		s.logger.WithError(err).Error("Failed to create menu item")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"item_id":     item.ID,
		"name":        item.Name,
		"category_id": item.CategoryID,
	}).Info("Menu item created")

	return s.menuRepo.GetItem(item.ID)
}

func (s *menuService) UpdateItem(id uint, input UpdateItemInput) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItem(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty", ErrValidation)
		}
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		item.Price = *input.Price
	}
	if input.CategoryID != nil {
		if _, err := s.menuRepo.GetCategory(*input.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category %d does not exist", ErrValidation, *input.CategoryID)
		}
		item.CategoryID = *input.CategoryID
	}
	if input.ArticleCode != nil {
		item.ArticleCode = *input.ArticleCode
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("menu-items", item.Name))
		if err != nil {
			s.logger.WithError(err).WithField("item_id", id).Error("Failed to store menu item image")
			return nil, err
		}
		item.ImageURL = url
	}

	item.Category = nil
	if err := s.menuRepo.SaveItem(item); err != nil {
		s.logger.WithError(err).WithField("item_id", id).Error("Failed to update menu item")
		return nil, err
	}
	return s.menuRepo.GetItem(id)
}

func (s *menuService) DeleteItem(id uint) error {
	item, err := s.menuRepo.GetItem(id)
	if err != nil {
		return err
	}
	item.Category = nil
	if err := s.menuRepo.DeleteItem(item); err != nil {
		s.logger.WithError(err).WithField("item_id", id).Error("Failed to delete menu item")
		return err
	}
	return nil
}

// ImportItems reads menu items from an xlsx workbook. Expected columns on
// Sheet1, one header row: category id, price, name, description, article
// code. Rows that fail to parse are skipped and counted.
func (s *menuService) ImportItems(reader io.Reader) (*response.ImportResult, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse Excel file", ErrValidation)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		return nil, fmt.Errorf("%w: Excel must have at least one row of data", ErrValidation)
	}

	result := &response.ImportResult{}
	var items []models.MenuItem
	for _, row := range rows[1:] {
		if len(row) < 3 {
			result.Skipped++
			continue
		}

		categoryID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			result.Skipped++
			continue
		}
		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil || price <= 0 {
			result.Skipped++
			continue
		}
		name := row[2]
		if name == "" {
			result.Skipped++
			continue
		}
		if _, err := s.menuRepo.GetCategory(uint(categoryID)); err != nil {
			result.Skipped++
			continue
		}

		item := models.MenuItem{
			Name:       name,
			Price:      price,
			CategoryID: uint(categoryID),
		}
		if len(row) > 3 {
			item.Description = row[3]
		}
		if len(row) > 4 {
			item.ArticleCode = row[4]
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no valid rows found", ErrValidation)
	}

	if err := s.menuRepo.CreateItems(items); err != nil {
		s.logger.WithError(err).Error("Failed to insert imported menu items")
		return nil, err
	}
	result.Inserted = len(items)

	s.logger.WithFields(map[string]interface{}{
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
	}).Info("Menu import completed")

	return result, nil
}
