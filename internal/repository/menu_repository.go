package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// MenuRepository defines data operations for menu categories and items
type MenuRepository interface {
	ListCategories() ([]models.MenuCategory, error)
	GetCategory(id uint) (*models.MenuCategory, error)
	CreateCategory(category *models.MenuCategory) error
	SaveCategory(category *models.MenuCategory) error
	DeleteCategoryWithItems(id uint) error

	ListItems(categoryID *uint) ([]models.MenuItem, error)
	GetItem(id uint) (*models.MenuItem, error)
	CreateItem(item *models.MenuItem) error
	CreateItems(items []models.MenuItem) error
	SaveItem(item *models.MenuItem) error
	DeleteItem(item *models.MenuItem) error
}

// menuRepository implements MenuRepository
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// ListCategories returns all categories ordered by their display key,
// id breaking ties between equal sort orders
func (r *menuRepository) ListCategories() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := r.db.Order("sort_order asc, id asc").Find(&categories).Error
	return categories, err
}

func (r *menuRepository) GetCategory(id uint) (*models.MenuCategory, error) {
	var category models.MenuCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) CreateCategory(category *models.MenuCategory) error {
	return r.db.Create(category).Error
}

func (r *menuRepository) SaveCategory(category *models.MenuCategory) error {
	return r.db.Save(category).Error
}

// DeleteCategoryWithItems removes a category and every item referencing it
// in a single transaction
func (r *menuRepository) DeleteCategoryWithItems(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuCategory{}, id).Error
	})
}

// ListItems returns items ordered by name, optionally filtered by category
func (r *menuRepository) ListItems(categoryID *uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := r.db.Preload("Category").Order("name asc")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *menuRepository) GetItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) CreateItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) CreateItems(items []models.MenuItem) error {
	return r.db.Create(&items).Error
}

func (r *menuRepository) SaveItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) DeleteItem(item *models.MenuItem) error {
	return r.db.Delete(item).Error
}
