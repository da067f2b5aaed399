package repositories

import (
	"biblioteca-backend/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Update(id uint, name string) (int64, error)
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return &category, err
}

// Update renames a category. Returns the number of affected rows so the
// caller can tell a missing id from a successful rename.
func (r *categoryRepository) Update(id uint, name string) (int64, error) {
	tx := r.db.Model(&models.Category{}).Where("id = ?", id).Update("name", name)
	return tx.RowsAffected, tx.Error
}

// Delete removes a category unless books still reference it. The count
// and delete run in one transaction so a concurrent book insert cannot
// slip between them.
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var referenced int64
		if err := tx.Model(&models.Book{}).Where("category_id = ?", id).Count(&referenced).Error; err != nil {
			return err
		}
		if referenced > 0 {
			return models.ErrCategoryInUse
		}

		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrCategoryNotFound
		}
		return nil
	})
}
