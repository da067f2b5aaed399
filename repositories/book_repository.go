package repositories

import (
	"biblioteca-backend/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *models.Book) error
	GetAll() ([]models.Book, error)
	GetByID(id uint) (*models.Book, error)
	Update(id uint, book *models.Book) (int64, error)
	Delete(id uint) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create inserts a book after checking its category exists, inside one
// transaction. The schema-level foreign key remains the backstop.
func (r *bookRepository) Create(book *models.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Category{}).Where("id = ?", book.CategoryID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return models.ErrCategoryNotFound
		}
		return tx.Create(book).Error
	})
}

func (r *bookRepository) GetAll() ([]models.Book, error) {
	var books []models.Book
	err := r.db.Order("id").Find(&books).Error
	return books, err
}

func (r *bookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	err := r.db.First(&book, id).Error
	return &book, err
}

func (r *bookRepository) Update(id uint, book *models.Book) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Category{}).Where("id = ?", book.CategoryID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return models.ErrCategoryNotFound
		}

		res := tx.Model(&models.Book{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":            book.Title,
			"author":           book.Author,
			"publication_date": book.PublicationDate,
			"editorial":        book.Editorial,
			"language":         book.Language,
			"category_id":      book.CategoryID,
		})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *bookRepository) Delete(id uint) (int64, error) {
	tx := r.db.Delete(&models.Book{}, id)
	return tx.RowsAffected, tx.Error
}
