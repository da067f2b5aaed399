package services

import (
	"errors"

	"biblioteca-backend/models"
	"biblioteca-backend/repositories"

	"gorm.io/gorm"
)

// CatalogService owns categories and books. All mutations are
// administrator-only; that gate sits in the router, not here.
type CatalogService interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	CreateCategory(req models.CategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.CategoryRequest) error
	DeleteCategory(id uint) error

	ListBooks() ([]models.Book, error)
	GetBook(id uint) (*models.Book, error)
	CreateBook(req models.BookRequest) (*models.Book, error)
	UpdateBook(id uint, req models.BookRequest) error
	DeleteBook(id uint) error
}

type catalogService struct {
	categoryRepo repositories.CategoryRepository
	bookRepo     repositories.BookRepository
}

func NewCatalogService(categoryRepo repositories.CategoryRepository, bookRepo repositories.BookRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		bookRepo:     bookRepo,
	}
}

func (s *catalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *catalogService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateCategory(req models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateCategory
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uint, req models.CategoryRequest) error {
	affected, err := s.categoryRepo.Update(id, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrDuplicateCategory
		}
		return err
	}
	if affected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) ListBooks() ([]models.Book, error) {
	return s.bookRepo.GetAll()
}

func (s *catalogService) GetBook(id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *catalogService) CreateBook(req models.BookRequest) (*models.Book, error) {
	book := &models.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublicationDate: req.PublicationDate,
		Editorial:       req.Editorial,
		Language:        req.Language,
		CategoryID:      req.CategoryID,
	}
	if err := s.bookRepo.Create(book); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *catalogService) UpdateBook(id uint, req models.BookRequest) error {
	book := &models.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublicationDate: req.PublicationDate,
		Editorial:       req.Editorial,
		Language:        req.Language,
		CategoryID:      req.CategoryID,
	}
	affected, err := s.bookRepo.Update(id, book)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.ErrCategoryNotFound
		}
		return err
	}
	if affected == 0 {
		return models.ErrBookNotFound
	}
	return nil
}

func (s *catalogService) DeleteBook(id uint) error {
	affected, err := s.bookRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrBookNotFound
	}
	return nil
}
