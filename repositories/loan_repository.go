package repositories

import (
	"biblioteca-backend/models"

	"gorm.io/gorm"
)

type LoanRepository interface {
	Create(loan *models.Loan) error
	GetAll() ([]models.Loan, error)
	GetByUser(userID uint) ([]models.Loan, error)
	GetByID(id uint) (*models.Loan, error)
	MarkReturned(id uint, returnDate string) (int64, error)
	Delete(id uint) (int64, error)
}

type loanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create inserts a loan after checking both referenced rows exist, in a
// single transaction so neither can vanish between check and insert.
func (r *loanRepository) Create(loan *models.Loan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("id = ?", loan.UserID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return models.ErrUserNotFound
		}

		if err := tx.Model(&models.Book{}).Where("id = ?", loan.BookID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return models.ErrBookNotFound
		}

		return tx.Create(loan).Error
	})
}

func (r *loanRepository) GetAll() ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.Order("id").Find(&loans).Error
	return loans, err
}

func (r *loanRepository) GetByUser(userID uint) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&loans).Error
	return loans, err
}

func (r *loanRepository) GetByID(id uint) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.First(&loan, id).Error
	return &loan, err
}

// MarkReturned applies the outstanding -> returned transition. The
// status predicate makes the update a no-op on already-returned loans,
// so the transition stays monotonic even under concurrent calls.
func (r *loanRepository) MarkReturned(id uint, returnDate string) (int64, error) {
	tx := r.db.Model(&models.Loan{}).
		Where("id = ? AND status = ?", id, models.LoanOutstanding).
		Updates(map[string]interface{}{
			"status":      models.LoanReturned,
			"return_date": returnDate,
		})
	return tx.RowsAffected, tx.Error
}

func (r *loanRepository) Delete(id uint) (int64, error) {
	tx := r.db.Delete(&models.Loan{}, id)
	return tx.RowsAffected, tx.Error
}
