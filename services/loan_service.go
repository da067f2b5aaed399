package services

import (
	"errors"

	"biblioteca-backend/models"
	"biblioteca-backend/repositories"

	"gorm.io/gorm"
)

// LoanService drives the loan state machine:
//
//	create -> outstanding -> returned (terminal)
//
// A loan may only be created for the caller's own user id unless the
// caller is an administrator recording a loan on someone's behalf.
type LoanService interface {
	Create(req models.CreateLoanRequest, callerID uint, callerRole models.UserRole) (*models.Loan, error)
	ListAll() ([]models.Loan, error)
	ListByUser(userID uint) ([]models.Loan, error)
	MarkReturned(id uint, returnDate string, callerID uint, callerRole models.UserRole) (*models.Loan, error)
	Delete(id uint) error
}

type loanService struct {
	loanRepo repositories.LoanRepository
}

func NewLoanService(loanRepo repositories.LoanRepository) LoanService {
	return &loanService{loanRepo: loanRepo}
}

func (s *loanService) Create(req models.CreateLoanRequest, callerID uint, callerRole models.UserRole) (*models.Loan, error) {
	if req.UserID != callerID && callerRole != models.RoleAdministrator {
		return nil, models.ErrLoanForbidden
	}

	loan := &models.Loan{
		UserID:   req.UserID,
		BookID:   req.BookID,
		LoanDate: req.LoanDate,
		Status:   models.LoanOutstanding,
	}

	if err := s.loanRepo.Create(loan); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrBookNotFound
		}
		return nil, err
	}

	return loan, nil
}

func (s *loanService) ListAll() ([]models.Loan, error) {
	return s.loanRepo.GetAll()
}

func (s *loanService) ListByUser(userID uint) ([]models.Loan, error) {
	return s.loanRepo.GetByUser(userID)
}

// MarkReturned transitions a loan to returned with the supplied date.
// The transition is monotonic: a second call fails with
// ErrLoanAlreadyReturned instead of rewriting the return date.
func (s *loanService) MarkReturned(id uint, returnDate string, callerID uint, callerRole models.UserRole) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrLoanNotFound
		}
		return nil, err
	}

	if loan.UserID != callerID && callerRole != models.RoleAdministrator {
		return nil, models.ErrLoanForbidden
	}

	affected, err := s.loanRepo.MarkReturned(id, returnDate)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// The conditional update only misses when the loan is no
		// longer outstanding; existence was checked above.
		return nil, models.ErrLoanAlreadyReturned
	}

	loan.Status = models.LoanReturned
	loan.ReturnDate = &returnDate
	return loan, nil
}

func (s *loanService) Delete(id uint) error {
	affected, err := s.loanRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrLoanNotFound
	}
	return nil
}
