package models

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrDuplicateUser      = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category is referenced by books")

	ErrBookNotFound = errors.New("book not found")

	ErrLoanNotFound        = errors.New("loan not found")
	ErrLoanForbidden       = errors.New("loan does not belong to caller")
	ErrLoanAlreadyReturned = errors.New("loan already returned")
)
