package models

import (
	"time"
)

type LoanStatus string

const (
	LoanOutstanding LoanStatus = "outstanding"
	LoanReturned    LoanStatus = "returned"
)

// Loan links a user and a book. Its only allowed transition is
// outstanding -> returned, which also sets ReturnDate.
type Loan struct {
	ID         uint       `json:"prestamo_id" gorm:"primarykey"`
	UserID     uint       `json:"usuario_id" gorm:"not null"`
	BookID     uint       `json:"libro_id" gorm:"not null"`
	LoanDate   string     `json:"fecha_prestamo" gorm:"not null"`
	Status     LoanStatus `json:"estado" gorm:"not null;default:'outstanding'"`
	ReturnDate *string    `json:"fecha_devolucion,omitempty"`
	User       *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Book       *Book      `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
