package models

import (
	"time"
)

type UserRole string

const (
	RoleRegular       UserRole = "regular"
	RoleAdministrator UserRole = "administrator"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleRegular || r == RoleAdministrator
}

type User struct {
	ID        uint      `json:"usuario_id" gorm:"primarykey"`
	Username  string    `json:"nombre_usuario" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Role      UserRole  `json:"rol" gorm:"not null;default:'regular'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
