package models

import (
	"time"
)

type Category struct {
	ID        uint      `json:"categoria_id" gorm:"primarykey"`
	Name      string    `json:"nombre_categoria" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
