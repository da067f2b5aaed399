package models

import (
	"time"
)

type Book struct {
	ID              uint      `json:"libro_id" gorm:"primarykey"`
	Title           string    `json:"titulo" gorm:"not null"`
	Author          string    `json:"autor" gorm:"not null"`
	PublicationDate string    `json:"fecha_publicacion" gorm:"not null"`
	Editorial       string    `json:"editorial"`
	Language        string    `json:"idioma"`
	CategoryID      uint      `json:"categoria_id" gorm:"not null"`
	Category        *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
