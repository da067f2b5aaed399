package models

type RegisterRequest struct {
	Username string   `json:"nombre_usuario" binding:"required,min=3,max=50"`
	Password string   `json:"password" binding:"required,min=6"`
	Email    string   `json:"email" binding:"required,email"`
	Role     UserRole `json:"rol,omitempty"`
}

type LoginRequest struct {
	Username string `json:"nombre_usuario" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CategoryRequest struct {
	Name string `json:"nombre_categoria" binding:"required,min=1,max=100"`
}

type BookRequest struct {
	Title           string `json:"titulo" binding:"required,min=1,max=255"`
	Author          string `json:"autor" binding:"required,min=1,max=255"`
	PublicationDate string `json:"fecha_publicacion" binding:"required"`
	Editorial       string `json:"editorial"`
	Language        string `json:"idioma"`
	CategoryID      uint   `json:"categoria_id" binding:"required"`
}

type CreateLoanRequest struct {
	UserID   uint   `json:"usuario_id" binding:"required"`
	BookID   uint   `json:"libro_id" binding:"required"`
	LoanDate string `json:"fecha_prestamo" binding:"required"`
}

type ReturnLoanRequest struct {
	ReturnDate string `json:"fecha_devolucion" binding:"required"`
}
