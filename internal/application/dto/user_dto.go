package dto

import "time"

// RegisterRequest entrada para registrar un usuario en una empresa.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Role      string `json:"role"` // admin, bodeguero, operario
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID int64     `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
