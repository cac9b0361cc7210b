package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Membership string    `json:"membership"`
	Points     int64     `json:"points"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse perfil del usuario con su historial de pedidos.
type ProfileResponse struct {
	User   UserResponse    `json:"user"`
	Orders []OrderResponse `json:"orders"`
}
