package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido + usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// RegisterRequest alta de usuario (solo Administrador).
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// UsuarioResponse representación pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID        string    `json:"usuario_id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
