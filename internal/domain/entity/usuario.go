package entity

import "time"

// Rol de un usuario. Enumeración cerrada: cualquier otro valor es inválido.
type Rol string

const (
	RolTecnico       Rol = "Tecnico"
	RolCoordinador   Rol = "Coordinador"
	RolAdministrador Rol = "Administrador"
)

// EsValido indica si el rol pertenece a la enumeración.
func (r Rol) EsValido() bool {
	switch r {
	case RolTecnico, RolCoordinador, RolAdministrador:
		return true
	}
	return false
}

// Usuario representa un usuario del sistema. Inmutable durante una petición;
// solo las operaciones administrativas lo modifican.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          Rol
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
