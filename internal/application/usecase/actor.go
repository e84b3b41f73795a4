package usecase

import "github.com/dicri-mp/expedientes-api/internal/domain/entity"

// Actor identidad del usuario que ejecuta la operación, ya autenticado en la
// frontera de transporte.
type Actor struct {
	UsuarioID string
	Rol       entity.Rol
}
