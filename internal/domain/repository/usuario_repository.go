package repository

import (
	"context"

	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// Crear persiste un usuario nuevo. Email duplicado → domain.ErrDuplicado.
	Crear(ctx context.Context, u *entity.Usuario) error
	// ObtenerPorID devuelve nil, nil si no existe.
	ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error)
	// ObtenerPorEmail devuelve nil, nil si no existe.
	ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	ListarPorRol(ctx context.Context, rol entity.Rol) ([]*entity.Usuario, error)
}
