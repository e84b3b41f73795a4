package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioColumns = `id, nombre, email, password_hash, rol, activo, created_at, updated_at`

// Crear persiste un nuevo usuario. Email duplicado → ErrDuplicado.
func (r *UsuarioRepo) Crear(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, email, password_hash, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Nombre, u.Email, u.PasswordHash, string(u.Rol), u.Activo, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el email ya esta registrado", domain.ErrDuplicado)
		}
		return wrapConn("insert usuario", err)
	}
	return nil
}

// ObtenerPorID obtiene un usuario por ID; nil, nil si no existe.
func (r *UsuarioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.uno(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE id = $1`, id)
}

// ObtenerPorEmail obtiene un usuario por email; nil, nil si no existe.
func (r *UsuarioRepo) ObtenerPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.uno(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE email = $1 LIMIT 1`, email)
}

func (r *UsuarioRepo) uno(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	var rol string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapConn("get usuario", err)
	}
	u.Rol = entity.Rol(rol)
	return &u, nil
}

// Listar lista todos los usuarios ordenados por nombre.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	return r.varios(ctx, `SELECT `+usuarioColumns+` FROM usuarios ORDER BY nombre`)
}

// ListarPorRol lista los usuarios de un rol, ordenados por nombre.
func (r *UsuarioRepo) ListarPorRol(ctx context.Context, rol entity.Rol) ([]*entity.Usuario, error) {
	return r.varios(ctx, `SELECT `+usuarioColumns+` FROM usuarios WHERE rol = $1 ORDER BY nombre`, string(rol))
}

func (r *UsuarioRepo) varios(ctx context.Context, query string, args ...any) ([]*entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapConn("list usuarios", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		var rol string
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, wrapConn("scan usuario", err)
		}
		u.Rol = entity.Rol(rol)
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapConn("rows usuarios", err)
	}
	return list, nil
}
