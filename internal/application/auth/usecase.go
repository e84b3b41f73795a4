// Package auth casos de uso de autenticación y administración de usuarios:
// login, registro (solo Administrador) y listado.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/usecase"
	"github.com/dicri-mp/expedientes-api/internal/application/validation"
	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/authz"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
	"github.com/dicri-mp/expedientes-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación y usuarios.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt, genera el JWT y
// retorna token + usuario. Usuarios inactivos son invisibles al login:
// la respuesta es la misma que con credenciales inválidas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.ValidarLogin(in.Email, in.Password); err != nil {
		return nil, err
	}
	user, err := uc.usuarios.ObtenerPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, fmt.Errorf("%w: credenciales invalidas", domain.ErrNoAutorizado)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: credenciales invalidas", domain.ErrNoAutorizado)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Rol), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUsuarioResponse(user)}, nil
}

// Registrar crea un usuario nuevo; restringido a Administrador. Email
// duplicado → ErrDuplicado.
func (uc *AuthUseCase) Registrar(ctx context.Context, in dto.RegisterRequest, actor usecase.Actor) (*dto.UsuarioResponse, error) {
	if err := authz.Autorizar(actor.Rol, authz.GestionarUsuarios); err != nil {
		return nil, err
	}
	if err := validation.ValidarLogin(in.Email, in.Password); err != nil {
		return nil, err
	}
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrValidacion)
	}
	rol := entity.Rol(in.Rol)
	if !rol.EsValido() {
		return nil, fmt.Errorf("%w: rol desconocido", domain.ErrValidacion)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarios.Crear(ctx, user); err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

// ListarUsuarios devuelve todos los usuarios (sin hashes).
func (uc *AuthUseCase) ListarUsuarios(ctx context.Context, actor usecase.Actor) ([]dto.UsuarioResponse, error) {
	if err := authz.Autorizar(actor.Rol, authz.ListarUsuarios); err != nil {
		return nil, err
	}
	list, err := uc.usuarios.Listar(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       string(u.Rol),
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
	}
}
