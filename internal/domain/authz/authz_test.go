package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/authz"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
)

// La tabla de capacidades completa, rol por rol. Cualquier cambio de permisos
// debe reflejarse aquí de forma explícita.
func TestTablaDeCapacidades(t *testing.T) {
	todas := []authz.Operacion{
		authz.CrearExpediente, authz.EditarExpediente,
		authz.CrearIndicio, authz.EditarIndicio, authz.EliminarIndicio,
		authz.EnviarRevision, authz.Aprobar, authz.Rechazar,
		authz.ListarUsuarios, authz.GestionarUsuarios,
	}
	permitidas := map[entity.Rol]map[authz.Operacion]bool{
		entity.RolTecnico: {
			authz.CrearExpediente: true, authz.EditarExpediente: true,
			authz.CrearIndicio: true, authz.EditarIndicio: true, authz.EliminarIndicio: true,
			authz.EnviarRevision: true, authz.ListarUsuarios: true,
		},
		entity.RolCoordinador: {
			authz.Aprobar: true, authz.Rechazar: true, authz.ListarUsuarios: true,
		},
		entity.RolAdministrador: {
			authz.CrearExpediente: true, authz.EditarExpediente: true,
			authz.CrearIndicio: true, authz.EditarIndicio: true, authz.EliminarIndicio: true,
			authz.EnviarRevision: true, authz.Aprobar: true, authz.Rechazar: true,
			authz.ListarUsuarios: true, authz.GestionarUsuarios: true,
		},
	}

	for rol, ops := range permitidas {
		for _, op := range todas {
			assert.Equalf(t, ops[op], authz.Puede(rol, op), "rol=%s op=%s", rol, op)
		}
	}
}

// Un rol desconocido no tiene ninguna capacidad.
func TestRolDesconocido_SinCapacidades(t *testing.T) {
	assert.False(t, authz.Puede(entity.Rol("Perito"), authz.CrearExpediente))
	assert.False(t, authz.Puede(entity.Rol(""), authz.Aprobar))
}

// Autorizar clasifica la denegación como ErrAccesoDenegado.
func TestAutorizar_Denegado(t *testing.T) {
	err := authz.Autorizar(entity.RolTecnico, authz.Aprobar)
	assert.ErrorIs(t, err, domain.ErrAccesoDenegado)

	assert.NoError(t, authz.Autorizar(entity.RolCoordinador, authz.Aprobar))
}

// RolesPermitidos alimenta las guardas de ruta con un orden estable.
func TestRolesPermitidos(t *testing.T) {
	assert.Equal(t,
		[]entity.Rol{entity.RolTecnico, entity.RolCoordinador, entity.RolAdministrador},
		authz.RolesPermitidos(authz.ListarUsuarios))
	assert.Equal(t,
		[]entity.Rol{entity.RolCoordinador, entity.RolAdministrador},
		authz.RolesPermitidos(authz.Aprobar))
	assert.Equal(t,
		[]entity.Rol{entity.RolAdministrador},
		authz.RolesPermitidos(authz.GestionarUsuarios))
}
