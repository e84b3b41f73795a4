// Package authz concentra la autorización por rol en una única tabla de
// capacidades. Todos los puntos de entrada mutadores la consultan; no hay
// listas de roles dispersas por handlers.
package authz

import (
	"fmt"

	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
)

// Operacion identifica cada acción autorizable del sistema.
type Operacion string

const (
	CrearExpediente   Operacion = "crear_expediente"
	EditarExpediente  Operacion = "editar_expediente"
	CrearIndicio      Operacion = "crear_indicio"
	EditarIndicio     Operacion = "editar_indicio"
	EliminarIndicio   Operacion = "eliminar_indicio"
	EnviarRevision    Operacion = "enviar_revision"
	Aprobar           Operacion = "aprobar"
	Rechazar          Operacion = "rechazar"
	ListarUsuarios    Operacion = "listar_usuarios"
	GestionarUsuarios Operacion = "gestionar_usuarios"
)

// capacidades tabla rol → operaciones permitidas. Es la única fuente de
// verdad de autorización.
var capacidades = map[entity.Rol]map[Operacion]bool{
	entity.RolTecnico: {
		CrearExpediente:  true,
		EditarExpediente: true,
		CrearIndicio:     true,
		EditarIndicio:    true,
		EliminarIndicio:  true,
		EnviarRevision:   true,
		ListarUsuarios:   true,
	},
	entity.RolCoordinador: {
		Aprobar:        true,
		Rechazar:       true,
		ListarUsuarios: true,
	},
	entity.RolAdministrador: {
		CrearExpediente:   true,
		EditarExpediente:  true,
		CrearIndicio:      true,
		EditarIndicio:     true,
		EliminarIndicio:   true,
		EnviarRevision:    true,
		Aprobar:           true,
		Rechazar:          true,
		ListarUsuarios:    true,
		GestionarUsuarios: true,
	},
}

// Puede indica si el rol tiene permitida la operación.
func Puede(rol entity.Rol, op Operacion) bool {
	return capacidades[rol][op]
}

// Autorizar devuelve ErrAccesoDenegado si el rol no puede ejecutar la
// operación. Los casos de uso la llaman antes de cualquier mutación.
func Autorizar(rol entity.Rol, op Operacion) error {
	if !Puede(rol, op) {
		return fmt.Errorf("%w: %s no puede %s", domain.ErrAccesoDenegado, rol, op)
	}
	return nil
}

// RolesPermitidos devuelve los roles que pueden ejecutar la operación, en
// orden estable. Lo usa el middleware HTTP para componer guardas de ruta.
func RolesPermitidos(op Operacion) []entity.Rol {
	orden := []entity.Rol{entity.RolTecnico, entity.RolCoordinador, entity.RolAdministrador}
	var roles []entity.Rol
	for _, r := range orden {
		if capacidades[r][op] {
			roles = append(roles, r)
		}
	}
	return roles
}
