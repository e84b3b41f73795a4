package entity

import "time"

// EstadoExpediente estado del flujo de aprobación. Enumeración cerrada:
// En Registro → En Revision → {Aprobado, Rechazado}. Los dos últimos son
// terminales.
type EstadoExpediente string

const (
	EstadoEnRegistro EstadoExpediente = "En Registro"
	EstadoEnRevision EstadoExpediente = "En Revision"
	EstadoAprobado   EstadoExpediente = "Aprobado"
	EstadoRechazado  EstadoExpediente = "Rechazado"
)

// EstadoTodos valor sentinela en filtros de reporte: no filtrar por estado.
const EstadoTodos = "Todos"

// Estados lista los estados en orden de flujo, para conteos de reportes.
func Estados() []EstadoExpediente {
	return []EstadoExpediente{EstadoEnRegistro, EstadoEnRevision, EstadoAprobado, EstadoRechazado}
}

// EsValido indica si el estado pertenece a la enumeración.
func (e EstadoExpediente) EsValido() bool {
	switch e {
	case EstadoEnRegistro, EstadoEnRevision, EstadoAprobado, EstadoRechazado:
		return true
	}
	return false
}

// EsTerminal indica si el estado no admite más transiciones.
func (e EstadoExpediente) EsTerminal() bool {
	return e == EstadoAprobado || e == EstadoRechazado
}

// PuedeTransicionar función total de legalidad de transiciones: define por
// completo el grafo del flujo. Toda transición de estado pasa por aquí antes
// de tocar la base de datos.
func (e EstadoExpediente) PuedeTransicionar(destino EstadoExpediente) bool {
	switch e {
	case EstadoEnRegistro:
		return destino == EstadoEnRevision
	case EstadoEnRevision:
		return destino == EstadoAprobado || destino == EstadoRechazado
	}
	return false
}

// Expediente registro forense que avanza por el flujo de aprobación.
// Invariantes: NumeroExpediente único global; las transiciones de estado son
// monótonas según PuedeTransicionar; CoordinadorAsignado es no-nil si y solo
// si el expediente salió de En Registro.
type Expediente struct {
	ID                   string
	NumeroExpediente     string // único, ≥5 caracteres
	Descripcion          string // ≥20 caracteres
	Estado               EstadoExpediente
	TecnicoRegistro      string  // usuario que creó el expediente
	CoordinadorAsignado  *string // nil hasta enviar a revisión
	JustificacionRechazo *string // solo poblado en Rechazado, ≥10 caracteres
	FechaCreacion        time.Time
	UpdatedAt            time.Time
}
