package dto

import "time"

// CrearExpedienteRequest alta de expediente.
type CrearExpedienteRequest struct {
	NumeroExpediente string `json:"numero_expediente"`
	Descripcion      string `json:"descripcion"`
}

// ActualizarExpedienteRequest edición de la descripción (solo En Registro).
type ActualizarExpedienteRequest struct {
	Descripcion string `json:"descripcion"`
}

// EnviarRevisionRequest transición En Registro → En Revision.
type EnviarRevisionRequest struct {
	CoordinadorAsignado string `json:"coordinador_asignado"`
}

// RechazarExpedienteRequest transición En Revision → Rechazado.
type RechazarExpedienteRequest struct {
	JustificacionRechazo string `json:"justificacion_rechazo"`
}

// ExpedienteCreadoResponse identificador generado en el alta.
type ExpedienteCreadoResponse struct {
	ExpedienteID string `json:"expediente_id"`
}

// ExpedienteResponse representación completa de un expediente.
type ExpedienteResponse struct {
	ExpedienteID         string    `json:"expediente_id"`
	NumeroExpediente     string    `json:"numero_expediente"`
	Descripcion          string    `json:"descripcion"`
	Estado               string    `json:"estado"`
	TecnicoRegistro      string    `json:"tecnico_registro"`
	CoordinadorAsignado  *string   `json:"coordinador_asignado"`
	JustificacionRechazo *string   `json:"justificacion_rechazo"`
	FechaCreacion        time.Time `json:"fecha_creacion"`
	TotalIndicios        int       `json:"total_indicios"`
}

// ExpedienteListResponse listado de expedientes.
type ExpedienteListResponse struct {
	Items []ExpedienteResponse `json:"items"`
	Total int                  `json:"total"`
}
