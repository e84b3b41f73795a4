package dto

import "time"

// ReporteRequest parámetros del reporte por rango de fechas.
// Fechas en formato 2006-01-02; Estado admite el sentinela "Todos".
type ReporteRequest struct {
	FechaInicio string `query:"fecha_inicio"`
	FechaFin    string `query:"fecha_fin"`
	Estado      string `query:"estado"`
}

// ReporteFilaDTO fila del reporte, con nombres resueltos y conteo de indicios.
type ReporteFilaDTO struct {
	ExpedienteID         string    `json:"expediente_id"`
	NumeroExpediente     string    `json:"numero_expediente"`
	Descripcion          string    `json:"descripcion"`
	FechaCreacion        time.Time `json:"fecha_creacion"`
	TecnicoNombre        string    `json:"tecnico_nombre"`
	CoordinadorNombre    *string   `json:"coordinador_nombre"`
	Estado               string    `json:"estado"`
	JustificacionRechazo *string   `json:"justificacion_rechazo"`
	TotalIndicios        int       `json:"total_indicios"`
}

// EstadisticasDTO conteos por estado. Se usa tanto para las estadísticas
// globales del dashboard como para el resumen del conjunto filtrado.
type EstadisticasDTO struct {
	TotalExpedientes int `json:"total_expedientes"`
	EnRegistro       int `json:"en_registro"`
	EnRevision       int `json:"en_revision"`
	Aprobados        int `json:"aprobados"`
	Rechazados       int `json:"rechazados"`
}

// ReporteResponse conteos del conjunto filtrado + filas.
type ReporteResponse struct {
	Conteos EstadisticasDTO  `json:"conteos"`
	Filas   []ReporteFilaDTO `json:"filas"`
}

// PendienteRevisionDTO expediente En Revision asignado al coordinador,
// anotado con los días transcurridos desde el envío.
type PendienteRevisionDTO struct {
	ExpedienteID     string    `json:"expediente_id"`
	NumeroExpediente string    `json:"numero_expediente"`
	Descripcion      string    `json:"descripcion"`
	TecnicoNombre    string    `json:"tecnico_nombre"`
	FechaCreacion    time.Time `json:"fecha_creacion"`
	TotalIndicios    int       `json:"total_indicios"`
	DiasEnRevision   int       `json:"dias_en_revision"`
}
