package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/validation"
	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/dicri-mp/expedientes-api/internal/domain/entity"
	"github.com/dicri-mp/expedientes-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// ReporteUseCase reportería de expedientes: reporte por rango de fechas,
// estadísticas globales y pendientes de revisión por coordinador. Solo
// lecturas; no participa en el flujo de transiciones.
type ReporteUseCase struct {
	reportes repository.ReporteRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(reportes repository.ReporteRepository) *ReporteUseCase {
	return &ReporteUseCase{reportes: reportes}
}

// ObtenerReporte filtra expedientes creados en [fecha_inicio 00:00:00,
// fecha_fin 23:59:59] y, si se indica un estado distinto de "Todos", por
// estado. Devuelve las filas más el conteo por estado del conjunto filtrado.
func (uc *ReporteUseCase) ObtenerReporte(ctx context.Context, in dto.ReporteRequest) (*dto.ReporteResponse, error) {
	desde, hasta, err := rangoFechas(in.FechaInicio, in.FechaFin)
	if err != nil {
		return nil, err
	}
	var estado *entity.EstadoExpediente
	if in.Estado != "" && in.Estado != entity.EstadoTodos {
		e := entity.EstadoExpediente(in.Estado)
		if !e.EsValido() {
			return nil, fmt.Errorf("%w: estado invalido", domain.ErrValidacion)
		}
		estado = &e
	}
	filas, err := uc.reportes.BuscarReporte(ctx, desde, hasta, estado)
	if err != nil {
		return nil, err
	}
	out := &dto.ReporteResponse{Filas: make([]dto.ReporteFilaDTO, 0, len(filas))}
	for _, f := range filas {
		out.Filas = append(out.Filas, dto.ReporteFilaDTO{
			ExpedienteID:         f.ExpedienteID,
			NumeroExpediente:     f.NumeroExpediente,
			Descripcion:          f.Descripcion,
			FechaCreacion:        f.FechaCreacion,
			TecnicoNombre:        f.TecnicoNombre,
			CoordinadorNombre:    f.CoordinadorNombre,
			Estado:               string(f.Estado),
			JustificacionRechazo: f.JustificacionRechazo,
			TotalIndicios:        f.TotalIndicios,
		})
		out.Conteos.TotalExpedientes++
		switch f.Estado {
		case entity.EstadoEnRegistro:
			out.Conteos.EnRegistro++
		case entity.EstadoEnRevision:
			out.Conteos.EnRevision++
		case entity.EstadoAprobado:
			out.Conteos.Aprobados++
		case entity.EstadoRechazado:
			out.Conteos.Rechazados++
		}
	}
	return out, nil
}

// Estadisticas conteo global por estado, para el resumen del dashboard.
func (uc *ReporteUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasDTO, error) {
	c, err := uc.reportes.ContarPorEstado(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasDTO{
		TotalExpedientes: c.Total,
		EnRegistro:       c.EnRegistro,
		EnRevision:       c.EnRevision,
		Aprobados:        c.Aprobados,
		Rechazados:       c.Rechazados,
	}, nil
}

// PendientesRevision expedientes En Revision asignados al coordinador, cada
// uno con los días enteros transcurridos desde el envío.
func (uc *ReporteUseCase) PendientesRevision(ctx context.Context, coordinadorID string) ([]dto.PendienteRevisionDTO, error) {
	if coordinadorID == "" {
		return nil, fmt.Errorf("%w: coordinador", domain.ErrNoAutorizado)
	}
	filas, err := uc.reportes.PendientesRevision(ctx, coordinadorID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.PendienteRevisionDTO, 0, len(filas))
	for _, f := range filas {
		dias := int(now.Sub(f.FechaEnvioRevision).Hours() / 24)
		if dias < 0 {
			dias = 0
		}
		items = append(items, dto.PendienteRevisionDTO{
			ExpedienteID:     f.ExpedienteID,
			NumeroExpediente: f.NumeroExpediente,
			Descripcion:      f.Descripcion,
			TecnicoNombre:    f.TecnicoNombre,
			FechaCreacion:    f.FechaCreacion,
			TotalIndicios:    f.TotalIndicios,
			DiasEnRevision:   dias,
		})
	}
	return items, nil
}

// rangoFechas convierte las fechas del request en el rango inclusivo
// [desde 00:00:00, hasta 23:59:59].
func rangoFechas(inicio, fin string) (time.Time, time.Time, error) {
	if inicio == "" || fin == "" {
		return time.Time{}, time.Time{}, &validation.Error{Mensaje: "Las fechas de inicio y fin son requeridas"}
	}
	desde, err := time.ParseInLocation(formatoFecha, inicio, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, &validation.Error{Mensaje: "Formato de fecha invalido"}
	}
	hastaDia, err := time.ParseInLocation(formatoFecha, fin, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, &validation.Error{Mensaje: "Formato de fecha invalido"}
	}
	if hastaDia.Before(desde) {
		return time.Time{}, time.Time{}, &validation.Error{Mensaje: "La fecha fin debe ser mayor o igual a la fecha inicio"}
	}
	hasta := hastaDia.Add(24*time.Hour - time.Second)
	return desde, hasta, nil
}
