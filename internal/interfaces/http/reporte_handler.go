package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/usecase"
)

// ReportePDFGenerator contrato mínimo del render a PDF; lo implementa
// pdf.ReportePDFGenerator. La interfaz evita acoplar el handler a Maroto.
type ReportePDFGenerator interface {
	GenerarReportePDF(titulo string, reporte *dto.ReporteResponse) ([]byte, error)
}

// ReporteHandler maneja los endpoints de reportería.
type ReporteHandler struct {
	uc  *usecase.ReporteUseCase
	pdf ReportePDFGenerator
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *usecase.ReporteUseCase, pdf ReportePDFGenerator) *ReporteHandler {
	return &ReporteHandler{uc: uc, pdf: pdf}
}

// Reporte godoc
// @Summary      Reporte por rango de fechas
// @Tags         reportes
// @Produce      json
// @Param        fecha_inicio  query  string  true   "2006-01-02"
// @Param        fecha_fin     query  string  true   "2006-01-02"
// @Param        estado        query  string  false  "estado o Todos"
// @Success      200  {object}  dto.ReporteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/reporte [get]
func (h *ReporteHandler) Reporte(c *fiber.Ctx) error {
	in := dto.ReporteRequest{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
		Estado:      c.Query("estado"),
	}
	out, err := h.uc.ObtenerReporte(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ReportePDF godoc
// @Summary      Reporte por rango de fechas en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        fecha_inicio  query  string  true   "2006-01-02"
// @Param        fecha_fin     query  string  true   "2006-01-02"
// @Param        estado        query  string  false  "estado o Todos"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/reporte/pdf [get]
func (h *ReporteHandler) ReportePDF(c *fiber.Ctx) error {
	in := dto.ReporteRequest{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
		Estado:      c.Query("estado"),
	}
	out, err := h.uc.ObtenerReporte(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	titulo := fmt.Sprintf("Del %s al %s", in.FechaInicio, in.FechaFin)
	bytes, err := h.pdf.GenerarReportePDF(titulo, out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error generando PDF"})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reporte-expedientes.pdf"`)
	return c.Send(bytes)
}

// Estadisticas godoc
// @Summary      Estadísticas globales por estado
// @Tags         reportes
// @Produce      json
// @Success      200  {object}  dto.EstadisticasDTO
// @Router       /api/reportes/estadisticas [get]
func (h *ReporteHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// PendientesRevision godoc
// @Summary      Expedientes En Revision del coordinador autenticado
// @Tags         reportes
// @Produce      json
// @Success      200  {array}   dto.PendienteRevisionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes/revision/pendientes [get]
func (h *ReporteHandler) PendientesRevision(c *fiber.Ctx) error {
	items, err := h.uc.PendientesRevision(c.Context(), GetUsuarioID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(items)
}
