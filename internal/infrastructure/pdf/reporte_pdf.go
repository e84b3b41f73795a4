// Package pdf genera la versión imprimible del reporte de expedientes:
// una tabla A4 con una fila por expediente del rango consultado y un pie con
// los conteos por estado.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportePDFGenerator renderiza el reporte de expedientes usando Maroto v2.
type ReportePDFGenerator struct{}

// NewReportePDFGenerator construye el generador.
func NewReportePDFGenerator() *ReportePDFGenerator { return &ReportePDFGenerator{} }

// GenerarReportePDF genera el PDF y devuelve sus bytes.
func (g *ReportePDFGenerator) GenerarReportePDF(titulo string, reporte *dto.ReporteResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Expedientes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(titulo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, fila := range reporte.Filas {
		m.AddRows(tableRow(fila))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(conteosRow(reporte.Conteos))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(titulo string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Reporte de Expedientes — DICRI", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(titulo, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}))
	}
	return row.New(6).Add(
		header("Numero", 2),
		header("Fecha", 2),
		header("Tecnico", 2),
		header("Coordinador", 2),
		header("Estado", 2),
		header("Indicios", 2),
	)
}

func tableRow(f dto.ReporteFilaDTO) core.Row {
	coordinador := "—"
	if f.CoordinadorNombre != nil {
		coordinador = *f.CoordinadorNombre
	}
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8}))
	}
	return row.New(5).Add(
		cell(f.NumeroExpediente, 2),
		cell(f.FechaCreacion.Format("02/01/2006"), 2),
		cell(f.TecnicoNombre, 2),
		cell(coordinador, 2),
		cell(f.Estado, 2),
		col.New(2).Add(text.New(fmt.Sprintf("%d", f.TotalIndicios), props.Text{Size: 8, Align: align.Right})),
	)
}

func conteosRow(c dto.EstadisticasDTO) core.Row {
	resumen := fmt.Sprintf(
		"Total: %d   En Registro: %d   En Revision: %d   Aprobados: %d   Rechazados: %d",
		c.TotalExpedientes, c.EnRegistro, c.EnRevision, c.Aprobados, c.Rechazados,
	)
	return row.New(8).Add(
		col.New(12).Add(text.New(resumen, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
	)
}
