package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicri-mp/expedientes-api/internal/application/auth"
	"github.com/dicri-mp/expedientes-api/internal/application/usecase"
	"github.com/dicri-mp/expedientes-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ExpedienteUC *usecase.ExpedienteUseCase
	IndicioUC    *usecase.IndicioUseCase
	ReporteUC    *usecase.ReporteUseCase
	ReportePDF   ReportePDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API. Las guardas de rol replican la tabla
// de capacidades vía RequirePermiso; los casos de uso la vuelven a aplicar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequirePermiso(authz.GestionarUsuarios), authHandler.Register)
	authGroup.Get("/usuarios", AuthMiddleware(deps.JWTSecret), authHandler.ListarUsuarios)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Expedientes
	expedientes := protected.Group("/expedientes")
	expedienteHandler := NewExpedienteHandler(deps.ExpedienteUC)
	expedientes.Post("/", RequirePermiso(authz.CrearExpediente), expedienteHandler.Crear)
	expedientes.Get("/", expedienteHandler.Listar)
	expedientes.Get("/:id", expedienteHandler.ObtenerPorID)
	expedientes.Put("/:id", RequirePermiso(authz.EditarExpediente), expedienteHandler.Actualizar)
	expedientes.Post("/:id/enviar-revision", RequirePermiso(authz.EnviarRevision), expedienteHandler.EnviarRevision)
	expedientes.Post("/:id/aprobar", RequirePermiso(authz.Aprobar), expedienteHandler.Aprobar)
	expedientes.Post("/:id/rechazar", RequirePermiso(authz.Rechazar), expedienteHandler.Rechazar)

	// Indicios
	indicios := protected.Group("/indicios")
	indicioHandler := NewIndicioHandler(deps.IndicioUC)
	indicios.Post("/", RequirePermiso(authz.CrearIndicio), indicioHandler.Crear)
	indicios.Get("/expediente/:expediente_id", indicioHandler.ListarPorExpediente)
	indicios.Put("/:id", RequirePermiso(authz.EditarIndicio), indicioHandler.Actualizar)
	indicios.Delete("/:id", RequirePermiso(authz.EliminarIndicio), indicioHandler.Eliminar)

	// Reportes
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC, deps.ReportePDF)
	reportes.Get("/reporte", reporteHandler.Reporte)
	reportes.Get("/reporte/pdf", reporteHandler.ReportePDF)
	reportes.Get("/estadisticas", reporteHandler.Estadisticas)
	reportes.Get("/revision/pendientes", RequirePermiso(authz.Aprobar), reporteHandler.PendientesRevision)
}
