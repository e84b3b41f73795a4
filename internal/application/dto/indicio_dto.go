package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearIndicioRequest alta de indicio sobre un expediente En Registro.
// Los campos numéricos opcionales se distinguen de cero: nil = no informado.
type CrearIndicioRequest struct {
	ExpedienteID string           `json:"expediente_id"`
	NombreObjeto string           `json:"nombre_objeto"`
	Descripcion  string           `json:"descripcion"`
	Color        *string          `json:"color"`
	TamanoCm     *decimal.Decimal `json:"tamano_cm"`
	PesoGramos   *decimal.Decimal `json:"peso_gramos"`
	Ubicacion    *string          `json:"ubicacion"`
}

// ActualizarIndicioRequest edición de indicio (expediente aún En Registro).
type ActualizarIndicioRequest struct {
	NombreObjeto string           `json:"nombre_objeto"`
	Descripcion  string           `json:"descripcion"`
	Color        *string          `json:"color"`
	TamanoCm     *decimal.Decimal `json:"tamano_cm"`
	PesoGramos   *decimal.Decimal `json:"peso_gramos"`
	Ubicacion    *string          `json:"ubicacion"`
}

// IndicioCreadoResponse identificador generado en el alta.
type IndicioCreadoResponse struct {
	IndicioID string `json:"indicio_id"`
}

// IndicioResponse representación completa de un indicio.
type IndicioResponse struct {
	IndicioID       string           `json:"indicio_id"`
	ExpedienteID    string           `json:"expediente_id"`
	NombreObjeto    string           `json:"nombre_objeto"`
	Descripcion     string           `json:"descripcion"`
	Color           *string          `json:"color"`
	TamanoCm        *decimal.Decimal `json:"tamano_cm"`
	PesoGramos      *decimal.Decimal `json:"peso_gramos"`
	Ubicacion       *string          `json:"ubicacion"`
	TecnicoRegistro string           `json:"tecnico_registro"`
	CreatedAt       time.Time        `json:"created_at"`
}
