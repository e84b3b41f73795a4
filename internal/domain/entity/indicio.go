package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Indicio elemento de evidencia física adjunto a un expediente.
// Invariante: solo puede crearse, editarse o eliminarse mientras el expediente
// dueño está En Registro; al enviarse a revisión el conjunto queda congelado.
type Indicio struct {
	ID              string
	ExpedienteID    string
	NombreObjeto    string
	Descripcion     string
	Color           *string
	TamanoCm        *decimal.Decimal // NUMERIC en DB; nil = no informado
	PesoGramos      *decimal.Decimal
	Ubicacion       *string
	TecnicoRegistro string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
