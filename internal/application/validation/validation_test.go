package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicri-mp/expedientes-api/internal/application/validation"
	"github.com/dicri-mp/expedientes-api/internal/domain"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// mensajeDe extrae el mensaje del error de validación; falla si no lo es.
func mensajeDe(t *testing.T, err error) string {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidacion)
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	return vErr.Mensaje
}

func TestValidarExpediente(t *testing.T) {
	casos := []struct {
		nombre      string
		numero      string
		descripcion string
		mensaje     string // vacío = válido
	}{
		{"valido", "DICRI-2024-001", "Allanamiento en zona 18, recolección de evidencia", ""},
		{"numero vacio", "   ", "Allanamiento en zona 18, recolección de evidencia", "El numero de expediente es requerido"},
		{"numero corto", "D-01", "Allanamiento en zona 18, recolección de evidencia", "El numero de expediente debe tener al menos 5 caracteres"},
		{"numero de exactamente 5", "D-001", "Allanamiento en zona 18, recolección de evidencia", ""},
		{"descripcion vacia", "DICRI-2024-001", "", "La descripcion es requerida"},
		{"descripcion corta", "DICRI-2024-001", "Muy corta", "La descripcion debe tener al menos 20 caracteres"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := validation.ValidarExpediente(c.numero, c.descripcion)
			if c.mensaje == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, c.mensaje, mensajeDe(t, err))
		})
	}
}

func TestValidarEnviarRevision(t *testing.T) {
	assert.NoError(t, validation.ValidarEnviarRevision("u-coordinador"))
	assert.Equal(t, "El coordinador asignado es requerido",
		mensajeDe(t, validation.ValidarEnviarRevision("   ")))
}

func TestValidarIndicio(t *testing.T) {
	casos := []struct {
		nombre       string
		objeto       string
		descripcion  string
		expedienteID string
		tamano       *decimal.Decimal
		peso         *decimal.Decimal
		mensaje      string
	}{
		{"valido sin medidas", "Casquillo", "Casquillo percutido", "exp-1", nil, nil, ""},
		{"valido con medidas", "Casquillo", "Casquillo percutido", "exp-1", dec("1.9"), dec("4.25"), ""},
		{"objeto vacio", " ", "Casquillo percutido", "exp-1", nil, nil, "El nombre del objeto es requerido"},
		{"descripcion vacia", "Casquillo", "", "exp-1", nil, nil, "La descripcion es requerida"},
		{"sin expediente", "Casquillo", "Casquillo percutido", "", nil, nil, "El ID del expediente es requerido"},
		{"tamano negativo", "Casquillo", "Casquillo percutido", "exp-1", dec("-0.1"), nil, "El tamano debe ser un numero no negativo"},
		{"peso negativo", "Casquillo", "Casquillo percutido", "exp-1", nil, dec("-5"), "El peso debe ser un numero no negativo"},
		{"cero es valido", "Casquillo", "Casquillo percutido", "exp-1", dec("0"), dec("0"), ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := validation.ValidarIndicio(c.objeto, c.descripcion, c.expedienteID, c.tamano, c.peso)
			if c.mensaje == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, c.mensaje, mensajeDe(t, err))
		})
	}
}

func TestValidarJustificacion(t *testing.T) {
	assert.Equal(t, "La justificacion debe tener al menos 10 caracteres",
		mensajeDe(t, validation.ValidarJustificacion("corta")))
	// Exactamente 10 caracteres pasa.
	assert.NoError(t, validation.ValidarJustificacion("1234567890"))
}

func TestValidarLogin(t *testing.T) {
	assert.NoError(t, validation.ValidarLogin("carlos@dicri.gob.gt", "password123"))
	assert.Equal(t, "El email es requerido", mensajeDe(t, validation.ValidarLogin("  ", "password123")))
	assert.Equal(t, "Email invalido", mensajeDe(t, validation.ValidarLogin("sin-arroba", "password123")))
	assert.Equal(t, "La contraseña es requerida", mensajeDe(t, validation.ValidarLogin("a@b.c", "")))
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", mensajeDe(t, validation.ValidarLogin("a@b.c", "12345")))
}
