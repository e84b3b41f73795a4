package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicri-mp/expedientes-api/internal/application/dto"
	"github.com/dicri-mp/expedientes-api/internal/application/validation"
	"github.com/dicri-mp/expedientes-api/internal/domain"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Caso 1: alta de indicio con medidas y lectura por expediente.
func TestCrearIndicio_YListarlo(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-020")

	color := "Dorado"
	resp, err := env.indicios.Crear(context.Background(), dto.CrearIndicioRequest{
		ExpedienteID: expID,
		NombreObjeto: "Casquillo calibre 9mm",
		Descripcion:  "Casquillo percutido hallado junto a la puerta principal",
		Color:        &color,
		TamanoCm:     decPtr("1.90"),
		PesoGramos:   decPtr("4.25"),
	}, actorTecnico)
	require.NoError(t, err)

	items, err := env.indicios.ListarPorExpediente(context.Background(), expID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, resp.IndicioID, items[0].IndicioID)
	assert.Equal(t, "Casquillo calibre 9mm", items[0].NombreObjeto)
	require.NotNil(t, items[0].TamanoCm)
	assert.True(t, items[0].TamanoCm.Equal(decimal.RequireFromString("1.90")))
	assert.Equal(t, idTecnico, items[0].TecnicoRegistro)
}

// Caso 2: peso negativo → mensaje exacto de validación.
func TestCrearIndicio_PesoNegativo(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-021")

	_, err := env.indicios.Crear(context.Background(), dto.CrearIndicioRequest{
		ExpedienteID: expID,
		NombreObjeto: "Casquillo",
		Descripcion:  "Casquillo percutido",
		PesoGramos:   decPtr("-1"),
	}, actorTecnico)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "El peso debe ser un numero no negativo", vErr.Mensaje)
}

// Caso 3: no se pueden agregar indicios a un expediente inexistente.
func TestCrearIndicio_ExpedienteInexistente(t *testing.T) {
	env := nuevoEntorno()

	_, err := env.indicios.Crear(context.Background(), dto.CrearIndicioRequest{
		ExpedienteID: "no-existe",
		NombreObjeto: "Casquillo",
		Descripcion:  "Casquillo percutido",
	}, actorTecnico)

	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// Caso 4: tras enviar a revisión el conjunto de indicios queda congelado:
// agregar, editar y eliminar devuelven ErrConflicto y nada cambia.
func TestIndicios_CongeladosTrasEnviarRevision(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-022")
	indID := agregarIndicio(t, env, expID)
	require.NoError(t, env.expedientes.EnviarRevision(context.Background(), expID, idCoordinador, actorTecnico))

	_, err := env.indicios.Crear(context.Background(), dto.CrearIndicioRequest{
		ExpedienteID: expID,
		NombreObjeto: "Cartucho sin percutir",
		Descripcion:  "Cartucho encontrado en el cargador del arma",
	}, actorTecnico)
	assert.ErrorIs(t, err, domain.ErrConflicto)

	err = env.indicios.Actualizar(context.Background(), indID, dto.ActualizarIndicioRequest{
		NombreObjeto: "Casquillo modificado",
		Descripcion:  "Intento de edición con el expediente en revisión",
	}, actorTecnico)
	assert.ErrorIs(t, err, domain.ErrConflicto)

	err = env.indicios.Eliminar(context.Background(), indID, actorTecnico)
	assert.ErrorIs(t, err, domain.ErrConflicto)

	items, err := env.indicios.ListarPorExpediente(context.Background(), expID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Casquillo calibre 9mm", items[0].NombreObjeto, "el indicio no debe haberse tocado")
}

// Caso 5: la lectura de indicios sigue disponible en estados terminales.
func TestListarIndicios_EnEstadoTerminal(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-023")
	agregarIndicio(t, env, expID)
	agregarIndicio(t, env, expID)
	require.NoError(t, env.expedientes.EnviarRevision(context.Background(), expID, idCoordinador, actorTecnico))
	require.NoError(t, env.expedientes.Aprobar(context.Background(), expID, actorCoordinador))

	items, err := env.indicios.ListarPorExpediente(context.Background(), expID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

// Caso 6: edición válida mientras el expediente sigue En Registro.
func TestActualizarIndicio_EnRegistro(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-024")
	indID := agregarIndicio(t, env, expID)

	ubicacion := "Bodega de evidencias, estante 4"
	err := env.indicios.Actualizar(context.Background(), indID, dto.ActualizarIndicioRequest{
		NombreObjeto: "Casquillo calibre 9mm Luger",
		Descripcion:  "Casquillo percutido, cabecera marcada, hallado junto a la puerta",
		Ubicacion:    &ubicacion,
	}, actorTecnico)
	require.NoError(t, err)

	items, err := env.indicios.ListarPorExpediente(context.Background(), expID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Casquillo calibre 9mm Luger", items[0].NombreObjeto)
	require.NotNil(t, items[0].Ubicacion)
	assert.Equal(t, ubicacion, *items[0].Ubicacion)
}

// Caso 7: un coordinador no registra indicios → ErrAccesoDenegado.
func TestCrearIndicio_CoordinadorDenegado(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-025")

	_, err := env.indicios.Crear(context.Background(), dto.CrearIndicioRequest{
		ExpedienteID: expID,
		NombreObjeto: "Casquillo",
		Descripcion:  "Casquillo percutido",
	}, actorCoordinador)

	assert.ErrorIs(t, err, domain.ErrAccesoDenegado)
}

// Caso 8: eliminar deja el expediente sin ese indicio.
func TestEliminarIndicio_EnRegistro(t *testing.T) {
	env := nuevoEntorno()
	expID := crearExpediente(t, env, "DICRI-2024-026")
	indID := agregarIndicio(t, env, expID)

	require.NoError(t, env.indicios.Eliminar(context.Background(), indID, actorTecnico))

	items, err := env.indicios.ListarPorExpediente(context.Background(), expID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
