package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada operación de los casos
// de uso termina en uno de estos centinelas; la capa HTTP los traduce a un
// código estable y un status.
var (
	// ErrValidacion entrada malformada o incompleta; el llamador puede corregir y reintentar.
	ErrValidacion = errors.New("entrada inválida")
	// ErrNoAutorizado credenciales ausentes o inválidas.
	ErrNoAutorizado = errors.New("no autorizado")
	// ErrAccesoDenegado el rol del usuario no permite la operación. No reintentable.
	ErrAccesoDenegado = errors.New("no tienes permisos para realizar esta accion")
	// ErrNoEncontrado el expediente/indicio/usuario referido no existe.
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrConflicto precondición de estado no cumplida, incluye carreras perdidas
	// en la actualización condicional de estado.
	ErrConflicto = errors.New("conflicto con el estado actual")
	// ErrDuplicado violación de unicidad (número de expediente, email).
	ErrDuplicado = errors.New("recurso duplicado")
	// ErrPersistencia la base de datos no está disponible; fallo de servicio, no de dominio.
	ErrPersistencia = errors.New("almacenamiento no disponible")
)
