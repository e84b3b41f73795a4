// Package validation contiene los chequeos estructurales de entrada: funciones
// puras, sin I/O ni efectos. Cada regla violada produce un mensaje
// determinista para el usuario final.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/dicri-mp/expedientes-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Error error de validación: conserva el mensaje exacto de la regla violada y
// desenvuelve a domain.ErrValidacion para la clasificación por la capa HTTP.
type Error struct {
	Mensaje string
}

func (e *Error) Error() string { return e.Mensaje }

func (e *Error) Unwrap() error { return domain.ErrValidacion }

func falla(mensaje string) error { return &Error{Mensaje: mensaje} }

// ValidarExpediente reglas para crear un expediente.
func ValidarExpediente(numeroExpediente, descripcion string) error {
	if strings.TrimSpace(numeroExpediente) == "" {
		return falla("El numero de expediente es requerido")
	}
	if utf8.RuneCountInString(numeroExpediente) < 5 {
		return falla("El numero de expediente debe tener al menos 5 caracteres")
	}
	return ValidarDescripcion(descripcion)
}

// ValidarDescripcion regla de descripción de expediente, también usada sola
// en la edición.
func ValidarDescripcion(descripcion string) error {
	if strings.TrimSpace(descripcion) == "" {
		return falla("La descripcion es requerida")
	}
	if utf8.RuneCountInString(descripcion) < 20 {
		return falla("La descripcion debe tener al menos 20 caracteres")
	}
	return nil
}

// ValidarEnviarRevision regla del envío a revisión.
func ValidarEnviarRevision(coordinadorAsignado string) error {
	if strings.TrimSpace(coordinadorAsignado) == "" {
		return falla("El coordinador asignado es requerido")
	}
	return nil
}

// ValidarIndicio reglas para crear/editar un indicio. expedienteID solo se
// exige en la creación; en edición se pasa el ID del indicio ya resuelto.
func ValidarIndicio(nombreObjeto, descripcion, expedienteID string, tamanoCm, pesoGramos *decimal.Decimal) error {
	if strings.TrimSpace(nombreObjeto) == "" {
		return falla("El nombre del objeto es requerido")
	}
	if strings.TrimSpace(descripcion) == "" {
		return falla("La descripcion es requerida")
	}
	if expedienteID == "" {
		return falla("El ID del expediente es requerido")
	}
	if tamanoCm != nil && tamanoCm.IsNegative() {
		return falla("El tamano debe ser un numero no negativo")
	}
	if pesoGramos != nil && pesoGramos.IsNegative() {
		return falla("El peso debe ser un numero no negativo")
	}
	return nil
}

// ValidarLogin reglas estructurales de credenciales.
func ValidarLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return falla("El email es requerido")
	}
	if !strings.Contains(email, "@") {
		return falla("Email invalido")
	}
	if password == "" {
		return falla("La contraseña es requerida")
	}
	if utf8.RuneCountInString(password) < 6 {
		return falla("La contraseña debe tener al menos 6 caracteres")
	}
	return nil
}

// ValidarJustificacion regla de rechazo de expediente.
func ValidarJustificacion(justificacion string) error {
	if utf8.RuneCountInString(justificacion) < 10 {
		return falla("La justificacion debe tener al menos 10 caracteres")
	}
	return nil
}
