package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. Se añade Rol para que el middleware RBAC pueda decidir sin
// consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID string `json:"usuario_id"`
	Rol       string `json:"rol"` // "Tecnico" | "Coordinador" | "Administrador"
}

// Generate genera un token JWT firmado que incluye usuarioID y rol.
func Generate(secret, usuarioID, rol, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UsuarioID: usuarioID,
		Rol:       rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve usuarioID y rol.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (usuarioID, rol string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UsuarioID, claims.Rol, nil
}
