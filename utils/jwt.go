package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Llave secreta para firmar los tokens
// En producción tiene que venir por variable de entorno
var jwtSecret = []byte(getJWTSecret())

// Claims es la estructura de los datos que viajan EN el token
// IsAdmin es el único flag de privilegio del sistema: toda operación
// de escritura se decide mirando exclusivamente este campo
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// getJWTSecret obtiene el secret desde variables de entorno
// Si no existe, usa uno por defecto (solo para desarrollo)
func getJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-change-in-production"
	}
	return secret
}

// IsAdmin deriva el flag de privilegio de unos claims
// Es una función pura: claims ausentes o sin el flag => no privilegiado
// El chequeo del servidor es el que manda; que el frontend esconda
// botones es solo cosmético
func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.IsAdmin
}

// GenerateToken genera un nuevo JWT para un usuario
// Se llama después del login exitoso
func GenerateToken(userID uint, username string, isAdmin bool) (string, error) {
	// El token expira en 24 horas
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &Claims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken valida un JWT y retorna los claims
// Se usa en el middleware para verificar la sesión
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
