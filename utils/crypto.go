package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashea una contraseña con bcrypt
// Sirve para generar el hash del admin que va en ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifica si una contraseña coincide con el hash
// Se usa en el login del administrador
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
