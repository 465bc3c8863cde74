package services

import (
	"errors"

	"properties-api/dto"
	"properties-api/utils"
)

// ErrInvalidCredentials se devuelve cuando usuario o contraseña no coinciden
// El mensaje es genérico a propósito: no conviene decir cuál de los dos falló
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService define la interfaz del servicio de autenticación
// La inmobiliaria tiene una sola cuenta de administrador, configurada
// por variables de entorno (no hay registro de usuarios)
type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

// authService es la implementación real del servicio
type authService struct {
	adminUsername     string
	adminPasswordHash string // hash bcrypt, nunca la contraseña en texto plano
}

// NewAuthService crea una nueva instancia del servicio
func NewAuthService(adminUsername, adminPasswordHash string) AuthService {
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login verifica las credenciales del administrador y genera un JWT
// con el flag is_admin, que es lo único que miran los middlewares
func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.adminUsername {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, s.adminPasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(1, req.Username, true)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}
