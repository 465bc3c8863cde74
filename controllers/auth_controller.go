package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"properties-api/dto"
	"properties-api/services"
)

// AuthController maneja el login del administrador y el health check
type AuthController struct {
	service services.AuthService
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login maneja POST /login
// Devuelve el JWT que después viaja en el header Authorization
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid login request"})
		return
	}

	response, err := ctrl.service.Login(req)
	if err != nil {
		// Credenciales incorrectas: 401, sin detalle de cuál campo falló
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck maneja GET /health
func (ctrl *AuthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "properties-api",
	})
}
