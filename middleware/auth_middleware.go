package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"properties-api/dto"
	"properties-api/utils"
)

// Clave bajo la que se guardan los claims en el contexto de gin
const ClaimsContextKey = "claims"

// AuthMiddleware valida el JWT en cada request
// Si el token es válido guarda los claims en el contexto;
// si no, devuelve 401 (Unauthorized)
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			c.Abort() // Detiene la ejecución
			return
		}

		// Formato esperado: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			c.Abort()
			return
		}

		// Guardar los claims en el contexto para los handlers
		c.Set(ClaimsContextKey, claims)

		c.Next()
	}
}

// AdminMiddleware exige que el caller sea administrador
// Se usa DESPUÉS de AuthMiddleware. Un caller autenticado pero sin
// privilegio recibe el mismo 401 que uno sin sesión: el contrato del
// API no distingue los dos casos
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if !utils.IsAdmin(claims) {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClaimsFromContext recupera los claims guardados por AuthMiddleware
// Devuelve nil si no hay sesión
func ClaimsFromContext(c *gin.Context) *utils.Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*utils.Claims)
	if !ok {
		return nil
	}
	return claims
}
