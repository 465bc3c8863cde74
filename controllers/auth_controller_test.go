package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"properties-api/dto"
	"properties-api/services"
	"properties-api/utils"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := utils.HashPassword("secreto123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	ctrl := NewAuthController(services.NewAuthService("admin", hash))
	router := gin.New()
	router.POST("/login", ctrl.Login)
	router.GET("/health", ctrl.HealthCheck)
	return router
}

// Test: login correcto devuelve un token con el flag de admin
func TestLogin_Success(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodPost, "/login", "", dto.LoginRequest{
		Username: "admin",
		Password: "secreto123",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Expected a token in the response")
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("Returned token does not validate: %v", err)
	}
	if !utils.IsAdmin(claims) {
		t.Error("Expected the token to carry the admin flag")
	}
}

// Test: contraseña incorrecta devuelve 401 sin detalle
func TestLogin_WrongPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodPost, "/login", "", dto.LoginRequest{
		Username: "admin",
		Password: "otra-cosa",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

// Test: usuario desconocido devuelve el mismo 401
func TestLogin_UnknownUser(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodPost, "/login", "", dto.LoginRequest{
		Username: "otro",
		Password: "secreto123",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}
