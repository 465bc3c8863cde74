package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"properties-api/config"
	"properties-api/controllers"
	"properties-api/domain"
	"properties-api/middleware"
	"properties-api/publishers"
	"properties-api/repositories"
	"properties-api/services"
)

func main() {
	// ============================================
	// 1. CONFIGURACIÓN
	// ============================================
	// .env es opcional: en docker las variables ya vienen seteadas
	if err := godotenv.Load(); err == nil {
		log.Println("🔧 Variables cargadas desde .env")
	}

	cfg := config.LoadConfig()
	log.Println("🔧 Configuración cargada:")
	log.Printf("   - DB Host: %s:%s", cfg.DBHost, cfg.DBPort)
	log.Printf("   - DB Name: %s", cfg.DBName)
	log.Printf("   - Memcached: %s", cfg.MemcachedHost)
	log.Printf("   - Asset store: %s", cfg.AssetStoreURL)

	// ============================================
	// 2. CONECTAR A MYSQL
	// ============================================
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("📡 Conectando a MySQL...")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	log.Println("✅ Conexión a MySQL exitosa")

	// ============================================
	// 3. AUTO-MIGRAR LAS TABLAS
	// ============================================
	log.Println("🔄 Ejecutando migraciones...")
	if err := db.AutoMigrate(&domain.Property{}); err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Tablas creadas/actualizadas")

	// ============================================
	// 4. INICIALIZAR CAPAS
	// ============================================
	log.Println("🏗️  Inicializando capas...")

	propertyRepo := repositories.NewPropertyRepository(db)
	assetRepo := repositories.NewAssetRepository(cfg.AssetStoreURL, cfg.AssetStoreAPIKey)
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)

	// El publisher es opcional: sin RabbitMQ la app sigue funcionando,
	// solo que el índice de búsqueda no se entera de los cambios
	var publisher publishers.EventPublisher
	if cfg.RabbitMQURL != "" {
		rabbitPublisher, err := publishers.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			log.Printf("⚠️  RabbitMQ no disponible, eventos deshabilitados: %v", err)
		} else {
			publisher = rabbitPublisher
			log.Println("✅ Publisher de RabbitMQ inicializado")
		}
	}

	propertyService := services.NewPropertyService(propertyRepo, assetRepo, cacheRepo, publisher)
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash)

	propertyController := controllers.NewPropertyController(propertyService)
	authController := controllers.NewAuthController(authService)

	log.Println("✅ Capas inicializadas")

	// ============================================
	// 5. CONFIGURAR GIN
	// ============================================
	router := gin.Default()

	// CORS - Permitir requests desde el frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// ============================================
	// 6. DEFINIR RUTAS
	// ============================================
	log.Println("🛣️  Configurando rutas...")

	// Rutas PÚBLICAS (sin autenticación)
	router.GET("/health", authController.HealthCheck)
	router.POST("/login", authController.Login)
	router.GET("/api/property", propertyController.GetAllProperties)
	router.GET("/api/property/:id", propertyController.GetPropertyByID)

	// Rutas PROTEGIDAS (requieren JWT con is_admin)
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/property", propertyController.CreateProperty)
		admin.PATCH("/property", propertyController.UpdateProperty)
		admin.DELETE("/property", propertyController.DeleteProperty)
		admin.POST("/uploads", propertyController.UploadImages)
	}

	log.Println("✅ Rutas configuradas:")
	log.Println("   - GET    /health")
	log.Println("   - POST   /login")
	log.Println("   - GET    /api/property")
	log.Println("   - GET    /api/property/:id")
	log.Println("   - POST   /api/property (admin)")
	log.Println("   - PATCH  /api/property (admin)")
	log.Println("   - DELETE /api/property (admin)")
	log.Println("   - POST   /api/uploads (admin)")

	// ============================================
	// 7. ARRANCAR EL SERVIDOR
	// ============================================
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("🚀 =======================================")
		log.Printf("🚀 Properties API corriendo en puerto %s", cfg.Port)
		log.Println("🚀 =======================================")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Graceful shutdown: cerrar el servidor y el publisher al recibir señal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Properties API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	} else {
		log.Println("HTTP server shut down successfully")
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Printf("Error closing RabbitMQ publisher: %v", err)
		} else {
			log.Println("RabbitMQ publisher closed successfully")
		}
	}

	log.Println("Properties API shut down complete")
}
