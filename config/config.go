package config

import "os"

// Config contiene la configuración de la aplicación
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MemcachedHost string

	// Si RabbitMQURL queda vacío no se publican eventos
	RabbitMQURL   string
	RabbitMQQueue string

	AssetStoreURL    string
	AssetStoreAPIKey string

	AdminUsername     string
	AdminPasswordHash string // hash bcrypt de la contraseña del admin
}

// LoadConfig carga la configuración desde variables de entorno con valores por defecto
func LoadConfig() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8081"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "properties_user"),
		DBPassword:        getEnv("DB_PASSWORD", "properties_password"),
		DBName:            getEnv("DB_NAME", "properties_db"),
		MemcachedHost:     getEnv("MEMCACHED_HOST", "localhost:11211"),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:     getEnv("RABBITMQ_QUEUE", "properties_queue"),
		AssetStoreURL:     getEnv("ASSET_STORE_URL", "http://localhost:9000"),
		AssetStoreAPIKey:  getEnv("ASSET_STORE_API_KEY", ""),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
	return cfg
}

// getEnv obtiene una variable de entorno o retorna un valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
