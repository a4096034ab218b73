package config

import (
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds the runtime settings read once at process start.
type AppConfig struct {
	Port         string
	MongoURI     string
	DatabaseName string
	StaticDir    string
}

// Load reads the .env file (if present) and builds the application config.
func Load() AppConfig {
	_ = godotenv.Load()

	return AppConfig{
		Port:         getEnv("PORT", "8000"),
		MongoURI:     getEnv("DB", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DB_NAME", "foodDelivery"),
		StaticDir:    getEnv("STATIC_DIR", "static"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
