package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP_ADDR     string
	STORE_PATH    string
	JWT_SECRET    string
	KAFKA_ADDRESS string
	LOG_LEVEL     string
	DEMO_EMAIL    string
	DEMO_NAME     string
	DEMO_PASSWORD string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		HTTP_ADDR:     getenvDefault("HTTP_ADDR", ":8080"),
		STORE_PATH:    getenvDefault("STORE_PATH", "storefront.db"),
		JWT_SECRET:    os.Getenv("JWT_SECRET"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
		LOG_LEVEL:     getenvDefault("LOG_LEVEL", "info"),
		DEMO_EMAIL:    getenvDefault("DEMO_EMAIL", "user@example.com"),
		DEMO_NAME:     getenvDefault("DEMO_NAME", "Dasha Shu"),
		DEMO_PASSWORD: getenvDefault("DEMO_PASSWORD", "password"),
	}

	return config, nil
}

func getenvDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
