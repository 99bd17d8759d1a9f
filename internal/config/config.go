package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	MongoURI              string
	MongoDatabase         string
	RabbitMQURI           string
	RabbitMQExchange      string
	AdvisorBaseURL        string
	AdvisorAPIKey         string
	AdvisorModel          string
	AdvisorTimeoutSeconds int
}

var AppConfig *Config

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	AppConfig = &Config{
		Port:                  getEnvOrDefault("PORT", "6660"),
		MongoURI:              os.Getenv("MONGO_URI"),
		MongoDatabase:         getEnvOrDefault("MONGO_DATABASE", "quiz_engine"),
		RabbitMQURI:           os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange:      os.Getenv("RABBITMQ_EXCHANGE"),
		AdvisorBaseURL:        os.Getenv("ADVISOR_BASE_URL"),
		AdvisorAPIKey:         os.Getenv("ADVISOR_API_KEY"),
		AdvisorModel:          getEnvOrDefault("ADVISOR_MODEL", "qwen3:1.7b"),
		AdvisorTimeoutSeconds: getEnvIntOrDefault("ADVISOR_TIMEOUT_SECONDS", 3),
	}
	return AppConfig
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
