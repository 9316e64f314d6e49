package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	UpstreamURL       string
	UpstreamTimeout   time.Duration
	RetryBaseDelay    time.Duration
	JWTSecret         string
	JWTExpiry         string
	AdminEmail        string
	AdminPasswordHash string
	MaxUploadSize     int64
	LogFile           string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 10485760
	}

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		timeout = 10 * time.Second
	}

	retryDelay, err := time.ParseDuration(getEnv("UPSTREAM_RETRY_DELAY", "2s"))
	if err != nil {
		retryDelay = 2 * time.Second
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		UpstreamURL:       getEnv("UPSTREAM_API_URL", ""),
		UpstreamTimeout:   timeout,
		RetryBaseDelay:    retryDelay,
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getEnv("JWT_EXPIRY", "24h"),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		MaxUploadSize:     maxUploadSize,
		LogFile:           getEnv("LOG_FILE", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
