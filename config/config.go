package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL           string
	RequestTimeout       time.Duration
	NotificationInterval time.Duration
	RedirectDelay        time.Duration

	// Used only by the local API imitation server.
	JWTSecret       string
	StripeSecretKey string
	ServerPort      string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		APIBaseURL:           getEnv("API_BASE_URL", "http://localhost:8000/api/v1"),
		RequestTimeout:       getDurationEnv("REQUEST_TIMEOUT", 30*time.Second),
		NotificationInterval: getDurationEnv("NOTIFICATION_POLL_INTERVAL", 60*time.Second),
		RedirectDelay:        getDurationEnv("REDIRECT_DELAY", 2*time.Second),
		JWTSecret:            getEnv("JWT_SECRET", "secret"),
		StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		ServerPort:           getEnv("SERVER_PORT", "8000"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
