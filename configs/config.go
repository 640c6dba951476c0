package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	ProjectID       string
	CredentialsFile string

	// Bounds on every remote document-store call.
	StoreTimeout       time.Duration
	StoreRetryAttempts int
	StoreRetryDelay    time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:               getEnv("PORT", "8000"),
		Env:                getEnv("APP_ENV", "development"),
		ProjectID:          os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile:    getEnv("FIREBASE_CREDENTIALS", "key.json"),
		StoreTimeout:       getDuration("STORE_TIMEOUT", 5*time.Second),
		StoreRetryAttempts: getInt("STORE_RETRY_ATTEMPTS", 3),
		StoreRetryDelay:    getDuration("STORE_RETRY_DELAY", 200*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
