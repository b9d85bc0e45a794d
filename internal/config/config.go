package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the console and the stub server read from the
// environment.
type Config struct {
	// Console side
	APIBaseURL string
	Token      string
	RefreshTok string
	LogFile    string

	// Stub server side
	ListenAddr string
	JWTSecret  string
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() Config {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		Token:      getEnv("API_TOKEN", ""),
		RefreshTok: getEnv("API_REFRESH_TOKEN", ""),
		LogFile:    getEnv("LOG_FILE", "./logs/orgconsole.log"),
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
