package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and passed to the components that need it.
type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	ClientURL       string
	RequestTimeout  time.Duration
	APIBaseURL      string
	ColorTransition time.Duration
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetInt parses an integer variable, falling back on absence or parse failure.
func GetInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

// GetDuration reads a millisecond count.
func GetDuration(key string, fallbackMs int) time.Duration {
	return time.Duration(GetInt(key, fallbackMs)) * time.Millisecond
}

// Load collects the configuration from the environment.
func Load() Config {
	return Config{
		Port:            GetEnv("PORT", "5000"),
		MongoURI:        GetEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   GetEnv("MONGODB_DATABASE", "emistore"),
		ClientURL:       GetEnv("CLIENT_URL", "*"),
		RequestTimeout:  GetDuration("REQUEST_TIMEOUT_MS", 10000),
		APIBaseURL:      GetEnv("API_BASE_URL", ""),
		ColorTransition: GetDuration("COLOR_TRANSITION_MS", 300),
	}
}

// ResolveAPIBase returns the API base address, falling back to the local server
// when no base is configured.
func (c Config) ResolveAPIBase() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return "http://localhost:" + c.Port
}
