package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Exchange
	ExchangeName      string
	VWAPWindowMinutes int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Exchange
		ExchangeName: getEnv("EXCHANGE_NAME", "Global Beverage Corporation Exchange"),
	}

	// Parse the default volume-weighted price window
	windowStr := getEnv("VWAP_WINDOW_MINUTES", "15")
	window, err := strconv.Atoi(windowStr)
	if err != nil || window <= 0 {
		log.Printf("Warning: invalid VWAP_WINDOW_MINUTES value '%s', falling back to 15\n", windowStr)
		window = 15
	}
	config.VWAPWindowMinutes = window

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
