package config

import (
	"os"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	GeoIPDatabase string
	GinMode       string
}

// Load reads configuration from the environment, applying defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "onetapp"),
		GeoIPDatabase: os.Getenv("GEOIP_DB_PATH"),
		GinMode:       os.Getenv("GIN_MODE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
