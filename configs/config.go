package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port              string
	CouchbaseHost     string
	CouchbaseUser     string
	CouchbasePassword string
	CouchbaseBucket   string
	SerpAPIKey        string
	Environment       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		CouchbaseHost:     getEnv("COUCHBASE_HOST", "localhost"),
		CouchbaseUser:     getEnv("COUCHBASE_USER", "smwu-admin"),
		CouchbasePassword: getEnv("COUCHBASE_PASSWORD", ""),
		CouchbaseBucket:   getEnv("COUCHBASE_BUCKET", "smwu-sales-data"),
		SerpAPIKey:        getEnv("SERPAPI_API_KEY", ""),
		Environment:       getEnv("ENVIRONMENT", "development"),
	}
}

// ConnectionString returns the Couchbase cluster connection string
func (c *Config) ConnectionString() string {
	return "couchbase://" + c.CouchbaseHost
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
