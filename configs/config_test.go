package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "COUCHBASE_HOST", "COUCHBASE_USER", "COUCHBASE_PASSWORD",
		"COUCHBASE_BUCKET", "SERPAPI_API_KEY", "ENVIRONMENT",
	} {
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.CouchbaseHost)
	assert.Equal(t, "smwu-admin", cfg.CouchbaseUser)
	assert.Equal(t, "", cfg.CouchbasePassword)
	assert.Equal(t, "smwu-sales-data", cfg.CouchbaseBucket)
	assert.Equal(t, "", cfg.SerpAPIKey)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("COUCHBASE_HOST", "db.internal")
	os.Setenv("COUCHBASE_PASSWORD", "secret")
	os.Setenv("ENVIRONMENT", "production")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("COUCHBASE_HOST")
		os.Unsetenv("COUCHBASE_PASSWORD")
		os.Unsetenv("ENVIRONMENT")
	}()

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db.internal", cfg.CouchbaseHost)
	assert.Equal(t, "secret", cfg.CouchbasePassword)
	assert.Equal(t, "production", cfg.Environment)
}

func TestConnectionString(t *testing.T) {
	cfg := &Config{CouchbaseHost: "db.internal"}
	assert.Equal(t, "couchbase://db.internal", cfg.ConnectionString())
}
