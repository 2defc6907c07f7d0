package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears variables for the duration of a test. t.Setenv registers the
// restore; the explicit Unsetenv makes envDefault values kick in.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "MONGODB_URI", "FIXTURES_ROOT", "ENVIRONMENT")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDBURI)
	assert.Equal(t, "./fixtures", cfg.FixturesRoot)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.staging:27017")
	t.Setenv("FIXTURES_ROOT", "/srv/fixtures")
	t.Setenv("ENVIRONMENT", "staging")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db.staging:27017", cfg.MongoDBURI)
	assert.Equal(t, "/srv/fixtures", cfg.FixturesRoot)
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoadConfig_RefusesProduction(t *testing.T) {
	for _, env := range []string{"production", "prod", "PRODUCTION", " Prod "} {
		t.Setenv("ENVIRONMENT", env)

		cfg, err := LoadConfig()
		assert.Nil(t, cfg, "environment %q must not load", env)
		assert.ErrorIs(t, err, ErrProductionEnvironment)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDBURI)
	assert.Equal(t, "./fixtures", cfg.FixturesRoot)
	assert.False(t, cfg.IsProduction())
}
