package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	// Keep the runner's environment from supplying a secret
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DEVCONNECTOR_SECURITY_JWT_SECRET", "")
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8080"
database:
  type: sqlite
  path: /tmp/test.db
security:
  jwt_secret: file-secret
  jwt_expiration: 1h
  bcrypt_cost: 12
api:
  cors:
    allowed_origins: ["https://app.example.com"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "file-secret", cfg.Security.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Security.JWTExpiration)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.API.CORS.AllowedOrigins)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 360000*time.Second, cfg.Security.JWTExpiration)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, "env-secret", cfg.Security.JWTSecret)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"5000\"\n")

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadConfig_LegacySecretKey(t *testing.T) {
	path := writeConfig(t, "jwtSecret: legacy-secret\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "legacy-secret", cfg.Security.JWTSecret)
}

func TestLoadConfig_PrefixedEnv(t *testing.T) {
	t.Setenv("DEVCONNECTOR_SECURITY_JWT_SECRET", "prefixed-secret")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed-secret", cfg.Security.JWTSecret)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown database": "security:\n  jwt_secret: s\ndatabase:\n  type: mongo\n",
		"postgres no host": "security:\n  jwt_secret: s\ndatabase:\n  type: postgres\n",
		"zero expiration":  "security:\n  jwt_secret: s\n  jwt_expiration: 0s\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	pg := DatabaseConfig{Type: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "d"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=d sslmode=disable", pg.DSN())

	sqlite := DatabaseConfig{Type: "sqlite", Path: "./x.db"}
	assert.Equal(t, "./x.db", sqlite.DSN())
}

func TestSanitizeForLogging(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "pw"},
		Security: SecurityConfig{JWTSecret: "secret"},
	}

	sanitized := cfg.SanitizeForLogging()
	assert.Equal(t, "[REDACTED]", sanitized.Database.Password)
	assert.Equal(t, "[REDACTED]", sanitized.Security.JWTSecret)
	assert.Equal(t, "secret", cfg.Security.JWTSecret)
}

func TestGinMode(t *testing.T) {
	cases := map[string]string{
		"release":     "release",
		"production":  "release",
		"debug":       "debug",
		"development": "debug",
		"test":        "test",
		"":            "debug",
		"staging":     "debug",
	}
	for mode, want := range cases {
		cfg := &Config{Server: ServerConfig{Mode: mode}}
		assert.Equal(t, want, cfg.GinMode(), mode)
	}
}
