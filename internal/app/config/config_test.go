package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
ServiceHost = "127.0.0.1"
ServicePort = 9090
DatabaseDSN = "host=db user=app dbname=rental sslmode=disable"

[JWT]
ExpiresIn = "30m"

[Redis]
Host = "redis"
Port = 6380
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".toml"), []byte(body), 0o600))
	return dir
}

func TestNewConfigFromFileAndEnv(t *testing.T) {
	dir := writeConfig(t, "rental_test", sampleTOML)
	t.Setenv(envConfigDir, dir)
	t.Setenv(envConfigName, "rental_test")
	t.Setenv(envJWTSecret, "s3cret")
	t.Setenv(envRedisPort, "6381")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "s3cret", cfg.JWT.Token)
	assert.Equal(t, 30*time.Minute, cfg.JWT.ExpiresIn)
	assert.Equal(t, "HS256", cfg.JWT.SigningMethod.Alg())
	assert.Equal(t, "redis", cfg.Redis.Host)
	assert.Equal(t, 6381, cfg.Redis.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MinIO.Enabled())
	assert.Equal(t, "game-images", cfg.MinIO.Bucket)
}

func TestNewConfigRequiresSecret(t *testing.T) {
	dir := writeConfig(t, "nosecret", sampleTOML)
	t.Setenv(envConfigDir, dir)
	t.Setenv(envConfigName, "nosecret")
	t.Setenv(envJWTSecret, "")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv(envConfigDir, t.TempDir())
	t.Setenv(envConfigName, "does_not_exist")
	t.Setenv(envJWTSecret, "k")
	t.Setenv(envDSN, "host=localhost dbname=rental")
	t.Setenv(envJWTExpiresIn, "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 8000, cfg.ServicePort)
	assert.Equal(t, "host=localhost dbname=rental", cfg.DatabaseDSN)
}

func TestNewConfigBadRedisPort(t *testing.T) {
	dir := writeConfig(t, "badport", sampleTOML)
	t.Setenv(envConfigDir, dir)
	t.Setenv(envConfigName, "badport")
	t.Setenv(envJWTSecret, "k")
	t.Setenv(envRedisPort, "six")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestStringMasksSecret(t *testing.T) {
	cfg := &Config{JWT: JWTConfig{Token: "very-secret"}}
	assert.NotContains(t, cfg.String(), "very-secret")
}

func TestLoadDoesNotNeedSecret(t *testing.T) {
	dir := writeConfig(t, "migrate", sampleTOML)
	t.Setenv(envConfigDir, dir)
	t.Setenv(envConfigName, "migrate")
	t.Setenv(envJWTSecret, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db user=app dbname=rental sslmode=disable", cfg.DatabaseDSN)
}
