package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv сбрасывает переменные окружения, которые могли протечь из окружения CI.
// Пустое значение для viper равносильно отсутствию переменной.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_READTIMEOUT", "SERVER_WRITETIMEOUT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD",
		"DATABASE_DBNAME", "DATABASE_SSLMODE", "DATABASE_MAXOPENCONNS",
		"DATABASE_MAXIDLECONNS", "DATABASE_CONNMAXLIFETIMEMIN", "DATABASE_LOGLEVEL",
		"DATABASE_MIGRATIONSPATH", "CORS_ALLOWORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleYAML = `
server:
  port: "9090"
  readTimeout: 5
  writeTimeout: 7
database:
  host: db.local
  port: "6543"
  user: captcha
  password: secret
  dbname: captcha_db
  sslmode: require
  maxOpenConns: 40
  logLevel: info
cors:
  allowOrigins:
    - https://maze.example.com
`

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	path := writeConfigFile(t, sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 7, cfg.Server.WriteTimeout)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "6543", cfg.Database.Port)
	assert.Equal(t, "captcha_db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Database.LogLevel)
	assert.Equal(t, []string{"https://maze.example.com"}, cfg.CORS.AllowOrigins)

	// Значения, не указанные в файле, берутся из умолчаний
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 60, cfg.Database.ConnMaxLifetimeMin)
	assert.Equal(t, "file://migrations", cfg.Database.MigrationsPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DATABASE_HOST", "env-host")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("CORS_ALLOWORIGINS", "http://a.test, http://b.test")
	path := writeConfigFile(t, sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "postgres")
	t.Setenv("DATABASE_DBNAME", "captcha_db")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Empty(t, cfg.Database.Password, "в debug режиме пароль необязателен")
}

func TestLoad_IncompleteDatabaseConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")
	path := writeConfigFile(t, "server:\n  port: \"8000\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database configuration")
}

func TestLoad_PasswordRequiredOutsideDebug(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "postgres")
	t.Setenv("DATABASE_DBNAME", "captcha_db")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		DBName:   "captcha_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=captcha_db sslmode=disable",
		d.PostgresConnectionString())
	assert.Equal(t,
		"postgres://postgres:pw@localhost:5432/captcha_db?sslmode=disable",
		d.PostgresURL())
}
