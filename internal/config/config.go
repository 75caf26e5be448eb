package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Настройки пула соединений
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int

	// LogLevel: уровень логирования GORM ("silent", "error", "warn", "info")
	LogLevel string

	// MigrationsPath: источник миграций для golang-migrate, например "file://migrations"
	MigrationsPath string
}

// CORSConfig содержит список разрешённых origin'ов для фронтенда
type CORSConfig struct {
	AllowOrigins []string
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL подключения для golang-migrate и lib/pq
func (d *DatabaseConfig) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Отдельный экземпляр, без глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8000")
	vip.SetDefault("server.readTimeout", 15)
	vip.SetDefault("server.writeTimeout", 15)
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.maxOpenConns", 25)
	vip.SetDefault("database.maxIdleConns", 10)
	vip.SetDefault("database.connMaxLifetimeMin", 60)
	vip.SetDefault("database.logLevel", "warn")
	vip.SetDefault("database.migrationsPath", "file://migrations")
	vip.SetDefault("cors.allowOrigins", []string{"http://localhost:5173", "http://localhost:3000"})

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.readTimeout", "SERVER_READTIMEOUT")
	vip.BindEnv("server.writeTimeout", "SERVER_WRITETIMEOUT")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.maxOpenConns", "DATABASE_MAXOPENCONNS")
	vip.BindEnv("database.maxIdleConns", "DATABASE_MAXIDLECONNS")
	vip.BindEnv("database.connMaxLifetimeMin", "DATABASE_CONNMAXLIFETIMEMIN")
	vip.BindEnv("database.logLevel", "DATABASE_LOGLEVEL")
	vip.BindEnv("database.migrationsPath", "DATABASE_MIGRATIONSPATH")

	vip.BindEnv("cors.allowOrigins", "CORS_ALLOWORIGINS")

	// 3. Файл конфигурации необязателен: без него работаем на env и умолчаниях
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				log.Printf("[Config] Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("[Config] Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// CORS_ALLOWORIGINS приходит из окружения одной строкой через запятую
	cfg.CORS.AllowOrigins = splitOrigins(cfg.CORS.AllowOrigins)

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Port: %s", cfg.Database.Port)
		log.Printf("Database User: %s", cfg.Database.User)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Database SSLMode: %s", cfg.Database.SSLMode)
		log.Printf("Database Password Set: %t", cfg.Database.Password != "")
		log.Printf("Database Migrations: %s", cfg.Database.MigrationsPath)
		log.Printf("CORS Origins: %v", cfg.CORS.AllowOrigins)
		log.Printf("-----------------------------------------")
	}

	if err := cfg.validate(os.Getenv("GIN_MODE")); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate проверяет обязательные параметры
func (c *Config) validate(ginMode string) error {
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if ginMode != "debug" && c.Database.Password == "" {
		return fmt.Errorf("database password is required outside debug mode (check DATABASE_PASSWORD env var)")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required (check SERVER_PORT env var)")
	}
	return nil
}

func splitOrigins(origins []string) []string {
	result := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
