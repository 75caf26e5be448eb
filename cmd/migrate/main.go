package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/yourusername/captcha-api/internal/config"
)

// migrator - подмножество *migrate.Migrate, которое использует утилита
type migrator interface {
	Up() error
	Down() error
	Force(version int) error
	Version() (uint, bool, error)
}

func main() {
	action := flag.String("action", "up", "up | down | force | version")
	version := flag.Int("version", -1, "версия для action=force")
	source := flag.String("path", "", "источник миграций (по умолчанию database.migrationsPath из конфига)")
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *source == "" {
		*source = cfg.Database.MigrationsPath
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(*source, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	msg, err := run(m, *action, *version)
	if err != nil {
		log.Fatalf("Migration %s failed: %v", *action, err)
	}
	fmt.Println(msg)
}

// run выполняет одно действие над схемой и возвращает сообщение для оператора
func run(m migrator, action string, version int) (string, error) {
	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return "", err
		}
	case "down":
		// Откатывает ВСЕ миграции, включая таблицу captchas
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return "", err
		}
	case "force":
		// Снимает флаг dirty после неудачной миграции, ничего не применяя
		if version < 0 {
			return "", fmt.Errorf("action=force requires -version")
		}
		if err := m.Force(version); err != nil {
			return "", err
		}
	case "version":
	default:
		return "", fmt.Errorf("unknown action %q", action)
	}

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return "Schema version: none", nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Schema version: %d (dirty=%t)", v, dirty), nil
}
