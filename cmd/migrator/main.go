package main

import (
	"database/sql"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"walletsync/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/user/*.sql migrations/wallet/*.sql
var migrationsFS embed.FS

// Applies the schema for one of the two services:
//
//	migrator -service user
//	migrator -service wallet
func main() {
	serviceName := flag.String("service", "", "which schema to migrate: user or wallet")
	flag.Parse()

	if err := run(*serviceName); err != nil {
		log.Fatal("migration failed: ", err)
	}
	fmt.Println("migrations applied")
}

func run(serviceName string) error {
	var dir string
	switch serviceName {
	case "user":
		dir = "migrations/user"
	case "wallet":
		dir = "migrations/wallet"
	default:
		return fmt.Errorf("unknown service %q, want user or wallet", serviceName)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = config.DBURL(serviceName)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("init postgres driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up: %w", err)
	}
	return nil
}
