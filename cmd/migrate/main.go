package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"quizforge/internal/config"
	"quizforge/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

func main() {
	var (
		migrationsPath = flag.String("path", "database/migrations", "path to migration files")
		down           = flag.Bool("down", false, "roll back all migrations instead of applying them")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	// The pgx/v5 migrate driver registers the pgx5:// URL scheme.
	dsn := strings.Replace(cfg.GetDSN(), "postgres://", "pgx5://", 1)

	m, err := migrate.New("file://"+*migrationsPath, dsn)
	if err != nil {
		l.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info("No migrations to apply")
			return
		}
		l.Fatal("Migration failed", zap.Error(err))
	}
	l.Info("Migrations applied successfully")
}
