package main

import (
	"context"
	"log"

	"sheetmap/adapters/memory"
	"sheetmap/adapters/postgres"
	"sheetmap/internal/config"
	"sheetmap/internal/errors"
	"sheetmap/internal/migration"
	"sheetmap/ports"
	"sheetmap/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var imports ports.ImportRepository
	if cfg.Database.URL != "" {
		db, err := initDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		imports = postgres.NewImportRepository(db)
		log.Printf("[Main] Import history backed by postgres")
	} else {
		imports = memory.NewImportRepository()
		log.Printf("[Main] DATABASE_URL not set, import history kept in memory")
	}

	server := ui.NewServer(cfg, imports)
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
