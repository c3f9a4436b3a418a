// Command migrate applies the campus board SQL migrations with goose.
//
// Usage: migrate [-config path] up|down|status
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/campusboard-backend/internal/app"
	"github.com/heartmarshall/campusboard-backend/internal/config"
	"github.com/heartmarshall/campusboard-backend/migrations"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-config path] up|down|status")
		os.Exit(2)
	}

	path := *configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg, flag.Arg(0)); err != nil {
		logger.Error("migrate failed", slog.String("command", flag.Arg(0)), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, command string) error {
	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	var source fs.FS = migrations.FS
	if cfg.Migrations.Dir != "" {
		source = os.DirFS(cfg.Migrations.Dir)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, source)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		logger.Info("migrations up to date", slog.Int("applied", len(results)))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-6d %-8s %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}
