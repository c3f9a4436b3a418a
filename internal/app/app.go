package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campusboard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campusboard-backend/internal/adapter/postgres/audit"
	bookmarkrepo "github.com/heartmarshall/campusboard-backend/internal/adapter/postgres/bookmark"
	"github.com/heartmarshall/campusboard-backend/internal/adapter/postgres/department"
	topicrepo "github.com/heartmarshall/campusboard-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/campusboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/campusboard-backend/internal/config"
	"github.com/heartmarshall/campusboard-backend/internal/service/bookmark"
	"github.com/heartmarshall/campusboard-backend/internal/service/topic"
)

// App holds the wired repositories and services of the campus board.
type App struct {
	Log         *slog.Logger
	Pool        *pgxpool.Pool
	Users       *user.Repo
	Departments *department.Repo
	Audit       *audit.Repo
	Topics      *topic.Service
	Bookmarks   *bookmark.Service
}

// New connects to the database and wires every service from cfg.
// The caller must call Close.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	topics := topicrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	depts := department.New(pool)
	auditRepo := audit.New(pool)

	a := &App{
		Log:         log,
		Pool:        pool,
		Users:       user.New(pool),
		Departments: depts,
		Audit:       auditRepo,
		Topics: topic.NewService(log, topics, depts, bookmarks, auditRepo, txm, topic.Config{
			DefaultPageLimit: cfg.Topics.DefaultPageLimit,
			MaxPageLimit:     cfg.Topics.MaxPageLimit,
			UpdateRetryDelay: cfg.Topics.UpdateRetryDelay,
		}),
		Bookmarks: bookmark.NewService(log, topics, bookmarks, bookmark.Config{
			DefaultPageLimit: cfg.Topics.DefaultPageLimit,
			MaxPageLimit:     cfg.Topics.MaxPageLimit,
		}),
	}

	log.Info("campus board ready",
		slog.String("version", BuildVersion()),
		slog.Int("max_page_limit", cfg.Topics.MaxPageLimit),
	)

	return a, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
