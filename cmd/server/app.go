package main

import (
	"database/sql"
	"log/slog"

	"github.com/lmeyers/users-api/internal/config"
	"github.com/lmeyers/users-api/internal/platform/postgres"
	"github.com/lmeyers/users-api/internal/store"
)

// application holds the dependencies shared across the server: the loaded
// configuration, the root logger, the database handle, and the stores built
// on top of it. It is constructed once at startup and passed by reference
// into the routing layer.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	db        *sql.DB
	userStore store.UserStore
}

// newApplication wires the application dependencies together.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		userStore: postgres.NewPostgresUserStore(db, logger),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
