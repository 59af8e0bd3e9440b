package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aretedriver/gemba/internal/app"
	"github.com/aretedriver/gemba/internal/database"
)

type contextKey string

// appKey carries a preconstructed application container through a
// command context. Tests use it to point commands at an in-memory store.
const appKey contextKey = "gembaApp"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	db  *sql.DB // nil when the app was injected via context
	ctx context.Context
}

// WithApp returns a context carrying an application container.
// Commands resolved from this context will not open their own database.
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// FromContext returns the CLI for a command invocation. If the context
// carries an injected app it is reused; otherwise a fresh database
// connection is opened.
func FromContext(ctx context.Context) (*CLI, error) {
	if application, ok := ctx.Value(appKey).(*app.App); ok {
		return &CLI{App: application, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}

// NewCLI initializes the CLI with its own database connection.
// The default store is in-memory and lives only for this invocation;
// set GEMBA_DB to a file path to compose commands across invocations.
func NewCLI(ctx context.Context) (*CLI, error) {
	db, err := database.InitDB(ctx, database.ResolveDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)

	return &CLI{
		App: app.New(repo),
		db:  db,
		ctx: ctx,
	}, nil
}

// Close cleans up CLI resources. Injected apps are left open for their owner.
func (c *CLI) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
