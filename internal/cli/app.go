// Package cli is the terminal front end: it reads user intents, dispatches
// them to the state layer, and prints results. Navigation and presentation
// live here; all state transitions happen in the services it calls.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/jolidon/olyst/internal/admin"
	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/catalog"
	"github.com/jolidon/olyst/internal/config"
	"github.com/jolidon/olyst/internal/ledger"
	"github.com/jolidon/olyst/internal/logging"
	"github.com/jolidon/olyst/internal/review"
	"github.com/jolidon/olyst/internal/session"
	"github.com/jolidon/olyst/internal/storage/tokens"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Manager
	catalog *catalog.Engine
	admin   *admin.Repository
	reviews *review.Aggregator
	ledger  *ledger.Ledger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.InitDatabase(ctx, cfg.TokenDBPath)
	if err != nil {
		log.Error(ctx, "error initializing token database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	store := tokens.NewSQLiteRepository(db)
	sess := session.NewManager(apiClient, store, log, cfg.ReferralBaseURL)

	return &App{
		config:  cfg,
		log:     log,
		db:      db,
		session: sess,
		catalog: catalog.NewEngine(apiClient, log),
		reviews: review.NewAggregator(),
		ledger:  ledger.New(apiClient),
		admin:   admin.NewRepository(apiClient, sess, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run bootstraps the session from the persisted token and starts the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "error", err)
	}

	a.Root(ctx)
	return nil
}

// Close releases the token database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}
