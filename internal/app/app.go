package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"willowpack/estimator/internal/app/config"
	apphttp "willowpack/estimator/internal/app/http"
	"willowpack/estimator/internal/app/http/handlers"
	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
	"willowpack/estimator/internal/domain/quote/pdf"
	"willowpack/estimator/internal/infra/db/postgres"
	"willowpack/estimator/internal/infra/store/file"
	"willowpack/estimator/internal/infra/store/memory"
)

// App holds the long-lived dependencies shared by the HTTP server and the
// CLI commands.
type App struct {
	Cfg    config.Config
	Quotes *quote.Service
	Orders *memory.OrderStore
	Table  *pricing.Table

	db *postgres.DB
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{Cfg: cfg, Orders: memory.NewOrderStore()}

	var repo quote.Repository
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		repo = postgres.NewQuoteRepository(db)
		log.Printf("history: using postgres")
	} else {
		store, err := file.NewQuoteStore(cfg.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("history file: %w", err)
		}
		repo = store
		log.Printf("history: using file path=%s", store.Path())
	}

	gen, err := pdf.New(cfg.PDFRenderer, cfg.PDFFontDir)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Table, err = pricing.LoadTable(cfg.PriceTableFile, cfg.DefaultCurrency)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("price table: %w", err)
	}

	a.Quotes = quote.NewService(repo, gen)
	a.Quotes.QuoteFor = cfg.DefaultQuoteFor
	a.Quotes.Currency = cfg.DefaultCurrency
	return a, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func (a *App) Handler() http.Handler {
	h := handlers.New(a.Cfg, a.Quotes, a.Orders, a.Table)
	return apphttp.NewRouter(a.Cfg, h)
}

// Run serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
