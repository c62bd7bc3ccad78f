package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/harmony2k/balancee-ussd/internal/config"
	"github.com/harmony2k/balancee-ussd/internal/handler"
	"github.com/harmony2k/balancee-ussd/internal/model/directory"
	"github.com/harmony2k/balancee-ussd/internal/service/geo"
	"github.com/harmony2k/balancee-ussd/internal/service/ledger"
	"github.com/harmony2k/balancee-ussd/internal/service/menu"
	"github.com/harmony2k/balancee-ussd/internal/service/notify"
	"github.com/harmony2k/balancee-ussd/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	sessions := session.NewStore(cfg.USSD.SessionTimeout)

	var ledgers *ledger.MemoryStore
	if cfg.USSD.SeedDemoBalances {
		ledgers = ledger.NewMemoryStore(ledger.Seed())
		log.Println("demo ledger balances seeded")
	} else {
		ledgers = ledger.NewMemoryStore(nil)
	}

	mechanics := directory.NewStaticFinder(directory.Seed())
	distance := geo.NewKeywordEstimator()
	dispatcher := notify.NewLogDispatcher()

	engine := menu.NewEngine(sessions, ledgers, mechanics, distance, dispatcher)
	router := handler.NewRouter(engine)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Balanceè USSD backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
