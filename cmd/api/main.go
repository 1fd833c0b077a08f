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

	"github.com/ScienHAC/ventspace/internal/config"
	"github.com/ScienHAC/ventspace/internal/handler"
	gardenModel "github.com/ScienHAC/ventspace/internal/model/garden"
	moodModel "github.com/ScienHAC/ventspace/internal/model/mood"
	"github.com/ScienHAC/ventspace/internal/observability"
	"github.com/ScienHAC/ventspace/internal/service/ai"
	"github.com/ScienHAC/ventspace/internal/service/vent"
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

	metrics := observability.NewMetrics("ventspace")

	// The external generator is optional; missing credentials leave it nil
	// and every reply comes from the canned template tables.
	generator, err := ai.NewFromConfig(ctx, cfg.AI)
	if err != nil {
		log.Printf("warning: failed to initialize AI generator: %v", err)
		log.Println("continuing with canned replies only")
		generator = nil
	} else if generator == nil {
		log.Println("AI credentials not configured, canned replies only")
	}

	ventSvc := vent.NewService(
		vent.NewResponder(),
		generator,
		metrics,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
		cfg.AI.HistoryLimit,
	)

	gardenStore := gardenModel.NewMemoryStore(gardenModel.Seed(), gardenModel.SeedStats())
	moodStore := moodModel.NewStore(moodModel.Seed())

	router := handler.NewRouter(ventSvc, gardenStore, moodStore)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("VentSpace backend listening on %s", serverCfg.Addr)
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
