// Package main provides entry point for the journal backend.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"asthma-journal/internal/config"
	"asthma-journal/internal/handler"
	"asthma-journal/internal/logger"
	"asthma-journal/internal/store"
)

// Run is the testable entrypoint for the application. A non-empty dataFile
// overrides ASTHMA_DATA_FILE.
func Run(ctx context.Context, dataFile string) error {
	cfg := config.Load(dataFile)
	log := logger.New(cfg.Env)
	defer func() { _ = log.Sync() }()

	log.Info("Starting journal backend", zap.String("addr", cfg.Addr))

	validate, err := handler.NewValidator()
	if err != nil {
		return err
	}

	st := store.New(cfg.DataFile, log)
	if _, err := st.Read(); err != nil {
		log.Error("data file unusable", zap.String("data_file", st.Path()), zap.Error(err))
		return err
	}
	log.Info("data file ready", zap.String("data_file", st.Path()))

	h := handler.New(log, st, validate)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Error("listen failed", zap.Error(err))
		return err
	}

	srv := &http.Server{
		Handler:      handler.NewRouter(h, log, cfg.MaxBodyBytes),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return err
		}
	}

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctxShutdown)
}

func main() {
	dataFile := flag.String("data-file", "", "path to the JSON data file (overrides ASTHMA_DATA_FILE)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx, *dataFile); err != nil {
		os.Exit(1)
	}
}
