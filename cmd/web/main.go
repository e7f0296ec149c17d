// Command web serves the blackjack browser UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/console"
	"github.com/luca-patrignani/blackjack/ledger"
	"github.com/luca-patrignani/blackjack/web"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger := console.NewLogger(cfg.LogLevel)

	l, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("failed to listen on address", "address", cfg.Addr, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, l, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func sourceFactory(cfg config.Config, logger *slog.Logger) application.SourceFactory {
	if cfg.Seed == 0 {
		return application.ShuffledDecks
	}
	logger.Warn("using a deterministic deck", "seed", cfg.Seed)
	return application.SeededDecks(cfg.Seed)
}

// run serves on l until ctx is cancelled or the server fails.
func run(ctx context.Context, cfg config.Config, l net.Listener, logger *slog.Logger) error {
	history := ledger.New()
	repo := application.NewInMemoryGameRepository(application.NewIDGenerator(cfg.FirstGameID))
	service := application.NewGameService(
		sourceFactory(cfg, logger),
		repo,
		application.WithMonitor(history),
		application.WithLogger(logger),
	)
	handler := web.NewHandler(service, history, logger)

	opts := []web.ServerOption{web.WithServerLogger(logger)}
	if cfg.TLS {
		cert, err := web.GenerateSelfSignedCert(l.Addr().String(), web.DefaultCertValidity)
		if err != nil {
			l.Close()
			return fmt.Errorf("generate certificate: %w", err)
		}
		opts = append(opts, web.WithCertificate(cert.TLS))
	}
	server := web.NewServer(cfg.Addr, handler, opts...)
	errChan := server.Start(l)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Close(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := history.Verify(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	logger.Info("history verified", "rounds", history.Len())
	return <-errChan
}
