package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/app"
	"github.com/staffhub/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/seed"
)

var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	seedMemory := flag.Bool("seed", false, "load demo data on start when DB_DRIVER=memory")
	flag.Parse()

	info := app.Version(version, commit, date)
	if *showVersion {
		fmt.Println(info.String())
		return
	}

	if err := run(info.GitVersion, *seedMemory); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(version string, seedMemory bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := app.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return err
	}
	logger := appHTTP.NewLogger(level, version, cfg.App.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	if seedMemory && cfg.Database.Driver == config.DriverMemory {
		if _, err := seed.NewSeeder(repos.Transactor, repos.Employees, repos.Users, logger).Run(ctx); err != nil {
			return fmt.Errorf("seed memory store: %w", err)
		}
	}

	handler, err := app.NewServer(cfg, repos, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running",
			slog.String("addr", srv.Addr),
			slog.String("graphql", fmt.Sprintf("http://localhost:%d/graphql", cfg.App.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
