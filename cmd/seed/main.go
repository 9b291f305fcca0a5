package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/staffhub/staffhub-backend-go/internal/app"
	"github.com/staffhub/staffhub-backend-go/internal/config"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/seed"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("seeding requires DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	level, err := app.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return err
	}
	logger := appHTTP.NewLogger(level, app.Version("", "", "").GitVersion, cfg.App.Env)
	slog.SetDefault(logger)

	ctx := context.Background()
	repos, closeRepos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	seeded, err := seed.NewSeeder(repos.Transactor, repos.Employees, repos.Users, logger).Run(ctx)
	if err != nil {
		return err
	}
	if seeded {
		fmt.Println("Login credentials:")
		fmt.Printf("  Admin:    %s / %s\n", seed.AdminEmail, seed.AdminPassword)
		fmt.Printf("  Employee: %s / %s\n", seed.EmployeeEmail, seed.EmployeePassword)
	}
	return nil
}
