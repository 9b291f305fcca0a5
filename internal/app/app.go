// Package app assembles the repositories, services and HTTP router from
// configuration. cmd/api and cmd/seed share it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	goversion "github.com/caarlos0/go-version"
	"github.com/staffhub/staffhub-backend-go/internal/config"
	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/signup"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/handler/graphql"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	authService "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	dashboardService "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
	employeeService "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	signupService "github.com/staffhub/staffhub-backend-go/internal/service/signup"
)

const Name = "staffhub"

// Version describes the running binary. Values set by -ldflags win over
// the module build info.
func Version(version, commit, date string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Name, "Employee directory GraphQL API", "https://github.com/staffhub/staffhub-backend-go"),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if date != "" {
				i.BuildDate = date
			}
		},
	)
}

// ParseLevel maps LOG_LEVEL onto slog, defaulting to info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

type Repositories struct {
	Transactor database.Transactor
	Employees  employee.EmployeeRepository
	Users      user.UserRepository
	Signups    signup.SignupRequestRepository
	Dashboard  dashboard.DashboardRepository
}

// OpenRepositories connects the configured storage driver. The returned
// close function releases the pool and is safe to call for the memory driver.
func OpenRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Repositories, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		logger.WarnContext(ctx, "using in-memory storage, data is lost on exit")
		store := memory.NewStore()
		return Repositories{
			Transactor: memory.NewTransactor(store),
			Employees:  memory.NewEmployeeRepository(store),
			Users:      memory.NewUserRepository(store),
			Signups:    memory.NewSignupRequestRepository(store),
			Dashboard:  memory.NewDashboardRepository(store),
		}, func() {}, nil

	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return Repositories{}, nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.RunMigrations {
			if err := database.Migrate(ctx, db); err != nil {
				db.Close()
				return Repositories{}, nil, fmt.Errorf("run migrations: %w", err)
			}
			logger.InfoContext(ctx, "database migrations applied")
		}
		return Repositories{
			Transactor: postgresql.NewTransactor(db),
			Employees:  postgresql.NewEmployeeRepository(db),
			Users:      postgresql.NewUserRepository(db),
			Signups:    postgresql.NewSignupRequestRepository(db),
			Dashboard:  postgresql.NewDashboardRepository(db),
		}, db.Close, nil
	}
	return Repositories{}, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
}

// NewServer builds the HTTP handler tree over repos.
func NewServer(cfg *config.Config, repos Repositories, logger *slog.Logger) (http.Handler, error) {
	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return nil, err
	}

	authSvc := authService.NewAuthService(repos.Users, JWTService)
	services := graphql.Services{
		Auth:      authSvc,
		Employee:  employeeService.NewEmployeeService(repos.Transactor, repos.Employees, repos.Users),
		Signup:    signupService.NewSignupService(repos.Transactor, repos.Signups, repos.Users, repos.Employees),
		Dashboard: dashboardService.NewDashboardService(repos.Dashboard),
	}

	production := cfg.App.IsProduction()
	graphqlHandler, err := graphql.NewHandler(services, repos.Employees, graphql.Options{
		MaxDepth:      cfg.GraphQL.MaxDepth,
		SlowThreshold: cfg.GraphQL.SlowThreshold,
		Production:    production,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	routerCfg := appHTTP.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxBodyBytes:   cfg.App.MaxBodyBytes,
		RequestTimeout: cfg.App.RequestTimeout,
	}
	if !production {
		routerCfg.Playground = graphql.PlaygroundHandler("StaffHub GraphQL", "/graphql")
	}

	return appHTTP.NewRouter(logger, routerCfg, JWTService, authSvc, graphqlHandler), nil
}
