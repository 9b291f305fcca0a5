package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		JWT:      config.JWTConfig{Secret: "test-secret", AccessExpiration: "1h"},
		App:      config.AppConfig{Env: env, MaxBodyBytes: 1 << 20, RequestTimeout: time.Second},
		GraphQL:  config.GraphQLConfig{MaxDepth: 7, SlowThreshold: 100 * time.Millisecond},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion(t *testing.T) {
	info := Version("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "1.2.3", info.GitVersion)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, Name, info.Name)
}

func TestOpenRepositories_Unsupported(t *testing.T) {
	cfg := testConfig("development")
	cfg.Database.Driver = "sqlite"

	_, _, err := OpenRepositories(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestNewServer_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	for _, tc := range []struct {
		env            string
		wantPlayground int
	}{
		{"development", http.StatusOK},
		{"production", http.StatusNotFound},
	} {
		t.Run(tc.env, func(t *testing.T) {
			cfg := testConfig(tc.env)
			repos, closeFn, err := OpenRepositories(ctx, cfg, logger)
			require.NoError(t, err)
			defer closeFn()

			srv, err := NewServer(cfg, repos, logger)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			srv.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ departments }"}`)))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"data":{"departments":[]}}`, w.Body.String())

			w = httptest.NewRecorder()
			srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/playground", nil))
			assert.Equal(t, tc.wantPlayground, w.Code)
		})
	}
}
