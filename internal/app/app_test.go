package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/brazilian-soccer/internal/config"
	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

func testConfig(dataDir string) config.Config {
	return config.Config{
		HTTPAddr:      ":0",
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
		DataSource:    config.DataSourceCSV,
		DataDir:       dataDir,
		FuzzyCutoff:   0.6,
		QueryMaxLimit: 100,
		CacheEnabled:  true,
		CacheTTL:      time.Minute,
	}
}

func TestNewHTTPServer_FromCSV(t *testing.T) {
	dir := t.TempDir()
	content := "date,home_team,away_team,home_goals,away_goals,season,round,stadium\n" +
		"2023-05-14,Flamengo-RJ,Fluminense-RJ,2,1,2023,6,Maracanã\n"
	if err := os.WriteFile(filepath.Join(dir, "brasileirao_matches.csv"), []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	srv, err := NewHTTPServer(context.Background(), testConfig(dir), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/Flamengo/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewSources_UnsupportedDataSource(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.DataSource = "neo4j"
	if _, err := NewSources(context.Background(), cfg, nil, logging.NewNop()); err == nil {
		t.Fatalf("expected unsupported data source error")
	}
}

func TestNewSources_PostgresUnavailable(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.DataSource = config.DataSourcePostgres
	cfg.DBURL = "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"

	_, err := NewSources(context.Background(), cfg, nil, logging.NewNop())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}
