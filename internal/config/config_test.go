package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("FUZZY_CUTOFF", "")
	t.Setenv("QUERY_MAX_LIMIT", "")
	t.Setenv("APP_READ_TIMEOUT", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "brazilian-soccer-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
	if cfg.DataSource != DataSourceCSV {
		t.Fatalf("unexpected data source: %q", cfg.DataSource)
	}
	if cfg.DataDir != "data/kaggle" {
		t.Fatalf("unexpected data dir: %q", cfg.DataDir)
	}
	if cfg.FuzzyCutoff != 0.6 {
		t.Fatalf("unexpected fuzzy cutoff: %v", cfg.FuzzyCutoff)
	}
	if cfg.QueryMaxLimit != 100 {
		t.Fatalf("unexpected max limit: %d", cfg.QueryMaxLimit)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel.String())
	}
}

func TestLoad_DataSourceValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "neo4j")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown DATA_SOURCE")
		}
	})

	t.Run("postgres requires url", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "postgres")
		t.Setenv("DB_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when DATA_SOURCE=postgres without DB_URL")
		}
	})

	t.Run("postgres with url", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", " Postgres ")
		t.Setenv("DB_URL", "postgres://localhost:5432/soccer")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DataSource != DataSourcePostgres {
			t.Fatalf("unexpected data source: %q", cfg.DataSource)
		}
	})
}

func TestLoad_FuzzyCutoffRange(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "0.8", wantErr: false},
		{value: "1", wantErr: false},
		{value: "0", wantErr: true},
		{value: "1.5", wantErr: true},
		{value: "high", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FUZZY_CUTOFF", tt.value)
			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("FUZZY_CUTOFF=%q err=%v wantErr=%v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_QueryMaxLimitMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("QUERY_MAX_LIMIT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for QUERY_MAX_LIMIT=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "brazilian-soccer-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "brazilian-soccer-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_RateLimitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "")
		t.Setenv("RATE_LIMIT_RPS", "")
		t.Setenv("RATE_LIMIT_BURST", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RateLimitEnabled {
			t.Fatalf("expected rate limit disabled by default")
		}
		if cfg.RateLimitRPS != 20 || cfg.RateLimitBurst != 40 {
			t.Fatalf("unexpected rate limit defaults: rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
	})

	t.Run("invalid burst", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative RATE_LIMIT_BURST")
		}
	})
}

func TestLoadDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	if _, _, err := LoadDatabaseURL(); err == nil {
		t.Fatalf("expected error without DB_URL")
	}

	t.Setenv("DB_URL", "postgres://localhost:5432/soccer")
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
	url, disable, err := LoadDatabaseURL()
	if err != nil {
		t.Fatalf("load database url: %v", err)
	}
	if url != "postgres://localhost:5432/soccer" || disable {
		t.Fatalf("unexpected database settings: url=%q disable=%v", url, disable)
	}
}
