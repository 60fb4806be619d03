package config

import (
	"errors"
	"testing"
	"time"

	"github.com/premdata/fpl-warehouse/internal/etl"
)

func setBaseEnv(t *testing.T) {
	t.Helper()

	t.Setenv("ENV_FILE", "")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("WAREHOUSE_HOST", "localhost")
	t.Setenv("WAREHOUSE_PORT", "5432")
	t.Setenv("WAREHOUSE_DB", "warehouse")
	t.Setenv("WAREHOUSE_USER", "loader")
	t.Setenv("WAREHOUSE_PASSWORD", "secret")
	t.Setenv("MART_HOST", "localhost")
	t.Setenv("MART_PORT", "3306")
	t.Setenv("MART_DB", "mart")
	t.Setenv("MART_USER", "replica")
	t.Setenv("MART_PASSWORD", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FPL_BASE_URL", "")
	t.Setenv("FPL_TIMEOUT", "")
	t.Setenv("MART_TABLE", "")
	t.Setenv("MART_REQUIRE_ROWS", "")
	t.Setenv("STATS_CATALOGUE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.FPLBaseURL != "https://fantasy.premierleague.com/api" {
		t.Fatalf("unexpected base url: %s", cfg.FPLBaseURL)
	}
	if cfg.FPLTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.FPLTimeout)
	}
	if cfg.MartTable != "FctTeamHistory" {
		t.Fatalf("unexpected mart table: %s", cfg.MartTable)
	}
	if !cfg.MartRequireRows {
		t.Fatalf("MART_REQUIRE_ROWS must default to true")
	}
	if len(cfg.StatsCatalogue) != 10 {
		t.Fatalf("default catalogue must have 10 identifiers, got=%d", len(cfg.StatsCatalogue))
	}
	if cfg.StatsCatalogue[0] != "goals_scored" || cfg.StatsCatalogue[9] != "bps" {
		t.Fatalf("unexpected default catalogue: %v", cfg.StatsCatalogue)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled {
		t.Fatalf("observability exporters must default to disabled")
	}
}

func TestLoad_CustomCatalogueCSV(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STATS_CATALOGUE", " goals_scored , assists ,, saves ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := []string{"goals_scored", "assists", "saves"}
	if len(cfg.StatsCatalogue) != len(want) {
		t.Fatalf("unexpected catalogue: %v", cfg.StatsCatalogue)
	}
	for i := range want {
		if cfg.StatsCatalogue[i] != want[i] {
			t.Fatalf("unexpected catalogue entry %d: got=%s want=%s", i, cfg.StatsCatalogue[i], want[i])
		}
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	if !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FPL_TIMEOUT", "fast")

	if _, err := Load(); !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}

	t.Setenv("FPL_TIMEOUT", "-1s")
	if _, err := Load(); !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig for non-positive timeout, got %v", err)
	}
}

func TestLoad_UptraceRequiresDSN(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestLoad_MissingEnvFileIsConfigError(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENV_FILE", "/nonexistent/.env")

	if _, err := Load(); !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestStore_Validate(t *testing.T) {
	t.Parallel()

	full := Store{Host: "localhost", Port: "5432", Name: "warehouse", User: "loader", Password: "secret"}
	if err := full.Validate("warehouse"); err != nil {
		t.Fatalf("valid store rejected: %v", err)
	}

	missing := full
	missing.Password = ""
	err := missing.Validate("warehouse")
	if !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig for missing password, got %v", err)
	}

	badPort := full
	badPort.Port = "default"
	if err := badPort.Validate("warehouse"); !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig for non-numeric port, got %v", err)
	}
}

func TestLoad_MissingStoreCredentialsDeferredToValidate(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MART_HOST", "")
	t.Setenv("MART_PORT", "")
	t.Setenv("MART_DB", "")
	t.Setenv("MART_USER", "")
	t.Setenv("MART_PASSWORD", "")

	// A bronze job never touches the mart, so Load must not reject the
	// incomplete mart block; only Validate does.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := cfg.Warehouse.Validate("warehouse"); err != nil {
		t.Fatalf("warehouse store must validate: %v", err)
	}
	if err := cfg.Mart.Validate("mart"); !errors.Is(err, etl.ErrConfig) {
		t.Fatalf("expected ErrConfig for empty mart store, got %v", err)
	}
}
