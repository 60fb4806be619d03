package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/premdata/fpl-warehouse/internal/domain/statevent"
	"github.com/premdata/fpl-warehouse/internal/etl"
	"github.com/premdata/fpl-warehouse/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

var validate = validator.New()

// Store holds connection settings for one relational destination. Every
// field is required before the owning job dials the store.
type Store struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`
	SSLMode  string
}

// Validate reports missing credentials as a configuration failure. It is
// called per job for the stores that job actually touches, before any dial.
func (s Store) Validate(name string) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s store: %v", etl.ErrConfig, name, err)
	}

	return nil
}

// Config stores runtime configuration shared by the pipeline jobs.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level

	FPLBaseURL string
	FPLTimeout time.Duration

	Warehouse Store
	Mart      Store

	MartTable       string
	MartRequireRows bool

	StatsCatalogue []string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

// Load reads the environment (honouring ENV_FILE for a dotenv location)
// into a typed Config. Store credentials are collected here but validated
// per job, so the teams job does not demand mart credentials.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	fplTimeout, err := time.ParseDuration(getEnv("FPL_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: parse FPL_TIMEOUT: %v", etl.ErrConfig, err)
	}
	if fplTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: FPL_TIMEOUT must be > 0", etl.ErrConfig)
	}

	martRequireRows, err := strconv.ParseBool(getEnv("MART_REQUIRE_ROWS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: parse MART_REQUIRE_ROWS: %v", etl.ErrConfig, err)
	}

	catalogue := splitCSV(getEnv("STATS_CATALOGUE", ""))
	if len(catalogue) == 0 {
		catalogue = statevent.DefaultCatalogue()
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: parse UPTRACE_ENABLED: %v", etl.ErrConfig, err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("%w: UPTRACE_DSN is required when UPTRACE_ENABLED=true", etl.ErrConfig)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: parse PYROSCOPE_ENABLED: %v", etl.ErrConfig, err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("%w: PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true", etl.ErrConfig)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: parse PYROSCOPE_UPLOAD_RATE: %v", etl.ErrConfig, err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "fpl-warehouse"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		FPLBaseURL: strings.TrimSpace(getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api")),
		FPLTimeout: fplTimeout,

		Warehouse: Store{
			Host:     strings.TrimSpace(os.Getenv("WAREHOUSE_HOST")),
			Port:     strings.TrimSpace(os.Getenv("WAREHOUSE_PORT")),
			Name:     strings.TrimSpace(os.Getenv("WAREHOUSE_DB")),
			User:     strings.TrimSpace(os.Getenv("WAREHOUSE_USER")),
			Password: os.Getenv("WAREHOUSE_PASSWORD"),
			SSLMode:  getEnv("WAREHOUSE_SSLMODE", "disable"),
		},
		Mart: Store{
			Host:     strings.TrimSpace(os.Getenv("MART_HOST")),
			Port:     strings.TrimSpace(os.Getenv("MART_PORT")),
			Name:     strings.TrimSpace(os.Getenv("MART_DB")),
			User:     strings.TrimSpace(os.Getenv("MART_USER")),
			Password: os.Getenv("MART_PASSWORD"),
		},

		MartTable:       getEnv("MART_TABLE", "FctTeamHistory"),
		MartRequireRows: martRequireRows,

		StatsCatalogue: catalogue,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	return cfg, nil
}

// loadEnvFile loads the dotenv file named by ENV_FILE, or the default .env
// when present. A named file that cannot be read is a hard failure; the
// default one is optional.
func loadEnvFile() error {
	location := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if location == "" {
		_ = godotenv.Load()
		return nil
	}

	if err := godotenv.Load(location); err != nil {
		return fmt.Errorf("%w: load env file %s: %v", etl.ErrConfig, location, err)
	}

	return nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("%w: invalid APP_ENV %q: valid values are %s, %s, %s", etl.ErrConfig, v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
