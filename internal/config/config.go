package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	RecentStoreFile     = "file"
	RecentStorePostgres = "postgres"
	RecentStoreMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
	SwaggerEnabled     bool

	PredictorBaseURL               string
	PredictorUsername              string
	PredictorPassword              string
	PredictorTimeout               time.Duration
	PredictorMaxRetries            int
	PredictorRetryBackoff          time.Duration
	PredictorTokenTTL              time.Duration
	PredictorCircuitEnabled        bool
	PredictorCircuitFailureCount   int
	PredictorCircuitOpenTimeout    time.Duration
	PredictorCircuitHalfOpenMaxReq int
	CacheTTL                       time.Duration

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	AnimationDuration    time.Duration
	FrameInterval        time.Duration
	PortTimeout          time.Duration
	SearchLimit          int
	WorkerPoolSize       int

	RecentStore             string
	RecentFilePath          string
	DBURL                   string
	DBDisablePreparedBinary bool

	UptraceEnabled         bool
	UptraceDSN             string
	PprofEnabled           bool
	PprofAddr              string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "courtside"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		PredictorBaseURL:   strings.TrimSpace(getEnv("PREDICTOR_BASE_URL", "http://localhost:8000")),
		PredictorUsername:  strings.TrimSpace(getEnv("PREDICTOR_USERNAME", "")),
		PredictorPassword:  getEnv("PREDICTOR_PASSWORD", ""),
		RecentFilePath:     strings.TrimSpace(getEnv("RECENT_FILE_PATH", "./data/recent_searches.json")),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		UptraceDSN:         strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeAppName:   strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", "courtside")),
		PyroscopeAuthToken: getEnv("PYROSCOPE_AUTH_TOKEN", ""),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}

	durations := []struct {
		key       string
		fallback  string
		allowZero bool
		dst       *time.Duration
	}{
		{"APP_READ_TIMEOUT", "15s", false, &cfg.ReadTimeout},
		{"APP_WRITE_TIMEOUT", "30s", false, &cfg.WriteTimeout},
		{"APP_SHUTDOWN_TIMEOUT", "10s", false, &cfg.ShutdownTimeout},
		{"PREDICTOR_TIMEOUT", "20s", false, &cfg.PredictorTimeout},
		{"PREDICTOR_RETRY_BACKOFF", "1s", false, &cfg.PredictorRetryBackoff},
		{"PREDICTOR_TOKEN_TTL", "25m", false, &cfg.PredictorTokenTTL},
		{"PREDICTOR_CIRCUIT_OPEN_TIMEOUT", "15s", false, &cfg.PredictorCircuitOpenTimeout},
		{"CACHE_TTL", "5m", false, &cfg.CacheTTL},
		{"SESSION_TTL", "30m", false, &cfg.SessionTTL},
		{"SESSION_SWEEP_INTERVAL", "1m", false, &cfg.SessionSweepInterval},
		// zero disables count-up animation; values land immediately.
		{"ANIMATION_DURATION", "1s", true, &cfg.AnimationDuration},
		{"FRAME_INTERVAL", "16ms", false, &cfg.FrameInterval},
		{"PORT_TIMEOUT", "15s", false, &cfg.PortTimeout},
		{"PYROSCOPE_UPLOAD_RATE", "15s", false, &cfg.PyroscopeUploadRate},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(strings.TrimSpace(getEnv(d.key, d.fallback)))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if value < 0 || (value == 0 && !d.allowZero) {
			return Config{}, fmt.Errorf("%s must be > 0", d.key)
		}
		*d.dst = value
	}

	ints := []struct {
		key      string
		fallback int
		min      int
		dst      *int
	}{
		{"PREDICTOR_MAX_RETRIES", 2, 0, &cfg.PredictorMaxRetries},
		{"PREDICTOR_CIRCUIT_FAILURE_COUNT", 5, 1, &cfg.PredictorCircuitFailureCount},
		{"PREDICTOR_CIRCUIT_HALF_OPEN_MAX_REQ", 2, 1, &cfg.PredictorCircuitHalfOpenMaxReq},
		{"SEARCH_LIMIT", 20, 1, &cfg.SearchLimit},
		{"WORKER_POOL_SIZE", 64, 1, &cfg.WorkerPoolSize},
	}
	for _, n := range ints {
		value, err := getEnvAsInt(n.key, n.fallback)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", n.key, err)
		}
		if value < n.min {
			return Config{}, fmt.Errorf("%s must be >= %d", n.key, n.min)
		}
		*n.dst = value
	}

	swaggerDefault := "true"
	if cfg.AppEnv == EnvProd {
		swaggerDefault = "false"
	}

	bools := []struct {
		key      string
		fallback string
		dst      *bool
	}{
		{"SWAGGER_ENABLED", swaggerDefault, &cfg.SwaggerEnabled},
		{"PREDICTOR_CIRCUIT_ENABLED", "true", &cfg.PredictorCircuitEnabled},
		{"DB_DISABLE_PREPARED_BINARY_RESULT", "false", &cfg.DBDisablePreparedBinary},
		{"UPTRACE_ENABLED", "false", &cfg.UptraceEnabled},
		{"PPROF_ENABLED", "false", &cfg.PprofEnabled},
		{"PYROSCOPE_ENABLED", "false", &cfg.PyroscopeEnabled},
	}
	for _, b := range bools {
		value, err := strconv.ParseBool(getEnv(b.key, b.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", b.key, err)
		}
		*b.dst = value
	}

	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PredictorBaseURL == "" {
		return Config{}, fmt.Errorf("PREDICTOR_BASE_URL cannot be empty")
	}
	if cfg.PredictorUsername != "" && cfg.PredictorPassword == "" {
		return Config{}, fmt.Errorf("PREDICTOR_PASSWORD is required when PREDICTOR_USERNAME is set")
	}

	cfg.RecentStore, err = parseRecentStore(getEnv("RECENT_STORE", RecentStoreFile))
	if err != nil {
		return Config{}, err
	}
	switch cfg.RecentStore {
	case RecentStorePostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when RECENT_STORE=%s", RecentStorePostgres)
		}
	case RecentStoreFile:
		if cfg.RecentFilePath == "" {
			return Config{}, fmt.Errorf("RECENT_FILE_PATH is required when RECENT_STORE=%s", RecentStoreFile)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}
	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseRecentStore(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case RecentStoreFile, RecentStorePostgres, RecentStoreMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid RECENT_STORE %q: valid values are %s, %s, %s", v, RecentStoreFile, RecentStorePostgres, RecentStoreMemory)
	}
}
