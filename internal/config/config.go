package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the whole application configuration.
type Config struct {
	Port string

	DatabaseURL      string
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int

	GoEnv        string // dev/prod
	FEURL        string // CORS origin of the web client
	CookieSecure bool

	UploadDir      string
	MaxUploadBytes int64

	LogLevel string
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (Config, error) {
	pgPort, err := envInt("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	ttl, err := envDuration("SESSION_TTL", 72*time.Hour)
	if err != nil {
		return Config{}, err
	}
	bcryptCost, err := envInt("BCRYPT_COST", 12)
	if err != nil {
		return Config{}, err
	}
	maxUpload, err := envInt("MAX_UPLOAD_BYTES", 5<<20)
	if err != nil {
		return Config{}, err
	}

	goEnv := envDefault("GO_ENV", "dev")

	cfg := Config{
		Port: envDefault("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresHost:     envDefault("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresUser:     envDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: envDefault("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       envDefault("POSTGRES_DB", "sebeta_mart"),
		PostgresSSLMode:  envDefault("POSTGRES_SSLMODE", "disable"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: ttl,
		BcryptCost: bcryptCost,

		GoEnv:        goEnv,
		FEURL:        envDefault("FE_URL", "http://localhost:5173"),
		CookieSecure: envBool("COOKIE_SECURE", goEnv == "prod"),

		UploadDir:      envDefault("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(maxUpload),

		LogLevel: envDefault("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if goEnv == "prod" && len(cfg.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 32 characters in prod")
	}
	if goEnv != "dev" && goEnv != "prod" && goEnv != "test" {
		return Config{}, fmt.Errorf("GO_ENV must be dev, test or prod")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return cfg, nil
}

// DSN prefers DATABASE_URL.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// Addr is the listen address, always with a leading colon.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
