package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`

	// Env is "dev" (default) or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	DBHost    string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort    string `yaml:"db_port" env:"DB_PORT" env-default:"5432"`
	DBName    string `yaml:"db_name" env:"DB_NAME" env-default:"rentaldb"`
	DBUser    string `yaml:"db_user" env:"DB_USER" env-default:"rentaluser"`
	DBPass    string `yaml:"db_pass" env:"DB_PASS" env-default:"rentalpass"`
	DBSSLMode string `yaml:"db_sslmode" env:"DB_SSLMODE" env-default:"disable"`

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int `yaml:"db_max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int `yaml:"db_max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`

	// BcryptCost is the work factor used when hashing new passwords.
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`

	// SeedCars inserts the demo fleet on startup when the cars table is empty.
	SeedCars bool `yaml:"seed_cars" env:"SEED_CARS" env-default:"true"`

	// PublicAdminBookings serves GET /admin/bookings without credentials. Dev only.
	PublicAdminBookings bool `yaml:"public_admin_bookings" env:"PUBLIC_ADMIN_BOOKINGS" env-default:"false"`

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the API listens with plain HTTP.
	TLSCertFile string `yaml:"tls_cert_file" env:"TLS_CERT_FILE"`
	TLSKeyFile  string `yaml:"tls_key_file" env:"TLS_KEY_FILE"`

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`

	// CORSAllowedOrigins is a comma-separated list of origins allowed for CORS.
	// When empty, no CORS headers are sent (same-origin only).
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`

	MaxBodyBytes    int64         `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" env-default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads the configuration from the environment. When CONFIG_PATH points to a
// YAML file it is read first and environment variables override it.
func Load() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	cfg.CORSAllowedOrigins = trimOrigins(cfg.CORSAllowedOrigins)
	return cfg, nil
}

// Validate reports settings that would make the server misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.Env != "dev" && c.Env != "prod" {
		errs = append(errs, fmt.Errorf("ENV must be dev or prod, got %q", c.Env))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Env == "prod" && c.PublicAdminBookings {
		errs = append(errs, errors.New("PUBLIC_ADMIN_BOOKINGS is not allowed when ENV=prod"))
	}
	return errors.Join(errs...)
}

// DSN returns the lib/pq key/value connection string. Every value is quoted.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		quoteDSN(c.DBHost), quoteDSN(c.DBPort), quoteDSN(c.DBName),
		quoteDSN(c.DBUser), quoteDSN(c.DBPass), quoteDSN(c.DBSSLMode),
	)
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteDSN wraps v in single quotes, escaping backslashes and quotes as lib/pq expects.
func quoteDSN(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

// DatabaseURL returns the postgres:// URL form expected by golang-migrate.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// trimOrigins trims spaces around each origin. Empty strings are omitted.
func trimOrigins(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, p := range in {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
