package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "PHARMA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.resolveDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PHARMA_APP_ENV" default:"dev"`
	Port         string `envconfig:"PHARMA_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"PHARMA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PHARMA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig describes the optional durable store. An empty DSN (after legacy
// fallback) means the process runs on the in-memory user directory.
type DBConfig struct {
	DSN    string `envconfig:"PHARMA_DB_DSN"`
	Driver string `envconfig:"PHARMA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PHARMA_DB_HOST"`
	LegacyPort     int    `envconfig:"PHARMA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PHARMA_DB_USER"`
	LegacyPassword string `envconfig:"PHARMA_DB_PASSWORD"`
	LegacyName     string `envconfig:"PHARMA_DB_NAME"`
	LegacySSLMode  string `envconfig:"PHARMA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PHARMA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PHARMA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PHARMA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PHARMA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// HasDSN reports whether a durable store is configured.
func (db DBConfig) HasDSN() bool {
	return strings.TrimSpace(db.DSN) != ""
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PHARMA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PHARMA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PHARMA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PHARMA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PHARMA_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PHARMA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) resolveDSN() error {
	if db.HasDSN() {
		return nil
	}

	// Legacy discrete vars only count when the trio is complete; a partial set
	// is a misconfiguration rather than a request for the in-memory store.
	if db.LegacyHost == "" && db.LegacyUser == "" && db.LegacyName == "" {
		return nil
	}
	missing := []string{}
	if db.LegacyHost == "" {
		missing = append(missing, "PHARMA_DB_HOST")
	}
	if db.LegacyUser == "" {
		missing = append(missing, "PHARMA_DB_USER")
	}
	if db.LegacyName == "" {
		missing = append(missing, "PHARMA_DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("incomplete database config, missing %s", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
