package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/blogem/radiocalco/database"
)

// Config is the server configuration, read from the environment and an
// optional config file.
type Config struct {
	Port              int            `yaml:"port" env:"PORT" env-default:"3000" env-description:"HTTP port"`
	ListenAddr        string         `yaml:"listen_addr" env:"LISTEN_ADDR" env-description:"Listen address, overrides PORT"`
	LogLevel          string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	StaticDir         string         `yaml:"static_dir" env:"STATIC_DIR" env-default:"public"`
	ExposeErrorDetail bool           `yaml:"expose_error_detail" env:"EXPOSE_ERROR_DETAIL" env-default:"false"`
	MetricsEnabled    bool           `yaml:"metrics_enabled" env:"METRICS_ENABLED" env-default:"true"`
	RequestTimeout    time.Duration  `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"60s"`
	ShutdownTimeout   time.Duration  `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	Hostname          string         `yaml:"-" env:"HOSTNAME"`
	Database          DatabaseConfig `yaml:"database"`
}

// DatabaseConfig selects the driver and connection settings
type DatabaseConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite3"`
	URL      string `yaml:"url" env:"DATABASE_URL"`
	Path     string `yaml:"path" env:"DB_PATH" env-default:"radiocalco.db"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"radiocalco_dev"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
}

// containerHostPrefix marks hostnames of the application's own containers,
// where the compose service name "db" resolves.
const containerHostPrefix = "radiocalco"

// LoadDotEnv loads .env style files into the environment. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the configuration. With a path, the file is read first and the
// environment overrides it; otherwise only the environment is used.
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed as struct tag defaults
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverPgx, database.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Addr is the address the HTTP server listens on
func (c *Config) Addr() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return ":" + strconv.Itoa(c.Port)
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	db := c.Database
	if db.URL != "" {
		return db.URL
	}
	if db.Driver == database.DriverSQLite {
		return db.Path
	}

	host := db.Host
	// "db" only resolves inside the compose network
	if host == "db" && !strings.HasPrefix(c.Hostname, containerHostPrefix) {
		host = "localhost"
	}

	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
		if strings.Contains(host, "rds.amazonaws.com") {
			sslMode = "require"
		}
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Usage describes the environment variables
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
