package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"kitchen/internal/jobs"
	"kitchen/internal/pkg/errs"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort             string `yaml:"httpPort"`
	LogLevel             string `yaml:"logLevel"`
	DBDriver             string `yaml:"dbDriver"`
	DBHost               string `yaml:"dbHost"`
	DBPort               string `yaml:"dbPort"`
	DBUser               string `yaml:"dbUser"`
	DBPassword           string `yaml:"dbPassword"`
	DBName               string `yaml:"dbName"`
	DBSslMode            string `yaml:"dbSslMode"`
	SQLitePath           string `yaml:"sqlitePath"`
	JWTSecret            string `yaml:"jwtSecret"`
	RabbitMQURL          string `yaml:"rabbitmqUrl"`
	RabbitMQExchange     string `yaml:"rabbitmqExchange"`
	TableReleaseSchedule string `yaml:"tableReleaseSchedule"`
}

// DefaultConfig is the configuration before any file or environment variable is applied.
func DefaultConfig() Config {
	return Config{
		HTTPPort:             "8080",
		LogLevel:             "info",
		DBDriver:             DriverPostgres,
		DBHost:               "localhost",
		DBPort:               "5432",
		DBUser:               "kitchen",
		DBName:               "kitchen",
		DBSslMode:            "disable",
		SQLitePath:           "kitchen.db",
		RabbitMQExchange:     "kitchen.events",
		TableReleaseSchedule: jobs.DefaultTableReleaseSchedule,
	}
}

// LoadConfig builds the configuration in three layers: defaults, then the YAML file
// at configPath (skipped when empty), then environment variables. envFile is loaded
// into the environment first when it exists; variables already set win over it.
func LoadConfig(configPath, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err = yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	for key, field := range cfg.envFields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) envFields() map[string]*string {
	return map[string]*string{
		"HTTP_PORT":              &c.HTTPPort,
		"LOG_LEVEL":              &c.LogLevel,
		"DB_DRIVER":              &c.DBDriver,
		"DB_HOST":                &c.DBHost,
		"DB_PORT":                &c.DBPort,
		"DB_USER":                &c.DBUser,
		"DB_PASSWORD":            &c.DBPassword,
		"DB_NAME":                &c.DBName,
		"DB_SSLMODE":             &c.DBSslMode,
		"SQLITE_PATH":            &c.SQLitePath,
		"JWT_SECRET":             &c.JWTSecret,
		"RABBITMQ_URL":           &c.RabbitMQURL,
		"RABBITMQ_EXCHANGE":      &c.RabbitMQExchange,
		"TABLE_RELEASE_SCHEDULE": &c.TableReleaseSchedule,
	}
}

// Validate checks the values main depends on before anything is started.
func (c Config) Validate() error {
	var portErr, levelErr, driverErr, scheduleErr, exchangeErr error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		portErr = errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", fmt.Errorf("%q is not a TCP port", c.HTTPPort))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		levelErr = errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		driverErr = errs.NewValueIsInvalidErrorWithCause("DB_DRIVER",
			fmt.Errorf("%q is neither %s nor %s", c.DBDriver, DriverPostgres, DriverSQLite))
	}
	if err := jobs.ValidateSchedule(c.TableReleaseSchedule); err != nil {
		scheduleErr = errs.NewValueIsInvalidErrorWithCause("TABLE_RELEASE_SCHEDULE", err)
	}
	if c.RabbitMQURL != "" && c.RabbitMQExchange == "" {
		exchangeErr = errs.NewValueIsRequiredError("RABBITMQ_EXCHANGE")
	}

	return errors.Join(portErr, levelErr, driverErr, scheduleErr, exchangeErr)
}

// SlogLevel returns the configured log level, or info when it does not parse.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// PostgresDSN renders the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
