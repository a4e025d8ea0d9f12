package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"maintenance/internal/adapters/out/bcrypt"
	"maintenance/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "MAINT"

// Config is the application configuration. Values come from the optional
// config file, a .env file and MAINT_ prefixed environment variables, in
// increasing order of precedence.
type Config struct {
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

// DatabaseConfig selects the store. For postgres an empty DSN is built from
// the individual connection fields.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
	LogLevel        string        `mapstructure:"log_level"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// ConnectionString returns the DSN handed to the driver.
func (c DatabaseConfig) ConnectionString() string {
	if c.DSN != "" || c.Driver != postgres.DriverPostgres {
		return c.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// ConnectionConfig maps the settings onto the persistence adapter's options.
func (c DatabaseConfig) ConnectionConfig() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Driver:          c.Driver,
		DSN:             c.ConnectionString(),
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		LogLevel:        c.LogLevel,
		SlowThreshold:   c.SlowThreshold,
	}
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SecurityConfig controls password hashing.
type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// AdminConfig describes the account created at startup when no admin with
// that email exists yet. An empty email disables the bootstrap.
type AdminConfig struct {
	FirstName  string `mapstructure:"first_name"`
	LastName   string `mapstructure:"last_name"`
	Email      string `mapstructure:"email"`
	Password   string `mapstructure:"password"`
	Department string `mapstructure:"department"`
}

// LoadConfig reads, in rising priority: defaults, the config file (path, or
// config.yaml in . and ./config), a .env file and MAINT_* environment variables,
// e.g. MAINT_DB_DSN.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("db.driver", postgres.DriverPostgres)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "maintenance")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.slow_threshold", "200ms")
	v.SetDefault("db.log_level", "warn")
	v.SetDefault("db.auto_migrate", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("security.bcrypt_cost", bcrypt.DefaultCost)

	v.SetDefault("admin.first_name", "System")
	v.SetDefault("admin.last_name", "Admin")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.department", "Maintenance")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []error

	switch c.Database.Driver {
	case postgres.DriverPostgres, postgres.DriverSQLite:
	default:
		problems = append(problems, fmt.Errorf("db.driver must be %q or %q, got %q",
			postgres.DriverPostgres, postgres.DriverSQLite, c.Database.Driver))
	}
	if c.Database.ConnectionString() == "" {
		problems = append(problems, errors.New("db.dsn is required"))
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Errorf("security.bcrypt_cost must be between %d and %d",
			bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		problems = append(problems, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		problems = append(problems, errors.New("admin.password is required when admin.email is set"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(problems...))
	}
	return nil
}
