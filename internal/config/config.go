package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Logging
	LogLevel string

	// Run history database
	History HistoryConfig

	// Command flags
	Flags Flags
}

// HistoryConfig describes the SQL database that keeps past runs
type HistoryConfig struct {
	Driver   string // "sqlite" or "mysql"
	DSN      string // overrides everything below when set
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Flags holds command-line flags
type Flags struct {
	NameFilter string
	Selectors  []string // suites, tests ("Suite.name") or patterns
	PlanPath   string
	OnlyFailed bool
	Verbose    bool
	NoProgress bool
	TestCases  bool
	History    bool
	Limit      int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		LogLevel:       DefaultLogLevel,
		History: HistoryConfig{
			Driver:   DefaultHistoryDriver,
			Host:     "127.0.0.1",
			Port:     "3306",
			User:     "root",
			Database: DefaultHistoryDatabase,
		},
		Flags: Flags{Limit: DefaultHistoryLimit},
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	if cfg.Flags.Limit <= 0 {
		cfg.Flags.Limit = DefaultHistoryLimit
	}
	return cfg
}

// LoadEnv reads the project's .env file, if any, and applies environment
// overrides. Variables already set in the environment win over .env.
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	override := func(target *string, key string) {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
	override(&c.OutputJSONDir, EnvOutputDir)
	override(&c.LogLevel, EnvLogLevel)
	override(&c.History.Driver, EnvHistoryDriver)
	override(&c.History.DSN, EnvHistoryDSN)
	override(&c.History.Host, EnvDBHost)
	override(&c.History.Port, EnvDBPort)
	override(&c.History.User, EnvDBUser)
	override(&c.History.Password, EnvDBPassword)
	override(&c.History.Database, EnvDBDatabase)
	return nil
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// HistoryDataSource returns the driver name and data source name of the run history
func (c *Config) HistoryDataSource() (driver, dsn string, err error) {
	h := c.History
	switch h.Driver {
	case "sqlite":
		if h.DSN != "" {
			return h.Driver, h.DSN, nil
		}
		return h.Driver, filepath.Join(c.ProjectPath, c.OutputJSONDir, DefaultHistoryFile), nil
	case "mysql":
		if h.DSN != "" {
			return h.Driver, h.DSN, nil
		}
		return h.Driver, c.mysqlConfig(h.Database).FormatDSN(), nil
	default:
		return "", "", fmt.Errorf("unsupported history driver %q", h.Driver)
	}
}

// HistoryServerDSN returns a MySQL DSN without a database, used to create it
func (c *Config) HistoryServerDSN() (string, error) {
	if c.History.DSN == "" {
		return c.mysqlConfig("").FormatDSN(), nil
	}
	mc, err := mysql.ParseDSN(c.History.DSN)
	if err != nil {
		return "", fmt.Errorf("parse history dsn: %w", err)
	}
	mc.DBName = ""
	return mc.FormatDSN(), nil
}

// HistoryDatabaseName returns the MySQL database holding the run history
func (c *Config) HistoryDatabaseName() string {
	if c.History.DSN != "" {
		if mc, err := mysql.ParseDSN(c.History.DSN); err == nil && mc.DBName != "" {
			return mc.DBName
		}
	}
	return c.History.Database
}

func (c *Config) mysqlConfig(database string) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = c.History.User
	mc.Passwd = c.History.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.History.Host, c.History.Port)
	mc.DBName = database
	return mc
}
