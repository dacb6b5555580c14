package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all terminal configuration.
type Config struct {
	Terminal TerminalConfig `mapstructure:"terminal"`
	Fare     FareConfig     `mapstructure:"fare"`
	Reader   ReaderConfig   `mapstructure:"reader"`
	Loop     LoopConfig     `mapstructure:"loop"`
	Counter  CounterConfig  `mapstructure:"counter"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Status   StatusConfig   `mapstructure:"status"`
	Log      LogConfig      `mapstructure:"log"`
}

type TerminalConfig struct {
	FletCode     string `mapstructure:"flet_code"`
	TerminalID   string `mapstructure:"terminal_id"`
	MerchantID   string `mapstructure:"merchant_id"`
	Transport    string `mapstructure:"transport"` // brt, microtrans, feeder
	IntegratorID int    `mapstructure:"integrator_id"`
	MaxAmount    uint32 `mapstructure:"max_amount"`
}

// FareConfig is the flat fare used by the bench classifier.
type FareConfig struct {
	Normal         uint32 `mapstructure:"normal"`
	Final          uint32 `mapstructure:"final"`
	MinimumBalance uint32 `mapstructure:"minimum_balance"`
	Type           string `mapstructure:"type"` // regular, economy
	// BlockWindow rejects a repeat tap at the same terminal; 0 disables.
	BlockWindow time.Duration `mapstructure:"block_window"`
	// JourneyLimit charges a penalty for older open journeys; 0 disables.
	JourneyLimit time.Duration `mapstructure:"journey_limit"`
}

type ReaderConfig struct {
	Driver        string        `mapstructure:"driver"` // simulator
	TapInterval   time.Duration `mapstructure:"tap_interval"`
	StartBalance  int64         `mapstructure:"start_balance"`
	WriteFailRate float64       `mapstructure:"write_fail_rate"`
}

// LoopConfig holds the orchestrator timings.
type LoopConfig struct {
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	SuccessDebounce time.Duration `mapstructure:"success_debounce"`
	FailureDebounce time.Duration `mapstructure:"failure_debounce"`
	IdleInterval    time.Duration `mapstructure:"idle_interval"`
}

type CounterConfig struct {
	BasePath string `mapstructure:"base_path"`
}

type LedgerConfig struct {
	Driver        string        `mapstructure:"driver"` // sqlite, postgres
	SQLitePath    string        `mapstructure:"sqlite_path"`
	InsertTimeout time.Duration `mapstructure:"insert_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StatusConfig configures the read-only operator API.
type StatusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address.
func (s StatusConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level       string `mapstructure:"level"`        // debug, info, warn, error
	Pretty      bool   `mapstructure:"pretty"`       // human-readable output (dev only)
	HistoryPath string `mapstructure:"history_path"` // per-tap log history, empty disables
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TERM_.
// Nested keys use underscore: TERM_TERMINAL_TERMINAL_ID, TERM_LEDGER_DRIVER, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("terminal.flet_code", "FLT-01")
	v.SetDefault("terminal.terminal_id", "T0001")
	v.SetDefault("terminal.merchant_id", "M0001")
	v.SetDefault("terminal.transport", "brt")
	v.SetDefault("terminal.integrator_id", 1)
	v.SetDefault("terminal.max_amount", 999999)
	v.SetDefault("fare.normal", 3500)
	v.SetDefault("fare.final", 3500)
	v.SetDefault("fare.minimum_balance", 3500)
	v.SetDefault("fare.type", "regular")
	v.SetDefault("fare.block_window", "0s")
	v.SetDefault("fare.journey_limit", "0s")
	v.SetDefault("reader.driver", "simulator")
	v.SetDefault("reader.tap_interval", "10s")
	v.SetDefault("reader.start_balance", 50000)
	v.SetDefault("reader.write_fail_rate", 0.0)
	v.SetDefault("loop.poll_interval", "50ms")
	v.SetDefault("loop.success_debounce", "3s")
	v.SetDefault("loop.failure_debounce", "1500ms")
	v.SetDefault("loop.idle_interval", "125ms")
	v.SetDefault("counter.base_path", "./data/counter")
	v.SetDefault("ledger.driver", "sqlite")
	v.SetDefault("ledger.sqlite_path", "./data/ledger.db")
	v.SetDefault("ledger.insert_timeout", "5s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fare_terminal")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("status.enabled", true)
	v.SetDefault("status.host", "127.0.0.1")
	v.SetDefault("status.port", 8080)
	v.SetDefault("status.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.history_path", "./data/log/history.log")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TERM_LEDGER_DRIVER -> ledger.driver
	v.SetEnvPrefix("TERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Ledger.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported ledger driver %q", c.Ledger.Driver)
	}
	if c.Reader.Driver != "simulator" {
		return fmt.Errorf("unsupported reader driver %q", c.Reader.Driver)
	}
	if c.Terminal.TerminalID == "" {
		return fmt.Errorf("terminal.terminal_id is required")
	}
	if c.Counter.BasePath == "" {
		return fmt.Errorf("counter.base_path is required")
	}
	return nil
}
