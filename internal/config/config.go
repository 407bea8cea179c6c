package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STAGEDASH_SOURCE_KIND.
const EnvPrefix = "STAGEDASH"

// Source kinds.
const (
	SourceFile   = "file"
	SourceHTTP   = "http"
	SourceSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Source   SourceConfig   `mapstructure:"source"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
	Serve    ServeConfig    `mapstructure:"serve"`
}

// PipelineConfig selects the pipeline to show.
type PipelineConfig struct {
	Match string `mapstructure:"match"`
}

// SourceConfig chooses and configures the pipeline source.
type SourceConfig struct {
	Kind    string        `mapstructure:"kind"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Token   string        `mapstructure:"token"`
	Path    string        `mapstructure:"path"`
}

// CacheConfig holds the optional Redis cache settings.
type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// MetricsConfig holds the Prometheus textfile output.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ASCII bool `mapstructure:"ascii"`
}

// ServeConfig holds the API server settings.
type ServeConfig struct {
	Addr  string `mapstructure:"addr"`
	Token string `mapstructure:"token"`
}

// Loader reads configuration from defaults, an optional file, the environment and flags,
// in increasing order of precedence.
type Loader struct {
	v          *viper.Viper
	configFile string
	dotEnv     string
}

// NewLoader creates a loader with every default set.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("pipeline.match", "")
	v.SetDefault("source.kind", SourceFile)
	v.SetDefault("source.url", "")
	v.SetDefault("source.timeout", 10*time.Second)
	v.SetDefault("source.token", "")
	v.SetDefault("source.path", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("metrics.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.ascii", false)
	v.SetDefault("serve.addr", ":8080")
	v.SetDefault("serve.token", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, dotEnv: ".env"}
}

// SetConfigFile forces a config file instead of the search path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// SetDotEnv changes the dotenv file loaded before the environment is read.
// An empty path disables dotenv loading.
func (l *Loader) SetDotEnv(path string) {
	l.dotEnv = path
}

// BindFlag binds a command-line flag onto a config key.
// The flag only takes precedence when it was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind to %s", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
	}
	return nil
}

// Load resolves the configuration.
func (l *Loader) Load() (Config, error) {
	if l.dotEnv != "" {
		if err := godotenv.Load(l.dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", l.dotEnv, err)
		}
	}

	cfgPath := l.configFile
	if cfgPath == "" {
		cfgPath = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if cfgPath != "" {
		l.v.SetConfigFile(cfgPath)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	} else {
		l.v.SetConfigName("stagedash")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(filepath.Join(home, ".config", "stagedash"))
		}
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ConfigFileUsed returns the file the last Load read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceFile, SourceSQLite:
	case SourceHTTP:
		if c.Source.URL == "" {
			return fmt.Errorf("source.url is required for the %s source", SourceHTTP)
		}
	default:
		return fmt.Errorf("unknown source kind %q (want %s, %s or %s)", c.Source.Kind, SourceFile, SourceHTTP, SourceSQLite)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout cannot be negative")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl cannot be negative")
	}
	return nil
}
