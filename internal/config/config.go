package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultThreads   = 200
	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "alivecheck/0.1"

	EnvPrefix = "ALIVECHECK"
)

var (
	ErrMissingFile   = errors.New("input file is required (-f/--file)")
	ErrMissingOutput = errors.New("output file is required (-o/--output)")
)

type Config struct {
	File       string        `mapstructure:"file"`
	Output     string        `mapstructure:"output"`
	Threads    int           `mapstructure:"threads"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Rate       float64       `mapstructure:"rate"`
	UserAgent  string        `mapstructure:"user-agent"`
	NoProgress bool          `mapstructure:"no-progress"`
	Verbose    bool          `mapstructure:"verbose"`
}

func Default() Config {
	return Config{
		Threads:   DefaultThreads,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Normalize replaces out-of-range values instead of rejecting them.
// Threads below 1 become 1.
func (c *Config) Normalize() {
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Rate < 0 {
		c.Rate = 0
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return ErrMissingFile
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrMissingOutput
	}
	return nil
}

// SetDefaults registers defaults and environment lookups on v. Keys match
// the long flag names; ALIVECHECK_USER_AGENT maps to "user-agent".
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("threads", d.Threads)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("rate", 0.0)
	v.SetDefault("user-agent", d.UserAgent)
	v.SetDefault("no-progress", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads an optional config file, then decodes, normalizes and
// validates the merged settings.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
