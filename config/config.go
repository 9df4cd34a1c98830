// Package config loads the indexer settings from an optional TOML file and
// the environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// Duration accepts the extended units of go-str2duration, such as "7d" or "1w".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := str2duration.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Duration) String() string {
	return str2duration.String(d.Duration)
}

// Set and Type let a *Duration back a command line flag.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

func (d *Duration) Type() string {
	return "duration"
}

type Config struct {
	Server ServerConfig `toml:"server"`
	HTTP   HTTPConfig   `toml:"http"`
	Redis  RedisConfig  `toml:"redis"`
	Sites  SitesConfig  `toml:"sites"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Addr        string `toml:"addr"`
	MetricsAddr string `toml:"metrics_addr"`
}

type HTTPConfig struct {
	Timeout Duration `toml:"timeout"`
}

type RedisConfig struct {
	Host    string   `toml:"host"`
	Port    int      `toml:"port"`
	SeenTTL Duration `toml:"seen_ttl"`
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type SitesConfig struct {
	NyaaURL    string `toml:"nyaa_url"`
	SukebeiURL string `toml:"sukebei_url"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":7006",
			MetricsAddr: ":8081",
		},
		HTTP: HTTPConfig{
			Timeout: Duration{30 * time.Second},
		},
		Redis: RedisConfig{
			Host:    "localhost",
			Port:    6379,
			SeenTTL: Duration{7 * 24 * time.Hour},
		},
		Sites: SitesConfig{
			NyaaURL:    "https://nyaa.si",
			SukebeiURL: "https://sukebei.nyaa.si",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the file at path over the defaults, then applies environment
// overrides. An empty path or a missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		cfg.Server.MetricsAddr = ":" + v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT %q: %w", v, err)
		}
		cfg.Redis.Port = port
	}
	if v := os.Getenv("SEEN_TTL"); v != "" {
		if err := cfg.Redis.SeenTTL.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("SEEN_TTL: %w", err)
		}
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if err := cfg.HTTP.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("NYAA_URL"); v != "" {
		cfg.Sites.NyaaURL = v
	}
	if v := os.Getenv("SUKEBEI_URL"); v != "" {
		cfg.Sites.SukebeiURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}
