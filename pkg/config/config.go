// Package config loads TOML configuration for the CLI and server.
//
// Configuration is optional: every field has a sensible default, so an
// absent file yields a working setup with a file-backed cache under the
// user cache directory. A file overrides only the fields it sets.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tanglegraph/tangle/pkg/cache"
)

// Cache backend names accepted in configuration.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Duration wraps time.Duration so TTLs can be written as "24h" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config is the full application configuration.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     Duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds connection settings for the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     defaultCacheDir(),
			TTL:     Duration{30 * 24 * time.Hour},
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "tangle",
				Collection: "cache",
			},
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "tangle")
}

// Load reads configuration from path, applying defaults for unset fields.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("negative cache ttl %s", c.Cache.TTL.Duration)
	}
	return nil
}

// OpenCache constructs the cache backend the configuration selects.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendFile:
		return cache.NewFileCache(c.Cache.Dir)
	case BackendRedis:
		r := c.Cache.Redis
		return cache.NewRedisCache(ctx, r.Addr, r.Password, r.DB)
	case BackendMongo:
		m := c.Cache.Mongo
		return cache.NewMongoCache(ctx, m.URI, m.Database, m.Collection)
	case BackendNone:
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
}
