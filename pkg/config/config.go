// Package config loads linkchart settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/linkchart/config.toml (or
// ~/.config/linkchart/config.toml) unless a path is given. A missing file is
// not an error; every setting has a default:
//
//	[layout]
//	name = "hierarchy"
//	seed = 0
//	node_width = 160
//	node_height = 80
//	node_spacing_x = 220
//	node_spacing_y = 140
//	min_node_padding = 20
//	fit_padding = 100
//	min_zoom = 0.1
//	max_zoom = 5
//	fit_max_zoom = 1.5
//
//	[cache]
//	backend = "file"       # file, redis or none
//	dir = ""               # defaults to the user cache directory
//	redis_addr = "localhost:6379"
//	prefix = "linkchart:"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 10485760
//
// Command-line flags override file values.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/linkchart/pkg/cache"
	lcerrors "github.com/matzehuels/linkchart/pkg/errors"
	"github.com/matzehuels/linkchart/pkg/layout"
)

// EnvPath overrides the default config file location.
const EnvPath = "LINKCHART_CONFIG"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds linkchart configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig selects the default strategy and node geometry.
type LayoutConfig struct {
	Name string `toml:"name"`
	Seed uint64 `toml:"seed"`
	layout.Config
}

// CacheConfig selects and configures the layout cache.
type CacheConfig struct {
	Backend   string        `toml:"backend" validate:"oneof=file redis none"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr" validate:"required_if=Backend redis"`
	Prefix    string        `toml:"prefix"`
	TTL       time.Duration `toml:"ttl" validate:"gte=0s"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr         string `toml:"addr" validate:"required"`
	MaxBodyBytes int64  `toml:"max_body_bytes" validate:"gt=0"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Name:   layout.DefaultName,
			Config: layout.DefaultConfig(),
		},
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			Prefix:    "linkchart:",
			TTL:       cache.TTLLayout,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 10 << 20,
		},
	}
}

// Dir returns the linkchart config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "linkchart")
}

// Path returns the config file Load reads when given an empty path.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path, or at [Path] when path is empty, on
// top of the defaults. A missing default file yields the defaults; a missing
// explicit path is an error. Unknown keys are rejected so typos do not pass
// silently.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return nil, lcerrors.Wrap(lcerrors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, lcerrors.Wrap(lcerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := Decode(string(data), cfg); err != nil {
		return nil, lcerrors.Wrap(lcerrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML text over cfg and validates the result.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

var validate = validator.New()

// Validate checks every section.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return lcerrors.Wrap(lcerrors.ErrCodeInvalidConfig, err, "validate config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag()))
	}
	return lcerrors.New(lcerrors.ErrCodeInvalidConfig, "%s", strings.Join(msgs, "; "))
}

// CacheDir returns the configured file cache directory, or the default.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return cache.DefaultDir()
}
