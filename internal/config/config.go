package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TIMEWIZARD_SERVER_PORT.
const EnvPrefix = "TIMEWIZARD"

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	Log       LogConfig       `mapstructure:"log"`
	MCP       MCPConfig       `mapstructure:"mcp"`
	Transport TransportConfig `mapstructure:"transport"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// Path, when set, sends logs to a size-capped file instead of the console.
	Path string `mapstructure:"path"`
}

type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TransportConfig selects how the server is reached: "http" serves REST and MCP
// over HTTP, "stdio" serves only the MCP tools on stdin/stdout.
type TransportConfig struct {
	Mode string `mapstructure:"mode"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from an optional YAML file and environment variables.
// An empty path falls back to TIMEWIZARD_CONFIG_PATH; a missing file is an error
// only when a path was given.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port %d", c.Server.Port))
	}
	if c.DB.Path == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		errs = append(errs, fmt.Errorf("invalid transport mode %q", c.Transport.Mode))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.path", "timewizard.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("mcp.enabled", true)
	v.SetDefault("transport.mode", "http")
}
