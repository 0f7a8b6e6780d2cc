package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig selects the key-value backend. "sqlite" keeps everything in
// one local file, "postgres" targets a shared database, "memory" holds state
// for the process lifetime only.
type StorageConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"` // sqlite database file
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (s StorageConfig) DSN() string {
	sslmode := s.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		s.User, s.Password, s.Host, s.Port, s.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix NEONFIT_ and underscore-separated paths:
//
//	NEONFIT_SERVER_HOST, NEONFIT_SERVER_PORT,
//	NEONFIT_STORAGE_DRIVER, NEONFIT_STORAGE_PATH,
//	NEONFIT_DB_HOST, NEONFIT_DB_PORT, NEONFIT_DB_NAME,
//	NEONFIT_DB_USER, NEONFIT_DB_PASSWORD, NEONFIT_DB_SSLMODE,
//	NEONFIT_AUTH_API_KEY
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEONFIT_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("NEONFIT_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("NEONFIT_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("NEONFIT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("NEONFIT_DB_HOST"); v != "" {
		cfg.Storage.Host = v
	}
	if v := os.Getenv("NEONFIT_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Port = port
		}
	}
	if v := os.Getenv("NEONFIT_DB_NAME"); v != "" {
		cfg.Storage.Name = v
	}
	if v := os.Getenv("NEONFIT_DB_USER"); v != "" {
		cfg.Storage.User = v
	}
	if v := os.Getenv("NEONFIT_DB_PASSWORD"); v != "" {
		cfg.Storage.Password = v
	}
	if v := os.Getenv("NEONFIT_DB_SSLMODE"); v != "" {
		cfg.Storage.SSLMode = v
	}
	if v := os.Getenv("NEONFIT_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Storage.Host == "" {
			return fmt.Errorf("storage.host is required for the postgres driver")
		}
		if c.Storage.Port == 0 {
			return fmt.Errorf("storage.port is required for the postgres driver")
		}
		if c.Storage.Name == "" {
			return fmt.Errorf("storage.name is required for the postgres driver")
		}
		if c.Storage.User == "" {
			return fmt.Errorf("storage.user is required for the postgres driver")
		}
	case "memory":
	case "":
		return fmt.Errorf("storage.driver is required")
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
