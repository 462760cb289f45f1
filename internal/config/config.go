package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config is built once at process start and passed by reference into the
// HTTP and auth layers. Nothing outside this package reads the environment.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"` // development, production, test
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret"`
		AccessTTLHours  int    `yaml:"access_ttl_hours"`
		RefreshTTLHours int    `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	HTTP struct {
		CORSOrigin   string `yaml:"cors_origin"`
		MaxBodyBytes int64  `yaml:"max_body_bytes"`
	} `yaml:"http"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`
}

const (
	defaultAccessTTLHours  = 24
	defaultRefreshTTLHours = 240
	defaultMaxBodyBytes    = 20 << 10 // 20KB request body cap
)

// IsProduction reports whether cookies must carry Secure and SameSite=None.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load builds the configuration. When DATABASE_URL is set, everything comes
// from the environment (test and container deployments); otherwise the YAML
// file at CONFIG_PATH (default config/config.yaml) is used.
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.HTTP.CORSOrigin = os.Getenv("CORS_ORIGIN")
		applyDefaults(&cfg)
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.AccessTTLHours == 0 {
		cfg.JWT.AccessTTLHours = defaultAccessTTLHours
	}
	if cfg.JWT.RefreshTTLHours == 0 {
		cfg.JWT.RefreshTTLHours = defaultRefreshTTLHours
	}
	if cfg.HTTP.MaxBodyBytes == 0 {
		cfg.HTTP.MaxBodyBytes = defaultMaxBodyBytes
	}
}
