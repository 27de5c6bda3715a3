package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Discord  DiscordConfig  `yaml:"discord"`
	Giphy    GiphyConfig    `yaml:"giphy"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type DiscordConfig struct {
	Token     string `yaml:"token"`
	ServerID  string `yaml:"server_id"`
	ChannelID string `yaml:"channel_id"`
}

type GiphyConfig struct {
	APIKey string `yaml:"api_key"`
}

// LoadConfig reads the optional YAML file and then lets environment
// variables override it. Secrets are expected from the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	overrideFromEnv(&cfg.Server.Port, "PORT")
	overrideFromEnv(&cfg.Database.DSN, "DATABASE_URL")
	overrideFromEnv(&cfg.Discord.Token, "DISCORD_TOKEN")
	overrideFromEnv(&cfg.Discord.ServerID, "DISCORD_SERVER_ID")
	overrideFromEnv(&cfg.Discord.ChannelID, "DISCORD_CHANNEL_ID")
	overrideFromEnv(&cfg.Giphy.APIKey, "GIPHY_API_KEY")

	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
	}
	return cfg, nil
}

// Validate enforces the startup-time guarantees. A missing Giphy key is a
// misconfiguration and must stop the boot, not degrade every request.
func (c *Config) Validate() error {
	if c.Giphy.APIKey == "" {
		return errors.New("GIPHY_API_KEY is not set in environment variables")
	}
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL is not set in environment variables")
	}
	return nil
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
