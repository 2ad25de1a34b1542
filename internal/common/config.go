package common

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Bot      BotConfig
	Server   ServerConfig
	Template TemplateConfig
}

// BotConfig holds messaging-gateway configuration
type BotConfig struct {
	Token       string
	PollTimeout time.Duration
}

// ServerConfig holds HTTP label-server configuration
type ServerConfig struct {
	HTTPAddr string
}

// TemplateConfig holds order-template configuration
type TemplateConfig struct {
	Path string // optional YAML template; empty means the built-in template
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Bot: BotConfig{
			Token:       getEnv("BOT_TOKEN", ""),
			PollTimeout: getEnvAsDuration("BOT_POLL_TIMEOUT", 30*time.Second),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
		},
		Template: TemplateConfig{
			Path: getEnv("ORDER_TEMPLATE_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateBot validates the configuration needed by the bot daemon.
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return NewAppError("CONFIG_ERROR", "BOT_TOKEN is required", nil)
	}
	if c.Bot.PollTimeout <= 0 {
		return NewAppError("CONFIG_ERROR", "BOT_POLL_TIMEOUT must be positive", nil)
	}
	return nil
}

// ValidateServer validates the configuration needed by the HTTP label server.
func (c *Config) ValidateServer() error {
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", nil)
	}
	return nil
}
