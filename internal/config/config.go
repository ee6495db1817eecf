package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
	Mail    MailConfig    `mapstructure:"mail"`
	Inquiry InquiryConfig `mapstructure:"inquiry"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig holds the hand-off store connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MailConfig holds email sending configuration
type MailConfig struct {
	// Provider is the mail provider to use: "smtp", "gmail", or "log"
	Provider string      `mapstructure:"provider"`
	SMTP     SMTPConfig  `mapstructure:"smtp"`
	Gmail    GmailConfig `mapstructure:"gmail"`
}

// SMTPConfig holds SMTP transport configuration.
// Defaults match the Office 365 submission endpoint: port 587 with
// STARTTLS and TLS 1.2 as the floor.
type SMTPConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	RequireTLS  bool          `mapstructure:"require_tls"`
	MinTLS      string        `mapstructure:"min_tls"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the SMTP server address
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GmailConfig holds Gmail API configuration
type GmailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID string `mapstructure:"client_id"`
	// ClientSecret for OAuth2 token-based auth
	ClientSecret string `mapstructure:"client_secret"`
	// RefreshToken for OAuth2 token-based auth
	RefreshToken string `mapstructure:"refresh_token"`
}

// InquiryConfig holds the inquiry relay settings
type InquiryConfig struct {
	// From is the fixed sender address on relayed inquiries
	From string `mapstructure:"from"`
	// To is the staff inbox that receives inquiries
	To string `mapstructure:"to"`
	// Subject is the subject line on relayed inquiries
	Subject string `mapstructure:"subject"`
	// HandoffKey is the hand-off store key holding the selected product
	HandoffKey string `mapstructure:"handoff_key"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/inquiry")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("INQUIRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Mail defaults
	v.SetDefault("mail.provider", "smtp")
	v.SetDefault("mail.smtp.host", "smtp.office365.com")
	v.SetDefault("mail.smtp.port", 587)
	v.SetDefault("mail.smtp.require_tls", true)
	v.SetDefault("mail.smtp.min_tls", "1.2")
	v.SetDefault("mail.smtp.dial_timeout", "10s")

	// Inquiry defaults
	v.SetDefault("inquiry.from", "staff@festivepros.co")
	v.SetDefault("inquiry.to", "staff@festivepros.co")
	v.SetDefault("inquiry.subject", "New Product Inquiry")
	v.SetDefault("inquiry.handoff_key", "selectedProduct")
}
