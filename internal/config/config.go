package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Intake"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		MaxUploadBytes int64         `envconfig:"SERVER_MAX_UPLOAD_BYTES" default:"33554432"`
	}

	Store struct {
		Driver string `envconfig:"STORE_DRIVER" default:"memory"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"intake"`
	}

	Media struct {
		CloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
		APIKey    string `envconfig:"CLOUDINARY_API_KEY"`
		APISecret string `envconfig:"CLOUDINARY_API_SECRET"`
		Folder    string `envconfig:"CLOUDINARY_FOLDER" default:"intake"`
		BaseURL   string `envconfig:"CLOUDINARY_BASE_URL" default:"https://api.cloudinary.com"`
	}

	Mail struct {
		Host     string `envconfig:"SMTP_HOST"`
		Port     int    `envconfig:"SMTP_PORT" default:"587"`
		Username string `envconfig:"SMTP_USERNAME"`
		Password string `envconfig:"SMTP_PASSWORD"`
		From     string `envconfig:"MAIL_FROM" default:"intake@localhost"`
		To       string `envconfig:"MAIL_TO"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Client struct {
		BaseURL string        `envconfig:"INTAKE_API_URL" default:"http://localhost:8080"`
		Timeout time.Duration `envconfig:"INTAKE_API_TIMEOUT" default:"60s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// MailEnabled reports whether enough SMTP settings are present to send
// notifications.
func (c *Config) MailEnabled() bool {
	return c.Mail.Host != "" && c.Mail.To != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return &cfg, nil
}
