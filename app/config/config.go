// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config carries every tunable the application reads. Defaults suit
// local development.
type Config struct {
	Addr     string `env:"INKWELL_ADDR,default=:8080"`
	DBPath   string `env:"INKWELL_DB_PATH,default=data/badger"`
	BaseURL  string `env:"INKWELL_BASE_URL,default=http://localhost:8080"`
	PageSize int    `env:"INKWELL_PAGE_SIZE,default=3"`

	FeedTitle       string `env:"INKWELL_FEED_TITLE,default=Place of Blogs"`
	FeedDescription string `env:"INKWELL_FEED_DESCRIPTION,default=New blog posts."`
	FeedItems       int    `env:"INKWELL_FEED_ITEMS,default=5"`

	SMTPAddr string `env:"INKWELL_SMTP_ADDR"`
	MailFrom string `env:"INKWELL_MAIL_FROM,default=blog@localhost"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
