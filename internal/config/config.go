package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	TokenSecret     string
	ShutdownTimeout time.Duration

	DefaultCountry  string
	DefaultLanguage string
	DefaultCurrency string

	CompanyName     string
	CompanyTagline  string
	CompanyLocation string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultShutdownTimeout = 10 * time.Second
	defaultCountry         = "Egypt"
	defaultLanguage        = "en"
	defaultCurrency        = "USD"
	defaultCompanyName     = "NAFRU"
	defaultCompanyTagline  = "Egyptian Fruit Export Company"
	defaultCompanyLocation = "Cairo, Egypt"
	defaultAdminName       = "Administrator"
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		TokenSecret:     getString(lookup, "JWT_SECRET", defaultTokenSecret),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		DefaultCountry:  getString(lookup, "DEFAULT_COUNTRY", defaultCountry),
		DefaultLanguage: getString(lookup, "DEFAULT_LANGUAGE", defaultLanguage),
		DefaultCurrency: getString(lookup, "DEFAULT_CURRENCY", defaultCurrency),
		CompanyName:     getString(lookup, "COMPANY_NAME", defaultCompanyName),
		CompanyTagline:  getString(lookup, "COMPANY_TAGLINE", defaultCompanyTagline),
		CompanyLocation: getString(lookup, "COMPANY_LOCATION", defaultCompanyLocation),
		AdminEmail:      getString(lookup, "ADMIN_EMAIL", ""),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		AdminName:       getString(lookup, "ADMIN_NAME", defaultAdminName),
	}

	fs := flag.NewFlagSet("exportdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.DefaultCountry, "default-country", cfg.DefaultCountry, "Default country for new customers")
	fs.StringVar(&cfg.DefaultLanguage, "default-language", cfg.DefaultLanguage, "Default language for new customers")
	fs.StringVar(&cfg.DefaultCurrency, "default-currency", cfg.DefaultCurrency, "Default order currency")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
