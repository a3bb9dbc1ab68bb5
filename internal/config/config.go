// Package config provides configuration management for the storefront.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Default configuration values.
const (
	DefaultCatalogPath      = "products.txt"
	DefaultHistoryLimit     = 100
	DefaultPaymentAttempts  = 3
	DefaultAdminCommand     = "admin"
	DefaultEWalletAccount   = "09123456789 / Yanex G."
	DefaultRandomSuggestion = true
	DefaultLogLevel         = "info"
	DefaultLogPath          = "storefront.log"
)

// Environment variable names.
const (
	EnvCatalogPath      = "APP_CATALOG_PATH"
	EnvReceiptPath      = "APP_RECEIPT_PATH"
	EnvHistoryLimit     = "APP_HISTORY_LIMIT"
	EnvPaymentAttempts  = "APP_PAYMENT_ATTEMPTS"
	EnvAdminCommand     = "APP_ADMIN_COMMAND"
	EnvEWalletAccount   = "APP_EWALLET_ACCOUNT"
	EnvRandomSuggestion = "APP_RANDOM_SUGGESTION"
	EnvLogLevel         = "APP_LOG_LEVEL"
	EnvLogPath          = "APP_LOG_PATH"
)

// Config holds the application configuration.
type Config struct {
	// Catalog settings.
	CatalogPath string

	// ReceiptPath is the append-only receipt file ("" = console only).
	ReceiptPath string

	// Order settings.
	HistoryLimit     int
	PaymentAttempts  int
	EWalletAccount   string
	RandomSuggestion bool

	// AdminCommand is the hidden top-menu command that opens the
	// inventory management panel.
	AdminCommand string

	// Logging settings.
	LogLevel string
	LogPath  string
}

// Validation errors.
var (
	ErrEmptyCatalogPath       = errors.New("catalog path must not be empty")
	ErrInvalidHistoryLimit    = errors.New("history limit must not be negative")
	ErrInvalidPaymentAttempts = errors.New("payment attempts must be positive")
	ErrEmptyAdminCommand      = errors.New("admin command must not be empty")
	ErrNumericAdminCommand    = errors.New("admin command must not be a menu number")
	ErrEmptyEWalletAccount    = errors.New("e-wallet account must not be empty")
	ErrInvalidLogLevel        = errors.New("log level must be one of: debug, info, warn, error")
	ErrEmptyLogPath           = errors.New("log path must not be empty")
)

// Load reads configuration from environment variables with defaults.
// Environment variables have priority over default values.
func Load() (*Config, error) {
	cfg := &Config{
		CatalogPath:      DefaultCatalogPath,
		ReceiptPath:      "",
		HistoryLimit:     DefaultHistoryLimit,
		PaymentAttempts:  DefaultPaymentAttempts,
		AdminCommand:     DefaultAdminCommand,
		EWalletAccount:   DefaultEWalletAccount,
		RandomSuggestion: DefaultRandomSuggestion,
		LogLevel:         DefaultLogLevel,
		LogPath:          DefaultLogPath,
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if err := c.loadStoreEnv(); err != nil {
		return err
	}

	if err := c.loadOrderEnv(); err != nil {
		return err
	}

	c.loadLoggingEnv()

	return nil
}

// loadStoreEnv loads catalog and receipt file settings.
func (c *Config) loadStoreEnv() error {
	if val := os.Getenv(EnvCatalogPath); val != "" {
		c.CatalogPath = val
	}

	if val := os.Getenv(EnvReceiptPath); val != "" {
		c.ReceiptPath = val
	}

	return nil
}

// loadOrderEnv loads order flow environment variables.
func (c *Config) loadOrderEnv() error {
	if val := os.Getenv(EnvHistoryLimit); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvHistoryLimit, err)
		}
		c.HistoryLimit = limit
	}

	if val := os.Getenv(EnvPaymentAttempts); val != "" {
		attempts, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvPaymentAttempts, err)
		}
		c.PaymentAttempts = attempts
	}

	if val := os.Getenv(EnvAdminCommand); val != "" {
		c.AdminCommand = val
	}

	if val := os.Getenv(EnvEWalletAccount); val != "" {
		c.EWalletAccount = val
	}

	if val := os.Getenv(EnvRandomSuggestion); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvRandomSuggestion, err)
		}
		c.RandomSuggestion = enabled
	}

	return nil
}

// loadLoggingEnv loads logging environment variables.
func (c *Config) loadLoggingEnv() {
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvLogPath); val != "" {
		c.LogPath = val
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}

	if err := c.validateOrder(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateStore validates catalog file configuration.
func (c *Config) validateStore() error {
	if c.CatalogPath == "" {
		return ErrEmptyCatalogPath
	}

	return nil
}

// validateOrder validates order flow configuration.
func (c *Config) validateOrder() error {
	if c.HistoryLimit < 0 {
		return ErrInvalidHistoryLimit
	}

	if c.PaymentAttempts < 1 {
		return ErrInvalidPaymentAttempts
	}

	if c.AdminCommand == "" {
		return ErrEmptyAdminCommand
	}

	// The admin command shares the top menu input with the numeric
	// choices, so it must not collide with them.
	if _, err := strconv.Atoi(c.AdminCommand); err == nil {
		return ErrNumericAdminCommand
	}

	if c.EWalletAccount == "" {
		return ErrEmptyEWalletAccount
	}

	return nil
}

// validateLogging validates logging configuration.
func (c *Config) validateLogging() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.LogPath == "" {
		return ErrEmptyLogPath
	}

	return nil
}
