// Package config collects every environment-provided setting into one
// immutable value constructed at startup.
package config

import (
	"fmt"
	"os"
	"sessionwatch/lib/alertledger"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// OrganiserUrl is the password-protected page listing the sessions.
	OrganiserUrl string
	// OrganiserLoginUrl optionally overrides the derived wp-login.php
	// postpass endpoint.
	OrganiserLoginUrl string
	PagePassword      string

	SmtpServer   string
	SmtpPort     int
	SmtpAddress  string
	SmtpPassword string
	// Recipients receive every alert.
	Recipients []string

	// SignupBaseUrl is the prefix the sequence number gets appended to.
	SignupBaseUrl string

	// LedgerPath is the flat-file ledger location, used unless LedgerDB
	// switches the ledger to a database.
	LedgerPath string
	LedgerDB   alertledger.DBConfig
}

func required(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

// Load reads configuration from environment variables and a .env file when
// one is present. Any missing required value fails the whole run before any
// logic executes.
func Load() (*Config, error) {
	// existing env variables win over the .env file
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	cfg.OrganiserUrl, err = required("ORGANISER_URL")
	if err != nil {
		return nil, err
	}
	cfg.PagePassword, err = required("PAGE_PASSWORD")
	if err != nil {
		return nil, err
	}
	cfg.SmtpAddress, err = required("SMTP_ADDRESS")
	if err != nil {
		return nil, err
	}
	cfg.SmtpPassword, err = required("SMTP_PASSWORD")
	if err != nil {
		return nil, err
	}
	cfg.SignupBaseUrl, err = required("SIGNUP_BASE_URL")
	if err != nil {
		return nil, err
	}

	recipients, err := required("NOTIFY_EMAILS")
	if err != nil {
		return nil, err
	}
	for _, addr := range strings.Split(recipients, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		cfg.Recipients = append(cfg.Recipients, addr)
	}
	if len(cfg.Recipients) == 0 {
		return nil, fmt.Errorf("NOTIFY_EMAILS contains no addresses")
	}

	cfg.OrganiserLoginUrl = os.Getenv("ORGANISER_LOGIN_URL")

	cfg.SmtpServer = os.Getenv("SMTP_SERVER")
	if cfg.SmtpServer == "" {
		cfg.SmtpServer = "smtp.gmail.com"
	}
	cfg.SmtpPort = 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		cfg.SmtpPort, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	}

	cfg.LedgerPath = os.Getenv("LEDGER_PATH")
	if cfg.LedgerPath == "" {
		cfg.LedgerPath = "alerted.txt"
	}
	cfg.LedgerDB = alertledger.DBConfig{
		File:      os.Getenv("LEDGER_DB"),
		Url:       os.Getenv("LEDGER_DB_URL"),
		AuthToken: os.Getenv("LEDGER_DB_TOKEN"),
	}

	return cfg, nil
}

// UseDBLedger reports whether the database ledger was configured in place
// of the flat file.
func (c *Config) UseDBLedger() bool {
	return c.LedgerDB.File != "" || c.LedgerDB.Url != ""
}
