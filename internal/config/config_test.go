package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("ORGANISER_URL", "https://example.org/w/organiser/")
	t.Setenv("PAGE_PASSWORD", "hunter2")
	t.Setenv("SMTP_ADDRESS", "alerts@example.org")
	t.Setenv("SMTP_PASSWORD", "app-password")
	t.Setenv("NOTIFY_EMAILS", "a@example.org, b@example.org,")
	t.Setenv("SIGNUP_BASE_URL", "https://example.org/signup/session-")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "https://example.org/w/organiser/", cfg.OrganiserUrl)
	require.Equal(t, []string{"a@example.org", "b@example.org"}, cfg.Recipients)
	require.Equal(t, "smtp.gmail.com", cfg.SmtpServer)
	require.Equal(t, 587, cfg.SmtpPort)
	require.Equal(t, "alerted.txt", cfg.LedgerPath)
	require.False(t, cfg.UseDBLedger())
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("PAGE_PASSWORD", "")

	_, err := Load()
	require.ErrorContains(t, err, "PAGE_PASSWORD")
}

func TestLoadDBLedger(t *testing.T) {
	setRequired(t)
	t.Setenv("LEDGER_DB", "ledger.db")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, cfg.UseDBLedger())
	require.Equal(t, "ledger.db", cfg.LedgerDB.File)
}
