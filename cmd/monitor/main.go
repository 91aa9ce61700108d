package main

import (
	"context"
	"log/slog"
	"os"
	"sessionwatch/internal/config"
	"sessionwatch/lib/alertledger"
	"sessionwatch/lib/osutil"
	"sessionwatch/lib/scrapers/organiser"
	"sessionwatch/lib/telemetry"
	"sessionwatch/lib/timezone"
	"sessionwatch/services/monitor"
)

func fatalerr(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func openLedger(cfg *config.Config) (alertledger.Ledger, error) {
	if !cfg.UseDBLedger() {
		return alertledger.NewFileLedger(cfg.LedgerPath), nil
	}
	db, err := cfg.LedgerDB.OpenDB()
	if err != nil {
		return nil, err
	}
	return alertledger.NewStore(db)
}

func main() {
	telemetry.InitSlog(os.Getenv("VERBOSE") != "")

	cfg, err := config.Load()
	if err != nil {
		fatalerr("invalid configuration", err)
	}

	ctx := osutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "cmd/monitor")
	if err != nil {
		fatalerr("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	ledger, err := openLedger(cfg)
	if err != nil {
		fatalerr("failed to open alert ledger", err)
	}

	fetcher, err := organiser.NewClient(organiser.ClientOptions{
		PageUrl:  cfg.OrganiserUrl,
		LoginUrl: cfg.OrganiserLoginUrl,
		Password: cfg.PagePassword,
	})
	if err != nil {
		fatalerr("failed to initialize organiser client", err)
	}

	clock := timezone.NewStandardClock()
	mailer := monitor.NewEmailMailer(monitor.SmtpConfig{
		Server:       cfg.SmtpServer,
		Port:         cfg.SmtpPort,
		EmailAddress: cfg.SmtpAddress,
		Password:     cfg.SmtpPassword,
	}, cfg.Recipients, clock)

	service := monitor.NewService(fetcher, mailer, ledger, clock, monitor.Options{
		SignupBaseUrl: cfg.SignupBaseUrl,
	})

	outcome := service.RunOnce(ctx)
	slog.Info("run complete", "outcome", outcome)
}
