package cmd

import (
	"fmt"
	"os"
	"sessionwatch/internal/config"
	"sessionwatch/lib/alertledger"
	"sessionwatch/lib/telemetry"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "monitor-cli",
	Short: "monitor-cli inspects the session monitor's view of the world.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(false)

		var err error
		cfg, err = config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openLedger() alertledger.Ledger {
	if !cfg.UseDBLedger() {
		return alertledger.NewFileLedger(cfg.LedgerPath)
	}
	db, err := cfg.LedgerDB.OpenDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	store, err := alertledger.NewStore(db)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	return store
}
