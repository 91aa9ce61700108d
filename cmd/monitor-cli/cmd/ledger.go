package cmd

import (
	"fmt"
	"os"
	"sessionwatch/cmd/monitor-cli/utils"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerAddCmd)
	rootCmd.AddCommand(ledgerCmd)
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect or amend the alert ledger.",
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every occurrence that has already been alerted.",
	Run: func(cmd *cobra.Command, args []string) {
		tokens, err := openLedger().List(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"token"})
		for _, token := range tokens {
			t.AppendRow(table.Row{token})
		}
		t.Render()
	},
}

var ledgerAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Record a date as already alerted, suppressing any future alert for it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		token, err := time.Parse(time.DateOnly, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "dates must look like 2026-02-21:", err.Error())
			os.Exit(1)
		}

		err = openLedger().Mark(cmd.Context(), token.Format(time.DateOnly))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	},
}
