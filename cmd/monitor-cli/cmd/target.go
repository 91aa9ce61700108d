package cmd

import (
	"sessionwatch/cmd/monitor-cli/utils"
	"sessionwatch/lib/timezone"
	"sessionwatch/services/monitor"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(targetCmd)
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Show the occurrence the monitor would check right now.",
	Run: func(cmd *cobra.Command, args []string) {
		now := timezone.Now()
		target := monitor.TargetSaturday(now)

		t := utils.NewTable()
		t.AppendHeader(table.Row{"now", "target", "token", "signup link"})
		t.AppendRow(table.Row{
			now.Format(time.DateTime),
			target.Format("Mon 2 Jan 2006"),
			target.Format(time.DateOnly),
			monitor.SignupLink(target, cfg.SignupBaseUrl),
		})
		t.Render()
	},
}
