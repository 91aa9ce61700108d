package cmd

import (
	"fmt"
	"os"
	"sessionwatch/cmd/monitor-cli/utils"
	"sessionwatch/lib/scrapers/organiser"
	"sessionwatch/lib/timezone"
	"sessionwatch/services/monitor"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Fetch the organiser page and list every extracted session.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := organiser.NewClient(organiser.ClientOptions{
			PageUrl:  cfg.OrganiserUrl,
			LoginUrl: cfg.OrganiserLoginUrl,
			Password: cfg.PagePassword,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		markup, err := client.FetchPage(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		sessions, err := organiser.ExtractSessions(markup, timezone.Now())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		target := monitor.TargetSaturday(timezone.Now())

		t := utils.NewTable()
		t.AppendHeader(table.Row{"date", "bookings", "target?", "description"})
		for _, session := range sessions {
			date := "-"
			if !session.Date.IsZero() {
				date = session.Date.Format(time.DateOnly)
			}
			isTarget := ""
			if session.Date.Equal(target) {
				isTarget = "yes"
			}
			t.AppendRow(table.Row{
				date,
				fmt.Sprintf("%d/%d", session.CurrentSignups, session.MaxSignups),
				isTarget,
				session.Description,
			})
		}
		t.Render()
	},
}
