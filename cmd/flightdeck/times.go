package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/flightdeck/internal/cli"
	"github.com/Veraticus/flightdeck/internal/timerange"
	"github.com/spf13/cobra"
)

func timesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "times <query>",
		Short: "Show how a query's departure time is understood, offline",
		Long: `Run only the rule-based departure time parser on a query and show which
rule matched and the clock ranges it selects. No network access is needed.

Examples:
  flightdeck times "anything after 7pm"
  flightdeck times "between 9am and 2pm"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			set, rule := timerange.ExplainQuery(text)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTimeExplanation(text, set, rule))
			return err
		},
	}
}
