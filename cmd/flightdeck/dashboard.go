package main

import (
	"log/slog"

	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive flight search dashboard",
		Long: `Open a full-screen dashboard: type a question, browse results page by
page with n/p, press h for recent queries and q to quit.`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}

	cmd.Flags().Int("history-limit", 10, "Number of past queries in the history panel")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	historyLimit, _ := cmd.Flags().GetInt("history-limit")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parser, err := newQueryParser(cfg)
	if err != nil {
		return err
	}
	searcher, err := newSearchClient(cfg)
	if err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithParser(parser),
		tui.WithSearcher(searcher),
		tui.WithHistoryLimit(historyLimit),
	}

	// The dashboard works without history.
	store, err := openStorage(ctx, cfg)
	if err != nil {
		common.LogError(err, "Query history unavailable", nil)
	} else {
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("Failed to close database", "error", closeErr)
			}
		}()
		opts = append(opts, tui.WithHistory(store))
	}

	return tui.Run(ctx, opts...)
}
