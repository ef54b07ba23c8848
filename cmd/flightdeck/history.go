package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/flightdeck/internal/cli"
	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/storage"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent natural-language queries",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", storage.DefaultHistoryLimit, "Number of queries to show")
	cmd.Flags().Int64("id", 0, "Show the filters of one query")
	cmd.Flags().Bool("clear", false, "Delete all saved queries")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	id, _ := cmd.Flags().GetInt64("id")
	clearAll, _ := cmd.Flags().GetBool("clear")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	switch {
	case clearAll:
		n, err := store.ClearQueries(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Deleted %d queries", n)))
		return err

	case id > 0:
		record, err := store.GetQuery(ctx, id)
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("No query with id %d", id), err)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, renderRecord(record))
		return err
	}

	records, err := store.RecentQueries(ctx, limit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, cli.RenderHistory(records))
	return err
}

func renderRecord(r *model.QueryRecord) string {
	header := fmt.Sprintf("%s %q · %s", cli.InfoIcon, r.Query, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	if r.Filters == nil {
		return header + "\n" + cli.FormatWarning("This query was not understood.")
	}
	return header + fmt.Sprintf(" · %d results\n", r.ResultCount) + cli.RenderFilters(*r.Filters)
}
