package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/flightdeck/internal/cli"
	"github.com/Veraticus/flightdeck/internal/config"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/timerange"
	"github.com/spf13/cobra"
)

var sortOrders = []string{
	model.SortDepartureTime,
	model.SortArrivalTime,
	model.SortAirline,
	model.SortUTC,
	model.SortLocal,
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search flights with explicit filters",
		Long: `Search the flight schedule with filters given as flags.

--time accepts bucket names and everyday phrases, and may be repeated.

Examples:
  flightdeck search --origin SYD --destination MNL
  flightdeck search --airline PR --time morning --time "after lunch"
  flightdeck search --date 2025-10-03 --sort local --limit 50`,
		Args: cobra.NoArgs,
		RunE: runSearch,
	}

	cmd.Flags().String("date", "", "Service date, YYYY-MM-DD (default: search.fallback_date)")
	cmd.Flags().String("origin", "", "Origin airport code or name")
	cmd.Flags().String("destination", "", "Destination airport code or name")
	cmd.Flags().String("airline", "", "Airline IATA code")
	cmd.Flags().String("route", "", "Route, e.g. SYD-MNL")
	cmd.Flags().String("sort", "", "Sort order: "+strings.Join(sortOrders, ", "))
	cmd.Flags().Int("limit", 0, "Results per page (default: search.page_size)")
	cmd.Flags().StringArray("time", nil, "Departure time: morning, afternoon, evening, night or a phrase")
	cmd.Flags().String("page-token", "", "Start after this document id")
	cmd.Flags().Int("pages", 1, "Number of result pages to fetch")
	cmd.Flags().Bool("json", false, "Print filters and results as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, _ []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	pages, _ := cmd.Flags().GetInt("pages")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	filters, err := filtersFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := cli.NewInterruptHandler(cmd.ErrOrStderr()).HandleInterrupts(cmd.Context())
	defer stop()

	results, err := fetchPages(ctx, cmd.ErrOrStderr(), cfg, filters, pages)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), searchOutput{Filters: filters, Pages: results})
	}
	printResults(cmd.OutOrStdout(), filters, results)
	return nil
}

// filtersFromFlags builds search filters from the command's flags, defaulting
// the date and limit from configuration.
func filtersFromFlags(cmd *cobra.Command, cfg config.Config) (model.Filters, error) {
	flags := cmd.Flags()
	date, _ := flags.GetString("date")
	origin, _ := flags.GetString("origin")
	destination, _ := flags.GetString("destination")
	airline, _ := flags.GetString("airline")
	route, _ := flags.GetString("route")
	sortBy, _ := flags.GetString("sort")
	limit, _ := flags.GetInt("limit")
	times, _ := flags.GetStringArray("time")
	token, _ := flags.GetString("page-token")

	filters := model.Filters{
		ServiceDate:     cfg.Search.FallbackDate,
		Origin:          strings.TrimSpace(origin),
		Destination:     strings.TrimSpace(destination),
		Airline:         strings.TrimSpace(airline),
		Route:           strings.TrimSpace(route),
		SortBy:          strings.ToLower(strings.TrimSpace(sortBy)),
		StartAfterDocID: strings.TrimSpace(token),
		Limit:           cfg.Search.PageSize,
	}
	if date = strings.TrimSpace(date); date != "" {
		filters.ServiceDate = date
	}
	if flags.Changed("limit") {
		if limit <= 0 {
			return model.Filters{}, fmt.Errorf("--limit must be positive, got %d", limit)
		}
		filters.Limit = limit
	}
	if filters.SortBy != "" && !slices.Contains(sortOrders, filters.SortBy) {
		return model.Filters{}, fmt.Errorf("unknown sort order %q (want one of %s)", sortBy, strings.Join(sortOrders, ", "))
	}

	if len(times) > 0 {
		filters.DepartureTimeRange = timerange.NormalizeStrings(times...)
		if filters.DepartureTimeRange.IsEmpty() {
			return model.Filters{}, fmt.Errorf("unrecognized --time %q (try morning, afternoon, evening or night)", strings.Join(times, ", "))
		}
	}

	if err := filters.Validate(); err != nil {
		return model.Filters{}, err
	}
	return filters, nil
}
