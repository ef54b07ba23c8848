package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/flightdeck/internal/cli"
	"github.com/Veraticus/flightdeck/internal/common"
	"github.com/Veraticus/flightdeck/internal/config"
	"github.com/Veraticus/flightdeck/internal/flights"
	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/spf13/cobra"
)

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <query>",
		Short: "Search flights with a plain-English query",
		Long: `Turn a natural-language question into search filters and run the search.

Examples:
  flightdeck ask "flights from Sydney to Manila after lunch"
  flightdeck ask "late night Qantas departures on the 10th" --pages 2
  flightdeck ask "morning flights to Cebu" --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().Bool("dry-run", false, "Print the extracted filters without searching")
	cmd.Flags().Bool("json", false, "Print filters and results as JSON")
	cmd.Flags().Int("pages", 1, "Number of result pages to fetch")

	return cmd
}

// searchOutput is the --json document.
type searchOutput struct {
	Query   string             `json:"query,omitempty"`
	Pages   []model.FlightPage `json:"pages,omitempty"`
	Filters model.Filters      `json:"filters"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jsonOut, _ := cmd.Flags().GetBool("json")
	pages, _ := cmd.Flags().GetInt("pages")
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("query must not be empty")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parser, err := newQueryParser(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx, stop := cli.NewInterruptHandler(cmd.ErrOrStderr()).HandleInterrupts(cmd.Context())
	defer stop()

	spinner := cli.StartSpinner(cmd.ErrOrStderr(), "Understanding your query...")
	filters, err := parser.Parse(ctx, text)
	spinner.Stop()
	if err != nil {
		return err
	}

	if dryRun {
		if jsonOut {
			return writeJSON(out, searchOutput{Query: text, Filters: filters})
		}
		_, err := fmt.Fprintln(out, cli.RenderFilters(filters))
		return err
	}

	results, err := fetchPages(ctx, cmd.ErrOrStderr(), cfg, filters, pages)
	if err != nil {
		return err
	}
	saveHistory(context.WithoutCancel(ctx), cfg, text, &filters, results[0].Count)
	common.LogInfo("AI search completed", common.Fields{
		"query":   text,
		"filters": filters.Summary(),
		"results": results[0].Count,
		"pages":   len(results),
	})

	if jsonOut {
		return writeJSON(out, searchOutput{Query: text, Filters: filters, Pages: results})
	}
	printResults(out, filters, results)
	return nil
}

// fetchPages loads up to n pages, stopping early on the last page.
func fetchPages(ctx context.Context, progress io.Writer, cfg config.Config, filters model.Filters, n int) ([]model.FlightPage, error) {
	client, err := newSearchClient(cfg)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 1
	}

	spinner := cli.StartSpinner(progress, "Searching flights...")
	defer spinner.Stop()

	pager := flights.NewPager(client, filters)
	first, err := pager.First(ctx)
	if err != nil {
		return nil, err
	}

	results := []model.FlightPage{first}
	for len(results) < n && pager.HasNext() {
		spinner.Describe(fmt.Sprintf("Loading page %d...", pager.Page()+1))
		page, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, page)
	}
	return results, nil
}

func printResults(w io.Writer, filters model.Filters, results []model.FlightPage) {
	_, _ = fmt.Fprintln(w, cli.RenderFilters(filters))
	for i, page := range results {
		_, _ = fmt.Fprintln(w, cli.RenderFlights(page, i+1))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
