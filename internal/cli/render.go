package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/flightdeck/internal/model"
	"github.com/Veraticus/flightdeck/internal/timerange"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FlightColumns are the column titles of the flight table, shared with the dashboard.
var FlightColumns = []string{"Flight", "Airline", "From", "To", "Departs", "Aircraft", "Date"}

// FlightRow returns the cells of one flight in FlightColumns order.
func FlightRow(f model.Flight) []string {
	number := f.Data.FlightNumber
	if f.Data.IsPlaceholder {
		number += "*"
	}
	return []string{
		orDash(number),
		orDash(f.Data.AirlineIATA),
		airport(f.Data.OriginIATA, f.Data.OriginAirportName),
		airport(f.Data.DestinationIATA, f.Data.DestinationAirportName),
		orDash(FormatDeparture(f.Data.DepartureLocal)),
		orDash(f.Data.AircraftModel),
		orDash(f.Data.ServiceDate),
	}
}

// FormatDeparture renders a local departure time as HH:MM. The backend sends
// either "HHMM" or "HH:MM"; anything else is returned unchanged.
func FormatDeparture(hhmm string) string {
	if len(hhmm) == 4 && !strings.Contains(hhmm, ":") {
		return hhmm[:2] + ":" + hhmm[2:]
	}
	return hhmm
}

// RenderFlights renders one page of results as a table.
func RenderFlights(page model.FlightPage, pageNumber int) string {
	if len(page.Items) == 0 {
		return FormatWarning("No flights match these filters.")
	}

	rows := make([][]string, 0, len(page.Items))
	for _, f := range page.Items {
		rows = append(rows, FlightRow(f))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(FlightColumns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	footer := fmt.Sprintf("Page %d · %d flights", pageNumber, page.Count)
	if page.HasNext() {
		footer += " · more available"
	}
	return t.Render() + "\n" + SubtleStyle.Render(footer)
}

// RenderFilters renders the filters a search will use.
func RenderFilters(f model.Filters) string {
	lines := []string{
		field("Date", f.ServiceDate),
		field("Origin", f.Origin),
		field("Destination", f.Destination),
		field("Airline", f.Airline),
		field("Route", f.Route),
		field("Sort", f.SortBy),
		field("Departure", RenderTimeRange(f.DepartureTimeRange)),
		field("Limit", fmt.Sprintf("%d", f.Limit)),
	}
	return RenderBox("Search filters", strings.Join(lines, "\n"))
}

// RenderTimeRange renders a bucket set as badges, or "any time" when empty.
func RenderTimeRange(s timerange.Set) string {
	if s.IsEmpty() {
		return SubtleStyle.Render("any time")
	}
	badges := make([]string, 0, s.Len())
	for _, b := range s.Buckets() {
		badges = append(badges, BadgeStyle.Render(b.String()))
	}
	return strings.Join(badges, " ")
}

// RenderTimeExplanation shows which fallback rule matched a query and the
// clock ranges of the resulting buckets.
func RenderTimeExplanation(query string, s timerange.Set, rule string) string {
	lines := []string{
		field("Query", query),
		field("Rule", rule),
		field("Buckets", RenderTimeRange(s)),
	}
	for _, b := range s.Buckets() {
		iv, _ := timerange.IntervalFor(b)
		lines = append(lines, fmt.Sprintf("  %-10s %s", b, iv))
	}
	return RenderBox(ClockIcon+" Departure time", strings.Join(lines, "\n"))
}

// RenderHistory renders saved queries, newest first.
func RenderHistory(records []model.QueryRecord) string {
	if len(records) == 0 {
		return FormatInfo("No queries yet. Try: flightdeck ask \"flights to Manila after lunch\"")
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		filters := SubtleStyle.Render("not understood")
		if r.Filters != nil {
			filters = r.Filters.Summary()
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Query,
			fmt.Sprintf("%d", r.ResultCount),
			filters,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers("ID", "When", "Query", "Results", "Filters").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		}).
		Render()
}

func field(name, value string) string {
	return BoldStyle.Render(fmt.Sprintf("%-12s", name)) + orDash(value)
}

func airport(code, name string) string {
	switch {
	case code != "" && name != "":
		return code + " " + SubtleStyle.Render(name)
	case code != "":
		return code
	default:
		return orDash(name)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
