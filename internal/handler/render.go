package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// separator is printed between report sections.
var separator = strings.Repeat("-", 40)

// titled capitalises vocabulary words ("june" → "June") for display.
// A Caser keeps state between calls, so each call gets its own.
func titled(s string) string {
	return cases.Title(language.English).String(s)
}

// printer writes formatted text and remembers the first write error, so a
// long report can be written without checking every call.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// RenderReport writes r as human-readable text, one section per aggregator,
// in the order time, stations, duration, users.
func RenderReport(w io.Writer, r domain.Report) error {
	p := &printer{w: w}

	if r.NoData() {
		p.printf("\nNo trips matched your filter (%s).\n", describeFilter(r.Filter))
	} else {
		p.printf("\nAnalysing %d trips (%s).\n", r.Trips, describeFilter(r.Filter))
	}

	renderTimeStats(p, r.Time)
	renderElapsed(p, r.Timings.Time)

	renderStationStats(p, r.Stations)
	renderElapsed(p, r.Timings.Stations)

	renderDurationStats(p, r.Duration)
	renderElapsed(p, r.Timings.Duration)

	renderUserStats(p, r.Users)
	renderElapsed(p, r.Timings.Users)

	return p.err
}

// RenderJSON writes r as indented JSON.
func RenderJSON(w io.Writer, r domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderTimeStats(p *printer, s domain.TimeStats) {
	p.printf("\nCalculating The Most Frequent Times of Travel...\n\n")

	months := make([]string, len(s.Months))
	for i, m := range s.Months {
		months[i] = titled(m.String())
	}
	weekdays := make([]string, len(s.Weekdays))
	for i, d := range s.Weekdays {
		weekdays[i] = titled(d.String())
	}
	hours := make([]string, len(s.Hours))
	for i, h := range s.Hours {
		hours[i] = fmt.Sprintf("%d:00", h)
	}

	p.printf("The most common month(s) is(are): %s\n", joinOrNone(months))
	p.printf("The most common day(s) is(are): %s\n", joinOrNone(weekdays))
	p.printf("The most common hour(s) is(are): %s\n", joinOrNone(hours))
}

func renderStationStats(p *printer, s domain.StationStats) {
	p.printf("\nCalculating The Most Popular Stations and Trip...\n\n")
	p.printf("The most common start station(s) is(are): %s\n", joinOrNone(s.StartStations))
	p.printf("The most common end station(s) is(are): %s\n", joinOrNone(s.EndStations))
	if len(s.Trips) == 0 {
		p.printf("The most common trip(s) is(are): none\n")
		return
	}
	p.printf("The most common trip(s) is(are):\n")
	for _, t := range s.Trips {
		p.printf("  %s\n", t)
	}
}

func renderDurationStats(p *printer, d *domain.DurationStats) {
	p.printf("\nCalculating Trip Duration...\n\n")
	if d == nil {
		p.printf("Trip duration is not available: no trips matched your filter.\n")
		return
	}
	p.printf("Total travel time is %d seconds.\n", d.TotalSeconds)
	p.printf("Mean travel time is %d seconds.\n", d.MeanSeconds)
}

func renderUserStats(p *printer, s domain.UserStats) {
	p.printf("\nCalculating User Stats...\n\n")

	p.printf("What is the breakdown of users?\n")
	renderCounts(p, s.UserTypes)

	p.printf("\nWhat is the breakdown by gender?\n")
	if s.Genders == nil {
		p.printf("Data for gender not available.\n")
	} else {
		renderCounts(p, s.Genders)
	}

	p.printf("\n")
	if s.BirthYears == nil {
		p.printf("Data for year of birth not available.\n")
		return
	}
	p.printf("Earliest year of birth: %s\n", optionalYear(s.BirthYears.Earliest))
	p.printf("Year of birth on most recent trip: %s\n", optionalYear(s.BirthYears.MostRecentTrip))
}

// renderCounts writes a two-column value/count table.
func renderCounts(p *printer, counts []domain.CategoryCount) {
	if p.err != nil {
		return
	}
	if len(counts) == 0 {
		p.printf("  none\n")
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Value, c.Count)
	}
	p.err = tw.Flush()
}

func renderElapsed(p *printer, d time.Duration) {
	p.printf("\nThis took %s seconds.\n%s\n", strconv.FormatFloat(d.Seconds(), 'f', 6, 64), separator)
}

func describeFilter(f domain.FilterSpec) string {
	return fmt.Sprintf("city: %s, month: %s, day: %s",
		titled(string(f.City)), titled(f.Month.String()), titled(f.Day.String()))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func optionalYear(y *int) string {
	if y == nil {
		return "not available"
	}
	return strconv.Itoa(*y)
}
